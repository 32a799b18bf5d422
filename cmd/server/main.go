package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"uteqportal/internal/app/server"
	"uteqportal/internal/app/server/config"
	"uteqportal/internal/utils/logger"
)

func main() {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
