// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"uteqportal/cmd/client/cmd/auth"
	"uteqportal/cmd/client/cmd/chat"
	"uteqportal/cmd/client/cmd/feed"
	"uteqportal/cmd/client/cmd/preferences"
	"uteqportal/cmd/client/cmd/record"
	"uteqportal/cmd/client/cmd/types"
	"uteqportal/internal/app/client"
	"uteqportal/internal/app/client/config"
	domain "uteqportal/internal/domain/record"
	"uteqportal/internal/utils/logger"
)

var (
	app       *client.App
	serverURL string
	feedURL   string
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "uteqportal",
	Short: "Portal UTEQ - cliente de gestión del portal universitario",
	Long: `Portal UTEQ permite consultar noticias y revistas de la universidad
y administrar facultades, contenidos, multimedia y usuarios.

Las facultades, contenidos y usuarios se guardan en la base de documentos
local; la multimedia, noticias y revistas se leen de las APIs REST.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if app != nil {
		app.Shutdown()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error de configuración: %w", err)
	}

	// Флаги командной строки важнее окружения
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if feedURL != "" {
		cfg.FeedURL = feedURL
	}
	level := cfg.LogLevel
	if debug {
		level = "debug"
	}

	log := logger.NewWithWriter(cfg.Env, level, os.Stderr)

	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("no se pudo iniciar la aplicación: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, types.ClientAppKey, app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "URL de la API de multimedia")
	rootCmd.PersistentFlags().StringVar(&feedURL, "feed", "", "URL de la API de noticias y revistas")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "registro detallado")

	rootCmd.AddCommand(
		record.NewKindCmd(domain.KindNameFaculty, "faculty", "Gestionar facultades",
			`Lista, crea, edita y elimina facultades (nombre, misión y visión).`),
		record.NewKindCmd(domain.KindNameContent, "content", "Gestionar contenidos",
			`Lista, crea, edita y elimina contenidos de la página de inicio.`),
		record.NewKindCmd(domain.KindNameMultimedia, "multimedia", "Gestionar multimedia",
			`Administra los registros multimedia de la API REST.
Crear, editar y eliminar piden confirmación antes de enviar.`),
		record.NewKindCmd(domain.KindNameUser, "user", "Gestionar usuarios",
			`Lista, crea, edita y elimina usuarios. El correo debe ser institucional
y los nombres no pueden contener dígitos.`),
		auth.NewCmd(),
		chat.NewCmd(),
		preferences.NewCmd(),
	)
	rootCmd.AddCommand(feed.NewCmds()...)
}
