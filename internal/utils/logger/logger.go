package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slog"

	"uteqportal/internal/config"
)

// New создает логгер для окружения: local - цветной вывод,
// dev - JSON с DEBUG, prod - JSON с INFO.
func New(env string) *slog.Logger {
	return NewWithWriter(env, "", os.Stdout)
}

// NewWithLevel как New, но уровень задается явно (LOG_LEVEL).
// Пустой или неизвестный уровень - уровень окружения.
func NewWithLevel(env, level string) *slog.Logger {
	return NewWithWriter(env, level, os.Stdout)
}

// NewWithWriter пишет в out. CLI передает os.Stderr, чтобы логи
// не смешивались с выводом команд.
func NewWithWriter(env, level string, out io.Writer) *slog.Logger {
	lvl := envLevel(env)
	var parsed slog.Level
	if level != "" && parsed.UnmarshalText([]byte(strings.ToUpper(level))) == nil {
		lvl = parsed
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if env == config.EnvDev || env == config.EnvProd {
		return slog.New(slog.NewJSONHandler(out, opts))
	}
	return slog.New(PrettyHandlerOptions{SlogOpts: opts}.NewPrettyHandler(out))
}

func envLevel(env string) slog.Level {
	if env == config.EnvProd {
		return slog.LevelInfo
	}
	return slog.LevelDebug
}
