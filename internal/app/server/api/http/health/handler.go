package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	StatusOK          = "OK"
	StatusUnavailable = "UNAVAILABLE"

	pingTimeout = 2 * time.Second
)

// Pinger - зависимость, доступность которой отражается в health check (pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db         Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

// NewHandler создает обработчик; db может быть nil, тогда база не проверяется.
func NewHandler(db Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		db:         db,
		log:        log.With("component", "health_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	if h.db == nil {
		return &Output{Body: Response{Status: StatusOK}}, nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.db.Ping(pingCtx); err != nil {
		h.log.Warn("database ping failed", "error", err)
		return nil, huma.Error503ServiceUnavailable("base de datos no disponible")
	}
	return &Output{Body: Response{Status: StatusOK, Database: StatusOK}}, nil
}
