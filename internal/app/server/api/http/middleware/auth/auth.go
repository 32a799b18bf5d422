package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Auth пропускает запросы на запись только с токеном редактора.
// Пустой токен в конфигурации отключает проверку.
type Auth struct {
	tokenHash [sha256.Size]byte
	enabled   bool
	log       *slog.Logger
}

func New(token string, log *slog.Logger) *Auth {
	return &Auth{
		tokenHash: sha256.Sum256([]byte(token)),
		enabled:   token != "",
		log:       log.With("component", "auth_middleware"),
	}
}

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !a.enabled {
			next(ctx)
			return
		}

		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			a.log.Warn("missing bearer token", "path", ctx.URL().Path)
			a.reject(ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}

		hash := sha256.Sum256([]byte(token))
		if subtle.ConstantTimeCompare(hash[:], a.tokenHash[:]) != 1 {
			a.log.Warn("invalid bearer token", "path", ctx.URL().Path)
			a.reject(ctx, http.StatusForbidden, "Forbidden")
			return
		}

		next(ctx)
	}
}

func (a *Auth) reject(ctx huma.Context, status int, msg string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)
	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{"error": msg}); err != nil {
		a.log.Error("failed to encode auth error", "error", err)
	}
}
