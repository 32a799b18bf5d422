// REST API портала UTEQ:
//
//	GET    /api/v1/health       # Проверка состояния
//	GET    /multimedia/         # Список мультимедиа
//	POST   /multimedia/         # Добавить (токен редактора)
//	PUT    /multimedia/{id}     # Обновить (токен редактора)
//	DELETE /multimedia/{id}     # Удалить (токен редактора)
//	GET    /Noticias            # Лента новостей
//	GET    /Revistas            # Лента журналов
//	POST   /feed/{section}      # Опубликовать (токен редактора)
package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	feedAPI "uteqportal/internal/app/server/api/http/feed"
	healthAPI "uteqportal/internal/app/server/api/http/health"
	"uteqportal/internal/app/server/api/http/middleware"
	"uteqportal/internal/app/server/api/http/middleware/auth"
	"uteqportal/internal/app/server/api/http/middleware/logger"
	multimediaAPI "uteqportal/internal/app/server/api/http/multimedia"
	"uteqportal/internal/domain/feed"
	"uteqportal/internal/domain/multimedia"
)

type Handlers struct {
	Health     *healthAPI.Handler
	Multimedia *multimediaAPI.Handler
	Feed       *feedAPI.Handler
}

// Services - доменные сервисы, которые публикует API
type Services struct {
	Multimedia multimedia.Servicer
	Feed       feed.Servicer
	// Database проверяется в health check, может быть nil
	Database   healthAPI.Pinger
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(services Services, apiToken string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("UTEQ Portal API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(services, apiToken, log)
	h.Health.SetupRoutes(API)
	h.Multimedia.SetupRoutes(API)
	h.Feed.SetupRoutes(API)

	return mux
}

func handlers(services Services, apiToken string, log *slog.Logger) *Handlers {
	authMW := auth.New(apiToken, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(services.Database, log, middlewares.GetAllAndClear())

	middlewares.Add(loggerMW.Middleware())
	readMWs := middlewares.GetAllAndClear()
	middlewares.Add(loggerMW.Middleware(), authMW.Middleware())
	writeMWs := middlewares.GetAllAndClear()

	return &Handlers{
		Health:     healthHandler,
		Multimedia: multimediaAPI.NewHandler(services.Multimedia, log, readMWs, writeMWs),
		Feed:       feedAPI.NewHandler(services.Feed, log, readMWs, writeMWs),
	}
}
