package client

import (
	"context"
	"fmt"
	gosync "sync"

	"golang.org/x/exp/slog"

	"uteqportal/internal/app/client/chat"
	"uteqportal/internal/app/client/config"
	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/app/client/feed"
	"uteqportal/internal/app/client/repository/docstore"
	"uteqportal/internal/app/client/repository/memory"
	"uteqportal/internal/app/client/repository/rest"
	"uteqportal/internal/domain/record"
)

// App связывает конфигурацию, хранилища и контроллеры экранов.
type App struct {
	config     *config.Config
	log        *slog.Logger
	documents  record.Repository
	multimedia record.Repository
	local      record.Repository
	feed       *feed.Reader
	closer     func() error

	mu          gosync.Mutex
	state       *AppState
	controllers []*controller.Controller
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	state, err := loadAppState(cfg.StatePath)
	if err != nil {
		log.Warn("Не удалось загрузить состояние приложения", "error", err)
		state = &AppState{}
	}

	store, err := docstore.New(cfg.DataPath, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации хранилища документов: %w", err)
	}

	multimedia := rest.New(cfg.ServerAddress, log)
	multimedia.SetToken(cfg.APIToken)

	return NewWithRepositories(cfg, log, Repositories{
		Documents:  store,
		Multimedia: multimedia,
		Local:      memory.New(),
		Feed:       feed.NewReader(cfg.FeedURL, log),
	}, state, store.Close), nil
}

// Repositories - порты, из которых собирается App.
type Repositories struct {
	Documents  record.Repository
	Multimedia record.Repository
	Local      record.Repository
	Feed       *feed.Reader
}

func NewWithRepositories(cfg *config.Config, log *slog.Logger, repos Repositories, state *AppState, closer func() error) *App {
	if state == nil {
		state = &AppState{}
	}
	return &App{
		config:     cfg,
		log:        log.With("component", "client_app"),
		documents:  repos.Documents,
		multimedia: repos.Multimedia,
		local:      repos.Local,
		feed:       repos.Feed,
		closer:     closer,
		state:      state,
	}
}

func (a *App) Config() *config.Config {
	return a.config
}

// KindFor возвращает тип записи с учетом настроек (домен почты пользователей).
func (a *App) KindFor(name string) (record.Kind, error) {
	kind, err := record.KindByName(name)
	if err != nil {
		return record.Kind{}, err
	}
	if kind.Name == record.KindNameUser {
		kind = record.UserKindForDomain(a.config.InstitutionalDomain)
	}
	return kind, nil
}

// Controller создает контроллер экрана для типа записи.
// Мультимедиа идет в REST API, сообщения - в память, остальное - в документы.
func (a *App) Controller(kind record.Kind) *controller.Controller {
	var repo record.Repository
	switch kind.Name {
	case record.KindNameMultimedia:
		repo = a.multimedia
	case record.KindNameMessage:
		repo = a.local
	default:
		repo = a.documents
	}

	ctrl := controller.New(repo, kind, a.log)

	a.mu.Lock()
	a.controllers = append(a.controllers, ctrl)
	a.mu.Unlock()

	return ctrl
}

// Chat создает окно чата над локальным хранилищем.
func (a *App) Chat() *chat.Box {
	return chat.New(a.local, a.log)
}

func (a *App) Feed() *feed.Reader {
	return a.feed
}

// Home загружает данные главного экрана.
func (a *App) Home(ctx context.Context) (feed.Home, error) {
	return feed.LoadHome(ctx, a.feed, a.documents)
}

// Shutdown закрывает контроллеры и хранилище.
func (a *App) Shutdown() {
	a.mu.Lock()
	controllers := a.controllers
	a.controllers = nil
	a.mu.Unlock()

	for _, c := range controllers {
		c.Close()
	}

	if a.closer != nil {
		if err := a.closer(); err != nil {
			a.log.Warn("Ошибка закрытия хранилища", "error", err)
		}
	}
	a.log.Debug("Клиент завершил работу")
}
