package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"uteqportal/internal/domain/record"
	"uteqportal/internal/domain/validator"
)

var (
	ErrNotInstitutional   = errors.New("correo no institucional")
	ErrUnknownUser        = errors.New("usuario no registrado")
	ErrInvalidCredentials = errors.New("credenciales incorrectas")
	ErrNotLoggedIn        = errors.New("no hay sesión activa")
	ErrUnknownFaculty     = errors.New("facultad no encontrada")
	ErrUserExists         = errors.New("el correo ya está registrado")
)

// GuestName - как показывается гостевая сессия
const GuestName = "invitado"

// AppState хранит состояние приложения между запусками
type AppState struct {
	Email              string    `json:"email"`
	LoggedInAt         time.Time `json:"logged_in_at"`
	PreferredFaculties []string  `json:"preferred_faculties"`
	Guest              bool      `json:"guest,omitempty"`
}

func loadAppState(path string) (*AppState, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &AppState{}, nil
	}
	if err != nil {
		return nil, err
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// saveAppState вызывается под a.mu
func (a *App) saveAppState() error {
	data, err := json.MarshalIndent(a.state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(a.config.StatePath, data, 0600)
}

// Login проверяет институциональную почту и пароль зарегистрированного
// пользователя, затем сохраняет сессию.
func (a *App) Login(ctx context.Context, email, password string) (record.User, error) {
	email = strings.TrimSpace(email)
	// публичные адреса допускаются только для пользователей, зарегистрированных как publico
	public := validator.IsPublicEmail(email)
	if !public && !validator.InstitutionalEmail(a.config.InstitutionalDomain).Check(email) {
		return record.User{}, fmt.Errorf("%w: se requiere %s", ErrNotInstitutional, a.config.InstitutionalDomain)
	}

	rec, found, err := a.findUser(ctx, email)
	if err != nil {
		return record.User{}, err
	}
	if !found {
		return record.User{}, ErrUnknownUser
	}
	user := record.UserFromRecord(rec)
	if public && user.Type != record.UserTypePublic {
		return record.User{}, fmt.Errorf("%w: se requiere %s", ErrNotInstitutional, a.config.InstitutionalDomain)
	}
	if !record.CheckUserPassword(user, password) {
		a.log.Warn("Неверный пароль", "email", email)
		return record.User{}, ErrInvalidCredentials
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Email = user.Email
	a.state.Guest = false
	a.state.LoggedInAt = time.Now().UTC()
	if err := a.saveAppState(); err != nil {
		return record.User{}, fmt.Errorf("ошибка сохранения состояния: %w", err)
	}

	a.log.Info("Вход выполнен успешно", "email", user.Email)
	return user, nil
}

func (a *App) Logout() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state.Email == "" && !a.state.Guest {
		return ErrNotLoggedIn
	}
	a.state.Email = ""
	a.state.Guest = false
	a.state.LoggedInAt = time.Time{}
	return a.saveAppState()
}

// LoginAsGuest открывает сессию без учетной записи.
func (a *App) LoginAsGuest() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Email = ""
	a.state.Guest = true
	a.state.LoggedInAt = time.Now().UTC()
	if err := a.saveAppState(); err != nil {
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}
	a.log.Info("Гостевой вход")
	return nil
}

// IsGuest сообщает, гостевая ли текущая сессия.
func (a *App) IsGuest() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Guest
}

// CurrentUser возвращает почту пользователя активной сессии или GuestName.
func (a *App) CurrentUser() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch {
	case a.state.Guest:
		return GuestName, nil
	case a.state.Email == "":
		return "", ErrNotLoggedIn
	}
	return a.state.Email, nil
}

// Register создает пользователя через контроллер списка usuarios со схемой
// выбранного типа: institucional или publico.
func (a *App) Register(ctx context.Context, userType string, draft record.Fields) (record.User, error) {
	kind, err := record.UserKindForType(userType, a.config.InstitutionalDomain)
	if err != nil {
		return record.User{}, err
	}
	if err := kind.Validate(draft); err != nil {
		return record.User{}, err
	}

	_, exists, err := a.findUser(ctx, draft[record.FieldUserEmail])
	if err != nil {
		return record.User{}, err
	}
	if exists {
		return record.User{}, ErrUserExists
	}

	fields := draft.Clone()
	fields[record.FieldUserType] = userType

	rec, err := a.Controller(kind).Create(ctx, fields)
	if err != nil {
		return record.User{}, err
	}
	a.log.Info("Пользователь зарегистрирован", "email", rec.Get(record.FieldUserEmail), "type", userType)
	return record.UserFromRecord(rec), nil
}

func (a *App) findUser(ctx context.Context, email string) (record.Record, bool, error) {
	users, err := a.documents.List(ctx, record.CollectionUsers)
	if err != nil {
		return record.Record{}, false, record.AsRepoError("list", record.CollectionUsers, err)
	}
	email = strings.TrimSpace(email)
	idx := slices.IndexFunc(users, func(r record.Record) bool {
		return strings.EqualFold(r.Get(record.FieldUserEmail), email)
	})
	if idx < 0 {
		return record.Record{}, false, nil
	}
	return users[idx], true, nil
}

// PreferredFaculties возвращает выбранные факультеты.
func (a *App) PreferredFaculties() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.state.PreferredFaculties)
}

// ToggleFacultyPreference отмечает факультет или снимает отметку.
// Возвращает true, если факультет теперь выбран.
func (a *App) ToggleFacultyPreference(ctx context.Context, id string) (bool, error) {
	faculties, err := a.documents.List(ctx, record.CollectionFaculties)
	if err != nil {
		return false, record.AsRepoError("list", record.CollectionFaculties, err)
	}
	if !slices.ContainsFunc(faculties, func(r record.Record) bool { return r.ID == id }) {
		return false, fmt.Errorf("%w: %s", ErrUnknownFaculty, id)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	selected := true
	if i := slices.Index(a.state.PreferredFaculties, id); i >= 0 {
		a.state.PreferredFaculties = slices.Delete(a.state.PreferredFaculties, i, i+1)
		selected = false
	} else {
		a.state.PreferredFaculties = append(a.state.PreferredFaculties, id)
	}

	if err := a.saveAppState(); err != nil {
		return false, fmt.Errorf("ошибка сохранения состояния: %w", err)
	}
	return selected, nil
}
