package controller

// Status - состояние контроллера списка
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSaving
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSaving:
		return "saving"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State - снимок состояния для слоя отображения
type State struct {
	Status Status
	// Err - причина последней ошибки, только при StatusError
	Err error
}
