package multimedia

import "errors"

var (
	ErrNotFound     = errors.New("multimedia not found")
	ErrInvalidInput = errors.New("invalid input")
)

type DomainError struct {
	Err     error
	Message string
	Fields  []string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
