package record

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrNetworkFailure    = errors.New("network failure")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrMalformedResponse = errors.New("malformed response")
)

// Cause - категория ошибки репозитория
type Cause string

const (
	CauseNetworkFailure    Cause = "network_failure"
	CauseNotFound          Cause = "not_found"
	CausePermissionDenied  Cause = "permission_denied"
	CauseMalformedResponse Cause = "malformed_response"
)

func (c Cause) sentinel() error {
	switch c {
	case CauseNetworkFailure:
		return ErrNetworkFailure
	case CauseNotFound:
		return ErrNotFound
	case CausePermissionDenied:
		return ErrPermissionDenied
	default:
		return ErrMalformedResponse
	}
}

// RepoError - ошибка Repository Port с причиной
type RepoError struct {
	Op         string
	Collection string
	Cause      Cause
	Err        error
}

func NewRepoError(op, collection string, cause Cause, err error) *RepoError {
	return &RepoError{Op: op, Collection: collection, Cause: cause, Err: err}
}

func (e *RepoError) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Op, e.Collection, e.Cause)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RepoError) Unwrap() error {
	return e.Err
}

// Is сопоставляет ошибку с sentinel-значением ее причины.
func (e *RepoError) Is(target error) bool {
	return target == e.Cause.sentinel()
}

// AsRepoError приводит произвольную ошибку порта к *RepoError.
// Отмена контекста считается сетевой ошибкой, все неизвестное - malformed_response.
func AsRepoError(op, collection string, err error) *RepoError {
	if err == nil {
		return nil
	}
	var repoErr *RepoError
	if errors.As(err, &repoErr) {
		return repoErr
	}
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return NewRepoError(op, collection, CauseNetworkFailure, err)
	case errors.Is(err, ErrNotFound):
		return NewRepoError(op, collection, CauseNotFound, err)
	case errors.Is(err, ErrPermissionDenied):
		return NewRepoError(op, collection, CausePermissionDenied, err)
	case errors.Is(err, ErrNetworkFailure):
		return NewRepoError(op, collection, CauseNetworkFailure, err)
	}
	return NewRepoError(op, collection, CauseMalformedResponse, err)
}
