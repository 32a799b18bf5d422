package record

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsRepoError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCause Cause
		wantIs    error
	}{
		{
			name:      "unknown error",
			err:       errors.New("boom"),
			wantCause: CauseMalformedResponse,
			wantIs:    ErrMalformedResponse,
		},
		{
			name:      "context canceled",
			err:       fmt.Errorf("do: %w", context.Canceled),
			wantCause: CauseNetworkFailure,
			wantIs:    ErrNetworkFailure,
		},
		{
			name:      "deadline",
			err:       context.DeadlineExceeded,
			wantCause: CauseNetworkFailure,
			wantIs:    ErrNetworkFailure,
		},
		{
			name:      "wrapped not found sentinel",
			err:       fmt.Errorf("get: %w", ErrNotFound),
			wantCause: CauseNotFound,
			wantIs:    ErrNotFound,
		},
		{
			name:      "already repo error",
			err:       fmt.Errorf("outer: %w", NewRepoError("update", "Facultades", CausePermissionDenied, nil)),
			wantCause: CausePermissionDenied,
			wantIs:    ErrPermissionDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AsRepoError("list", "Facultades", tt.err)
			assert.Equal(t, tt.wantCause, got.Cause)
			assert.ErrorIs(t, got, tt.wantIs)
		})
	}
}

func TestAsRepoError_Nil(t *testing.T) {
	assert.Nil(t, AsRepoError("list", "x", nil))
}

func TestRepoError_Message(t *testing.T) {
	err := NewRepoError("delete", "contenidos", CauseNotFound, errors.New("no doc"))

	assert.Equal(t, "delete contenidos: not_found: no doc", err.Error())
	assert.NotErrorIs(t, err, ErrNetworkFailure)
}
