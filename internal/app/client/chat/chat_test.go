package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"uteqportal/internal/app/client/repository/memory"
)

func TestBox_Send(t *testing.T) {
	box := New(memory.New(), slog.Default())
	defer box.Close()
	sent := time.Date(2023, 7, 1, 10, 0, 0, 0, time.UTC)
	box.now = func() time.Time { return sent }
	ctx := context.Background()

	_, err := box.Send(ctx, "hola")
	require.NoError(t, err)
	msg, err := box.Send(ctx, "  qué tal  ")
	require.NoError(t, err)

	assert.Equal(t, "  qué tal  ", msg.Text)
	assert.Equal(t, sent, msg.SentAt)

	msgs := box.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "  qué tal  ", msgs[0].Text)
	assert.Equal(t, "hola", msgs[1].Text)
}

func TestBox_SendEmpty(t *testing.T) {
	tests := []string{"", "   ", "\n\t"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			box := New(memory.New(), slog.Default())

			_, err := box.Send(context.Background(), text)

			assert.ErrorIs(t, err, ErrEmptyMessage)
			assert.Empty(t, box.Messages())
		})
	}
}
