package feed

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"uteqportal/internal/app/client/feed"
	"uteqportal/internal/domain/record"
)

func TestRunSection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Revistas", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Titulo":"Ciencia UTEQ","Portada":"https://x/p.png","url":"https://x/r","date":"2023","tags":[{"value":"Ciencia"}]}]`))
	}))
	defer srv.Close()

	reader := feed.NewReader(srv.URL, slog.Default())
	var out bytes.Buffer

	err := runSection(context.Background(), &out, feed.SectionMagazines, reader.Magazines)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "== Revistas ==")
	assert.Contains(t, out.String(), "Ciencia UTEQ")
}

func TestRunSection_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	reader := feed.NewReader(srv.URL, slog.Default())
	var out bytes.Buffer

	err := runSection(context.Background(), &out, feed.SectionNews, reader.News)

	assert.ErrorIs(t, err, record.ErrNetworkFailure)
	assert.Empty(t, out.String())
}
