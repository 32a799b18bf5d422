package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/record"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewWithHTTPClient(srv.URL, srv.Client(), slog.Default())
}

func TestClient_List(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/multimedia/", r.URL.Path)
		_, _ = io.WriteString(w, `{"multimedias":[
			{"ID":7,"titulo":"Video","descripcion":"Clase","url":"https://uteq.edu.ec/v"},
			{"ID":"abc","titulo":"Foto","descripcion":"Campus","url":"http://x"}
		]}`)
	})

	list, err := c.List(context.Background(), record.CollectionMultimedia)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "7", list[0].ID)
	assert.Equal(t, "Video", list[0].Get(record.FieldContentTitle))
	assert.Equal(t, "abc", list[1].ID)
	assert.Equal(t, "http://x", list[1].Get(record.FieldContentURL))
}

func TestClient_Create(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"titulo": "T", "descripcion": "D", "url": "https://u"}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"ID":42}`)
	})

	id, err := c.Create(context.Background(), record.CollectionMultimedia, record.Record{Fields: record.Fields{
		"titulo": "T", "descripcion": "D", "url": "https://u",
	}})

	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestClient_CreateWithoutID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	_, err := c.Create(context.Background(), record.CollectionMultimedia, record.Record{Fields: record.Fields{}})

	assert.ErrorIs(t, err, record.ErrMalformedResponse)
}

func TestClient_UpdateAndDelete(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	require.NoError(t, c.Update(ctx, record.CollectionMultimedia, "9", record.Fields{"titulo": "N"}))
	require.NoError(t, c.Delete(ctx, record.CollectionMultimedia, "9"))

	assert.Equal(t, []string{"PUT /multimedia/9", "DELETE /multimedia/9"}, calls)
}

func TestClient_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: record.ErrPermissionDenied},
		{name: "forbidden", status: http.StatusForbidden, want: record.ErrPermissionDenied},
		{name: "not found", status: http.StatusNotFound, want: record.ErrNotFound},
		{name: "server error", status: http.StatusBadGateway, want: record.ErrNetworkFailure},
		{name: "bad request", status: http.StatusBadRequest, want: record.ErrMalformedResponse},
		{name: "undecodable body", status: http.StatusOK, body: "<html>", want: record.ErrMalformedResponse},
		{name: "bad id type", status: http.StatusOK, body: `{"multimedias":[{"ID":true}]}`, want: record.ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.List(context.Background(), record.CollectionMultimedia)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			var repoErr *record.RepoError
			require.ErrorAs(t, err, &repoErr)
			assert.Equal(t, "list", repoErr.Op)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := NewWithHTTPClient(srv.URL, srv.Client(), slog.Default())
	srv.Close()

	err := c.Delete(context.Background(), record.CollectionMultimedia, "1")

	assert.ErrorIs(t, err, record.ErrNetworkFailure)
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    ID
		wantErr bool
	}{
		{in: `12`, want: "12"},
		{in: `"x-1"`, want: "x-1"},
		{in: `null`, want: ""},
		{in: `{}`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var id ID
			err := json.Unmarshal([]byte(tt.in), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestClient_SendsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer editor", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	})
	c.SetToken("editor")

	require.NoError(t, c.Delete(context.Background(), record.CollectionMultimedia, "1"))
}
