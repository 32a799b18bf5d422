// Package feed читает ленты новостей и журналов университета.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"uteqportal/internal/app/client/repository/rest"
	"uteqportal/internal/domain/record"
)

const (
	SectionNews      = "Noticias"
	SectionMagazines = "Revistas"

	// PreviewLimit - сколько карточек каждой ленты показывает главная.
	PreviewLimit = 5
)

type Tag struct {
	Value string `json:"value"`
}

type Item struct {
	Title string `json:"Titulo"`
	Cover string `json:"Portada"`
	URL   string `json:"url"`
	Date  string `json:"date"`
	Tags  []Tag  `json:"tags"`
}

// Category склеивает значения тегов через ", ".
func (i Item) Category() string {
	values := make([]string, 0, len(i.Tags))
	for _, t := range i.Tags {
		values = append(values, t.Value)
	}
	return strings.Join(values, ", ")
}

type Reader struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
}

func NewReader(baseURL string, log *slog.Logger) *Reader {
	return NewReaderWithHTTPClient(baseURL, &http.Client{Timeout: 30 * time.Second}, log)
}

func NewReaderWithHTTPClient(baseURL string, hc *http.Client, log *slog.Logger) *Reader {
	return &Reader{
		client:  hc,
		log:     log.With("component", "feed_reader"),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (r *Reader) News(ctx context.Context) ([]Item, error) {
	return r.fetch(ctx, SectionNews)
}

func (r *Reader) Magazines(ctx context.Context) ([]Item, error) {
	return r.fetch(ctx, SectionMagazines)
}

func (r *Reader) fetch(ctx context.Context, section string) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+section, nil)
	if err != nil {
		return nil, record.NewRepoError("list", section, record.CauseMalformedResponse, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.log.Warn("feed request failed", "section", section, "error", err)
		return nil, record.NewRepoError("list", section, record.CauseNetworkFailure, err)
	}
	defer resp.Body.Close()

	if cause, failed := rest.CauseForStatus(resp.StatusCode); failed {
		return nil, record.NewRepoError("list", section, cause,
			fmt.Errorf("сервер вернул статус %d", resp.StatusCode))
	}

	var items []Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, record.NewRepoError("list", section, record.CauseMalformedResponse,
			fmt.Errorf("ошибка декодирования ленты: %w", err))
	}

	r.log.Debug("feed loaded", "section", section, "count", len(items))
	return items, nil
}
