// Package rest реализует Repository Port поверх REST-ресурса мультимедиа.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/record"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

// New создает клиент; baseURL без завершающего "/", например https://host.
func New(baseURL string, log *slog.Logger) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{
		Timeout: defaultTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}, log)
}

func NewWithHTTPClient(baseURL string, hc *http.Client, log *slog.Logger) *Client {
	return &Client{
		client:    hc,
		log:       log.With("component", "rest_repository"),
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "UTEQPortal-Client/1.0",
	}
}

// SetToken устанавливает токен редактора для запросов на запись
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) List(ctx context.Context, collection string) ([]record.Record, error) {
	var resp listResponse
	if err := c.do(ctx, "list", collection, http.MethodGet, c.collectionURL(collection), nil, &resp); err != nil {
		return nil, err
	}

	out := make([]record.Record, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.ID == "" {
			return nil, record.NewRepoError("list", collection, record.CauseMalformedResponse,
				errors.New("элемент без ID"))
		}
		out = append(out, item.toRecord())
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, collection string, rec record.Record) (string, error) {
	var resp createResponse
	body := itemFromFields(rec.Fields)
	if err := c.do(ctx, "create", collection, http.MethodPost, c.collectionURL(collection), body, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", record.NewRepoError("create", collection, record.CauseMalformedResponse,
			errors.New("сервер не вернул ID"))
	}
	return string(resp.ID), nil
}

// Update отправляет полное тело записи: ресурс поддерживает только PUT.
func (c *Client) Update(ctx context.Context, collection, id string, patch record.Fields) error {
	return c.do(ctx, "update", collection, http.MethodPut, c.itemURL(collection, id), itemFromFields(patch), nil)
}

func (c *Client) Delete(ctx context.Context, collection, id string) error {
	return c.do(ctx, "delete", collection, http.MethodDelete, c.itemURL(collection, id), nil, nil)
}

func (c *Client) collectionURL(collection string) string {
	return c.baseURL + "/" + url.PathEscape(collection) + "/"
}

func (c *Client) itemURL(collection, id string) string {
	return c.baseURL + "/" + url.PathEscape(collection) + "/" + url.PathEscape(id)
}

func (c *Client) do(ctx context.Context, op, collection, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return record.NewRepoError(op, collection, record.CauseMalformedResponse,
				fmt.Errorf("ошибка сериализации: %w", err))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return record.NewRepoError(op, collection, record.CauseMalformedResponse,
			fmt.Errorf("ошибка создания запроса: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("request failed", "op", op, "url", target, "error", err)
		return record.NewRepoError(op, collection, record.CauseNetworkFailure, err)
	}
	defer resp.Body.Close()

	if cause, failed := CauseForStatus(resp.StatusCode); failed {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Warn("unexpected status", "op", op, "url", target, "status", resp.StatusCode)
		return record.NewRepoError(op, collection, cause,
			fmt.Errorf("сервер вернул статус %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return record.NewRepoError(op, collection, record.CauseMalformedResponse,
			fmt.Errorf("ошибка декодирования ответа: %w", err))
	}
	return nil
}

// CauseForStatus возвращает причину для неуспешного HTTP-статуса.
func CauseForStatus(code int) (record.Cause, bool) {
	switch {
	case code >= 200 && code < 300:
		return "", false
	case code == http.StatusUnauthorized, code == http.StatusForbidden:
		return record.CausePermissionDenied, true
	case code == http.StatusNotFound:
		return record.CauseNotFound, true
	case code >= 500:
		return record.CauseNetworkFailure, true
	}
	return record.CauseMalformedResponse, true
}
