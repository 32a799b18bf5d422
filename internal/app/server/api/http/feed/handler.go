package feed

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/feed"
)

type Handler struct {
	service         feed.Servicer
	log             *slog.Logger
	readMiddleware  huma.Middlewares
	writeMiddleware huma.Middlewares
}

func NewHandler(service feed.Servicer, log *slog.Logger, read, write huma.Middlewares) *Handler {
	return &Handler{
		service:         service,
		log:             log.With("component", "feed_handler"),
		readMiddleware:  read,
		writeMiddleware: write,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(feed.SectionNews), h.lister(feed.SectionNews))
	huma.Register(api, h.listOp(feed.SectionMagazines), h.lister(feed.SectionMagazines))
	huma.Register(api, h.publishOp(), h.publish)
}

func (h *Handler) lister(section string) func(context.Context, *struct{}) (*listOutput, error) {
	return func(ctx context.Context, _ *struct{}) (*listOutput, error) {
		items, err := h.service.List(ctx, section)
		if err != nil {
			return nil, h.toHTTP(err)
		}
		return &listOutput{Body: items}, nil
	}
}

func (h *Handler) publish(ctx context.Context, input *publishInput) (*publishOutput, error) {
	tags := make([]feed.Tag, len(input.Body.Tags))
	for i, v := range input.Body.Tags {
		tags[i] = feed.Tag{Value: v}
	}

	id, err := h.service.Publish(ctx, feed.Item{
		Section: input.Section,
		Title:   input.Body.Title,
		Cover:   input.Body.Cover,
		URL:     input.Body.URL,
		Date:    input.Body.Date,
		Tags:    tags,
	})
	if err != nil {
		return nil, h.toHTTP(err)
	}
	return &publishOutput{Status: http.StatusCreated, Body: publishResponse{ID: id}}, nil
}

func (h *Handler) toHTTP(err error) error {
	switch {
	case errors.Is(err, feed.ErrUnknownSection):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, feed.ErrInvalidItem):
		return huma.Error422UnprocessableEntity(err.Error())
	}
	h.log.Error("feed request failed", "error", err)
	return huma.Error500InternalServerError("Internal server error")
}
