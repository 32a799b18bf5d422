package multimedia

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"uteqportal/internal/domain/multimedia"
)

type Handler struct {
	service         multimedia.Servicer
	log             *slog.Logger
	readMiddleware  huma.Middlewares
	writeMiddleware huma.Middlewares
}

func NewHandler(service multimedia.Servicer, log *slog.Logger, read, write huma.Middlewares) *Handler {
	return &Handler{
		service:         service,
		log:             log.With("component", "multimedia_handler"),
		readMiddleware:  read,
		writeMiddleware: write,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, h.toHTTP(err)
	}
	return &listOutput{Body: multimediaList{Multimedias: items}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	id, err := h.service.Create(ctx, fromRequest(0, input.Body))
	if err != nil {
		return nil, h.toHTTP(err)
	}
	return &createOutput{Status: http.StatusCreated, Body: multimediaCreated{ID: id}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*output, error) {
	if err := h.service.Update(ctx, fromRequest(input.ID, input.Body)); err != nil {
		return nil, h.toHTTP(err)
	}
	return &output{Body: multimediaStatus{ID: input.ID, Status: "Ok"}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*output, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.toHTTP(err)
	}
	return &output{Body: multimediaStatus{ID: input.ID, Status: "Ok"}}, nil
}

func (h *Handler) toHTTP(err error) error {
	var derr *multimedia.DomainError
	switch {
	case errors.Is(err, multimedia.ErrNotFound):
		return huma.Error404NotFound("Multimedia no encontrado")
	case errors.As(err, &derr):
		return huma.Error422UnprocessableEntity(derr.Error())
	case errors.Is(err, multimedia.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	}
	h.log.Error("multimedia request failed", "error", err)
	return huma.Error500InternalServerError("Internal server error")
}

func fromRequest(id int64, r multimediaRequest) multimedia.Multimedia {
	return multimedia.Multimedia{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		URL:         r.URL,
	}
}
