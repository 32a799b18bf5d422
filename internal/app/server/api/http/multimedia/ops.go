package multimedia

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "multimedia-list",
		Method:      http.MethodGet,
		Path:        "/multimedia/",
		Summary:     "Список мультимедиа",
		Tags:        []string{"multimedia"},
		Middlewares: h.readMiddleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "multimedia-create",
		Method:        http.MethodPost,
		Path:          "/multimedia/",
		Summary:       "Добавить мультимедиа",
		Tags:          []string{"multimedia"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.writeMiddleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "multimedia-update",
		Method:      http.MethodPut,
		Path:        "/multimedia/{id}",
		Summary:     "Обновить мультимедиа",
		Tags:        []string{"multimedia"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.writeMiddleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "multimedia-delete",
		Method:      http.MethodDelete,
		Path:        "/multimedia/{id}",
		Summary:     "Удалить мультимедиа",
		Tags:        []string{"multimedia"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.writeMiddleware,
	}
}
