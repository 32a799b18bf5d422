package feed

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"uteqportal/internal/domain/feed"
)

func (h *Handler) listOp(section string) huma.Operation {
	return huma.Operation{
		OperationID: "feed-" + section,
		Method:      http.MethodGet,
		Path:        "/" + section,
		Summary:     "Лента " + section,
		Tags:        []string{"feed"},
		Middlewares: h.readMiddleware,
	}
}

func (h *Handler) publishOp() huma.Operation {
	return huma.Operation{
		OperationID:   "feed-publish",
		Method:        http.MethodPost,
		Path:          "/feed/{section}",
		Summary:       "Опубликовать элемент ленты",
		Description:   "Добавляет новость (" + feed.SectionNews + ") или журнал (" + feed.SectionMagazines + ").",
		Tags:          []string{"feed"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.writeMiddleware,
	}
}
