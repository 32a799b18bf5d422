package feed

import "uteqportal/internal/domain/feed"

type listOutput struct {
	Body []feed.Item
}

type publishInput struct {
	Section string `path:"section" enum:"Noticias,Revistas" doc:"Лента"`
	Body    publishRequest
}

type publishRequest struct {
	Title string   `json:"Titulo" doc:"Заголовок"`
	Cover string   `json:"Portada,omitempty" doc:"Обложка (URL)"`
	URL   string   `json:"url" doc:"Ссылка на материал"`
	Date  string   `json:"date,omitempty" doc:"Дата публикации"`
	Tags  []string `json:"tags,omitempty" doc:"Теги"`
}

type publishOutput struct {
	Status int
	Body   publishResponse
}

type publishResponse struct {
	ID int64 `json:"ID"`
}
