package multimedia

import "uteqportal/internal/domain/multimedia"

type listOutput struct {
	Body multimediaList
}

type multimediaList struct {
	Multimedias []multimedia.Multimedia `json:"multimedias"`
}

type multimediaRequest struct {
	Title       string `json:"titulo" doc:"Título"`
	Description string `json:"descripcion" doc:"Descripción"`
	URL         string `json:"url" required:"false" doc:"Enlace http, https o ftp"`
}

type createInput struct {
	Body multimediaRequest
}

type createOutput struct {
	Status int
	Body   multimediaCreated
}

type multimediaCreated struct {
	ID int64 `json:"ID"`
}

type updateInput struct {
	ID   int64 `path:"id" example:"1" doc:"ID мультимедиа"`
	Body multimediaRequest
}

type deleteInput struct {
	ID int64 `path:"id" example:"1" doc:"ID мультимедиа"`
}

type output struct {
	Body multimediaStatus
}

type multimediaStatus struct {
	ID     int64  `json:"ID"`
	Status string `json:"status"`
}
