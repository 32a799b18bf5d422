package multimedia

import "time"

// Multimedia - элемент каталога мультимедиа (видео, фото, документ по ссылке)
type Multimedia struct {
	ID          int64     `json:"ID"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"-"`
}
