package feed

const (
	SectionNews      = "Noticias"
	SectionMagazines = "Revistas"
)

type Tag struct {
	Value string `json:"value"`
}

// Item - элемент ленты в формате, который ждут клиенты
type Item struct {
	ID      int64  `json:"-"`
	Section string `json:"-"`
	Title   string `json:"Titulo"`
	Cover   string `json:"Portada"`
	URL     string `json:"url"`
	Date    string `json:"date"`
	Tags    []Tag  `json:"tags"`
}
