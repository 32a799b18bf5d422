package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"uteqportal/internal/app/client/feed"
	"uteqportal/internal/domain/record"
)

// RenderFeed печатает карточки ленты: заголовок, категория, дата, ссылка.
func RenderFeed(w io.Writer, title string, items []feed.Item) error {
	if _, err := fmt.Fprintf(w, "== %s ==\n", title); err != nil {
		return err
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Sin publicaciones")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			Truncate(it.Title, SummaryLimit), it.Category(), it.Date, it.URL)
	}
	return tw.Flush()
}

// RenderHome печатает главный экран: первые карточки каждой секции.
func RenderHome(w io.Writer, home feed.Home) error {
	if err := RenderCards(w, record.ContentKind, feed.Preview(home.Contents, feed.PreviewLimit)); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := RenderFeed(w, feed.SectionMagazines, feed.Preview(home.Magazines, feed.PreviewLimit)); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return RenderFeed(w, feed.SectionNews, feed.Preview(home.News, feed.PreviewLimit))
}

// RenderMessages печатает сообщения чата в порядке списка (новые сверху).
func RenderMessages(w io.Writer, messages []record.Message) error {
	for _, m := range messages {
		if _, err := fmt.Fprintf(w, "[%s] %s\n", m.SentAt.Local().Format("15:04"), m.Text); err != nil {
			return err
		}
	}
	return nil
}
