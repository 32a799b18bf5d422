// Package feed - главная страница, новости и журналы.
package feed

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"uteqportal/cmd/client/cmd/types"
	"uteqportal/internal/app/client/feed"
	"uteqportal/internal/app/client/view"
)

// NewCmds возвращает команды home, noticias и revistas.
func NewCmds() []*cobra.Command {
	homeCmd := &cobra.Command{
		Use:   "home",
		Short: "Página de inicio: contenidos, revistas y noticias",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			home, err := app.Home(cmd.Context())
			if err != nil {
				return err
			}
			return view.RenderHome(cmd.OutOrStdout(), home)
		},
	}

	return []*cobra.Command{
		homeCmd,
		sectionCmd("noticias", feed.SectionNews, "Listar noticias", (*feed.Reader).News),
		sectionCmd("revistas", feed.SectionMagazines, "Listar revistas", (*feed.Reader).Magazines),
	}
}

type loader func(*feed.Reader, context.Context) ([]feed.Item, error)

func sectionCmd(use, title, short string, load loader) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return runSection(cmd.Context(), cmd.OutOrStdout(), title, func(ctx context.Context) ([]feed.Item, error) {
				return load(app.Feed(), ctx)
			})
		},
	}
}

func runSection(ctx context.Context, out io.Writer, title string, load func(context.Context) ([]feed.Item, error)) error {
	items, err := load(ctx)
	if err != nil {
		return err
	}
	return view.RenderFeed(out, title, items)
}
