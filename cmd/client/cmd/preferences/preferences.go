// Package preferences - выбор предпочитаемых факультетов.
package preferences

import (
	"context"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"uteqportal/cmd/client/cmd/types"
	"uteqportal/internal/app/client/controller"
	"uteqportal/internal/app/client/view"
	"uteqportal/internal/domain/record"
)

type preferences interface {
	PreferredFaculties() []string
	ToggleFacultyPreference(ctx context.Context, id string) (bool, error)
}

func NewCmd() *cobra.Command {
	prefCmd := &cobra.Command{
		Use:     "preferences",
		Aliases: []string{"prefs"},
		Short:   "Facultades de preferencia",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar facultades marcando las preferidas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return runList(cmd.Context(), app.Controller(record.FacultyKind), app, cmd.OutOrStdout())
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Marcar o desmarcar una facultad",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return runToggle(cmd.Context(), app, cmd.OutOrStdout(), args[0])
		},
	}

	prefCmd.AddCommand(listCmd, toggleCmd)
	return prefCmd
}

func runList(ctx context.Context, faculties *controller.Controller, prefs preferences, out io.Writer) error {
	if err := faculties.Refresh(ctx); err != nil {
		return fmt.Errorf("%s", view.FailureMessage(record.FacultyKind, err))
	}
	items := faculties.Items()
	if len(items) == 0 {
		_, err := fmt.Fprintln(out, "No hay facultades registradas")
		return err
	}

	selected := prefs.PreferredFaculties()
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, it := range items {
		mark := "[ ]"
		if slices.Contains(selected, it.ID) {
			mark = "[x]"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", mark, it.ID, it.Get(record.FieldFacultyName))
	}
	return tw.Flush()
}

func runToggle(ctx context.Context, prefs preferences, out io.Writer, id string) error {
	selected, err := prefs.ToggleFacultyPreference(ctx, id)
	if err != nil {
		return err
	}
	if selected {
		fmt.Fprintf(out, "Facultad %s marcada\n", id)
	} else {
		fmt.Fprintf(out, "Facultad %s desmarcada\n", id)
	}
	return nil
}
