// Package chat - окно чата в терминале.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"uteqportal/cmd/client/cmd/types"
	"uteqportal/cmd/client/cmd/ui"
	"uteqportal/internal/app/client/chat"
	"uteqportal/internal/app/client/view"
	"uteqportal/internal/domain/record"
)

const quitCommand = "/salir"

type box interface {
	Send(ctx context.Context, text string) (record.Message, error)
	Messages() []record.Message
}

func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Abrir el chat",
		Long:  "Escriba un mensaje y presione Enter. " + quitCommand + " para salir.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			b := app.Chat()
			defer b.Close()
			return run(cmd.Context(), b, ui.New(cmd), cmd.OutOrStdout())
		},
	}
}

func run(ctx context.Context, b box, p *ui.Prompter, out io.Writer) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		text, err := p.Line("Mensaje", "")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) == quitCommand {
			return nil
		}

		if _, err := b.Send(ctx, text); err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				continue
			}
			fmt.Fprintln(out, "Error:", view.FailureMessage(record.MessageKind, err))
			continue
		}

		fmt.Fprintln(out)
		if err := view.RenderMessages(out, b.Messages()); err != nil {
			return err
		}
	}
}
