package record

import (
	"github.com/spf13/cobra"

	"uteqportal/cmd/client/cmd/types"
	"uteqportal/cmd/client/cmd/ui"
)

// NewKindCmd создает команду управления типом записей: list, create, edit, delete.
func NewKindCmd(kindName, use, short, long string) *cobra.Command {
	var (
		asJSON    bool
		assumeYes bool
		set       map[string]string
	)

	newScreen := func(cmd *cobra.Command) (*screen, error) {
		app, err := types.App(cmd)
		if err != nil {
			return nil, err
		}
		kind, err := app.KindFor(kindName)
		if err != nil {
			return nil, err
		}
		return &screen{
			ctrl:      app.Controller(kind),
			kind:      kind,
			prompt:    ui.New(cmd),
			out:       cmd.OutOrStdout(),
			assumeYes: assumeYes,
			set:       set,
		}, nil
	}

	root := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Listar registros",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newScreen(cmd)
			if err != nil {
				return err
			}
			return s.list(cmd.Context(), asJSON)
		},
	}
	listCmd.Flags().BoolVar(&asJSON, "json", false, "salida en formato JSON")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un registro",
		Long: `Crea un registro nuevo. Los campos no indicados con --set se piden
de forma interactiva.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newScreen(cmd)
			if err != nil {
				return err
			}
			return s.create(cmd.Context())
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Editar un registro",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScreen(cmd)
			if err != nil {
				return err
			}
			return s.edit(cmd.Context(), args[0])
		},
	}

	deleteCmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Eliminar un registro",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newScreen(cmd)
			if err != nil {
				return err
			}
			return s.remove(cmd.Context(), args[0])
		},
	}

	for _, c := range []*cobra.Command{createCmd, editCmd} {
		c.Flags().StringToStringVar(&set, "set", nil, "valor de campo, campo=valor (repetible)")
	}
	for _, c := range []*cobra.Command{createCmd, editCmd, deleteCmd} {
		c.Flags().BoolVarP(&assumeYes, "yes", "y", false, "no pedir confirmación")
	}

	root.AddCommand(listCmd, createCmd, editCmd, deleteCmd)
	return root
}
