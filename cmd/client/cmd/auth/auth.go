// Package auth - вход, регистрация и гостевая сессия портала.
package auth

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"uteqportal/cmd/client/cmd/types"
	"uteqportal/cmd/client/cmd/ui"
	"uteqportal/internal/app/client"
	"uteqportal/internal/app/client/view"
	"uteqportal/internal/domain/record"
	"uteqportal/internal/domain/validator"
)

type sessions interface {
	Login(ctx context.Context, email, password string) (record.User, error)
	LoginAsGuest() error
	Register(ctx context.Context, userType string, draft record.Fields) (record.User, error)
	Logout() error
	CurrentUser() (string, error)
}

func NewCmd() *cobra.Command {
	var (
		email    string
		guest    bool
		userType string
	)

	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "Sesión del portal",
	}

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión con el correo institucional",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			if guest {
				return runGuest(app, cmd.OutOrStdout())
			}
			return runLogin(cmd.Context(), app, ui.New(cmd), cmd.OutOrStdout(), email)
		},
	}
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "correo institucional")
	loginCmd.Flags().BoolVar(&guest, "guest", false, "iniciar como invitado")
	loginCmd.MarkFlagsMutuallyExclusive("email", "guest")

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Registrar una cuenta",
		Long: `Registra una cuenta institucional (@uteq.edu.ec) o pública
(@gmail.com, @hotmail.com, @yahoo.com, @outlook.com, @outlook.es).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return runRegister(cmd.Context(), app, ui.New(cmd), cmd.OutOrStdout(), userType)
		},
	}
	registerCmd.Flags().StringVarP(&userType, "type", "t", record.UserTypeInstitutional, "tipo de cuenta: institucional o publico")

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return runLogout(app, cmd.OutOrStdout())
		},
	}

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar el usuario de la sesión",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := types.App(cmd)
			if err != nil {
				return err
			}
			return runWhoami(app, cmd.OutOrStdout())
		},
	}

	authCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)
	return authCmd
}

func runLogin(ctx context.Context, s sessions, p *ui.Prompter, out io.Writer, email string) error {
	var err error
	if email == "" {
		if email, err = p.Line("Correo", ""); err != nil {
			return err
		}
	}
	password, err := p.Secret("Contraseña")
	if err != nil {
		return err
	}

	user, err := s.Login(ctx, email, password)
	switch {
	case errors.Is(err, client.ErrNotInstitutional):
		return fmt.Errorf("ingrese un correo institucional válido")
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Bienvenido, %s %s\n", user.FirstName, user.LastName)
	return nil
}

func runGuest(s sessions, out io.Writer) error {
	if err := s.LoginAsGuest(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Sesión iniciada como invitado")
	return nil
}

func runRegister(ctx context.Context, s sessions, p *ui.Prompter, out io.Writer, userType string) error {
	kind, err := record.UserKindForType(userType, validator.DefaultInstitutionalDomain)
	if err != nil {
		return err
	}

	draft := record.Fields{}
	for _, f := range kind.Fields {
		var v string
		if f.Secret {
			v, err = p.NewSecret(f.Label)
		} else {
			v, err = p.Line(f.Label, "")
		}
		if err != nil {
			return err
		}
		draft[f.Key] = v
	}

	user, err := s.Register(ctx, userType, draft)
	if err != nil {
		return fmt.Errorf("%s", view.FailureMessage(kind, err))
	}
	fmt.Fprintf(out, "Cuenta %s registrada: %s\n", userType, user.Email)
	return nil
}

func runLogout(s sessions, out io.Writer) error {
	if err := s.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Sesión cerrada")
	return nil
}

func runWhoami(s sessions, out io.Writer) error {
	email, err := s.CurrentUser()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, email)
	return nil
}
