package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-recipe-api/internal/server/service"
)

// NewCreateSuperuserCmd создаёт команду добавления администратора
// (is_staff и is_superuser выставлены). Такой пользователь может войти
// в консоль администратора через POST /admin/login.
//
//	recipectl createsuperuser --email admin@example.com
func NewCreateSuperuserCmd(app *App) *cobra.Command {
	var email string
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "createsuperuser",
		Short: "Создать администратора",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			db, err := OpenDB(cmd.Context(), app.Cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := NewUsers(db, app.Cfg).CreateSuperuser(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "superuser created: %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "superuser email")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}

// NewCreateUserCmd создаёт команду добавления обычного пользователя.
//
//	recipectl createuser --email cook@example.com --name Cook [--staff]
func NewCreateUserCmd(app *App) *cobra.Command {
	var email, name string
	var staff, fromStdin bool

	cmd := &cobra.Command{
		Use:   "createuser",
		Short: "Создать пользователя",
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := ReadPassword(cmd, fromStdin)
			if err != nil {
				return err
			}

			db, err := OpenDB(cmd.Context(), app.Cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			u, err := NewUsers(db, app.Cfg).CreateUser(cmd.Context(), service.NewUser{
				Email:    email,
				Password: password,
				Name:     name,
				IsStaff:  staff,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user created: %s (%s)\n", u.Email, u.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().BoolVar(&staff, "staff", false, "grant admin console access")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	cmd.MarkFlagRequired("email")

	return cmd
}

// readPassword читает пароль из STDIN целиком (для скриптов)
// или интерактивно из терминала со скрытым вводом и подтверждением.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		pw := bytes.TrimRight(b, "\r\n")
		if len(pw) == 0 {
			return "", errors.New("empty password on stdin")
		}
		return string(pw), nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	pw, err := prompt(cmd, fd, "Password: ")
	if err != nil {
		return "", err
	}
	again, err := prompt(cmd, fd, "Password (again): ")
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errors.New("passwords didn't match")
	}
	if pw == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}

func prompt(cmd *cobra.Command, fd int, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}
