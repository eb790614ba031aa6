package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/api"
	sm "github.com/IvanChernomyrdin/go-fleet-identity/internal/shared/models"
)

// NewUsersCmd — группа команд для пользователей.
func NewUsersCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Пользователи: list, get, create, delete",
	}
	cmd.AddCommand(newUsersListCmd(app))
	cmd.AddCommand(newUsersGetCmd(app))
	cmd.AddCommand(newUsersCreateCmd(app))
	cmd.AddCommand(newUsersDeleteCmd(app))
	return cmd
}

func newUsersListCmd(app *App) *cobra.Command {
	var q api.UserQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Список пользователей",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			page, err := app.Client().ListUsers(cmd.Context(), token, q)
			if err != nil {
				return err
			}
			return app.render(cmd, page, func(w io.Writer) {
				row(w, "ID", "EMAIL", "ROLE", "PASSPORT", "WORK BOOK", "CONTRACTS")
				for _, u := range page.Items {
					row(w, u.ID.String(), u.Email, u.Role, optID(u.PassportID), optID(u.WorkBookID), strconv.Itoa(len(u.ContractIDs)))
				}
				pageFooter(w, page)
			})
		},
	}
	pageFlags(cmd, &q.Number, &q.Size)
	cmd.Flags().StringVar(&q.Role, "role", "", "filter by role")
	return cmd
}

// get принимает id или email: email узнаём по "@".
func newUsersGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id|email>",
		Short: "Пользователь по id или email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}

			c := app.Client()
			var u sm.UserResponse
			if strings.Contains(args[0], "@") {
				u, err = c.GetUserByEmail(cmd.Context(), token, args[0])
			} else {
				u, err = c.GetUser(cmd.Context(), token, args[0])
			}
			if err != nil {
				return err
			}
			return app.render(cmd, u, func(w io.Writer) {
				row(w, "ID", u.ID.String())
				row(w, "EMAIL", u.Email)
				row(w, "ROLE", u.Role)
				row(w, "PASSPORT", optID(u.PassportID))
				row(w, "WORK BOOK", optID(u.WorkBookID))
				for _, id := range u.ContractIDs {
					row(w, "CONTRACT", id.String())
				}
			})
		},
	}
}

func newUsersCreateCmd(app *App) *cobra.Command {
	var (
		email, role string
		fromStdin   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			password, err := app.ReadPassword(cmd, "New user password: ", fromStdin)
			if err != nil {
				return err
			}

			u, err := app.Client().CreateUser(cmd.Context(), token, sm.UserRequest{
				Email:    email,
				Password: &password,
				Role:     role,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user created: %s\n", u.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&role, "role", "", "role name (Administrator, FleetManager, HrManager, Driver, ...)")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}

func newUsersDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Удалить пользователя",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			if err := app.Client().DeleteUser(cmd.Context(), token, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "user deleted")
			return nil
		},
	}
}
