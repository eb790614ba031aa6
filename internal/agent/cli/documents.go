package cli

import (
	"errors"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/api"
)

// NewPassportsCmd — паспорта: list, get.
func NewPassportsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passports",
		Short: "Паспорта: list, get",
	}

	var p api.Page
	list := &cobra.Command{
		Use:   "list",
		Short: "Список паспортов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			page, err := app.Client().ListPassports(cmd.Context(), token, p)
			if err != nil {
				return err
			}
			return app.render(cmd, page, func(w io.Writer) {
				row(w, "ID", "SERIES", "NUMBER", "NAME", "EXPIRY", "USER")
				for _, it := range page.Items {
					row(w, it.ID.String(), it.Series, it.Number, it.Lastname+" "+it.Firstname, it.ExpiryDate.String(), it.UserID.String())
				}
				pageFooter(w, page)
			})
		},
	}
	pageFlags(list, &p.Number, &p.Size)

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Паспорт по id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			it, err := app.Client().GetPassport(cmd.Context(), token, args[0])
			if err != nil {
				return err
			}
			return app.render(cmd, it, func(w io.Writer) {
				row(w, "ID", it.ID.String())
				row(w, "SERIES", it.Series)
				row(w, "NUMBER", it.Number)
				row(w, "IDENTIFICATION NUMBER", it.IdentificationNumber)
				row(w, "FIRSTNAME", it.Firstname)
				row(w, "LASTNAME", it.Lastname)
				row(w, "PATRONYMIC", optString(it.Patronymic))
				row(w, "BIRTH DATE", it.BirthDate.String())
				row(w, "ISSUE DATE", it.IssueDate.String())
				row(w, "EXPIRY DATE", it.ExpiryDate.String())
				row(w, "USER", it.UserID.String())
			})
		},
	}

	cmd.AddCommand(list, get)
	return cmd
}

// NewContractsCmd — контракты: list.
func NewContractsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts",
		Short: "Контракты: list",
	}

	var (
		q     api.ContractQuery
		valid string
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "Список контрактов",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if valid != "" {
				b, err := strconv.ParseBool(valid)
				if err != nil {
					return errors.New("--valid must be true or false")
				}
				q.IsValid = &b
			}

			token, err := app.token()
			if err != nil {
				return err
			}
			page, err := app.Client().ListContracts(cmd.Context(), token, q)
			if err != nil {
				return err
			}
			return app.render(cmd, page, func(w io.Writer) {
				row(w, "ID", "NUMBER", "START", "END", "VALID", "USER")
				for _, it := range page.Items {
					row(w, it.ID.String(), it.Number, it.StartDate.String(), it.EndDate.String(), strconv.FormatBool(it.IsValid), it.UserID.String())
				}
				pageFooter(w, page)
			})
		},
	}
	pageFlags(list, &q.Number, &q.Size)
	list.Flags().StringVar(&valid, "valid", "", "only valid (true) or expired (false) contracts")
	list.Flags().StringVar(&q.UserID, "user", "", "owner user id")

	cmd.AddCommand(list)
	return cmd
}

// NewRolesCmd — список ролей.
func NewRolesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Список ролей",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := app.token()
			if err != nil {
				return err
			}
			roles, err := app.Client().ListRoles(cmd.Context(), token)
			if err != nil {
				return err
			}
			return app.render(cmd, roles, func(w io.Writer) {
				row(w, "NAME")
				for _, r := range roles {
					row(w, r.Name)
				}
			})
		},
	}
}
