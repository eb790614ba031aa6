package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/agent/config"
)

// NewLoginCmd создаёт команду входа: запрос к /connect/token и сохранение
// токена в ~/.fleetctl/credentials.json.
//
// Пример использования:
//
//	fleetctl login --email admin@example.com
//	echo "$PASSWORD" | fleetctl login --email admin@example.com --password-stdin
func NewLoginCmd(app *App) *cobra.Command {
	var (
		email     string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Получить access token и сохранить его локально",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := app.ReadPassword(cmd, "Password: ", fromStdin)
			if err != nil {
				return err
			}

			resp, err := app.Client().Token(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			app.Creds = &config.Credentials{
				Server:      app.Settings.Server,
				Email:       email,
				AccessToken: resp.AccessToken,
				ExpiresAt:   app.Now().Add(time.Duration(resp.ExpiresIn) * time.Second).UTC(),
			}
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "login ok (token valid until %s)\n", app.Creds.ExpiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
