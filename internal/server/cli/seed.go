package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/seed"
)

// NewSeedCmd — создать администратора admin@example.com с документами, если его нет.
func NewSeedCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Создать администратора и документы для разработки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context(), app.ConfigPath)
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := seed.Run(cmd.Context(), rt.svc, rt.log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed ok")
			return nil
		},
	}
}
