package cli

import (
	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-fleet-identity/internal/server/config"
)

// NewMigrateCmd — migrate up|down: схема применяется встроенными миграциями golang-migrate.
func NewMigrateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Миграции схемы БД",
	}
	cmd.AddCommand(newMigrateDirectionCmd(app, config.MigrateUp, "Применить все миграции"))
	cmd.AddCommand(newMigrateDirectionCmd(app, config.MigrateDown, "Откатить все миграции"))
	return cmd
}

func newMigrateDirectionCmd(app *App, direction, short string) *cobra.Command {
	return &cobra.Command{
		Use:   direction,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(app.ConfigPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			db, err := config.OpenDB(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			return config.Migrate(cmd.Context(), db, direction, log)
		},
	}
}
