package commands

import (
	"github.com/spf13/cobra"

	"github.com/yukikurage/kiroku/internal/database"
)

// NewInitDBCommand creates the init-db subcommand.
func NewInitDBCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create or update the database tables and indexes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			if err := database.Migrate(a.db); err != nil {
				return err
			}

			a.logger.Info(cmd.Context(), "database initialized", "driver", a.cfg.DBDriver)
			return nil
		},
	}
}
