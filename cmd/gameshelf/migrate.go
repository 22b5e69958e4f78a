package main

import (
	"fmt"

	"github.com/dom/gameshelf/internal/repository/postgres"
	"github.com/spf13/cobra"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			cmd.Println("Running migrations...")
			if err := postgres.Migrate(d.db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			cmd.Println("Migrations completed successfully")
			return nil
		},
	}
}
