package main

import (
	"github.com/dom/gameshelf/internal/session"
	"github.com/spf13/cobra"
)

// NewSweepSessionsCmd creates the sweep-sessions subcommand.
func NewSweepSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep-sessions",
		Short: "Delete expired sessions once and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			n, err := session.NewSweeper(d.repos.Session, 0, d.logger).SweepOnce(cmd.Context())
			if err != nil {
				return err
			}

			cmd.Printf("Removed %d expired sessions\n", n)
			return nil
		},
	}
}
