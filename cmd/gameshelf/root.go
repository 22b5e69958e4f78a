package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the gameshelf CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gameshelf",
		Short: "gameshelf - keep track of the games you play",
		Long: `gameshelf is a small web application with user registration,
cookie sessions and a per-user list of games. Configuration is read from
the environment and an optional .env file.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSweepSessionsCmd())
	cmd.AddCommand(NewRevokeSessionsCmd())

	return cmd
}
