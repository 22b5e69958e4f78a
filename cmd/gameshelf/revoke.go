package main

import (
	"errors"
	"fmt"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/dom/gameshelf/internal/service"
	"github.com/spf13/cobra"
)

// NewRevokeSessionsCmd creates the revoke-sessions subcommand.
func NewRevokeSessionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-sessions USERNAME",
		Short: "Log a user out of every browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer d.close()

			services, err := service.NewServices(d.repos, d.cfg, d.logger)
			if err != nil {
				return err
			}

			username := args[0]
			if err := services.Auth.RevokeSessions(cmd.Context(), username); err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return fmt.Errorf("no user named %q", username)
				}
				return err
			}

			cmd.Printf("Revoked all sessions of %s\n", username)
			return nil
		},
	}
}
