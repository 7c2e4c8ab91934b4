package main

import (
	"fmt"

	"go-jobboard-api/config"
	"go-jobboard-api/internal/domain"
	"go-jobboard-api/pkg/security"

	"github.com/spf13/cobra"
)

// hashCommand prints a bcrypt hash for seeding users by hand.
func hashCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "hash <password>",
		Short: "Prints the bcrypt hash of a password using BCRYPT_COST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := domain.NewPasswordHash(security.NewBcryptHasher(cfg.BcryptCost), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash.Hash())
			return nil
		},
	}
}
