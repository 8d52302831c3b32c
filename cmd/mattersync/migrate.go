package main

import (
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply mapping database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// opening the storages runs every pending migration
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			a.close()

			a.log.Info().Msg("migrations applied")
			return nil
		},
	}
}
