package main

import (
	"log/slog"

	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/spf13/cobra"
)

func migrateCommand(cfg func() *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg()
			c.StoreRequired = true
			s, err := openStore(cmd.Context(), &c, logger)
			if err != nil {
				return err
			}
			s.close()
			return nil
		},
	}
}
