package main

import (
	"log/slog"

	"github.com/SscSPs/rotalivre/internal/core/services"
	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/SscSPs/rotalivre/internal/platform/fallback"
	"github.com/spf13/cobra"
)

func purgeReportsCommand(cfg func() *config.Config, logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "purge-reports",
		Short: "Delete weather reports expired longer than REPORT_RETENTION",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg()
			c.StoreRequired = true
			s, err := openStore(cmd.Context(), &c, logger)
			if err != nil {
				return err
			}
			defer s.close()

			reports := services.NewReportService(s.repos.ReportRepo, fallback.NewPolicy(nil),
				services.WithReportRetention(c.ReportRetention))
			purged, err := reports.PurgeExpiredReports(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("Expired reports purged", slog.Int64("deleted", purged), slog.Duration("retention", c.ReportRetention))
			return nil
		},
	}
}
