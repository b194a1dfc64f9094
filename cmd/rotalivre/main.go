package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/rotalivre/internal/platform/config"
	"github.com/spf13/cobra"
)

// @title RotaLivre API
// @version 1.0
// @description Weather, places and community reports for motorcyclists in Brazil.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := rootCommand(logger).ExecuteContext(context.Background()); err != nil {
		logger.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func rootCommand(logger *slog.Logger) *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:           "rotalivre",
		Short:         "RotaLivre backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}

	loaded := func() *config.Config { return cfg }
	serveCmd := serveCommand(loaded, logger)

	rootCmd.AddCommand(
		serveCmd,
		migrateCommand(loaded, logger),
		purgeReportsCommand(loaded, logger),
	)
	// serve is the default when no sub-command is given.
	rootCmd.RunE = serveCmd.RunE

	return rootCmd
}
