package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/sjrent/sjrent_backend/internal/core/services"
	"github.com/sjrent/sjrent_backend/internal/middleware"
	"github.com/sjrent/sjrent_backend/internal/platform/config"
	"github.com/sjrent/sjrent_backend/internal/repositories/database/pgsql"
	"github.com/sjrent/sjrent_backend/pkg/database"
)

func newSweepCommand(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Mark every active rental past its planned end date as overdue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()
			ctx = middleware.ContextWithLogger(ctx, logger)

			dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer dbPool.Close()

			container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool))

			overdue, marked, err := container.Rental.SweepOverdueRentals(ctx, services.SweeperUserID)
			if err != nil {
				return fmt.Errorf("sweeping overdue rentals: %w", err)
			}

			logger.Info("Overdue sweep finished", slog.Int64("marked_overdue", marked), slog.Int("total_overdue", len(overdue)))
			return nil
		},
	}
}
