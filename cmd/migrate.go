package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if printOnly {
				_, err := fmt.Fprint(cmd.OutOrStdout(), migrations.Schema())
				return err
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Close()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			db, err := openDB(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := migrations.Migrate(ctx, db); err != nil {
				return err
			}

			log.Info("Schema applied to database %s", cfg.Database.DBName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printOnly, "print", false, "print the schema instead of applying it")
	return cmd
}
