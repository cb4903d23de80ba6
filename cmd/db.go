package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/config"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

// openDB открывает пул соединений драйвером из конфигурации ("postgres" - lib/pq, "pgx" - pgx stdlib)
func openDB(ctx context.Context, cfg config.DatabaseConfig, log *logger.Logger) (*sql.DB, error) {
	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("Successfully connected to database (driver=%s, host=%s, port=%d, db=%s)",
		cfg.Driver, cfg.Host, cfg.Port, cfg.DBName)
	return db, nil
}
