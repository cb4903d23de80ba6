package migrations

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
)

// ErrMigrate возвращается при ошибке применения схемы
var ErrMigrate = errors.New("migrations: failed to apply schema")

//go:embed schema.sql
var schemaSQL string

// Schema возвращает SQL схемы БД
func Schema() string {
	return schemaSQL
}

// Migrate применяет схему; все операторы идемпотентны (IF NOT EXISTS)
// Пересечения записей в БД не ограничиваются, проверка выполняется в приложении.
func Migrate(ctx context.Context, db dbmetrics.DBExecutor) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("%w: %v", ErrMigrate, err)
	}
	return nil
}
