package pgerrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// CodeForeignKeyViolation SQLSTATE нарушения внешнего ключа
const CodeForeignKeyViolation = "23503"

// Code возвращает SQLSTATE ошибки драйвера (lib/pq или pgx), либо пустую строку
func Code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// IsForeignKeyViolation строка все еще используется другой таблицей
func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

