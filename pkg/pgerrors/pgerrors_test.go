package pgerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"pgx", &pgconn.PgError{Code: "23503"}, CodeForeignKeyViolation},
		{"lib/pq", &pq.Error{Code: "23505"}, "23505"},
		{"wrapped", fmt.Errorf("delete: %w", &pq.Error{Code: "23503"}), CodeForeignKeyViolation},
		{"other", errors.New("connection refused"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
}
