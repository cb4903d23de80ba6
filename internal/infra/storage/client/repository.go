package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const table = "clients"

// Repository репозиторий клиентов бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func findByPhoneQuery(businessID uuid.UUID, phone string) squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "profile_id", "name", "phone", "created_at").
		From(table).
		Where(squirrel.Eq{"profile_id": businessID, "phone": phone}).
		OrderBy("created_at ASC").
		Limit(1)
}

func insertQuery(c *domain.Client) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns("profile_id", "name", "phone").
		Values(c.BusinessID, c.Name, c.Phone).
		Suffix("RETURNING id, created_at")
}

// FindByPhone ищет клиента по нормализованному номеру телефона
// При нескольких клиентах с одним номером возвращается самый ранний
func (r *Repository) FindByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Client, error) {
	query, args, err := findByPhoneQuery(businessID, phone).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Client
	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.BusinessID,
		&c.Name,
		&c.Phone,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByPhone - scan client: %v", ErrScanRow, err)
	}
	c.CreatedAt = createdAt.Time

	return &c, nil
}

// Create создает клиента; номер телефона должен быть уже нормализован
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	query, args, err := insertQuery(c).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	c.CreatedAt = createdAt.Time

	return c, nil
}
