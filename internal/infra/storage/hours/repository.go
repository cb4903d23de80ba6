package hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

const table = "business_hours"

var columns = []string{
	"id",
	"profile_id",
	"schedule_profile",
	"opening_hour",
	"closing_hour",
	"step_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с часами работы бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория часов работы
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// profileFilter условие по schedule_profile (NULL или конкретное значение)
func profileFilter(profile *domain.ScheduleProfile) squirrel.Eq {
	if profile == nil {
		return squirrel.Eq{"schedule_profile": nil}
	}
	return squirrel.Eq{"schedule_profile": string(*profile)}
}

func getByProfileQuery(businessID uuid.UUID, profile *domain.ScheduleProfile) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"profile_id": businessID}).
		Where(profileFilter(profile))
}

func listQuery(businessID uuid.UUID) squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"profile_id": businessID}).
		OrderBy("schedule_profile ASC NULLS FIRST") // Общая настройка первой
}

func insertQuery(h *domain.BusinessHours) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns("profile_id", "schedule_profile", "opening_hour", "closing_hour", "step_minutes").
		Values(h.BusinessID, profileValue(h.Profile), h.OpeningHour, h.ClosingHour, h.StepMinutes).
		Suffix("RETURNING id, created_at, updated_at")
}

func updateQuery(id int64, h *domain.BusinessHours) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("opening_hour", h.OpeningHour).
		Set("closing_hour", h.ClosingHour).
		Set("step_minutes", h.StepMinutes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "profile_id": h.BusinessID}).
		Suffix("RETURNING created_at, updated_at")
}

func deleteQuery(businessID uuid.UUID, profile *domain.ScheduleProfile) squirrel.DeleteBuilder {
	return psqlbuilder.Delete(table).
		Where(squirrel.Eq{"profile_id": businessID}).
		Where(profileFilter(profile))
}

func profileValue(profile *domain.ScheduleProfile) *string {
	if profile == nil {
		return nil
	}
	return ptr.Ptr(string(*profile))
}

// GetByBusinessAndProfile получает настройку конкретного уровня
// profile == nil означает общую настройку бизнеса
func (r *Repository) GetByBusinessAndProfile(ctx context.Context, businessID uuid.UUID, profile *domain.ScheduleProfile) (*domain.BusinessHours, error) {
	query, args, err := getByProfileQuery(businessID, profile).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndProfile - build select query: %v", ErrBuildQuery, err)
	}

	h, err := scanHours(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBusinessAndProfile - scan hours: %v", ErrScanRow, err)
	}

	return h, nil
}

// GetWithHierarchy получает настройку с учетом приоритетов:
// 1. Настройка для конкретной точки входа (businessID, profile)
// 2. Общая настройка бизнеса (businessID, NULL)
//
// Если настройка не найдена ни на одном уровне, возвращает ErrHoursNotFound
func (r *Repository) GetWithHierarchy(ctx context.Context, businessID uuid.UUID, profile domain.ScheduleProfile) (*domain.BusinessHours, error) {
	// 1. Настройка конкретной точки входа
	h, err := r.GetByBusinessAndProfile(ctx, businessID, ptr.Ptr(profile))
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, ErrHoursNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 1 (profile): %v", ErrExecQuery, err)
	}

	// 2. Общая настройка бизнеса
	h, err = r.GetByBusinessAndProfile(ctx, businessID, nil)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, ErrHoursNotFound) {
		return nil, fmt.Errorf("%w: GetWithHierarchy - level 2 (business): %v", ErrExecQuery, err)
	}

	return nil, ErrHoursNotFound
}

// ListByBusiness получает все настройки бизнеса (общую и по точкам входа)
func (r *Repository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*domain.BusinessHours, error) {
	query, args, err := listQuery(businessID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		h, err := scanHours(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByBusiness - scan row: %v", ErrScanRow, err)
		}
		result = append(result, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Create создает настройку часов работы
func (r *Repository) Create(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error) {
	query, args, err := insertQuery(h).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// Update обновляет настройку часов работы
func (r *Repository) Update(ctx context.Context, id int64, h *domain.BusinessHours) (*domain.BusinessHours, error) {
	query, args, err := updateQuery(id, h).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	h.ID = id
	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return h, nil
}

// DeleteByBusinessAndProfile удаляет настройку конкретного уровня
func (r *Repository) DeleteByBusinessAndProfile(ctx context.Context, businessID uuid.UUID, profile *domain.ScheduleProfile) error {
	query, args, err := deleteQuery(businessID, profile).ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBusinessAndProfile - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByBusinessAndProfile - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByBusinessAndProfile - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoursNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHours(row rowScanner) (*domain.BusinessHours, error) {
	var h domain.BusinessHours
	var profile sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&h.ID,
		&h.BusinessID,
		&profile,
		&h.OpeningHour,
		&h.ClosingHour,
		&h.StepMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if profile.Valid {
		h.Profile = ptr.Ptr(domain.ScheduleProfile(profile.String))
	}
	h.CreatedAt = createdAt.Time
	h.UpdatedAt = updatedAt.Time

	return &h, nil
}
