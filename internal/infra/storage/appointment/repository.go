package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую запись
// Проверка пересечений выполняется до вызова; в БД ограничения на пересечения нет.
func (r *Repository) Create(ctx context.Context, apt domain.NewAppointment) (*domain.Appointment, error) {
	query, args, err := insertQuery(apt).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := &domain.Appointment{
		BusinessID: apt.BusinessID,
		ClientID:   apt.ClientID,
		ServiceID:  apt.ServiceID,
		Resource:   apt.Resource,
		StartTime:  apt.StartTime,
		Status:     apt.Status,
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	created.CreatedAt = createdAt.Time

	return created, nil
}

// GetByID получает запись бизнеса по ID
func (r *Repository) GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Appointment, error) {
	query, args, err := getByIDQuery(businessID, id).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	apt, err := scanAppointment(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// ListForDay получает записи, занимающие время, с началом в [dayStart, dayEnd)
// Длительность подтягивается из услуги; для удаленной услуги остается 0 и
// подставляется значением по умолчанию при построении индекса.
func (r *Repository) ListForDay(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]domain.DayAppointment, error) {
	query, args, err := listForDayQuery(businessID, dayStart, dayEnd).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]domain.DayAppointment, 0)
	for rows.Next() {
		var (
			apt      domain.DayAppointment
			staffID  uuid.NullUUID
			duration sql.NullInt32
		)
		if err := rows.Scan(&apt.ID, &apt.ServiceID, &staffID, &apt.StartTime, &apt.Status, &duration); err != nil {
			return nil, fmt.Errorf("%w: ListForDay - scan row: %v", ErrScanRow, err)
		}
		apt.Resource = resourceOf(staffID)
		apt.DurationMinutes = int(duration.Int32)
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForDay - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// ListAgenda получает все записи дня (включая отмененные) с именами клиентов и услуг
func (r *Repository) ListAgenda(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]*domain.Appointment, error) {
	query, args, err := listAgendaQuery(businessID, dayStart, dayEnd).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAgenda - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAgenda - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAgenda - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAgenda - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// ListUpcoming получает ближайшие записи бизнеса с началом не раньше from
func (r *Repository) ListUpcoming(ctx context.Context, businessID uuid.UUID, from time.Time, limit int) ([]*domain.Appointment, error) {
	query, args, err := listUpcomingQuery(businessID, from, limit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		apt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListUpcoming - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListUpcoming - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, businessID, id uuid.UUID, status domain.AppointmentStatus) error {
	query, args, err := updateStatusQuery(businessID, id, status).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		apt       domain.Appointment
		staffID   uuid.NullUUID
		duration  sql.NullInt32
		createdAt sql.NullTime
	)

	err := row.Scan(
		&apt.ID,
		&apt.BusinessID,
		&apt.ClientID,
		&apt.ServiceID,
		&staffID,
		&apt.StartTime,
		&apt.Status,
		&createdAt,
		&duration,
		&apt.ServiceName,
		&apt.ClientName,
		&apt.ClientPhone,
	)
	if err != nil {
		return nil, err
	}

	svc := domain.Service{DurationMinutes: int(duration.Int32)}
	apt.DurationMinutes = svc.EffectiveDuration()
	apt.Resource = resourceOf(staffID)
	apt.CreatedAt = createdAt.Time

	return &apt, nil
}

func resourceOf(staffID uuid.NullUUID) domain.ResourceRef {
	if !staffID.Valid {
		return domain.OwnerResource
	}
	return domain.StaffResource(staffID.UUID)
}
