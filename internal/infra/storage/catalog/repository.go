package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/pgerrors"
)

// Repository справочник услуг и сотрудников бизнеса
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория справочников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetService получает услугу бизнеса по ID
// Услуга без длительности возвращается с DurationMinutes = 0, см. Service.EffectiveDuration
func (r *Repository) GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*domain.Service, error) {
	query, args, err := getServiceQuery(businessID, serviceID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - build select query: %v", ErrBuildQuery, err)
	}

	svc, err := scanService(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetService - scan service: %v", ErrScanRow, err)
	}

	return svc, nil
}

// ListServices получает услуги бизнеса, упорядоченные по названию
func (r *Repository) ListServices(ctx context.Context, businessID uuid.UUID) ([]*domain.Service, error) {
	query, args, err := listServicesQuery(businessID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		svc, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan row: %v", ErrScanRow, err)
		}
		services = append(services, svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// CreateService создает услугу и заполняет ее ID
func (r *Repository) CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	query, args, err := insertServiceQuery(svc).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&svc.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	return svc, nil
}

// UpdateService обновляет название, цену и длительность услуги
func (r *Repository) UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error) {
	query, args, err := updateServiceQuery(svc).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateService - execute update: %v", ErrExecQuery, err)
	}

	return svc, nil
}

// DeleteService удаляет услугу
// Услугу, на которую есть записи, удалить нельзя (ErrInUse)
func (r *Repository) DeleteService(ctx context.Context, businessID, serviceID uuid.UUID) error {
	query, args, err := deleteServiceQuery(businessID, serviceID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execDelete(ctx, "DeleteService", query, args, ErrServiceNotFound)
}

// ListStaff получает сотрудников бизнеса, упорядоченных по имени
func (r *Repository) ListStaff(ctx context.Context, businessID uuid.UUID) ([]domain.StaffMember, error) {
	query, args, err := listStaffQuery(businessID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	staff := make([]domain.StaffMember, 0)
	for rows.Next() {
		var m domain.StaffMember
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name, &m.Role, &m.CommissionRate); err != nil {
			return nil, fmt.Errorf("%w: ListStaff - scan row: %v", ErrScanRow, err)
		}
		staff = append(staff, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListStaff - rows error: %v", ErrScanRow, err)
	}

	return staff, nil
}

// CreateStaff создает сотрудника и заполняет его ID
func (r *Repository) CreateStaff(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error) {
	query, args, err := insertStaffQuery(m).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStaff - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&m.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateStaff - execute insert: %v", ErrExecQuery, err)
	}

	return m, nil
}

// UpdateStaff обновляет имя, должность и процент сотрудника
func (r *Repository) UpdateStaff(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error) {
	query, args, err := updateStaffQuery(m).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStaff - build update query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStaff - execute update: %v", ErrExecQuery, err)
	}

	return m, nil
}

// DeleteStaff удаляет сотрудника
// Сотрудника, на которого есть записи, удалить нельзя (ErrInUse)
func (r *Repository) DeleteStaff(ctx context.Context, businessID, staffID uuid.UUID) error {
	query, args, err := deleteStaffQuery(businessID, staffID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteStaff - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execDelete(ctx, "DeleteStaff", query, args, ErrStaffNotFound)
}

func (r *Repository) execDelete(ctx context.Context, method, query string, args []interface{}, notFound error) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var svc domain.Service
	var price sql.NullInt64
	var duration sql.NullInt32

	if err := row.Scan(&svc.ID, &svc.BusinessID, &svc.Name, &price, &duration); err != nil {
		return nil, err
	}

	svc.PriceMinor = price.Int64
	svc.DurationMinutes = int(duration.Int32)

	return &svc, nil
}
