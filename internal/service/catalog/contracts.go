package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CatalogRepository интерфейс репозитория услуг и сотрудников
type CatalogRepository interface {
	ListServices(ctx context.Context, businessID uuid.UUID) ([]*domain.Service, error)
	CreateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	UpdateService(ctx context.Context, svc *domain.Service) (*domain.Service, error)
	DeleteService(ctx context.Context, businessID, serviceID uuid.UUID) error

	ListStaff(ctx context.Context, businessID uuid.UUID) ([]domain.StaffMember, error)
	CreateStaff(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error)
	UpdateStaff(ctx context.Context, m *domain.StaffMember) (*domain.StaffMember, error)
	DeleteStaff(ctx context.Context, businessID, staffID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
