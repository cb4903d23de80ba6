package hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// HoursRepository интерфейс репозитория часов работы
type HoursRepository interface {
	GetByBusinessAndProfile(ctx context.Context, businessID uuid.UUID, profile *domain.ScheduleProfile) (*domain.BusinessHours, error)
	GetWithHierarchy(ctx context.Context, businessID uuid.UUID, profile domain.ScheduleProfile) (*domain.BusinessHours, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*domain.BusinessHours, error)
	Create(ctx context.Context, h *domain.BusinessHours) (*domain.BusinessHours, error)
	Update(ctx context.Context, id int64, h *domain.BusinessHours) (*domain.BusinessHours, error)
	DeleteByBusinessAndProfile(ctx context.Context, businessID uuid.UUID, profile *domain.ScheduleProfile) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
