package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CatalogRepository интерфейс справочника услуг и сотрудников
type CatalogRepository interface {
	GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*domain.Service, error)
	ListStaff(ctx context.Context, businessID uuid.UUID) ([]domain.StaffMember, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	FindByPhone(ctx context.Context, businessID uuid.UUID, phone string) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListForDay(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]domain.DayAppointment, error)
	Create(ctx context.Context, apt domain.NewAppointment) (*domain.Appointment, error)
}

// Metrics интерфейс учета исходов попыток записи
type Metrics interface {
	ObserveBookingAttempt(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
