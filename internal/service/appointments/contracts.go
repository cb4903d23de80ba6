package appointments

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, businessID, id uuid.UUID) (*domain.Appointment, error)
	ListForDay(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]domain.DayAppointment, error)
	ListAgenda(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]*domain.Appointment, error)
	ListUpcoming(ctx context.Context, businessID uuid.UUID, from time.Time, limit int) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, businessID, id uuid.UUID, status domain.AppointmentStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
