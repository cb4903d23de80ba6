package get_available_slots

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

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListForDay получает записи, занимающие время, с началом в [dayStart, dayEnd)
	ListForDay(ctx context.Context, businessID uuid.UUID, dayStart, dayEnd time.Time) ([]domain.DayAppointment, error)
}

// HoursRepository интерфейс репозитория часов работы
type HoursRepository interface {
	// GetWithHierarchy получает настройку с учетом иерархии приоритетов
	GetWithHierarchy(ctx context.Context, businessID uuid.UUID, profile domain.ScheduleProfile) (*domain.BusinessHours, error)
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
