package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	BusinessID uuid.UUID                 // ID бизнеса
	ServiceID  uuid.UUID                 // ID услуги
	Date       time.Time                 // Дата (без времени)
	Resource   domain.ResourcePreference // owner, any или конкретный сотрудник
	Profile    domain.ScheduleProfile    // Точка входа: widget или quick_add
}

// Response модель ответа со всеми слотами дня
type Response struct {
	Date            time.Time
	BusinessID      uuid.UUID
	ServiceID       uuid.UUID
	Profile         domain.ScheduleProfile
	DurationMinutes int // Длительность услуги, по которой проверялась занятость
	StepMinutes     int
	Slots           []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString    // Время начала (например, "10:00")
	Available bool                // Можно ли записаться на это время
	Resource  *domain.ResourceRef // Ресурс, который будет назначен; nil для недоступного слота
}

// ProfileDefaults часы работы по умолчанию для точек входа (из config.toml)
type ProfileDefaults map[domain.ScheduleProfile]domain.BusinessHours
