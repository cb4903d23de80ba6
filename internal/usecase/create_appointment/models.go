package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BusinessID    uuid.UUID                 // ID бизнеса (из пути запроса)
	ServiceID     uuid.UUID                 // ID услуги
	Date          time.Time                 // Дата записи (без времени)
	StartTime     types.TimeString          // Время начала (например, "14:00"), локальное время бизнеса
	Resource      domain.ResourcePreference // owner, any или конкретный сотрудник
	CustomerName  string                    // Имя клиента (используется при создании нового клиента)
	CustomerPhone string                    // Телефон в любом формате
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID   uuid.UUID
	ClientID        uuid.UUID
	ClientCreated   bool // true, если клиент был создан этой попыткой
	ServiceID       uuid.UUID
	ServiceName     string
	Resource        domain.ResourceRef
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          domain.AppointmentStatus
	CreatedAt       time.Time
}

// Stage этап попытки записи, используется в логах
type Stage string

const (
	StageValidating        Stage = "validating"
	StageResolvingClient   Stage = "resolving_client"
	StageResolvingResource Stage = "resolving_resource"
	StageCheckingConflict  Stage = "checking_conflict"
	StagePersisting        Stage = "persisting"
)
