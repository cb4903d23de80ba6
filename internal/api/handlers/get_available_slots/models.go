package get_available_slots

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBooking/internal/usecase/get_available_slots"
)

var (
	errInvalidServiceID = errors.New("invalid service id")
	errInvalidDate      = errors.New("invalid date")
	errInvalidResource  = errors.New("invalid resource")
	errInvalidProfile   = errors.New("invalid profile")
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string          `json:"date"`
	BusinessID      string          `json:"businessId"`
	ServiceID       string          `json:"serviceId"`
	Profile         string          `json:"profile"`
	DurationMinutes int             `json:"durationMinutes"`
	StepMinutes     int             `json:"stepMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string  `json:"startTime"`
	Available bool    `json:"available"`
	Resource  *string `json:"resource,omitempty"` // назначаемый ресурс: "owner" или ID сотрудника
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			Available: slot.Available,
		}
		if slot.Resource != nil {
			ref := slot.Resource.String()
			slots[i].Resource = &ref
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BusinessID:      resp.BusinessID.String(),
		ServiceID:       resp.ServiceID.String(),
		Profile:         string(resp.Profile),
		DurationMinutes: resp.DurationMinutes,
		StepMinutes:     resp.StepMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(businessID uuid.UUID, serviceIDStr, dateStr, resourceStr, profileStr string) (*getAvailableSlots.Request, error) {
	serviceID, err := uuid.Parse(serviceIDStr)
	if err != nil {
		return nil, errInvalidServiceID
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	resource, err := domain.ParseResourcePreference(resourceStr)
	if err != nil {
		return nil, errInvalidResource
	}

	profile, err := domain.ParseScheduleProfile(profileStr)
	if err != nil {
		return nil, errInvalidProfile
	}

	return &getAvailableSlots.Request{
		BusinessID: businessID,
		ServiceID:  serviceID,
		Date:       date,
		Resource:   resource,
		Profile:    profile,
	}, nil
}
