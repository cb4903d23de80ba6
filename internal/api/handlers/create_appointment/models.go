package create_appointment

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

var (
	errInvalidServiceID = errors.New("invalid service id")
	errInvalidDate      = errors.New("invalid date")
	errInvalidTime      = errors.New("invalid start time")
	errInvalidResource  = errors.New("invalid resource")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID     string `json:"serviceId"`
	Date          string `json:"date"`               // "2026-10-20"
	StartTime     string `json:"startTime"`          // "14:00"
	Resource      string `json:"resource,omitempty"` // "owner" (по умолчанию), "any" или ID сотрудника
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"clientId"`
	ClientCreated   bool    `json:"clientCreated"`
	ServiceID       string  `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Resource        string  `json:"resource"`
	StaffMemberID   *string `json:"staffMemberId,omitempty"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты, времени и ресурса)
func (r *CreateAppointmentRequest) ToUseCaseRequest(businessID uuid.UUID) (*createAppointment.Request, error) {
	serviceID, err := uuid.Parse(r.ServiceID)
	if err != nil {
		return nil, errInvalidServiceID
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	resource, err := domain.ParseResourcePreference(r.Resource)
	if err != nil {
		return nil, errInvalidResource
	}

	return &createAppointment.Request{
		BusinessID:    businessID,
		ServiceID:     serviceID,
		Date:          date,
		StartTime:     startTime,
		Resource:      resource,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Время отдается в часовом поясе loc
func FromUseCaseResponse(resp *createAppointment.Response, loc *time.Location) *AppointmentResponse {
	out := &AppointmentResponse{
		ID:              resp.AppointmentID.String(),
		ClientID:        resp.ClientID.String(),
		ClientCreated:   resp.ClientCreated,
		ServiceID:       resp.ServiceID.String(),
		ServiceName:     resp.ServiceName,
		Resource:        resp.Resource.String(),
		StartTime:       resp.StartTime.In(loc).Format(time.RFC3339),
		EndTime:         resp.EndTime.In(loc).Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		Status:          string(resp.Status),
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}

	if !resp.Resource.IsOwner() {
		staffID := resp.Resource.StaffID.String()
		out.StaffMemberID = &staffID
	}

	return out
}
