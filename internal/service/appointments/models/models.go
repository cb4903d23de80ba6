package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модели

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"businessId"`
	ClientID        string  `json:"clientId"`
	ServiceID       string  `json:"serviceId"`
	Resource        string  `json:"resource"`                // "owner" или ID сотрудника
	StaffMemberID   *string `json:"staffMemberId,omitempty"` // nil для владельца
	StartTime       string  `json:"startTime"`               // ISO 8601
	EndTime         string  `json:"endTime"`                 // ISO 8601
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`

	// Денормализованные данные
	ServiceName string `json:"serviceName,omitempty"`
	ClientName  string `json:"clientName,omitempty"`
	ClientPhone string `json:"clientPhone,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// AgendaResponse записи одного дня
type AgendaResponse struct {
	Date         string                `json:"date"` // "2026-10-20"
	Appointments []AppointmentResponse `json:"appointments"`
}

// UpcomingResponse ближайшие записи бизнеса
type UpcomingResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
// Время отдается в часовом поясе loc
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:              a.ID.String(),
		BusinessID:      a.BusinessID.String(),
		ClientID:        a.ClientID.String(),
		ServiceID:       a.ServiceID.String(),
		Resource:        a.Resource.String(),
		StartTime:       a.StartTime.In(loc).Format(time.RFC3339),
		EndTime:         a.EndTime().In(loc).Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		ClientName:      a.ClientName,
		ClientPhone:     a.ClientPhone,
		CreatedAt:       a.CreatedAt,
	}

	if !a.Resource.IsOwner() {
		staffID := a.Resource.StaffID.String()
		resp.StaffMemberID = &staffID
	}

	return resp
}

// FromDomainAgenda конвертирует записи дня в DTO
func FromDomainAgenda(date time.Time, appointments []*domain.Appointment, loc *time.Location) *AgendaResponse {
	resp := &AgendaResponse{
		Date:         date.Format(domain.DateFormat),
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if r := FromDomainAppointment(a, loc); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}

	return resp
}

// FromDomainUpcoming конвертирует ближайшие записи в DTO
func FromDomainUpcoming(appointments []*domain.Appointment, loc *time.Location) *UpcomingResponse {
	resp := &UpcomingResponse{Appointments: make([]AppointmentResponse, 0, len(appointments))}

	for _, a := range appointments {
		if r := FromDomainAppointment(a, loc); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}
	resp.Total = len(resp.Appointments)

	return resp
}
