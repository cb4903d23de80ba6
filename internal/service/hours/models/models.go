package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Источник часов работы в ответе
const (
	SourceProfile  = "profile"  // настройка для точки входа
	SourceBusiness = "business" // настройка для всего бизнеса
	SourceDefault  = "default"  // значения из конфигурации сервиса
)

// Request модели

// UpsertHoursRequest запрос на создание или замену часов работы
// Profile == nil задает часы для всех точек входа
type UpsertHoursRequest struct {
	Profile     *string `json:"profile,omitempty"`
	OpeningHour int     `json:"openingHour"`
	ClosingHour int     `json:"closingHour"`
	StepMinutes int     `json:"stepMinutes"`
}

// ToDomainHours конвертирует запрос в domain модель
func (r *UpsertHoursRequest) ToDomainHours(businessID uuid.UUID, profile *domain.ScheduleProfile) *domain.BusinessHours {
	return &domain.BusinessHours{
		BusinessID:  businessID,
		Profile:     profile,
		OpeningHour: r.OpeningHour,
		ClosingHour: r.ClosingHour,
		StepMinutes: r.StepMinutes,
	}
}

// Response модели

// HoursResponse часы работы бизнеса
type HoursResponse struct {
	ID          *int64     `json:"id,omitempty"` // nil для значений по умолчанию
	BusinessID  string     `json:"businessId"`
	Profile     *string    `json:"profile"` // nil = для всех точек входа
	OpeningHour int        `json:"openingHour"`
	ClosingHour int        `json:"closingHour"`
	StepMinutes int        `json:"stepMinutes"`
	Source      string     `json:"source"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// HoursListResponse все сохраненные часы работы бизнеса
type HoursListResponse struct {
	Hours []HoursResponse `json:"hours"`
	Total int             `json:"total"`
}

// Методы конвертации

// FromDomainHours конвертирует сохраненные часы в DTO
func FromDomainHours(h *domain.BusinessHours) *HoursResponse {
	if h == nil {
		return nil
	}

	id := h.ID
	updatedAt := h.UpdatedAt
	resp := &HoursResponse{
		ID:          &id,
		BusinessID:  h.BusinessID.String(),
		OpeningHour: h.OpeningHour,
		ClosingHour: h.ClosingHour,
		StepMinutes: h.StepMinutes,
		Source:      SourceBusiness,
		UpdatedAt:   &updatedAt,
	}

	if h.Profile != nil {
		profile := string(*h.Profile)
		resp.Profile = &profile
		resp.Source = SourceProfile
	}

	return resp
}

// FromDefaults конвертирует значения по умолчанию для профиля в DTO
func FromDefaults(businessID uuid.UUID, profile domain.ScheduleProfile, h domain.BusinessHours) *HoursResponse {
	p := string(profile)
	return &HoursResponse{
		BusinessID:  businessID.String(),
		Profile:     &p,
		OpeningHour: h.OpeningHour,
		ClosingHour: h.ClosingHour,
		StepMinutes: h.StepMinutes,
		Source:      SourceDefault,
	}
}

// FromDomainHoursList конвертирует список часов в DTO
func FromDomainHoursList(list []*domain.BusinessHours) *HoursListResponse {
	resp := &HoursListResponse{
		Hours: make([]HoursResponse, 0, len(list)),
		Total: len(list),
	}

	for _, h := range list {
		if r := FromDomainHours(h); r != nil {
			resp.Hours = append(resp.Hours, *r)
		}
	}

	return resp
}
