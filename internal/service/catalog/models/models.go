package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Request модели

// ServiceRequest запрос на создание или изменение услуги
type ServiceRequest struct {
	Name            string `json:"name"`
	PriceMinor      int64  `json:"priceMinor"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToDomainService конвертирует запрос в domain модель
func (r *ServiceRequest) ToDomainService(businessID, serviceID uuid.UUID) *domain.Service {
	return &domain.Service{
		ID:              serviceID,
		BusinessID:      businessID,
		Name:            strings.TrimSpace(r.Name),
		PriceMinor:      r.PriceMinor,
		DurationMinutes: r.DurationMinutes,
	}
}

// StaffRequest запрос на создание или изменение сотрудника
type StaffRequest struct {
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	CommissionRate float64 `json:"commissionRate"`
}

// ToDomainStaff конвертирует запрос в domain модель
func (r *StaffRequest) ToDomainStaff(businessID, staffID uuid.UUID) *domain.StaffMember {
	return &domain.StaffMember{
		ID:             staffID,
		BusinessID:     businessID,
		Name:           strings.TrimSpace(r.Name),
		Role:           strings.TrimSpace(r.Role),
		CommissionRate: r.CommissionRate,
	}
}

// Response модели

// ServiceResponse услуга бизнеса
type ServiceResponse struct {
	ID              string `json:"id"`
	BusinessID      string `json:"businessId"`
	Name            string `json:"name"`
	PriceMinor      int64  `json:"priceMinor"`
	DurationMinutes int    `json:"durationMinutes"` // длительность, которая используется при записи
}

// ServiceListResponse список услуг бизнеса
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

// StaffResponse сотрудник бизнеса
type StaffResponse struct {
	ID             string  `json:"id"`
	BusinessID     string  `json:"businessId"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	CommissionRate float64 `json:"commissionRate"`
}

// StaffListResponse список сотрудников бизнеса
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в response
func FromDomainService(svc *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:              svc.ID.String(),
		BusinessID:      svc.BusinessID.String(),
		Name:            svc.Name,
		PriceMinor:      svc.PriceMinor,
		DurationMinutes: svc.EffectiveDuration(),
	}
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		result = append(result, *FromDomainService(svc))
	}
	return &ServiceListResponse{Services: result, Total: len(result)}
}

// FromDomainStaff конвертирует domain модель в response
func FromDomainStaff(m *domain.StaffMember) *StaffResponse {
	return &StaffResponse{
		ID:             m.ID.String(),
		BusinessID:     m.BusinessID.String(),
		Name:           m.Name,
		Role:           m.Role,
		CommissionRate: m.CommissionRate,
	}
}

// FromDomainStaffList конвертирует список сотрудников
func FromDomainStaffList(staff []domain.StaffMember) *StaffListResponse {
	result := make([]StaffResponse, 0, len(staff))
	for i := range staff {
		result = append(result, *FromDomainStaff(&staff[i]))
	}
	return &StaffListResponse{Staff: result, Total: len(result)}
}
