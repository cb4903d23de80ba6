package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Service represents a priced service offered by a business
type Service struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	Name            string
	PriceMinor      int64 // Price in minor currency units (kuruş)
	DurationMinutes int
}

// EffectiveDuration returns the duration used for scheduling
// Services without a positive duration occupy DefaultServiceDurationMinutes
func (s *Service) EffectiveDuration() int {
	if s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return s.DurationMinutes
}

// Validate checks a service before it is stored.
// Rows created before this check may still carry no duration, see EffectiveDuration.
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.PriceMinor < 0 {
		return ErrNegativePrice
	}
	if s.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

// StaffMember represents an employee who can be booked
type StaffMember struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Name           string
	Role           string
	CommissionRate float64 // percent of the service price, 0..100
}

// Resource returns the scheduling resource of the staff member
func (s *StaffMember) Resource() ResourceRef {
	return StaffResource(s.ID)
}

// Validate checks a staff member before it is stored
func (s *StaffMember) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if s.CommissionRate < 0 || s.CommissionRate > MaxCommissionRate {
		return ErrInvalidCommission
	}
	return nil
}
