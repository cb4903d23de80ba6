package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleProfile names the booking entry point a slot grid is built for
type ScheduleProfile string

const (
	ProfileWidget   ScheduleProfile = "widget"    // public booking widget
	ProfileQuickAdd ScheduleProfile = "quick_add" // owner dashboard quick-add form
)

// ParseScheduleProfile converts a wire value into a profile; empty means the widget
func ParseScheduleProfile(s string) (ScheduleProfile, error) {
	switch p := ScheduleProfile(s); p {
	case "":
		return ProfileWidget, nil
	case ProfileWidget, ProfileQuickAdd:
		return p, nil
	default:
		return "", ErrUnknownProfile
	}
}

// BusinessHours represents the opening hours configuration of a business
// Supports hierarchical configuration:
// 1. Profile-specific (business_id, profile)
// 2. Business-wide (business_id, NULL)
// Without a stored row the service-level defaults from config.toml apply.
type BusinessHours struct {
	ID          int64
	BusinessID  uuid.UUID
	Profile     *ScheduleProfile // NULL = config for all entry points
	OpeningHour int
	ClosingHour int
	StepMinutes int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBusinessWide returns true if this configuration applies to every entry point
func (h *BusinessHours) IsBusinessWide() bool {
	return h.Profile == nil
}

// Validate checks the opening hours invariants
func (h *BusinessHours) Validate() error {
	if h.OpeningHour < MinHour || h.ClosingHour > MaxHour || h.OpeningHour >= h.ClosingHour {
		return ErrInvalidOpeningHours
	}
	if h.StepMinutes <= 0 || 60%h.StepMinutes != 0 {
		return ErrInvalidStep
	}
	return nil
}
