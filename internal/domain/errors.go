package domain

import "errors"

var (
	ErrUnknownStatus             = errors.New("domain: unknown appointment status")
	ErrUnknownProfile            = errors.New("domain: unknown schedule profile")
	ErrInvalidResourcePreference = errors.New("domain: resource must be \"owner\", \"any\" or a staff id")
	ErrInvalidOpeningHours       = errors.New("domain: opening hour must be before closing hour within 0..24")
	ErrInvalidStep               = errors.New("domain: step minutes must divide 60")
	ErrEmptyName                 = errors.New("domain: name is required")
	ErrNegativePrice             = errors.New("domain: price must not be negative")
	ErrInvalidDuration           = errors.New("domain: duration must be positive")
	ErrInvalidCommission         = errors.New("domain: commission rate must be within 0..100")
)
