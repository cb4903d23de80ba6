package domain

// Default configuration values
const (
	DefaultOpeningHour            = 10
	DefaultClosingHour            = 20
	DefaultStepMinutes            = 15
	DefaultWidgetStepMinutes      = 30 // legacy step of the public widget
	DefaultServiceDurationMinutes = 30 // used when a service has no duration
)

// Business validation constants
const (
	MinHour              = 0
	MaxHour              = 24
	CanonicalPhoneLength = 10
	MaxCustomerNameLen   = 100
	MaxCommissionRate    = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// OccupyingStatuses statuses whose appointments block resource time
var OccupyingStatuses = []AppointmentStatus{
	StatusBooked,
	StatusCompleted,
}
