package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus converts a wire value into a status
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusBooked, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", ErrUnknownStatus
	}
}

// OccupiesTime returns true if an appointment in this status blocks its resource
func (s AppointmentStatus) OccupiesTime() bool {
	return s == StatusBooked || s == StatusCompleted
}

// CanTransitionTo reports whether staff review may move an appointment from s to next
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	switch s {
	case StatusBooked:
		return next == StatusCompleted || next == StatusCancelled
	case StatusCompleted, StatusCancelled:
		return next == StatusBooked
	default:
		return false
	}
}

// Appointment represents a booked visit of a client to a resource
type Appointment struct {
	ID              uuid.UUID
	BusinessID      uuid.UUID
	ClientID        uuid.UUID
	ServiceID       uuid.UUID
	Resource        ResourceRef
	StartTime       time.Time
	DurationMinutes int // Denormalized from the service at read time
	Status          AppointmentStatus

	// Denormalized data for the agenda
	ServiceName string
	ClientName  string
	ClientPhone string

	CreatedAt time.Time
}

// EndTime returns the exclusive end of the appointment
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// OccupiesTime returns true if the appointment blocks its resource
func (a *Appointment) OccupiesTime() bool {
	return a.Status.OccupiesTime()
}

// DayAppointment is the slice of an appointment the scheduling core needs
type DayAppointment struct {
	ID              uuid.UUID
	ServiceID       uuid.UUID
	Resource        ResourceRef
	StartTime       time.Time
	DurationMinutes int // 0 = unknown (service without duration), the default applies
	Status          AppointmentStatus
}

// NewAppointment stores the data required to persist a new booking
type NewAppointment struct {
	BusinessID uuid.UUID
	ClientID   uuid.UUID
	ServiceID  uuid.UUID
	Resource   ResourceRef
	StartTime  time.Time
	Status     AppointmentStatus
}
