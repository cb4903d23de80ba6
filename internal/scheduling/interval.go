package scheduling

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// BusyInterval полуоткрытый интервал [Start, End), в течение которого ресурс занят
type BusyInterval struct {
	Resource      domain.ResourceRef
	AppointmentID uuid.UUID
	Start         time.Time
	End           time.Time
}

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, которые только касаются концами, не пересекаются:
// - [10:00, 10:30) и [10:30, 11:00) → НЕТ пересечения
// - [10:00, 10:30) и [10:15, 10:45) → ЕСТЬ пересечение
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Overlaps проверяет, пересекается ли занятый интервал с [start, end)
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return Overlaps(start, end, b.Start, b.End)
}

// durationOf приводит длительность к минутам; неположительная длительность заменяется значением по умолчанию
func durationOf(minutes int) time.Duration {
	if minutes <= 0 {
		minutes = domain.DefaultServiceDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}
