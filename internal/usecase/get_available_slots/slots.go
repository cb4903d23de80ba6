package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/scheduling"
)

// slotEvaluation параметры проверки слотов одного дня
type slotEvaluation struct {
	date       time.Time
	location   *time.Location
	duration   int
	preference domain.ResourcePreference
	candidates []domain.ResourceRef // только для PreferAny
	index      *scheduling.AvailabilityIndex
	now        time.Time
}

// evaluateSlots проверяет каждый слот сетки и определяет ресурс, который будет назначен
// Слоты в прошлом (включая текущий момент) недоступны
func evaluateSlots(generator scheduling.SlotGenerator, ev slotEvaluation) []Slot {
	y, m, d := ev.date.Date()
	result := make([]Slot, 0, generator.Len())

	for slot := range generator.Slots() {
		minutes, err := slot.Minutes()
		if err != nil {
			continue
		}
		start := time.Date(y, m, d, minutes/60, minutes%60, 0, 0, ev.location)

		resource, ok := resolve(start, ev)
		s := Slot{StartTime: slot, Available: ok}
		if ok {
			s.Resource = &resource
		}
		result = append(result, s)
	}

	return result
}

func resolve(start time.Time, ev slotEvaluation) (domain.ResourceRef, bool) {
	switch ev.preference.Kind {
	case domain.PreferAny:
		return scheduling.ResolveAnyResource(start, ev.duration, ev.candidates, ev.index, ev.now)
	case domain.PreferStaff:
		ref := domain.StaffResource(ev.preference.StaffID)
		return ref, scheduling.IsAvailable(start, ev.duration, ref, ev.index, ev.now)
	default:
		return domain.OwnerResource, scheduling.IsAvailable(start, ev.duration, domain.OwnerResource, ev.index, ev.now)
	}
}
