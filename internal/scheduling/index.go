package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AvailabilityIndex занятые интервалы за один день, сгруппированные по ресурсам
type AvailabilityIndex struct {
	busy map[domain.ResourceRef][]BusyInterval
}

// BuildIndex строит индекс по записям одного дня
// Отмененные записи пропускаются. Запись без длительности занимает 30 минут.
func BuildIndex(appointments []domain.DayAppointment) *AvailabilityIndex {
	busy := make(map[domain.ResourceRef][]BusyInterval)

	for _, apt := range appointments {
		if !apt.Status.OccupiesTime() {
			continue
		}

		busy[apt.Resource] = append(busy[apt.Resource], BusyInterval{
			Resource:      apt.Resource,
			AppointmentID: apt.ID,
			Start:         apt.StartTime,
			End:           apt.StartTime.Add(durationOf(apt.DurationMinutes)),
		})
	}

	for ref := range busy {
		intervals := busy[ref]
		sort.SliceStable(intervals, func(i, j int) bool {
			return intervals[i].Start.Before(intervals[j].Start)
		})
	}

	return &AvailabilityIndex{busy: busy}
}

// Busy возвращает занятые интервалы ресурса по возрастанию начала
// Для ресурса без записей возвращается пустой список
func (x *AvailabilityIndex) Busy(ref domain.ResourceRef) []BusyInterval {
	if x == nil {
		return nil
	}
	return x.busy[ref]
}

// Conflicts возвращает интервалы ресурса, пересекающиеся с [start, end)
func (x *AvailabilityIndex) Conflicts(ref domain.ResourceRef, start, end time.Time) []BusyInterval {
	var conflicts []BusyInterval
	for _, b := range x.Busy(ref) {
		if !b.Start.Before(end) {
			// интервалы отсортированы, дальше пересечений нет
			break
		}
		if b.Overlaps(start, end) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}

// Len общее количество занятых интервалов
func (x *AvailabilityIndex) Len() int {
	if x == nil {
		return 0
	}
	n := 0
	for _, intervals := range x.busy {
		n += len(intervals)
	}
	return n
}
