package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// IsAvailable проверяет, можно ли записать ресурс ref на [candidateStart, candidateStart+duration)
// Слот недоступен, если он не строго в будущем относительно now или пересекается с занятым интервалом.
func IsAvailable(
	candidateStart time.Time,
	durationMinutes int,
	ref domain.ResourceRef,
	index *AvailabilityIndex,
	now time.Time,
) bool {
	if !candidateStart.After(now) {
		return false
	}

	candidateEnd := candidateStart.Add(durationOf(durationMinutes))
	return len(index.Conflicts(ref, candidateStart, candidateEnd)) == 0
}

// ResolveAnyResource возвращает первый свободный ресурс из candidates
// Порядок кандидатов задает вызывающий (см. CandidateResources); ok=false, если заняты все.
func ResolveAnyResource(
	candidateStart time.Time,
	durationMinutes int,
	candidates []domain.ResourceRef,
	index *AvailabilityIndex,
	now time.Time,
) (domain.ResourceRef, bool) {
	for _, ref := range candidates {
		if IsAvailable(candidateStart, durationMinutes, ref, index, now) {
			return ref, true
		}
	}
	return domain.ResourceRef{}, false
}

// CandidateResources порядок перебора для записи "к любому мастеру":
// сначала владелец, затем сотрудники по имени (при равных именах - по id)
func CandidateResources(staff []domain.StaffMember) []domain.ResourceRef {
	sorted := make([]domain.StaffMember, len(staff))
	copy(sorted, staff)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Name != sorted[j].Name {
			return sorted[i].Name < sorted[j].Name
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	candidates := make([]domain.ResourceRef, 0, len(sorted)+1)
	candidates = append(candidates, domain.OwnerResource)
	for i := range sorted {
		candidates = append(candidates, sorted[i].Resource())
	}
	return candidates
}
