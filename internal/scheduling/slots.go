package scheduling

import (
	"errors"
	"fmt"
	"iter"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// ErrInvalidSlotGrid возвращается при некорректных часах работы или шаге сетки
var ErrInvalidSlotGrid = errors.New("scheduling: invalid slot grid")

// SlotGenerator сетка возможных времен начала записи на один день
// Не зависит от текущего времени: фильтрация прошедших слотов выполняется в IsAvailable
type SlotGenerator struct {
	openingHour int
	closingHour int
	stepMinutes int
}

// NewSlotGenerator создает генератор для часов [openingHour:00, closingHour:00) с шагом stepMinutes
func NewSlotGenerator(openingHour, closingHour, stepMinutes int) (SlotGenerator, error) {
	if openingHour < domain.MinHour || closingHour > domain.MaxHour || openingHour >= closingHour {
		return SlotGenerator{}, fmt.Errorf("%w: hours %d..%d", ErrInvalidSlotGrid, openingHour, closingHour)
	}
	if stepMinutes <= 0 || 60%stepMinutes != 0 {
		return SlotGenerator{}, fmt.Errorf("%w: step %d does not divide an hour", ErrInvalidSlotGrid, stepMinutes)
	}
	return SlotGenerator{
		openingHour: openingHour,
		closingHour: closingHour,
		stepMinutes: stepMinutes,
	}, nil
}

// DefaultSlotGenerator сетка 10:00-20:00 с шагом 15 минут
func DefaultSlotGenerator() SlotGenerator {
	return SlotGenerator{
		openingHour: domain.DefaultOpeningHour,
		closingHour: domain.DefaultClosingHour,
		stepMinutes: domain.DefaultStepMinutes,
	}
}

// SlotGeneratorFor строит генератор по настройке часов работы бизнеса
func SlotGeneratorFor(hours *domain.BusinessHours) (SlotGenerator, error) {
	return NewSlotGenerator(hours.OpeningHour, hours.ClosingHour, hours.StepMinutes)
}

// Slots возвращает ленивую последовательность слотов по возрастанию
// Каждый вызов начинает последовательность заново
func (g SlotGenerator) Slots() iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		for minutes := g.openingHour * 60; minutes < g.closingHour*60; minutes += g.stepMinutes {
			slot, err := types.NewTimeStringFromMinutes(minutes)
			if err != nil {
				return
			}
			if !yield(slot) {
				return
			}
		}
	}
}

// List материализует последовательность слотов
func (g SlotGenerator) List() []types.TimeString {
	slots := make([]types.TimeString, 0, g.Len())
	for slot := range g.Slots() {
		slots = append(slots, slot)
	}
	return slots
}

// Len количество слотов в сетке
func (g SlotGenerator) Len() int {
	if g.stepMinutes <= 0 {
		return 0
	}
	return (g.closingHour - g.openingHour) * 60 / g.stepMinutes
}

// StepMinutes шаг сетки
func (g SlotGenerator) StepMinutes() int {
	return g.stepMinutes
}
