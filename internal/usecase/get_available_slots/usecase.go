package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/catalog"
	hoursRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-BarberBooking/internal/scheduling"
)

// UseCase use case для получения слотов записи
// Обе точки входа (виджет и быстрая запись) используют одну сетку и одну проверку пересечений,
// отличаются только часами работы.
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	hoursRepo       HoursRepository
	defaults        ProfileDefaults
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	hoursRepo HoursRepository,
	defaults ProfileDefaults,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		hoursRepo:       hoursRepo,
		defaults:        defaults,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%s, service=%s, date=%s, resource=%s, profile=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), req.Resource, req.Profile)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	profile, _ := domain.ParseScheduleProfile(string(req.Profile))

	// 2. Получаем услугу
	service, err := uc.catalogRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Получаем сотрудников (не нужно для записи к владельцу)
	var candidates []domain.ResourceRef
	if req.Resource.Kind != domain.PreferOwner {
		staff, err := uc.catalogRepo.ListStaff(ctx, req.BusinessID)
		if err != nil {
			uc.logger.Error("GetAvailableSlots: failed to list staff: %v", err)
			return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}
		if req.Resource.Kind == domain.PreferStaff && !hasStaff(staff, req.Resource) {
			uc.logger.Warn("GetAvailableSlots: staff id=%s not found", req.Resource.StaffID)
			return nil, ErrResourceNotFound
		}
		candidates = scheduling.CandidateResources(staff)
	}

	// 4. Получаем часы работы с учетом иерархии
	generator, err := uc.slotGenerator(ctx, req, profile)
	if err != nil {
		return nil, err
	}

	// 5. Получаем записи дня и строим индекс занятости
	y, m, d := req.Date.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	appointments, err := uc.appointmentRepo.ListForDay(ctx, req.BusinessID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}
	index := scheduling.BuildIndex(appointments)

	// 6. Проверяем каждый слот
	slots := evaluateSlots(generator, slotEvaluation{
		date:       req.Date,
		location:   uc.location,
		duration:   service.EffectiveDuration(),
		preference: req.Resource,
		candidates: candidates,
		index:      index,
		now:        uc.timeProvider.Now(),
	})

	uc.logger.Info("GetAvailableSlots: generated %d slots (%d busy intervals) for business=%s, date=%s",
		len(slots), index.Len(), req.BusinessID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		BusinessID:      req.BusinessID,
		ServiceID:       req.ServiceID,
		Profile:         profile,
		DurationMinutes: service.EffectiveDuration(),
		StepMinutes:     generator.StepMinutes(),
		Slots:           slots,
	}, nil
}

// slotGenerator строит сетку по настройке бизнеса, иначе по настройке из конфигурации
func (uc *UseCase) slotGenerator(ctx context.Context, req *Request, profile domain.ScheduleProfile) (scheduling.SlotGenerator, error) {
	hours, err := uc.hoursRepo.GetWithHierarchy(ctx, req.BusinessID, profile)
	if err != nil && !errors.Is(err, hoursRepo.ErrHoursNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return scheduling.SlotGenerator{}, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	if hours == nil {
		if def, ok := uc.defaults[profile]; ok {
			hours = &def
			uc.logger.Info("GetAvailableSlots: using default hours for profile=%s", profile)
		} else {
			uc.logger.Info("GetAvailableSlots: no hours configured for profile=%s, using built-in grid", profile)
			return scheduling.DefaultSlotGenerator(), nil
		}
	} else {
		uc.logger.Info("GetAvailableSlots: using business hours id=%d", hours.ID)
	}

	generator, err := scheduling.SlotGeneratorFor(hours)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid business hours: %v", err)
		return scheduling.SlotGenerator{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return generator, nil
}

func hasStaff(staff []domain.StaffMember, pref domain.ResourcePreference) bool {
	for i := range staff {
		if staff[i].ID == pref.StaffID {
			return true
		}
	}
	return false
}
