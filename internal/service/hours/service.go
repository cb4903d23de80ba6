package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	hoursRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-BarberBooking/internal/service/hours/models"
)

// Service сервис для работы с часами работы бизнеса
type Service struct {
	hoursRepo HoursRepository
	defaults  map[domain.ScheduleProfile]domain.BusinessHours
	logger    Logger
}

// NewService создает новый экземпляр сервиса часов работы
// defaults - значения из конфигурации для бизнеса без сохраненных часов
func NewService(
	hoursRepo HoursRepository,
	defaults map[domain.ScheduleProfile]domain.BusinessHours,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		defaults:  defaults,
		logger:    logger,
	}
}

// Get получает действующие часы работы для точки входа
// Приоритет: профиль > весь бизнес > конфигурация сервиса
func (s *Service) Get(ctx context.Context, businessID uuid.UUID, profile string) (*models.HoursResponse, error) {
	p, err := domain.ParseScheduleProfile(profile)
	if err != nil {
		s.logger.Warn("Get: unknown profile=%q", profile)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Get: fetching hours for business=%s, profile=%s", businessID, p)

	hours, err := s.hoursRepo.GetWithHierarchy(ctx, businessID, p)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Info("Get: no stored hours for business=%s, using defaults for profile=%s", businessID, p)
			return models.FromDefaults(businessID, p, s.defaultsFor(p)), nil
		}
		s.logger.Error("Get: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: using hours id=%d (level: %s)", hours.ID, level(hours))
	return models.FromDomainHours(hours), nil
}

// List получает все сохраненные часы работы бизнеса
func (s *Service) List(ctx context.Context, businessID uuid.UUID) (*models.HoursListResponse, error) {
	s.logger.Info("List: fetching hours for business=%s", businessID)

	list, err := s.hoursRepo.ListByBusiness(ctx, businessID)
	if err != nil {
		s.logger.Error("List: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHoursList(list), nil
}

// Upsert создает или заменяет часы работы для профиля (или всего бизнеса)
// Возвращает true, если запись была создана
func (s *Service) Upsert(ctx context.Context, businessID uuid.UUID, req *models.UpsertHoursRequest) (*models.HoursResponse, bool, error) {
	profile, err := parseProfile(req.Profile)
	if err != nil {
		s.logger.Warn("Upsert: %v", err)
		return nil, false, err
	}

	hours := req.ToDomainHours(businessID, profile)
	if err := hours.Validate(); err != nil {
		s.logger.Warn("Upsert: validation failed for business=%s: %v", businessID, err)
		return nil, false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Upsert: business=%s, level=%s, hours=%02d-%02d/%d",
		businessID, level(hours), hours.OpeningHour, hours.ClosingHour, hours.StepMinutes)

	existing, err := s.hoursRepo.GetByBusinessAndProfile(ctx, businessID, profile)
	if err != nil && !errors.Is(err, hoursRepo.ErrHoursNotFound) {
		s.logger.Error("Upsert: failed to check existing hours: %v", err)
		return nil, false, fmt.Errorf("%w: failed to check existing hours: %v", ErrInternal, err)
	}

	if existing != nil {
		updated, err := s.hoursRepo.Update(ctx, existing.ID, hours)
		if err != nil {
			s.logger.Error("Upsert: failed to update hours id=%d: %v", existing.ID, err)
			return nil, false, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Upsert: updated hours id=%d", updated.ID)
		return models.FromDomainHours(updated), false, nil
	}

	created, err := s.hoursRepo.Create(ctx, hours)
	if err != nil {
		s.logger.Error("Upsert: failed to create hours: %v", err)
		return nil, false, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: created hours id=%d", created.ID)
	return models.FromDomainHours(created), true, nil
}

// Delete удаляет часы работы профиля (или всего бизнеса при profile == nil)
func (s *Service) Delete(ctx context.Context, businessID uuid.UUID, profile *string) error {
	p, err := parseProfile(profile)
	if err != nil {
		s.logger.Warn("Delete: %v", err)
		return err
	}

	if err := s.hoursRepo.DeleteByBusinessAndProfile(ctx, businessID, p); err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Warn("Delete: no hours for business=%s, profile=%v", businessID, profile)
			return ErrHoursNotFound
		}
		s.logger.Error("Delete: repository error for business=%s: %v", businessID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted hours for business=%s, profile=%v", businessID, profile)
	return nil
}

// Вспомогательные методы

func (s *Service) defaultsFor(profile domain.ScheduleProfile) domain.BusinessHours {
	if def, ok := s.defaults[profile]; ok {
		return def
	}
	return domain.BusinessHours{
		OpeningHour: domain.DefaultOpeningHour,
		ClosingHour: domain.DefaultClosingHour,
		StepMinutes: domain.DefaultStepMinutes,
	}
}

// parseProfile разбирает необязательный профиль; nil означает весь бизнес
func parseProfile(profile *string) (*domain.ScheduleProfile, error) {
	if profile == nil {
		return nil, nil
	}
	if *profile == "" {
		return nil, fmt.Errorf("%w: profile must not be empty", ErrInvalidInput)
	}
	p, err := domain.ParseScheduleProfile(*profile)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return &p, nil
}

// level возвращает уровень настройки для логирования
func level(h *domain.BusinessHours) string {
	if h.IsBusinessWide() {
		return models.SourceBusiness
	}
	return models.SourceProfile
}
