package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberBooking/internal/scheduling"
	"github.com/m04kA/SMC-BarberBooking/internal/service/appointments/models"
)

// Service сервис для просмотра записей и смены их статуса
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

const (
	// DefaultUpcomingLimit количество ближайших записей, если limit не задан
	DefaultUpcomingLimit = 50
	// MaxUpcomingLimit верхняя граница limit для ближайших записей
	MaxUpcomingLimit = 200
)

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID получает запись бизнеса по ID
func (s *Service) GetByID(ctx context.Context, businessID, id uuid.UUID) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for business=%s", id, businessID)

	apt, err := s.appointmentRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(apt, s.location), nil
}

// GetDayAgenda получает все записи дня по времени начала, включая отмененные
func (s *Service) GetDayAgenda(ctx context.Context, businessID uuid.UUID, date time.Time) (*models.AgendaResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	dayStart, dayEnd := s.dayBounds(date)
	s.logger.Info("GetDayAgenda: business=%s, date=%s", businessID, date.Format(domain.DateFormat))

	appointments, err := s.appointmentRepo.ListAgenda(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("GetDayAgenda: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetDayAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDayAgenda: found %d appointments", len(appointments))
	return models.FromDomainAgenda(dayStart, appointments, s.location), nil
}

// GetUpcoming получает ближайшие записи бизнеса, начиная с текущего момента, в порядке начала
// Отмененные записи тоже возвращаются. limit = 0 означает DefaultUpcomingLimit
func (s *Service) GetUpcoming(ctx context.Context, businessID uuid.UUID, limit int) (*models.UpcomingResponse, error) {
	if limit == 0 {
		limit = DefaultUpcomingLimit
	}
	if limit < 0 || limit > MaxUpcomingLimit {
		return nil, fmt.Errorf("%w: limit must be in 1..%d", ErrInvalidInput, MaxUpcomingLimit)
	}

	now := s.timeProvider.Now()
	s.logger.Info("GetUpcoming: business=%s, from=%s, limit=%d", businessID, now.Format(time.RFC3339), limit)

	appointments, err := s.appointmentRepo.ListUpcoming(ctx, businessID, now, limit)
	if err != nil {
		s.logger.Error("GetUpcoming: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUpcoming: found %d appointments", len(appointments))
	return models.FromDomainUpcoming(appointments, s.location), nil
}

// UpdateStatus меняет статус записи
// Возврат в booked снова занимает время ресурса, поэтому проверяется на пересечения
func (s *Service) UpdateStatus(ctx context.Context, businessID, id uuid.UUID, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%s to status=%s", id, req.Status)

	newStatus, err := domain.ParseAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	apt, err := s.appointmentRepo.GetByID(ctx, businessID, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if apt.Status == newStatus {
		return models.FromDomainAppointment(apt, s.location), nil
	}

	if !apt.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%s", apt.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, apt.Status, newStatus)
	}

	if newStatus == domain.StatusBooked && !apt.OccupiesTime() {
		if err := s.checkFree(ctx, apt); err != nil {
			return nil, err
		}
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, businessID, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	apt.Status = newStatus
	s.logger.Info("UpdateStatus: appointment id=%s is now %s", id, newStatus)
	return models.FromDomainAppointment(apt, s.location), nil
}

// checkFree проверяет, что время отмененной записи не занято другой записью того же ресурса
// Время в прошлом не проверяется: восстановить можно и прошедшую запись
func (s *Service) checkFree(ctx context.Context, apt *domain.Appointment) error {
	dayStart, dayEnd := s.dayBounds(apt.StartTime.In(s.location))

	day, err := s.appointmentRepo.ListForDay(ctx, apt.BusinessID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to list appointments: %v", err)
		return fmt.Errorf("%w: UpdateStatus - list appointments: %v", ErrInternal, err)
	}

	index := scheduling.BuildIndex(day)
	for _, busy := range index.Conflicts(apt.Resource, apt.StartTime, apt.EndTime()) {
		if busy.AppointmentID == apt.ID {
			continue
		}
		s.logger.Warn("UpdateStatus: appointment id=%s overlaps appointment id=%s on resource=%s",
			apt.ID, busy.AppointmentID, apt.Resource)
		return ErrConflictDetected
	}

	return nil
}

// dayBounds границы календарного дня date в часовом поясе бизнеса
func (s *Service) dayBounds(date time.Time) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	return start, start.AddDate(0, 0, 1)
}
