package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberBooking/internal/scheduling"
)

// UseCase use case для создания записи
//
// Единственный компонент, изменяющий состояние. Транзакции нет: пересечения
// проверяются по свежим данным непосредственно перед вставкой, окно гонки
// сужается, но не исключается.
type UseCase struct {
	catalogRepo     CatalogRepository
	clientRepo      ClientRepository
	appointmentRepo AppointmentRepository
	location        *time.Location
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	clientRepo ClientRepository,
	appointmentRepo AppointmentRepository,
	location *time.Location,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		clientRepo:      clientRepo,
		appointmentRepo: appointmentRepo,
		location:        location,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Этапы: validating → resolving_client → resolving_resource → checking_conflict → persisting
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() {
		uc.metrics.ObserveBookingAttempt(OutcomeOf(err))
	}()

	uc.logger.Info("CreateAppointment: business=%s, service=%s, date=%s, time=%s, resource=%s",
		req.BusinessID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.Resource)

	// 1. Валидация: до этого момента ничего не записывается
	service, phone, start, staff, err := uc.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	duration := service.EffectiveDuration()

	// 2. Поиск или создание клиента
	client, created, err := uc.resolveClient(ctx, req.BusinessID, strings.TrimSpace(req.CustomerName), phone)
	if err != nil {
		return nil, err
	}

	// 3. Выбор ресурса по свежим данным
	dayStart, dayEnd := dayBounds(req.Date, uc.location)
	resource, err := uc.resolveResource(ctx, req, service, start, staff, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	// 4. Повторная проверка непосредственно перед вставкой
	if err := uc.recheck(ctx, req.BusinessID, service, start, resource, dayStart, dayEnd); err != nil {
		return nil, err
	}

	// 5. Сохранение записи
	apt, err := uc.appointmentRepo.Create(ctx, domain.NewAppointment{
		BusinessID: req.BusinessID,
		ClientID:   client.ID,
		ServiceID:  service.ID,
		Resource:   resource,
		StartTime:  start,
		Status:     domain.StatusBooked,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: stage=%s: failed to create appointment (client=%s kept): %v",
			StagePersisting, client.ID, err)
		return nil, fmt.Errorf("%w: create appointment: %v", ErrPersistenceFailure, err)
	}

	uc.logger.Info("CreateAppointment: appointment id=%s created for client=%s, resource=%s, start=%s",
		apt.ID, client.ID, resource, start.Format(time.RFC3339))

	return &Response{
		AppointmentID:   apt.ID,
		ClientID:        client.ID,
		ClientCreated:   created,
		ServiceID:       service.ID,
		ServiceName:     service.Name,
		Resource:        resource,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(duration) * time.Minute),
		DurationMinutes: duration,
		Status:          apt.Status,
		CreatedAt:       apt.CreatedAt,
	}, nil
}

// validate проверяет запрос, услугу, время, телефон и выбранного сотрудника
// Список сотрудников возвращается только для записи не к владельцу
func (uc *UseCase) validate(ctx context.Context, req *Request) (*domain.Service, string, time.Time, []domain.StaffMember, error) {
	fail := func(err error) (*domain.Service, string, time.Time, []domain.StaffMember, error) {
		return nil, "", time.Time{}, nil, err
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: stage=%s: %v", StageValidating, err)
		return fail(err)
	}

	service, err := uc.catalogRepo.GetService(ctx, req.BusinessID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: stage=%s: service id=%s not found", StageValidating, req.ServiceID)
			return fail(ErrInvalidService)
		}
		uc.logger.Error("CreateAppointment: stage=%s: failed to get service id=%s: %v", StageValidating, req.ServiceID, err)
		return fail(fmt.Errorf("%w: get service: %v", ErrLookupFailure, err))
	}

	start, err := req.StartTime.On(req.Date, uc.location)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	if now := uc.timeProvider.Now(); !start.After(now) {
		uc.logger.Warn("CreateAppointment: stage=%s: start %s is not after now %s",
			StageValidating, start.Format(time.RFC3339), now.Format(time.RFC3339))
		return fail(ErrPastTime)
	}

	phone := domain.NormalizePhone(req.CustomerPhone)
	if !domain.IsCanonicalPhone(phone) {
		uc.logger.Warn("CreateAppointment: stage=%s: phone %q normalized to %q", StageValidating, req.CustomerPhone, phone)
		return fail(ErrInvalidPhone)
	}

	if req.Resource.Kind == domain.PreferOwner {
		return service, phone, start, nil, nil
	}

	staff, err := uc.catalogRepo.ListStaff(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("CreateAppointment: stage=%s: failed to list staff: %v", StageValidating, err)
		return fail(fmt.Errorf("%w: list staff: %v", ErrLookupFailure, err))
	}

	if req.Resource.Kind == domain.PreferStaff && !containsStaff(staff, req.Resource.StaffID) {
		uc.logger.Warn("CreateAppointment: stage=%s: staff id=%s not found", StageValidating, req.Resource.StaffID)
		return fail(ErrResourceNotFound)
	}

	return service, phone, start, staff, nil
}

// resolveClient ищет клиента по телефону, при отсутствии создает нового
func (uc *UseCase) resolveClient(ctx context.Context, businessID uuid.UUID, name, phone string) (*domain.Client, bool, error) {
	client, err := uc.clientRepo.FindByPhone(ctx, businessID, phone)
	if err == nil {
		return client, false, nil
	}
	if !errors.Is(err, clientRepo.ErrClientNotFound) {
		uc.logger.Error("CreateAppointment: stage=%s: failed to find client: %v", StageResolvingClient, err)
		return nil, false, fmt.Errorf("%w: find client: %v", ErrLookupFailure, err)
	}

	client, err = uc.clientRepo.Create(ctx, &domain.Client{
		BusinessID: businessID,
		Name:       name,
		Phone:      phone,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: stage=%s: failed to create client: %v", StageResolvingClient, err)
		return nil, false, fmt.Errorf("%w: create client: %v", ErrPersistenceFailure, err)
	}

	uc.logger.Info("CreateAppointment: stage=%s: client id=%s created", StageResolvingClient, client.ID)
	return client, true, nil
}

// resolveResource определяет ресурс записи
// Для "любого мастера" перебирает владельца и сотрудников по свежему индексу занятости
func (uc *UseCase) resolveResource(
	ctx context.Context,
	req *Request,
	service *domain.Service,
	start time.Time,
	staff []domain.StaffMember,
	dayStart, dayEnd time.Time,
) (domain.ResourceRef, error) {
	switch req.Resource.Kind {
	case domain.PreferStaff:
		return domain.StaffResource(req.Resource.StaffID), nil
	case domain.PreferAny:
	default:
		return domain.OwnerResource, nil
	}

	index, err := uc.loadIndex(ctx, req.BusinessID, dayStart, dayEnd, StageResolvingResource)
	if err != nil {
		return domain.ResourceRef{}, err
	}

	resource, ok := scheduling.ResolveAnyResource(
		start,
		service.EffectiveDuration(),
		scheduling.CandidateResources(staff),
		index,
		uc.timeProvider.Now(),
	)
	if !ok {
		uc.logger.Warn("CreateAppointment: stage=%s: no resource available at %s",
			StageResolvingResource, start.Format(time.RFC3339))
		return domain.ResourceRef{}, ErrNoResourceAvailable
	}

	uc.logger.Info("CreateAppointment: stage=%s: resolved resource=%s", StageResolvingResource, resource)
	return resource, nil
}

// recheck повторно проверяет время и занятость по заново загруженным записям дня
func (uc *UseCase) recheck(
	ctx context.Context,
	businessID uuid.UUID,
	service *domain.Service,
	start time.Time,
	resource domain.ResourceRef,
	dayStart, dayEnd time.Time,
) error {
	index, err := uc.loadIndex(ctx, businessID, dayStart, dayEnd, StageCheckingConflict)
	if err != nil {
		return err
	}

	now := uc.timeProvider.Now()
	if !start.After(now) {
		uc.logger.Warn("CreateAppointment: stage=%s: start %s passed while booking",
			StageCheckingConflict, start.Format(time.RFC3339))
		return ErrPastTime
	}

	if !scheduling.IsAvailable(start, service.EffectiveDuration(), resource, index, now) {
		uc.logger.Warn("CreateAppointment: stage=%s: resource=%s is busy at %s",
			StageCheckingConflict, resource, start.Format(time.RFC3339))
		return ErrConflictDetected
	}

	return nil
}

// loadIndex загружает записи дня и строит индекс занятости
func (uc *UseCase) loadIndex(
	ctx context.Context,
	businessID uuid.UUID,
	dayStart, dayEnd time.Time,
	stage Stage,
) (*scheduling.AvailabilityIndex, error) {
	appointments, err := uc.appointmentRepo.ListForDay(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("CreateAppointment: stage=%s: failed to list appointments: %v", stage, err)
		return nil, fmt.Errorf("%w: list appointments: %v", ErrLookupFailure, err)
	}

	return scheduling.BuildIndex(appointments), nil
}
