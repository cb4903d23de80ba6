package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	catalogRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

// Service сервис управления услугами и сотрудниками бизнеса
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListServices получает услуги бизнеса
func (s *Service) ListServices(ctx context.Context, businessID uuid.UUID) (*models.ServiceListResponse, error) {
	s.logger.Info("ListServices: fetching services for business=%s", businessID)

	services, err := s.catalogRepo.ListServices(ctx, businessID)
	if err != nil {
		s.logger.Error("ListServices: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServices(services), nil
}

// CreateService создает услугу
func (s *Service) CreateService(ctx context.Context, businessID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	svc := req.ToDomainService(businessID, uuid.Nil)
	if err := svc.Validate(); err != nil {
		s.logger.Warn("CreateService: validation failed for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.catalogRepo.CreateService(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%s (%s, %d min)", created.ID, created.Name, created.DurationMinutes)
	return models.FromDomainService(created), nil
}

// UpdateService заменяет название, цену и длительность услуги
// Длительность записей читается из услуги, поэтому изменение касается и уже созданных записей
func (s *Service) UpdateService(ctx context.Context, businessID, serviceID uuid.UUID, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	svc := req.ToDomainService(businessID, serviceID)
	if err := svc.Validate(); err != nil {
		s.logger.Warn("UpdateService: validation failed for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.catalogRepo.UpdateService(ctx, svc)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%s not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("UpdateService: repository error for service id=%s: %v", serviceID, err)
		return nil, fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: updated service id=%s", serviceID)
	return models.FromDomainService(updated), nil
}

// DeleteService удаляет услугу без записей
func (s *Service) DeleteService(ctx context.Context, businessID, serviceID uuid.UUID) error {
	if err := s.catalogRepo.DeleteService(ctx, businessID, serviceID); err != nil {
		return s.deleteError("DeleteService", "service", serviceID, err, ErrServiceNotFound)
	}

	s.logger.Info("DeleteService: deleted service id=%s", serviceID)
	return nil
}

// ListStaff получает сотрудников бизнеса в порядке назначения на запись
func (s *Service) ListStaff(ctx context.Context, businessID uuid.UUID) (*models.StaffListResponse, error) {
	s.logger.Info("ListStaff: fetching staff for business=%s", businessID)

	staff, err := s.catalogRepo.ListStaff(ctx, businessID)
	if err != nil {
		s.logger.Error("ListStaff: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(staff), nil
}

// CreateStaff добавляет сотрудника; с этого момента он участвует в записи к любому мастеру
func (s *Service) CreateStaff(ctx context.Context, businessID uuid.UUID, req *models.StaffRequest) (*models.StaffResponse, error) {
	m := req.ToDomainStaff(businessID, uuid.Nil)
	if err := m.Validate(); err != nil {
		s.logger.Warn("CreateStaff: validation failed for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.catalogRepo.CreateStaff(ctx, m)
	if err != nil {
		s.logger.Error("CreateStaff: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: CreateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: created staff member id=%s", created.ID)
	return models.FromDomainStaff(created), nil
}

// UpdateStaff заменяет данные сотрудника
func (s *Service) UpdateStaff(ctx context.Context, businessID, staffID uuid.UUID, req *models.StaffRequest) (*models.StaffResponse, error) {
	m := req.ToDomainStaff(businessID, staffID)
	if err := m.Validate(); err != nil {
		s.logger.Warn("UpdateStaff: validation failed for staff id=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.catalogRepo.UpdateStaff(ctx, m)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrStaffNotFound) {
			s.logger.Warn("UpdateStaff: staff member id=%s not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("UpdateStaff: repository error for staff id=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: UpdateStaff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStaff: updated staff member id=%s", staffID)
	return models.FromDomainStaff(updated), nil
}

// DeleteStaff удаляет сотрудника без записей
func (s *Service) DeleteStaff(ctx context.Context, businessID, staffID uuid.UUID) error {
	if err := s.catalogRepo.DeleteStaff(ctx, businessID, staffID); err != nil {
		return s.deleteError("DeleteStaff", "staff member", staffID, err, ErrStaffNotFound)
	}

	s.logger.Info("DeleteStaff: deleted staff member id=%s", staffID)
	return nil
}

// deleteError переводит ошибку репозитория при удалении в ошибку сервиса
func (s *Service) deleteError(method, entity string, id uuid.UUID, err, notFound error) error {
	switch {
	case errors.Is(err, catalogRepo.ErrServiceNotFound), errors.Is(err, catalogRepo.ErrStaffNotFound):
		s.logger.Warn("%s: %s id=%s not found", method, entity, id)
		return notFound
	case errors.Is(err, catalogRepo.ErrInUse):
		s.logger.Warn("%s: %s id=%s has appointments", method, entity, id)
		return ErrInUse
	default:
		s.logger.Error("%s: repository error for %s id=%s: %v", method, entity, id, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
}
