package create_staff

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

type CatalogService interface {
	CreateStaff(ctx context.Context, businessID uuid.UUID, req *models.StaffRequest) (*models.StaffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
