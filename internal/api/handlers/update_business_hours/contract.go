package update_business_hours

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/service/hours/models"
)

type HoursService interface {
	Upsert(ctx context.Context, businessID uuid.UUID, req *models.UpsertHoursRequest) (*models.HoursResponse, bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
