package delete_business_hours

import (
	"context"

	"github.com/google/uuid"
)

type HoursService interface {
	Delete(ctx context.Context, businessID uuid.UUID, profile *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
