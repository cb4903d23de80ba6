package delete_staff

import (
	"context"

	"github.com/google/uuid"
)

type CatalogService interface {
	DeleteStaff(ctx context.Context, businessID, staffID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
