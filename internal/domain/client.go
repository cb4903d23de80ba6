package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a customer record of a business
type Client struct {
	ID         uuid.UUID
	BusinessID uuid.UUID
	Name       string
	Phone      string // Always normalized, see NormalizePhone
	CreatedAt  time.Time
}
