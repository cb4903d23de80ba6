package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BusinessID == uuid.Nil {
		return fmt.Errorf("%w: businessID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := domain.ParseScheduleProfile(string(req.Profile)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Resource.Kind == domain.PreferStaff && req.Resource.StaffID == uuid.Nil {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}

	return nil
}
