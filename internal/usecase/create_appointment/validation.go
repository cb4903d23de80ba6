package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

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

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	switch req.Resource.Kind {
	case domain.PreferOwner, domain.PreferAny:
	case domain.PreferStaff:
		if req.Resource.StaffID == uuid.Nil {
			return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: unknown resource preference %q", ErrInvalidInput, req.Resource.Kind)
	}

	name := strings.TrimSpace(req.CustomerName)
	if name == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCustomerNameLen {
		return fmt.Errorf("%w: customer name is longer than %d characters", ErrInvalidInput, domain.MaxCustomerNameLen)
	}

	return nil
}

// dayBounds возвращает полуоткрытые границы [00:00, 24:00) дня date в часовом поясе loc
func dayBounds(date time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := date.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// containsStaff проверяет, что сотрудник принадлежит бизнесу
func containsStaff(staff []domain.StaffMember, staffID uuid.UUID) bool {
	for i := range staff {
		if staff[i].ID == staffID {
			return true
		}
	}
	return false
}
