package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInvalidService возвращается, когда услуга не найдена у бизнеса
	ErrInvalidService = errors.New("create_appointment: unknown service")

	// ErrInvalidPhone возвращается, когда телефон не приводится к 10 цифрам
	ErrInvalidPhone = errors.New("create_appointment: invalid phone number")

	// ErrPastTime возвращается, когда время записи не строго в будущем
	ErrPastTime = errors.New("create_appointment: appointment time is in the past")

	// ErrResourceNotFound возвращается, когда выбранный сотрудник не найден у бизнеса
	ErrResourceNotFound = errors.New("create_appointment: staff member not found")

	// ErrNoResourceAvailable возвращается, когда при записи "к любому мастеру" все заняты
	ErrNoResourceAvailable = errors.New("create_appointment: no resource available")

	// ErrConflictDetected возвращается, когда выбранный ресурс занят на это время
	ErrConflictDetected = errors.New("create_appointment: time slot is already taken")

	// ErrLookupFailure возвращается при ошибке чтения из хранилища
	ErrLookupFailure = errors.New("create_appointment: lookup failure")

	// ErrPersistenceFailure возвращается при ошибке записи в хранилище
	ErrPersistenceFailure = errors.New("create_appointment: persistence failure")
)

// Исходы попытки записи (метка outcome в метриках)
const (
	OutcomeCommitted           = "committed"
	OutcomeInvalidInput        = "invalid_input"
	OutcomeInvalidService      = "invalid_service"
	OutcomeInvalidPhone        = "invalid_phone"
	OutcomePastTime            = "past_time"
	OutcomeResourceNotFound    = "resource_not_found"
	OutcomeNoResourceAvailable = "no_resource_available"
	OutcomeConflictDetected    = "conflict_detected"
	OutcomeLookupFailure       = "lookup_failure"
	OutcomePersistenceFailure  = "persistence_failure"
	OutcomeUnknown             = "unknown"
)

// OutcomeOf возвращает исход попытки записи по ошибке Execute
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeCommitted
	case errors.Is(err, ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, ErrInvalidService):
		return OutcomeInvalidService
	case errors.Is(err, ErrInvalidPhone):
		return OutcomeInvalidPhone
	case errors.Is(err, ErrPastTime):
		return OutcomePastTime
	case errors.Is(err, ErrResourceNotFound):
		return OutcomeResourceNotFound
	case errors.Is(err, ErrNoResourceAvailable):
		return OutcomeNoResourceAvailable
	case errors.Is(err, ErrConflictDetected):
		return OutcomeConflictDetected
	case errors.Is(err, ErrLookupFailure):
		return OutcomeLookupFailure
	case errors.Is(err, ErrPersistenceFailure):
		return OutcomePersistenceFailure
	default:
		return OutcomeUnknown
	}
}
