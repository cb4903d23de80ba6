package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у бизнеса
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrResourceNotFound возвращается, когда выбранный сотрудник не найден у бизнеса
	ErrResourceNotFound = errors.New("get_available_slots: staff member not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
