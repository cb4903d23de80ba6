package hours

import "errors"

var (
	// ErrHoursNotFound возвращается, когда у бизнеса нет сохраненных часов работы
	ErrHoursNotFound = errors.New("business hours not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
