package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у бизнеса
	ErrServiceNotFound = errors.New("service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден у бизнеса
	ErrStaffNotFound = errors.New("staff member not found")

	// ErrInUse возвращается при удалении услуги или сотрудника, на которых есть записи
	ErrInUse = errors.New("referenced by appointments")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
