package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена у бизнеса
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден у бизнеса
	ErrStaffNotFound = errors.New("catalog.repository: staff member not found")

	// ErrInUse возвращается при удалении услуги или сотрудника, на которых есть записи
	ErrInUse = errors.New("catalog.repository: referenced by appointments")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
