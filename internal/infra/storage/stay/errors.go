package stay

import "errors"

var (
	// ErrStayDurationNotFound возвращается, когда запись каталога не найдена
	ErrStayDurationNotFound = errors.New("stay.repository: stay duration not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("stay.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("stay.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("stay.repository: failed to scan row")
)
