package rentaloption

import "errors"

var (
	// ErrOptionNotFound возвращается, когда опция аренды не найдена
	ErrOptionNotFound = errors.New("rentaloption.repository: rental option not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rentaloption.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rentaloption.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rentaloption.repository: failed to scan row")
)
