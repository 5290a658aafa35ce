package jetski

import "errors"

var (
	// ErrJetSkiNotFound возвращается, когда гидроцикл не найден
	ErrJetSkiNotFound = errors.New("jetski.repository: jetski not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("jetski.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("jetski.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("jetski.repository: failed to scan row")
)
