package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrJetSkiNotFound возвращается, когда один из запрошенных гидроциклов не найден
	ErrJetSkiNotFound = errors.New("check_availability: jetski not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
