package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotDelete возвращается при попытке удалить идущую аренду
	ErrCannotDelete = errors.New("running reservation cannot be deleted")

	// ErrCannotStart возвращается, когда аренду нельзя запустить
	ErrCannotStart = errors.New("reservation cannot be started")

	// ErrCannotFinish возвращается, когда аренду нельзя завершить
	ErrCannotFinish = errors.New("reservation cannot be finished")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
