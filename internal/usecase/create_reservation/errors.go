package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("create_reservation: location not found")

	// ErrRentalOptionNotFound возвращается, когда опция аренды не найдена
	ErrRentalOptionNotFound = errors.New("create_reservation: rental option not found")

	// ErrRentalOptionUnavailable возвращается, когда опция скрыта (soft delete)
	ErrRentalOptionUnavailable = errors.New("create_reservation: rental option is not available")

	// ErrJetSkiNotFound возвращается, когда один из гидроциклов не найден
	ErrJetSkiNotFound = errors.New("create_reservation: jetski not found")

	// ErrJetSkiNotBookable возвращается, когда гидроцикл не в статусе AVAILABLE
	ErrJetSkiNotBookable = errors.New("create_reservation: jetski is not bookable")

	// ErrNotEnoughJetSkis возвращается, когда гидроциклов меньше минимума опции
	ErrNotEnoughJetSkis = errors.New("create_reservation: not enough jetskis for option type")

	// ErrJetSkisNotAvailable возвращается при конфликте хотя бы с одной бронью.
	// Бронь all-or-nothing: частичное занятие флота невозможно.
	ErrJetSkisNotAvailable = errors.New("create_reservation: jetskis are not available for requested interval")

	// ErrOutsideOperatingHours возвращается, когда интервал выходит за рабочие часы
	ErrOutsideOperatingHours = errors.New("create_reservation: interval is outside operating hours")

	// ErrReservationInPast возвращается при попытке забронировать прошедшее время
	ErrReservationInPast = errors.New("create_reservation: reservation time is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
