package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrCannotBeEdited возвращается, когда аренда уже началась или завершилась
	ErrCannotBeEdited = errors.New("update_reservation: reservation can no longer be edited")

	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("update_reservation: location not found")

	// ErrRentalOptionNotFound возвращается, когда опция аренды не найдена
	ErrRentalOptionNotFound = errors.New("update_reservation: rental option not found")

	// ErrRentalOptionUnavailable возвращается, когда опция скрыта (soft delete)
	ErrRentalOptionUnavailable = errors.New("update_reservation: rental option is not available")

	// ErrJetSkiNotFound возвращается, когда один из гидроциклов не найден
	ErrJetSkiNotFound = errors.New("update_reservation: jetski not found")

	// ErrJetSkiNotBookable возвращается, когда гидроцикл не в статусе AVAILABLE
	ErrJetSkiNotBookable = errors.New("update_reservation: jetski is not bookable")

	// ErrNotEnoughJetSkis возвращается, когда гидроциклов меньше минимума опции
	ErrNotEnoughJetSkis = errors.New("update_reservation: not enough jetskis for option type")

	// ErrJetSkisNotAvailable возвращается при конфликте хотя бы с одной бронью
	ErrJetSkisNotAvailable = errors.New("update_reservation: jetskis are not available for requested interval")

	// ErrOutsideOperatingHours возвращается, когда интервал выходит за рабочие часы
	ErrOutsideOperatingHours = errors.New("update_reservation: interval is outside operating hours")

	// ErrReservationInPast возвращается при попытке перенести бронь на прошедшее время
	ErrReservationInPast = errors.New("update_reservation: reservation time is in the past")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
