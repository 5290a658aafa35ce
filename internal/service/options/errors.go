package options

import "errors"

var (
	// ErrOptionNotFound возвращается, когда опция аренды не найдена
	ErrOptionNotFound = errors.New("rental option not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
