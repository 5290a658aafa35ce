package authservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в AuthService
	ErrUserNotFound = errors.New("authservice: user not found")

	// ErrAccessDenied возвращается, когда роль пользователя не дает доступа к операции
	ErrAccessDenied = errors.New("authservice: access denied")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("authservice client: invalid response")

	// ErrServiceUnavailable возвращается, когда AuthService недоступен.
	// Проверки доступа при этом fail closed: операция отклоняется.
	ErrServiceUnavailable = errors.New("authservice unavailable")
)
