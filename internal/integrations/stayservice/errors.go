package stayservice

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект не найден
	ErrPropertyNotFound = errors.New("stayservice client: property not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("stayservice client: user not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("stayservice client: booking not found")

	// ErrConflictRejected возвращается, когда бэкенд отклонил мутацию из-за
	// конфликта дат. Локальная валидация консультативна: бэкенд мог принять
	// конкурирующее бронирование после последней синхронизации снапшота
	ErrConflictRejected = errors.New("stayservice client: booking rejected by backend due to date conflict")

	// ErrServiceUnavailable возвращается, когда StayService недоступен или
	// отвечает серверной ошибкой
	ErrServiceUnavailable = errors.New("stayservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stayservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("stayservice client: invalid response")
)
