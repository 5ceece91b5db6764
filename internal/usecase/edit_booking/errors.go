package edit_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в кэше
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому гостю
	ErrAccessDenied = errors.New("edit_booking: booking belongs to another guest")

	// ErrPastModification возвращается при попытке изменить завершившееся бронирование
	ErrPastModification = errors.New("edit_booking: stay has already ended")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
