package availability

import "errors"

var (
	// ErrInvalidOrdering возвращается, когда дата выезда не позже даты заезда
	ErrInvalidOrdering = errors.New("availability: check-out must be after check-in")

	// ErrPastDate возвращается, когда дата заезда в прошлом
	ErrPastDate = errors.New("availability: check-in date is in the past")

	// ErrDateOccupied возвращается, когда хотя бы один день диапазона занят
	ErrDateOccupied = errors.New("availability: date range includes an occupied day")

	// ErrNoAvailabilityFound возвращается, когда в пределах горизонта сканирования нет свободного окна
	ErrNoAvailabilityFound = errors.New("availability: no free window within scan horizon")
)
