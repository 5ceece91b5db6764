package bookingcache

import "errors"

var (
	// ErrPropertyNotCached возвращается, когда объект ещё не загружен в кэш
	ErrPropertyNotCached = errors.New("bookingcache: property not cached")

	// ErrBookingNotFound возвращается, когда бронирование не найдено в кэше
	ErrBookingNotFound = errors.New("bookingcache: booking not found")

	// ErrDuplicateBooking возвращается при попытке вставить бронирование с уже занятым ID
	ErrDuplicateBooking = errors.New("bookingcache: booking id already present")

	// ErrConflictingRange возвращается, когда вставка нарушила бы инвариант
	// непересечения бронирований одного объекта
	ErrConflictingRange = errors.New("bookingcache: range overlaps an existing booking")
)
