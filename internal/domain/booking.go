package domain

import "time"

// BookingStatus represents the status of a booking as reported by the backend
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
)

// Booking represents a guest's stay at a property. The backend owns the
// record; instances held here are cached copies of its last confirmed state.
type Booking struct {
	ID         int64
	PropertyID int64
	GuestID    int64
	Range      DateRange
	Status     BookingStatus
}

// HasBegun reports whether the stay's check-in day is already in the past
// as of the given day. A begun booking can no longer be deleted.
func (b *Booking) HasBegun(today time.Time) bool {
	return b.Range.Start.Before(Day(today))
}

// HasEnded reports whether the stay's check-out day is already in the past
// as of the given day. An ended booking can no longer be edited.
func (b *Booking) HasEnded(today time.Time) bool {
	return b.Range.End.Before(Day(today))
}
