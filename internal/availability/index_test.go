package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func booking(id, propertyID int64, start, end time.Time) domain.Booking {
	return domain.Booking{
		ID:         id,
		PropertyID: propertyID,
		GuestID:    1,
		Range:      domain.DateRange{Start: start, End: end},
		Status:     domain.StatusConfirmed,
	}
}

func TestBuildIndex_MarksDaysInclusive(t *testing.T) {
	today := day(2025, 1, 1)
	bookings := []domain.Booking{
		booking(1, 10, day(2025, 3, 1), day(2025, 3, 5)),
	}

	idx := BuildIndex(bookings, 0, today)

	// занят весь диапазон, включая день выезда
	assert.True(t, idx.IsOccupied(day(2025, 3, 1)))
	assert.True(t, idx.IsOccupied(day(2025, 3, 3)))
	assert.True(t, idx.IsOccupied(day(2025, 3, 5)))

	assert.False(t, idx.IsOccupied(day(2025, 2, 28)))
	assert.False(t, idx.IsOccupied(day(2025, 3, 6)))
}

func TestBuildIndex_ExcludesOwnBooking(t *testing.T) {
	today := day(2025, 1, 1)
	bookings := []domain.Booking{
		booking(1, 10, day(2025, 3, 1), day(2025, 3, 5)),
		booking(2, 10, day(2025, 3, 10), day(2025, 3, 12)),
	}

	idx := BuildIndex(bookings, 1, today)

	// дни исключённого бронирования свободны, чужие остаются занятыми
	assert.False(t, idx.IsOccupied(day(2025, 3, 3)))
	assert.True(t, idx.IsOccupied(day(2025, 3, 11)))
}

func TestIndex_PastDaysAlwaysOccupied(t *testing.T) {
	today := day(2025, 6, 15)
	idx := BuildIndex(nil, 0, today)

	assert.True(t, idx.IsOccupied(day(2025, 6, 14)))
	assert.True(t, idx.IsOccupied(day(2024, 12, 31)))
	assert.False(t, idx.IsOccupied(today))
	assert.False(t, idx.IsOccupied(day(2025, 6, 16)))
}

func TestIndex_OccupiedDays(t *testing.T) {
	today := day(2025, 1, 1)
	bookings := []domain.Booking{
		booking(1, 10, day(2025, 3, 1), day(2025, 3, 3)),
		booking(2, 10, day(2025, 3, 10), day(2025, 3, 11)),
	}

	idx := BuildIndex(bookings, 0, today)

	days := idx.OccupiedDays(day(2025, 3, 1), day(2025, 3, 31))

	var got []string
	for _, d := range days {
		got = append(got, d.Format(domain.DateFormat))
	}
	assert.Equal(t, []string{
		"2025-03-01", "2025-03-02", "2025-03-03",
		"2025-03-10", "2025-03-11",
	}, got)
}
