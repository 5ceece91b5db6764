package edit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/infra/storage/bookingcache"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	"github.com/m04kA/SMC-StayBookingService/internal/pricing"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubStayClient struct {
	updateErr    error
	updateCalled bool
}

func (s *stubStayClient) UpdateBooking(ctx context.Context, bookingID int64, r domain.DateRange) (*stayservice.Booking, error) {
	s.updateCalled = true
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &stayservice.Booking{
		ID:        bookingID,
		StartDate: r.StartISO(),
		EndDate:   r.EndISO(),
		Status:    "confirmed",
	}, nil
}

func seedCache(t *testing.T) *bookingcache.Repository {
	t.Helper()

	cache := bookingcache.NewRepository()
	cache.PutProperty(domain.Property{
		ID:            10,
		Title:         "Домик в горах",
		LocationName:  "Красная Поляна",
		PricePerNight: domain.MoneyFromFloat(100.0),
		Bookings: []domain.Booking{
			{
				ID: 1, PropertyID: 10, GuestID: 2,
				Range:  domain.DateRange{Start: day(2025, 3, 1), End: day(2025, 3, 5)},
				Status: domain.StatusConfirmed,
			},
			{
				ID: 2, PropertyID: 10, GuestID: 3,
				Range:  domain.DateRange{Start: day(2025, 3, 10), End: day(2025, 3, 12)},
				Status: domain.StatusConfirmed,
			},
		},
	})
	return cache
}

func newTestUseCase(t *testing.T, client *stubStayClient, today time.Time) (*UseCase, *bookingcache.Repository) {
	t.Helper()

	cache := seedCache(t)
	calc := pricing.NewCalculator(domain.DefaultCleaningFeePercent, domain.DefaultServiceFeePercent)

	uc := NewUseCase(cache, client, calc, nopLogger{})
	uc.timeProvider = fixedTime{today}
	return uc, cache
}

func TestEditBooking_Success(t *testing.T) {
	client := &stubStayClient{}
	uc, cache := newTestUseCase(t, client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-02", "2025-03-06")
	resp, err := uc.Execute(context.Background(), &Request{UserID: 2, BookingID: 1, Range: rng})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Booking.ID)
	assert.Equal(t, "2025-03-02", resp.Booking.Range.StartISO())
	assert.Equal(t, 4, resp.Price.Nights)

	cached, err := cache.GetBooking(1)
	require.NoError(t, err)
	assert.Equal(t, day(2025, 3, 6), cached.Range.End)
}

func TestEditBooking_SameDatesAccepted(t *testing.T) {
	// без исключения собственного бронирования из индекса сохранение
	// без изменений отклонялось бы как пересечение с самим собой
	client := &stubStayClient{}
	uc, _ := newTestUseCase(t, client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")
	resp, err := uc.Execute(context.Background(), &Request{UserID: 2, BookingID: 1, Range: rng})
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.Booking.Range.StartISO())
}

func TestEditBooking_ConflictWithNeighbour(t *testing.T) {
	client := &stubStayClient{}
	uc, cache := newTestUseCase(t, client, day(2025, 1, 1))

	// пересечение с бронированием 2 (10..12 марта)
	rng, _ := domain.ParseDateRange("2025-03-08", "2025-03-11")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, BookingID: 1, Range: rng})
	assert.ErrorIs(t, err, availability.ErrDateOccupied)

	assert.False(t, client.updateCalled)

	// исходный диапазон на месте
	cached, cacheErr := cache.GetBooking(1)
	require.NoError(t, cacheErr)
	assert.Equal(t, day(2025, 3, 1), cached.Range.Start)
}

func TestEditBooking_NotFound(t *testing.T) {
	uc, _ := newTestUseCase(t, &stubStayClient{}, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-02", "2025-03-06")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, BookingID: 99, Range: rng})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestEditBooking_AccessDenied(t *testing.T) {
	uc, _ := newTestUseCase(t, &stubStayClient{}, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-02", "2025-03-06")
	_, err := uc.Execute(context.Background(), &Request{UserID: 5, BookingID: 1, Range: rng})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestEditBooking_EndedStayRejected(t *testing.T) {
	// "сегодня" после выезда: проживание завершилось, менять нечего
	uc, _ := newTestUseCase(t, &stubStayClient{}, day(2025, 6, 1))

	rng, _ := domain.ParseDateRange("2025-06-10", "2025-06-14")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, BookingID: 1, Range: rng})
	assert.ErrorIs(t, err, ErrPastModification)
}

func TestEditBooking_BackendRejectsCacheUntouched(t *testing.T) {
	client := &stubStayClient{updateErr: stayservice.ErrConflictRejected}
	uc, cache := newTestUseCase(t, client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-02", "2025-03-06")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, BookingID: 1, Range: rng})
	assert.ErrorIs(t, err, stayservice.ErrConflictRejected)

	cached, cacheErr := cache.GetBooking(1)
	require.NoError(t, cacheErr)
	assert.Equal(t, day(2025, 3, 1), cached.Range.Start)
	assert.Equal(t, day(2025, 3, 5), cached.Range.End)
}
