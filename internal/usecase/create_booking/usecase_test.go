package create_booking

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

// stubStayClient программируемый клиент бэкенда
type stubStayClient struct {
	property     *stayservice.Property
	propertyErr  error
	created      *stayservice.Booking
	createErr    error
	createCalled bool
}

func (s *stubStayClient) GetProperty(ctx context.Context, propertyID int64) (*stayservice.Property, error) {
	if s.propertyErr != nil {
		return nil, s.propertyErr
	}
	return s.property, nil
}

func (s *stubStayClient) CreateBooking(ctx context.Context, propertyID, userID int64, r domain.DateRange) (*stayservice.Booking, error) {
	s.createCalled = true
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func testProperty(bookings ...stayservice.Booking) *stayservice.Property {
	return &stayservice.Property{
		ID:            10,
		Title:         "Квартира у моря",
		LocationName:  "Сочи",
		PricePerNight: 100.0,
		Owner:         stayservice.Owner{ID: 5, Name: "Анна"},
		Bookings:      bookings,
	}
}

func newTestUseCase(client *stubStayClient, today time.Time) (*UseCase, *bookingcache.Repository) {
	cache := bookingcache.NewRepository()
	calc := pricing.NewCalculator(domain.DefaultCleaningFeePercent, domain.DefaultServiceFeePercent)

	uc := NewUseCase(cache, client, calc, nopLogger{})
	uc.timeProvider = fixedTime{today}
	return uc, cache
}

func TestCreateBooking_Success(t *testing.T) {
	client := &stubStayClient{
		property: testProperty(),
		created: &stayservice.Booking{
			ID:         1,
			PropertyID: 10,
			UserID:     2,
			StartDate:  "2025-03-01",
			EndDate:    "2025-03-05",
			Status:     "confirmed",
		},
	}
	uc, cache := newTestUseCase(client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")
	resp, err := uc.Execute(context.Background(), &Request{UserID: 2, PropertyID: 10, Range: rng})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.Booking.ID)
	assert.Equal(t, 4, resp.Price.Nights)
	assert.Equal(t, domain.Money(40000), resp.Price.BaseTotal)
	assert.Equal(t, domain.Money(42000), resp.Price.GrandTotal)

	// бронирование попало в кэш
	cached, err := cache.GetBooking(1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cached.PropertyID)
}

func TestCreateBooking_RangeConflicts(t *testing.T) {
	today := day(2025, 1, 1)

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"invalid ordering", "2025-03-05", "2025-03-01", availability.ErrInvalidOrdering},
		{"equal endpoints", "2025-03-01", "2025-03-01", availability.ErrInvalidOrdering},
		{"check-in in the past", "2024-12-20", "2025-03-01", availability.ErrPastDate},
		{"overlaps existing booking", "2025-03-12", "2025-03-18", availability.ErrDateOccupied},
		{"check-in on turnover day", "2025-03-15", "2025-03-18", availability.ErrDateOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubStayClient{
				property: testProperty(stayservice.Booking{
					ID: 7, PropertyID: 10, UserID: 3,
					StartDate: "2025-03-10", EndDate: "2025-03-15",
				}),
			}
			uc, _ := newTestUseCase(client, today)

			rng, err := domain.ParseDateRange(tt.start, tt.end)
			require.NoError(t, err)

			_, err = uc.Execute(context.Background(), &Request{UserID: 2, PropertyID: 10, Range: rng})
			assert.ErrorIs(t, err, tt.wantErr)

			// до бэкенда мутация не дошла
			assert.False(t, client.createCalled)
		})
	}
}

func TestCreateBooking_PropertyNotFound(t *testing.T) {
	client := &stubStayClient{propertyErr: stayservice.ErrPropertyNotFound}
	uc, _ := newTestUseCase(client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, PropertyID: 99, Range: rng})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestCreateBooking_BackendRejectsCacheUntouched(t *testing.T) {
	client := &stubStayClient{
		property:  testProperty(),
		createErr: stayservice.ErrConflictRejected,
	}
	uc, cache := newTestUseCase(client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, PropertyID: 10, Range: rng})
	assert.ErrorIs(t, err, stayservice.ErrConflictRejected)

	// подтверждения не было, кэш не изменился
	bookings, cacheErr := cache.GetByProperty(10)
	require.NoError(t, cacheErr)
	assert.Empty(t, bookings)
}

func TestCreateBooking_BackendUnavailableCacheUntouched(t *testing.T) {
	client := &stubStayClient{
		property:  testProperty(),
		createErr: stayservice.ErrServiceUnavailable,
	}
	uc, cache := newTestUseCase(client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, PropertyID: 10, Range: rng})
	assert.ErrorIs(t, err, stayservice.ErrServiceUnavailable)

	bookings, cacheErr := cache.GetByProperty(10)
	require.NoError(t, cacheErr)
	assert.Empty(t, bookings)
}

func TestCreateBooking_InvalidInput(t *testing.T) {
	client := &stubStayClient{property: testProperty()}
	uc, _ := newTestUseCase(client, day(2025, 1, 1))
	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero user", &Request{UserID: 0, PropertyID: 10, Range: rng}},
		{"zero property", &Request{UserID: 2, PropertyID: 0, Range: rng}},
		{"empty range", &Request{UserID: 2, PropertyID: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateBooking_UsesCachedPropertyOnRepeat(t *testing.T) {
	client := &stubStayClient{
		property: testProperty(),
		created: &stayservice.Booking{
			ID: 1, PropertyID: 10, UserID: 2,
			StartDate: "2025-03-01", EndDate: "2025-03-05",
		},
	}
	uc, cache := newTestUseCase(client, day(2025, 1, 1))

	rng, _ := domain.ParseDateRange("2025-03-01", "2025-03-05")
	_, err := uc.Execute(context.Background(), &Request{UserID: 2, PropertyID: 10, Range: rng})
	require.NoError(t, err)

	// второй запрос обслуживается кэшем: бэкенд с недоступным GetProperty
	// не мешает, а занятые дни первого бронирования видны
	client.propertyErr = stayservice.ErrServiceUnavailable

	rng2, _ := domain.ParseDateRange("2025-03-03", "2025-03-08")
	_, err = uc.Execute(context.Background(), &Request{UserID: 3, PropertyID: 10, Range: rng2})
	assert.ErrorIs(t, err, availability.ErrDateOccupied)

	assert.True(t, cache.HasProperty(10))
}
