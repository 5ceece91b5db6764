package stayservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, 5*time.Second, nopLogger{}), srv
}

func TestClient_GetProperty(t *testing.T) {
	t.Run("decodes payload", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/properties/10", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(Property{
				ID:            10,
				Title:         "Квартира у моря",
				LocationName:  "Сочи",
				PricePerNight: 99.5,
				Bookings: []Booking{
					{ID: 1, PropertyID: 10, UserID: 2, StartDate: "2025-03-01", EndDate: "2025-03-05"},
				},
			})
		})
		defer srv.Close()

		property, err := client.GetProperty(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), property.ID)
		require.Len(t, property.Bookings, 1)

		p, err := property.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, domain.Money(9950), p.PricePerNight)
	})

	t.Run("404 maps to sentinel", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		_, err := client.GetProperty(context.Background(), 99)
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	})

	t.Run("500 maps to unavailable", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		defer srv.Close()

		_, err := client.GetProperty(context.Background(), 10)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("unreachable host maps to unavailable", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
		srv.Close()

		_, err := client.GetProperty(context.Background(), 10)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})
}

func TestClient_CreateBooking(t *testing.T) {
	rng, err := domain.ParseDateRange("2025-03-01", "2025-03-05")
	require.NoError(t, err)

	t.Run("sends body and decodes created booking", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/bookings", r.URL.Path)

			var body createBookingRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(10), body.PropertyID)
			assert.Equal(t, "2025-03-01", body.StartDate)
			assert.Equal(t, "2025-03-05", body.EndDate)

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(Booking{
				ID: 1, PropertyID: 10, UserID: 2,
				StartDate: body.StartDate, EndDate: body.EndDate,
				Status: "confirmed",
			})
		})
		defer srv.Close()

		booking, err := client.CreateBooking(context.Background(), 10, 2, rng)
		require.NoError(t, err)
		assert.Equal(t, int64(1), booking.ID)
	})

	t.Run("409 maps to conflict", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		defer srv.Close()

		_, err := client.CreateBooking(context.Background(), 10, 2, rng)
		assert.ErrorIs(t, err, ErrConflictRejected)
	})
}

func TestClient_UpdateBooking(t *testing.T) {
	rng, err := domain.ParseDateRange("2025-03-02", "2025-03-06")
	require.NoError(t, err)

	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/bookings/1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Booking{
			ID: 1, PropertyID: 10, UserID: 2,
			StartDate: "2025-03-02", EndDate: "2025-03-06",
		})
	})
	defer srv.Close()

	booking, err := client.UpdateBooking(context.Background(), 1, rng)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", booking.StartDate)
}

func TestClient_DeleteBooking(t *testing.T) {
	t.Run("204 accepted", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			w.WriteHeader(http.StatusNoContent)
		})
		defer srv.Close()

		assert.NoError(t, client.DeleteBooking(context.Background(), 1))
	})

	t.Run("404 maps to sentinel", func(t *testing.T) {
		client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		defer srv.Close()

		assert.ErrorIs(t, client.DeleteBooking(context.Background(), 1), ErrBookingNotFound)
	})
}

func TestBooking_ToDomain(t *testing.T) {
	t.Run("empty status defaults to confirmed", func(t *testing.T) {
		b := Booking{ID: 1, PropertyID: 10, UserID: 2, StartDate: "2025-03-01", EndDate: "2025-03-05"}

		got, err := b.ToDomain()
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, got.Status)
		assert.Equal(t, 4, got.Range.Nights())
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		b := Booking{ID: 1, StartDate: "01.03.2025", EndDate: "2025-03-05"}

		_, err := b.ToDomain()
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
