package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StayBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	createBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createBooking.Response
	err  error
	got  *createBooking.Request
}

func (s *stubUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func newRouter(uc *stubUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, router *mux.Router, userID string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewBufferString(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateBookingHandler_Success(t *testing.T) {
	rng, err := domain.ParseDateRange("2025-03-01", "2025-03-05")
	require.NoError(t, err)

	uc := &stubUseCase{
		resp: &createBooking.Response{
			Booking: domain.Booking{
				ID: 1, PropertyID: 10, GuestID: 2,
				Range:  rng,
				Status: domain.StatusConfirmed,
			},
			Price: domain.PriceBreakdown{
				Nights:      4,
				BaseTotal:   40000,
				CleaningFee: 1200,
				ServiceFee:  800,
				GrandTotal:  42000,
			},
		},
	}
	router := newRouter(uc)

	rec := doRequest(t, router, "2",
		`{"propertyId": 10, "startDate": "2025-03-01", "endDate": "2025-03-05"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2025-03-01", resp.StartDate)
	assert.Equal(t, 4, resp.Price.Nights)
	assert.Equal(t, 420.0, resp.Price.GrandTotal)

	// userID взят из заголовка, не из тела
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(2), uc.got.UserID)
}

func TestCreateBookingHandler_MissingAuth(t *testing.T) {
	router := newRouter(&stubUseCase{})

	rec := doRequest(t, router, "",
		`{"propertyId": 10, "startDate": "2025-03-01", "endDate": "2025-03-05"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateBookingHandler_MalformedBody(t *testing.T) {
	router := newRouter(&stubUseCase{})

	rec := doRequest(t, router, "2", `{"propertyId": }`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandler_BadDate(t *testing.T) {
	router := newRouter(&stubUseCase{})

	rec := doRequest(t, router, "2",
		`{"propertyId": 10, "startDate": "01.03.2025", "endDate": "2025-03-05"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid ordering", availability.ErrInvalidOrdering, http.StatusBadRequest},
		{"past date", availability.ErrPastDate, http.StatusBadRequest},
		{"dates occupied", availability.ErrDateOccupied, http.StatusConflict},
		{"property not found", createBooking.ErrPropertyNotFound, http.StatusNotFound},
		{"backend conflict", stayservice.ErrConflictRejected, http.StatusConflict},
		{"backend unavailable", stayservice.ErrServiceUnavailable, http.StatusBadGateway},
		{"invalid input", createBooking.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&stubUseCase{err: tt.err})

			rec := doRequest(t, router, "2",
				`{"propertyId": 10, "startDate": "2025-03-01", "endDate": "2025-03-05"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
