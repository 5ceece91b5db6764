package get_occupied_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	bookingsService "github.com/m04kA/SMC-StayBookingService/internal/service/bookings"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidExcludeID   = "некорректный excludeBookingId"
	msgPropertyNotFound   = "объект не найден"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability?excludeBookingId=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	var excludeBookingID int64
	if raw := r.URL.Query().Get("excludeBookingId"); raw != "" {
		excludeBookingID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || excludeBookingID <= 0 {
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
	}

	resp, err := h.service.GetOccupiedDates(r.Context(), propertyID, excludeBookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrPropertyNotFound), errors.Is(err, stayservice.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/availability - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("GET /properties/%d/availability - Backend unavailable", propertyID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /properties/%d/availability - Failed to build calendar: error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}
