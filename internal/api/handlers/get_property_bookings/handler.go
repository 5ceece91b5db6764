package get_property_bookings

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

// Handle GET /api/v1/properties/{propertyId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	resp, err := h.service.GetPropertyBookings(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrPropertyNotFound), errors.Is(err, stayservice.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/bookings - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("GET /properties/%d/bookings - Backend unavailable", propertyID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /properties/%d/bookings - Failed to list bookings: error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}
