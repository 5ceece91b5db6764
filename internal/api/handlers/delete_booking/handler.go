package delete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	bookingsService "github.com/m04kA/SMC-StayBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "бронирование принадлежит другому пользователю"
	msgPastModification   = "начавшееся проживание нельзя отменить"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "заголовок X-User-ID обязателен")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID, userID); err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound), errors.Is(err, stayservice.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Booking not found: user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%d - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrPastModification):
			h.logger.Warn("DELETE /bookings/%d - Stay already begun: user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgPastModification)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("DELETE /bookings/%d - Backend unavailable: user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/%d - Invalid input: user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to delete booking: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Booking deleted successfully: user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
