package get_user_bookings

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
	msgInvalidUserID      = "некорректный ID пользователя"
	msgUserNotFound       = "пользователь не найден"
	msgAccessDenied       = "доступ к бронированиям другого пользователя запрещён"
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

// Handle GET /api/v1/users/{userId}/booked-properties
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "заголовок X-User-ID обязателен")
		return
	}

	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	if userID != authUserID {
		h.logger.Warn("GET /users/%d/booked-properties - Access denied: auth_user_id=%d", userID, authUserID)
		handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)
		return
	}

	resp, err := h.service.GetUserBookedProperties(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrUserNotFound), errors.Is(err, stayservice.ErrUserNotFound):
			h.logger.Warn("GET /users/%d/booked-properties - User not found", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("GET /users/%d/booked-properties - Backend unavailable", userID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /users/%d/booked-properties - Failed to list booked properties: error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(resp))
}
