package edit_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	editBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/edit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidOrdering    = "дата выезда должна быть позже даты заезда"
	msgPastDate           = "дата заезда не может быть в прошлом"
	msgDateOccupied       = "выбранные даты заняты"
	msgBookingNotFound    = "бронирование не найдено"
	msgAccessDenied       = "бронирование принадлежит другому пользователю"
	msgPastModification   = "завершившееся проживание нельзя изменить"
	msgConflictRejected   = "бэкенд отклонил изменение: даты уже заняты"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase EditBookingUseCase
	logger  Logger
}

func NewHandler(useCase EditBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
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

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/%d - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/%d - Failed to parse dates: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidOrdering):
			h.logger.Warn("PUT /bookings/%d - Invalid ordering: user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidOrdering)

		case errors.Is(err, availability.ErrPastDate):
			h.logger.Warn("PUT /bookings/%d - Past check-in: user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrDateOccupied):
			h.logger.Warn("PUT /bookings/%d - Dates occupied: user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusConflict, msgDateOccupied)

		case errors.Is(err, editBooking.ErrBookingNotFound), errors.Is(err, stayservice.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/%d - Booking not found: user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, editBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/%d - Access denied: user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, editBooking.ErrPastModification):
			h.logger.Warn("PUT /bookings/%d - Stay already ended: user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgPastModification)

		case errors.Is(err, stayservice.ErrConflictRejected):
			h.logger.Warn("PUT /bookings/%d - Backend conflict: user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusConflict, msgConflictRejected)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("PUT /bookings/%d - Backend unavailable: user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/%d - Invalid input: user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /bookings/%d - Failed to edit booking: user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /bookings/%d - Booking updated successfully: user_id=%d", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
