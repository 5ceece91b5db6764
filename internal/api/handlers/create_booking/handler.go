package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	createBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidOrdering    = "дата выезда должна быть позже даты заезда"
	msgPastDate           = "дата заезда не может быть в прошлом"
	msgDateOccupied       = "выбранные даты заняты"
	msgPropertyNotFound   = "объект не найден"
	msgConflictRejected   = "бэкенд отклонил бронирование: даты уже заняты"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "заголовок X-User-ID обязателен")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidOrdering):
			h.logger.Warn("POST /bookings - Invalid ordering: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidOrdering)

		case errors.Is(err, availability.ErrPastDate):
			h.logger.Warn("POST /bookings - Past check-in: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, availability.ErrDateOccupied):
			h.logger.Warn("POST /bookings - Dates occupied: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgDateOccupied)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, stayservice.ErrConflictRejected):
			h.logger.Warn("POST /bookings - Backend conflict: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgConflictRejected)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("POST /bookings - Backend unavailable: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, property_id=%d", userID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, property_id=%d, error=%v",
				userID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, property_id=%d",
		result.Booking.ID, userID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
