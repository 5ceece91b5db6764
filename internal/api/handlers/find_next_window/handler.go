package find_next_window

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	findNextWindow "github.com/m04kA/SMC-StayBookingService/internal/usecase/find_next_window"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidNights      = "параметр nights обязателен и должен быть положительным числом"
	msgPropertyNotFound   = "объект не найден"
	msgNoAvailability     = "свободное окно в пределах горизонта поиска не найдено"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase FindNextWindowUseCase
	logger  Logger
}

func NewHandler(useCase FindNextWindowUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/next-window?nights=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	nights, err := strconv.Atoi(r.URL.Query().Get("nights"))
	if err != nil || nights <= 0 {
		handlers.RespondBadRequest(w, msgInvalidNights)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &findNextWindow.Request{
		PropertyID:   propertyID,
		WindowNights: nights,
	})
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrNoAvailabilityFound):
			h.logger.Info("GET /properties/%d/next-window - No window found: nights=%d", propertyID, nights)
			handlers.RespondNotFound(w, msgNoAvailability)

		case errors.Is(err, findNextWindow.ErrPropertyNotFound), errors.Is(err, stayservice.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/next-window - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, findNextWindow.ErrInvalidInput):
			h.logger.Warn("GET /properties/%d/next-window - Invalid input: nights=%d", propertyID, nights)
			handlers.RespondBadRequest(w, msgInvalidNights)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("GET /properties/%d/next-window - Backend unavailable", propertyID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /properties/%d/next-window - Failed to find window: nights=%d, error=%v",
				propertyID, nights, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(propertyID, resp))
}
