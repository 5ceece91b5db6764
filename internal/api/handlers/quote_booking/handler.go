package quote_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StayBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	"github.com/m04kA/SMC-StayBookingService/internal/pricing"
	quoteBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/quote_booking"
)

const (
	msgInvalidPropertyID  = "некорректный ID объекта"
	msgInvalidDates       = "параметры startDate и endDate обязательны в формате YYYY-MM-DD, заезд раньше выезда"
	msgPropertyNotFound   = "объект не найден"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase QuoteBookingUseCase
	logger  Logger
}

func NewHandler(useCase QuoteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/quote?startDate=...&endDate=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	rng, err := domain.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	req := &quoteBooking.Request{
		PropertyID: propertyID,
		Range:      rng,
	}

	resp, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, quoteBooking.ErrPropertyNotFound), errors.Is(err, stayservice.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/%d/quote - Property not found", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, quoteBooking.ErrInvalidInput), errors.Is(err, pricing.ErrInvalidRange):
			h.logger.Warn("GET /properties/%d/quote - Invalid range: start=%s, end=%s",
				propertyID, query.Get("startDate"), query.Get("endDate"))
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, stayservice.ErrServiceUnavailable):
			h.logger.Error("GET /properties/%d/quote - Backend unavailable", propertyID)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)

		default:
			h.logger.Error("GET /properties/%d/quote - Failed to compute quote: error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(req, resp))
}
