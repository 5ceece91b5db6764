package find_next_window

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	stayClient "github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
)

// UseCase use case поиска ближайшего свободного окна для подсказки дат
// бронирования по умолчанию
type UseCase struct {
	cache        BookingCache
	stayClient   StayServiceClient
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// horizonDays ограничивает глубину сканирования от "сегодня"
func NewUseCase(
	cache BookingCache,
	stayClient StayServiceClient,
	horizonDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		cache:        cache,
		stayClient:   stayClient,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case поиска свободного окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextWindow: property=%d, nights=%d", req.PropertyID, req.WindowNights)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindNextWindow: validation failed: %v", err)
		return nil, err
	}

	today := domain.Day(uc.timeProvider.Now())

	if err := uc.ensureProperty(ctx, req.PropertyID); err != nil {
		return nil, err
	}

	bookings, err := uc.cache.GetByProperty(req.PropertyID)
	if err != nil {
		uc.logger.Error("FindNextWindow: failed to read property bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read property bookings: %v", ErrInternal, err)
	}

	idx := availability.BuildIndex(bookings, 0, today)

	window, err := availability.FindNextWindow(idx, req.WindowNights, uc.horizonDays)
	if err != nil {
		uc.logger.Warn("FindNextWindow: property=%d has no free window of %d nights within %d days",
			req.PropertyID, req.WindowNights, uc.horizonDays)
		return nil, err
	}

	uc.logger.Info("FindNextWindow: property=%d, suggested window %s..%s",
		req.PropertyID, window.StartISO(), window.EndISO())

	return &Response{Window: window}, nil
}

func (uc *UseCase) ensureProperty(ctx context.Context, propertyID int64) error {
	if uc.cache.HasProperty(propertyID) {
		return nil
	}

	fetched, err := uc.stayClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, stayClient.ErrPropertyNotFound) {
			uc.logger.Warn("FindNextWindow: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		uc.logger.Error("FindNextWindow: failed to fetch property id=%d: %v", propertyID, err)
		return err
	}

	property, err := fetched.ToDomain()
	if err != nil {
		uc.logger.Error("FindNextWindow: invalid property payload id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: invalid property payload: %v", ErrInternal, err)
	}

	uc.cache.PutProperty(property)
	return nil
}
