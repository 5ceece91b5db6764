package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	stayClient "github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
)

// UseCase use case предварительного расчёта стоимости: детализация цены
// для формы бронирования до отправки мутации. Расчёт производный,
// нигде не сохраняется
type UseCase struct {
	cache      BookingCache
	stayClient StayServiceClient
	calculator PriceCalculator
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cache BookingCache,
	stayClient StayServiceClient,
	calculator PriceCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		cache:      cache,
		stayClient: stayClient,
		calculator: calculator,
		logger:     logger,
	}
}

// Execute выполняет use case расчёта стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: property=%d, range=%s..%s",
		req.PropertyID, req.Range.StartISO(), req.Range.EndISO())

	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	property, err := uc.ensureProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	price, err := uc.calculator.Compute(req.Range, property.PricePerNight)
	if err != nil {
		uc.logger.Warn("QuoteBooking: range rejected: %v", err)
		return nil, err
	}

	return &Response{
		PricePerNight: property.PricePerNight,
		Price:         *price,
	}, nil
}

func (uc *UseCase) ensureProperty(ctx context.Context, propertyID int64) (domain.Property, error) {
	if uc.cache.HasProperty(propertyID) {
		return uc.cache.GetProperty(propertyID)
	}

	fetched, err := uc.stayClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, stayClient.ErrPropertyNotFound) {
			uc.logger.Warn("QuoteBooking: property id=%d not found", propertyID)
			return domain.Property{}, ErrPropertyNotFound
		}
		uc.logger.Error("QuoteBooking: failed to fetch property id=%d: %v", propertyID, err)
		return domain.Property{}, err
	}

	property, err := fetched.ToDomain()
	if err != nil {
		uc.logger.Error("QuoteBooking: invalid property payload id=%d: %v", propertyID, err)
		return domain.Property{}, fmt.Errorf("%w: invalid property payload: %v", ErrInternal, err)
	}

	uc.cache.PutProperty(property)
	return uc.cache.GetProperty(propertyID)
}
