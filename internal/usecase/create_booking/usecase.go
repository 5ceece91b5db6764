package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	stayClient "github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
)

// UseCase use case для создания бронирования.
// Локальная валидация консультативна (ускоряет обратную связь в форме),
// источником истины остаётся бэкенд: кэш обновляется только после его
// подтверждения, при любой ошибке кэш не меняется
type UseCase struct {
	cache        BookingCache
	stayClient   StayServiceClient
	calculator   PriceCalculator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cache BookingCache,
	stayClient StayServiceClient,
	calculator PriceCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		cache:        cache,
		stayClient:   stayClient,
		calculator:   calculator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, property=%d, range=%s..%s",
		req.UserID, req.PropertyID, req.Range.StartISO(), req.Range.EndISO())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	today := domain.Day(uc.timeProvider.Now())

	// 3. Загружаем объект в кэш, если его там ещё нет (read-through)
	property, err := uc.ensureProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	// 4. Строим индекс занятости из актуального списка бронирований объекта
	bookings, err := uc.cache.GetByProperty(req.PropertyID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read property bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read property bookings: %v", ErrInternal, err)
	}

	idx := availability.BuildIndex(bookings, 0, today)

	// 5. Проверяем кандидатский диапазон: порядок дат, прошлое, занятость
	if err := availability.Validate(req.Range, idx); err != nil {
		uc.logger.Warn("CreateBooking: range rejected: %v", err)
		return nil, err
	}

	// 6. Считаем стоимость по валидному диапазону
	price, err := uc.calculator.Compute(req.Range, property.PricePerNight)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to compute price: %v", err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	// 7. Отправляем мутацию бэкенду. Он может отклонить даты даже после
	// успешной локальной валидации, если другой клиент успел раньше
	created, err := uc.stayClient.CreateBooking(ctx, req.PropertyID, req.UserID, req.Range)
	if err != nil {
		if errors.Is(err, stayClient.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found on backend", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Warn("CreateBooking: backend rejected mutation: %v", err)
		return nil, err
	}

	booking, err := created.ToDomain()
	if err != nil {
		uc.logger.Error("CreateBooking: backend returned invalid booking: %v", err)
		return nil, fmt.Errorf("%w: backend returned invalid booking: %v", ErrInternal, err)
	}

	// 8. Мутация подтверждена — вносим запись в каноническую таблицу,
	// оба представления (по объекту и по гостю) видят её атомарно
	if err := uc.cache.Insert(booking); err != nil {
		uc.logger.Error("CreateBooking: failed to cache booking id=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to cache booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", booking.ID)

	return &Response{
		Booking: booking,
		Price:   *price,
	}, nil
}

// ensureProperty возвращает объект из кэша, загружая его из StayService
// при первом обращении
func (uc *UseCase) ensureProperty(ctx context.Context, propertyID int64) (domain.Property, error) {
	if uc.cache.HasProperty(propertyID) {
		return uc.cache.GetProperty(propertyID)
	}

	fetched, err := uc.stayClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, stayClient.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", propertyID)
			return domain.Property{}, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to fetch property id=%d: %v", propertyID, err)
		return domain.Property{}, err
	}

	property, err := fetched.ToDomain()
	if err != nil {
		uc.logger.Error("CreateBooking: invalid property payload id=%d: %v", propertyID, err)
		return domain.Property{}, fmt.Errorf("%w: invalid property payload: %v", ErrInternal, err)
	}

	uc.cache.PutProperty(property)
	return uc.cache.GetProperty(propertyID)
}
