package edit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/infra/storage/bookingcache"
)

// UseCase use case изменения дат бронирования.
// Ключевое отличие от создания: индекс занятости строится с исключением
// самого редактируемого бронирования, иначе его собственные занятые дни
// блокировали бы любое пересекающееся с ними изменение — включая сохранение
// без изменений
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

// Execute выполняет use case изменения дат бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: user=%d, booking=%d, range=%s..%s",
		req.UserID, req.BookingID, req.Range.StartISO(), req.Range.EndISO())

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		return nil, err
	}

	today := domain.Day(uc.timeProvider.Now())

	// 2. Находим бронирование и проверяем права
	booking, err := uc.cache.GetBooking(req.BookingID)
	if err != nil {
		if errors.Is(err, bookingcache.ErrBookingNotFound) {
			uc.logger.Warn("EditBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("EditBooking: cache error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: cache error: %v", ErrInternal, err)
	}

	if booking.GuestID != req.UserID {
		uc.logger.Warn("EditBooking: access denied for user=%d to booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 3. Завершившееся проживание менять нельзя
	if booking.HasEnded(today) {
		uc.logger.Warn("EditBooking: booking id=%d has already ended", req.BookingID)
		return nil, ErrPastModification
	}

	// 4. Строим индекс занятости, исключая редактируемое бронирование:
	// его собственные дни не должны блокировать его же изменение
	bookings, err := uc.cache.GetByProperty(booking.PropertyID)
	if err != nil {
		uc.logger.Error("EditBooking: failed to read property bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to read property bookings: %v", ErrInternal, err)
	}

	idx := availability.BuildIndex(bookings, booking.ID, today)

	// 5. Проверяем новый диапазон
	if err := availability.Validate(req.Range, idx); err != nil {
		uc.logger.Warn("EditBooking: new range rejected: %v", err)
		return nil, err
	}

	// 6. Перерасчитываем стоимость по новому диапазону
	property, err := uc.cache.GetProperty(booking.PropertyID)
	if err != nil {
		uc.logger.Error("EditBooking: property id=%d missing from cache: %v", booking.PropertyID, err)
		return nil, fmt.Errorf("%w: property missing from cache: %v", ErrInternal, err)
	}

	price, err := uc.calculator.Compute(req.Range, property.PricePerNight)
	if err != nil {
		uc.logger.Error("EditBooking: failed to compute price: %v", err)
		return nil, fmt.Errorf("%w: failed to compute price: %v", ErrInternal, err)
	}

	// 7. Подтверждаем мутацию у бэкенда, кэш до подтверждения не трогаем
	if _, err := uc.stayClient.UpdateBooking(ctx, req.BookingID, req.Range); err != nil {
		uc.logger.Warn("EditBooking: backend rejected mutation: %v", err)
		return nil, err
	}

	// 8. Заменяем диапазон в канонической таблице, запись остаётся на месте
	// в обоих представлениях
	updated, err := uc.cache.ReplaceRange(req.BookingID, req.Range)
	if err != nil {
		uc.logger.Error("EditBooking: failed to update cache for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to update cache: %v", ErrInternal, err)
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%d", updated.ID)

	return &Response{
		Booking: updated,
		Price:   *price,
	}, nil
}
