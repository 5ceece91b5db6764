package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StayBookingService/internal/availability"
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/infra/storage/bookingcache"
	stayClient "github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

// Service сервис чтения представлений кэша и удаления бронирований.
// Чтения работают по схеме read-through: при первом обращении данные
// загружаются из StayService и оседают в кэше
type Service struct {
	cache        BookingCache
	stayClient   StayServiceClient
	horizonDays  int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	cache BookingCache,
	stayClient StayServiceClient,
	horizonDays int,
	logger Logger,
) *Service {
	return &Service{
		cache:        cache,
		stayClient:   stayClient,
		horizonDays:  horizonDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetPropertyBookings возвращает плоский список бронирований объекта
func (s *Service) GetPropertyBookings(ctx context.Context, propertyID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetPropertyBookings: property=%d", propertyID)

	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if err := s.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	bookings, err := s.cache.GetByProperty(propertyID)
	if err != nil {
		s.logger.Error("GetPropertyBookings: cache error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: cache error: %v", ErrInternal, err)
	}

	s.logger.Info("GetPropertyBookings: property=%d, %d bookings", propertyID, len(bookings))
	return models.FromDomainBookingList(propertyID, bookings), nil
}

// GetUserBookedProperties возвращает представление гостя: его бронирования,
// сгруппированные по объектам. Профиль всегда перечитывается из StayService,
// чтобы подтянуть бронирования, сделанные с других устройств
func (s *Service) GetUserBookedProperties(ctx context.Context, userID int64) (*models.BookedPropertiesResponse, error) {
	s.logger.Info("GetUserBookedProperties: user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	user, err := s.stayClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, stayClient.ErrUserNotFound) {
			s.logger.Warn("GetUserBookedProperties: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUserBookedProperties: failed to fetch user id=%d: %v", userID, err)
		return nil, err
	}

	props := make([]domain.Property, 0, len(user.BookedProperties))
	for i := range user.BookedProperties {
		p, err := user.BookedProperties[i].ToDomain()
		if err != nil {
			s.logger.Error("GetUserBookedProperties: invalid property payload: %v", err)
			return nil, fmt.Errorf("%w: invalid property payload: %v", ErrInternal, err)
		}
		props = append(props, p)
	}

	s.cache.PutUserProperties(props)

	view := s.cache.GetUserBookedProperties(userID)
	s.logger.Info("GetUserBookedProperties: user=%d, %d properties", userID, len(view))
	return models.FromDomainBookedProperties(userID, view), nil
}

// GetOccupiedDates возвращает календарь занятости объекта от "сегодня" до
// горизонта сканирования. excludeBookingID исключает собственное бронирование
// при редактировании дат (0 = ничего не исключать)
func (s *Service) GetOccupiedDates(ctx context.Context, propertyID, excludeBookingID int64) (*models.OccupiedDatesResponse, error) {
	s.logger.Info("GetOccupiedDates: property=%d, exclude=%d", propertyID, excludeBookingID)

	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if err := s.ensureProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	bookings, err := s.cache.GetByProperty(propertyID)
	if err != nil {
		s.logger.Error("GetOccupiedDates: cache error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: cache error: %v", ErrInternal, err)
	}

	today := domain.Day(s.timeProvider.Now())
	to := today.AddDate(0, 0, s.horizonDays)

	idx := availability.BuildIndex(bookings, excludeBookingID, today)

	days := idx.OccupiedDays(today, to)
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Format(domain.DateFormat))
	}

	return &models.OccupiedDatesResponse{
		PropertyID:    propertyID,
		From:          today.Format(domain.DateFormat),
		To:            to.Format(domain.DateFormat),
		OccupiedDates: dates,
	}, nil
}

// Delete удаляет бронирование. Начавшееся проживание удалять нельзя;
// кэш мутируется только после подтверждения бэкенда, оба представления
// обновляются атомарно
func (s *Service) Delete(ctx context.Context, bookingID, userID int64) error {
	s.logger.Info("DeleteBooking: booking=%d, user=%d", bookingID, userID)

	if bookingID <= 0 || userID <= 0 {
		return fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}

	booking, err := s.cache.GetBooking(bookingID)
	if err != nil {
		if errors.Is(err, bookingcache.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: cache error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: cache error: %v", ErrInternal, err)
	}

	if booking.GuestID != userID {
		s.logger.Warn("DeleteBooking: access denied for user=%d to booking id=%d", userID, bookingID)
		return ErrAccessDenied
	}

	today := s.timeProvider.Now()
	if booking.HasBegun(today) {
		s.logger.Warn("DeleteBooking: booking id=%d has already begun", bookingID)
		return ErrPastModification
	}

	if err := s.stayClient.DeleteBooking(ctx, bookingID); err != nil {
		s.logger.Warn("DeleteBooking: backend rejected deletion of booking id=%d: %v", bookingID, err)
		return err
	}

	if err := s.cache.Delete(bookingID); err != nil {
		s.logger.Error("DeleteBooking: failed to remove booking id=%d from cache: %v", bookingID, err)
		return fmt.Errorf("%w: failed to remove from cache: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBooking: successfully deleted booking id=%d", bookingID)
	return nil
}

// ensureProperty загружает объект в кэш при первом обращении
func (s *Service) ensureProperty(ctx context.Context, propertyID int64) error {
	if s.cache.HasProperty(propertyID) {
		return nil
	}

	fetched, err := s.stayClient.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, stayClient.ErrPropertyNotFound) {
			s.logger.Warn("ensureProperty: property id=%d not found", propertyID)
			return ErrPropertyNotFound
		}
		s.logger.Error("ensureProperty: failed to fetch property id=%d: %v", propertyID, err)
		return err
	}

	property, err := fetched.ToDomain()
	if err != nil {
		s.logger.Error("ensureProperty: invalid property payload id=%d: %v", propertyID, err)
		return fmt.Errorf("%w: invalid property payload: %v", ErrInternal, err)
	}

	s.cache.PutProperty(property)
	return nil
}
