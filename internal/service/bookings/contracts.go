package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
)

// BookingCache интерфейс клиентского кэша бронирований
type BookingCache interface {
	HasProperty(propertyID int64) bool
	GetProperty(propertyID int64) (domain.Property, error)
	GetBooking(bookingID int64) (domain.Booking, error)
	GetByProperty(propertyID int64) ([]domain.Booking, error)
	GetUserBookedProperties(userID int64) []domain.BookedProperty
	PutProperty(p domain.Property)
	PutUserProperties(props []domain.Property)
	Delete(bookingID int64) error
}

// StayServiceClient интерфейс клиента StayService
type StayServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*stayservice.Property, error)
	GetUser(ctx context.Context, userID int64) (*stayservice.User, error)
	DeleteBooking(ctx context.Context, bookingID int64) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
