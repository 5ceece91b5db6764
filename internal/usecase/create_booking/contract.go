package create_booking

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
	GetByProperty(propertyID int64) ([]domain.Booking, error)
	PutProperty(p domain.Property)
	Insert(b domain.Booking) error
}

// StayServiceClient интерфейс клиента StayService
type StayServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*stayservice.Property, error)
	CreateBooking(ctx context.Context, propertyID, userID int64, r domain.DateRange) (*stayservice.Booking, error)
}

// PriceCalculator интерфейс калькулятора стоимости проживания
type PriceCalculator interface {
	Compute(r domain.DateRange, nightlyRate domain.Money) (*domain.PriceBreakdown, error)
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
