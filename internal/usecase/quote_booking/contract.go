package quote_booking

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
)

// BookingCache интерфейс клиентского кэша бронирований
type BookingCache interface {
	HasProperty(propertyID int64) bool
	GetProperty(propertyID int64) (domain.Property, error)
	PutProperty(p domain.Property)
}

// StayServiceClient интерфейс клиента StayService
type StayServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*stayservice.Property, error)
}

// PriceCalculator интерфейс калькулятора стоимости проживания
type PriceCalculator interface {
	Compute(r domain.DateRange, nightlyRate domain.Money) (*domain.PriceBreakdown, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
