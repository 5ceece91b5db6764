package find_next_window

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	"github.com/m04kA/SMC-StayBookingService/internal/integrations/stayservice"
)

// BookingCache интерфейс клиентского кэша бронирований
type BookingCache interface {
	HasProperty(propertyID int64) bool
	GetByProperty(propertyID int64) ([]domain.Booking, error)
	PutProperty(p domain.Property)
}

// StayServiceClient интерфейс клиента StayService
type StayServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*stayservice.Property, error)
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
