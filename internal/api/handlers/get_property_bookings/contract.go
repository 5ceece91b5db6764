package get_property_bookings

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetPropertyBookings(ctx context.Context, propertyID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
