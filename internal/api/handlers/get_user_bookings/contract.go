package get_user_bookings

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookedProperties(ctx context.Context, userID int64) (*models.BookedPropertiesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
