package get_occupied_dates

import (
	"context"

	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

type BookingsService interface {
	GetOccupiedDates(ctx context.Context, propertyID, excludeBookingID int64) (*models.OccupiedDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
