package edit_booking

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.Range.Start.IsZero() || req.Range.End.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	return nil
}
