package find_next_window

import (
	"fmt"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.WindowNights < domain.MinWindowNights || req.WindowNights > domain.MaxWindowNights {
		return fmt.Errorf("%w: windowNights must be in [%d, %d]",
			ErrInvalidInput, domain.MinWindowNights, domain.MaxWindowNights)
	}

	return nil
}
