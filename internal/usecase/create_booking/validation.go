package create_booking

import (
	"fmt"
)

// validateRequest валидирует входные данные запроса.
// Порядок дат и занятость дней проверяются политикой доступности,
// здесь только структурная корректность
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	if req.Range.Start.IsZero() || req.Range.End.IsZero() {
		return fmt.Errorf("%w: date range is required", ErrInvalidInput)
	}

	return nil
}
