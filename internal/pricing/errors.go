package pricing

import "errors"

var (
	// ErrInvalidRange возвращается, когда диапазон не содержит ни одной ночи
	ErrInvalidRange = errors.New("pricing: range must contain at least one night")
)
