package availability

import (
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Validate проверяет кандидатский диапазон против индекса занятости.
// Проверки выполняются по порядку, первая неудача выигрывает:
//  1. ErrInvalidOrdering — выезд не строго позже заезда
//  2. ErrPastDate — заезд раньше "сегодня"
//  3. ErrDateOccupied — хотя бы один день диапазона [заезд, выезд] занят
//
// Функция чистая и детерминированная относительно (candidate, idx):
// "сегодня" зашито в индекс при построении, системные часы не читаются.
func Validate(candidate domain.DateRange, idx *Index) error {
	if !candidate.IsValidOrdering() {
		return ErrInvalidOrdering
	}

	if candidate.Start.Before(idx.Today()) {
		return ErrPastDate
	}

	var occupied bool
	candidate.EachDay(func(day time.Time) {
		if idx.IsOccupied(day) {
			occupied = true
		}
	})
	if occupied {
		return ErrDateOccupied
	}

	return nil
}
