package availability

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// FindNextWindow ищет ближайшее свободное окно длиной windowNights ночей,
// начиная с "сегодня" индекса. Сканирует день за днём, ведя счётчик подряд
// идущих свободных дней; любой занятый день сбрасывает счётчик.
//
// Окно найдено, когда набрано windowNights+1 свободных дней подряд: день
// выезда тоже должен быть свободен, поскольку соседнее бронирование помечает
// свой день выезда занятым.
//
// Сканирование ограничено horizonDays от "сегодня"; если свободного окна нет,
// возвращается ErrNoAvailabilityFound. Без ограничения полностью занятый
// объект приводил бы к неограниченному циклу.
func FindNextWindow(idx *Index, windowNights int, horizonDays int) (domain.DateRange, error) {
	if windowNights < domain.MinWindowNights {
		windowNights = domain.MinWindowNights
	}

	needed := windowNights + 1
	run := 0

	day := idx.Today()
	limit := idx.Today().AddDate(0, 0, horizonDays)

	for !day.After(limit) {
		if idx.IsOccupied(day) {
			run = 0
		} else {
			run++
			if run == needed {
				start := day.AddDate(0, 0, -(needed - 1))
				return domain.DateRange{Start: start, End: start.AddDate(0, 0, windowNights)}, nil
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return domain.DateRange{}, ErrNoAvailabilityFound
}
