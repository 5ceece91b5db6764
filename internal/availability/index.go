package availability

import (
	"time"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Index множество занятых календарных дней объекта, построенное из его
// актуального списка бронирований. Индекс не поддерживается инкрементально:
// после каждой мутации он строится заново, чтобы исключить расхождение
// с каноническими данными.
type Index struct {
	occupied map[string]struct{}
	today    time.Time
}

// BuildIndex строит индекс занятости из списка бронирований.
// Каждый день бронирования помечается занятым ВКЛЮЧИТЕЛЬНО с днём выезда:
// день выезда блокирует повторный заезд в тот же день (turnover day).
// excludeBookingID исключает собственное бронирование при редактировании
// дат (0 = ничего не исключать).
func BuildIndex(bookings []domain.Booking, excludeBookingID int64, today time.Time) *Index {
	idx := &Index{
		occupied: make(map[string]struct{}),
		today:    domain.Day(today),
	}

	for _, b := range bookings {
		if b.ID == excludeBookingID {
			continue
		}
		b.Range.EachDay(func(day time.Time) {
			idx.occupied[day.Format(domain.DateFormat)] = struct{}{}
		})
	}

	return idx
}

// IsOccupied проверяет, занят ли день. Любой день раньше "сегодня" считается
// занятым независимо от бронирований.
func (idx *Index) IsOccupied(day time.Time) bool {
	d := domain.Day(day)
	if d.Before(idx.today) {
		return true
	}
	_, ok := idx.occupied[d.Format(domain.DateFormat)]
	return ok
}

// Today возвращает день, относительно которого построен индекс.
func (idx *Index) Today() time.Time {
	return idx.today
}

// OccupiedDays возвращает отсортированный по возрастанию список занятых дней
// в диапазоне [from, to] включительно. Используется для отдачи календаря
// занятости (date-picker на клиенте).
func (idx *Index) OccupiedDays(from, to time.Time) []time.Time {
	days := make([]time.Time, 0)
	for d := domain.Day(from); !d.After(domain.Day(to)); d = d.AddDate(0, 0, 1) {
		if _, ok := idx.occupied[d.Format(domain.DateFormat)]; ok {
			days = append(days, d)
		}
	}
	return days
}
