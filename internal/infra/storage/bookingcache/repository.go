package bookingcache

import (
	"sort"
	"sync"

	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Repository клиентский кэш бронирований. Хранит одну каноническую таблицу
// бронирований и метаданные объектов; оба наружных представления — плоский
// список по объекту и сгруппированный по объектам список гостя — выводятся
// из канона на чтении.
//
// Исторически эти два представления жили раздельными коллекциями и
// расходились при мутациях; единая таблица под одним мьютексом закрывает
// этот класс ошибок. Кэш обновляется только после подтверждения бэкенда,
// отката нет: неудачная мутация не трогает состояние.
type Repository struct {
	mu         sync.RWMutex
	properties map[int64]domain.Property // метаданные, без Bookings
	bookings   map[int64]domain.Booking  // каноническая таблица
}

// NewRepository создает пустой кэш
func NewRepository() *Repository {
	return &Repository{
		properties: make(map[int64]domain.Property),
		bookings:   make(map[int64]domain.Booking),
	}
}

// PutProperty кладёт объект в кэш: метаданные отдельно, его бронирования —
// в каноническую таблицу. Прежние бронирования этого объекта вытесняются:
// снапшот бэкенда авторитетен
func (r *Repository) PutProperty(p domain.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, b := range r.bookings {
		if b.PropertyID == p.ID {
			delete(r.bookings, id)
		}
	}

	for _, b := range p.Bookings {
		r.bookings[b.ID] = b
	}

	p.Bookings = nil
	r.properties[p.ID] = p
}

// PutUserProperties кладёт в кэш объекты из профиля пользователя.
// Каждый объект несёт только бронирования этого пользователя, поэтому чужие
// бронирования тех же объектов не вытесняются
func (r *Repository) PutUserProperties(props []domain.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range props {
		for _, b := range p.Bookings {
			r.bookings[b.ID] = b
		}
		if _, ok := r.properties[p.ID]; !ok {
			p.Bookings = nil
			r.properties[p.ID] = p
		}
	}
}

// HasProperty проверяет, загружен ли объект в кэш
func (r *Repository) HasProperty(propertyID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.properties[propertyID]
	return ok
}

// GetProperty возвращает метаданные объекта
func (r *Repository) GetProperty(propertyID int64) (domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.properties[propertyID]
	if !ok {
		return domain.Property{}, ErrPropertyNotCached
	}
	return p, nil
}

// GetBooking возвращает бронирование по ID
func (r *Repository) GetBooking(bookingID int64) (domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// GetByProperty возвращает плоский список бронирований объекта,
// отсортированный по дате заезда
func (r *Repository) GetByProperty(propertyID int64) ([]domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.properties[propertyID]; !ok {
		return nil, ErrPropertyNotCached
	}

	result := make([]domain.Booking, 0)
	for _, b := range r.bookings {
		if b.PropertyID == propertyID {
			result = append(result, b)
		}
	}

	sortBookings(result)
	return result, nil
}

// GetUserBookedProperties возвращает представление гостя: его бронирования,
// сгруппированные по объектам. Каждое бронирование попадает ровно в одну
// запись объекта
func (r *Repository) GetUserBookedProperties(userID int64) []domain.BookedProperty {
	r.mu.RLock()
	defer r.mu.RUnlock()

	grouped := make(map[int64][]domain.Booking)
	for _, b := range r.bookings {
		if b.GuestID == userID {
			grouped[b.PropertyID] = append(grouped[b.PropertyID], b)
		}
	}

	propertyIDs := make([]int64, 0, len(grouped))
	for id := range grouped {
		propertyIDs = append(propertyIDs, id)
	}
	sort.Slice(propertyIDs, func(i, j int) bool { return propertyIDs[i] < propertyIDs[j] })

	result := make([]domain.BookedProperty, 0, len(propertyIDs))
	for _, id := range propertyIDs {
		bookings := grouped[id]
		sortBookings(bookings)
		result = append(result, domain.BookedProperty{
			Property: r.properties[id],
			Bookings: bookings,
		})
	}

	return result
}

// Insert добавляет подтверждённое бэкендом бронирование в каноническую
// таблицу. Оба представления видят его атомарно. Пересечение диапазонов
// с существующим бронированием того же объекта нарушает доменный инвариант
// и отклоняется
func (r *Repository) Insert(b domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[b.ID]; ok {
		return ErrDuplicateBooking
	}

	for _, existing := range r.bookings {
		if existing.PropertyID == b.PropertyID && existing.Range.Overlaps(b.Range) {
			return ErrConflictingRange
		}
	}

	r.bookings[b.ID] = b
	return nil
}

// ReplaceRange заменяет диапазон дат бронирования по ID, запись остаётся
// на месте в обоих представлениях
func (r *Repository) ReplaceRange(bookingID int64, newRange domain.DateRange) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[bookingID]
	if !ok {
		return domain.Booking{}, ErrBookingNotFound
	}

	for _, existing := range r.bookings {
		if existing.ID != bookingID && existing.PropertyID == b.PropertyID && existing.Range.Overlaps(newRange) {
			return domain.Booking{}, ErrConflictingRange
		}
	}

	b.Range = newRange
	r.bookings[bookingID] = b
	return b, nil
}

// Delete удаляет бронирование из канонической таблицы, а значит из обоих
// представлений сразу
func (r *Repository) Delete(bookingID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[bookingID]; !ok {
		return ErrBookingNotFound
	}

	delete(r.bookings, bookingID)
	return nil
}

func sortBookings(bookings []domain.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if !bookings[i].Range.Start.Equal(bookings[j].Range.Start) {
			return bookings[i].Range.Start.Before(bookings[j].Range.Start)
		}
		return bookings[i].ID < bookings[j].ID
	})
}
