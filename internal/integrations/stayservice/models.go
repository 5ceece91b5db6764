package stayservice

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Booking модель бронирования из StayService
type Booking struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	UserID     int64  `json:"user_id"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Status     string `json:"status"`
}

// Owner модель владельца объекта из StayService
type Owner struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Property модель объекта размещения из StayService
type Property struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	LocationName  string    `json:"location_name"`
	PricePerNight float64   `json:"price_per_night"`
	Owner         Owner     `json:"owner"`
	Bookings      []Booking `json:"bookings"`
}

// User модель пользователя из StayService. BookedProperties содержит объекты,
// в каждом из которых лежат только бронирования этого пользователя
type User struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	OwnedProperties  []Property `json:"owned_properties"`
	BookedProperties []Property `json:"booked_properties"`
}

// ErrorResponse модель ошибки от StayService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// createBookingRequest тело запроса на создание бронирования
type createBookingRequest struct {
	PropertyID int64  `json:"property_id"`
	UserID     int64  `json:"user_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// updateBookingRequest тело запроса на изменение дат бронирования
type updateBookingRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ToDomain конвертирует бронирование StayService в доменную модель.
// Даты приходят строго в формате YYYY-MM-DD
func (b *Booking) ToDomain() (domain.Booking, error) {
	r, err := domain.ParseDateRange(b.StartDate, b.EndDate)
	if err != nil {
		return domain.Booking{}, err
	}

	status := domain.BookingStatus(b.Status)
	if status == "" {
		// Бэкенд подтверждает бронирование при создании
		status = domain.StatusConfirmed
	}

	return domain.Booking{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		GuestID:    b.UserID,
		Range:      r,
		Status:     status,
	}, nil
}

// ToDomain конвертирует объект StayService в доменную модель
func (p *Property) ToDomain() (domain.Property, error) {
	bookings := make([]domain.Booking, 0, len(p.Bookings))
	for i := range p.Bookings {
		b, err := p.Bookings[i].ToDomain()
		if err != nil {
			return domain.Property{}, err
		}
		bookings = append(bookings, b)
	}

	return domain.Property{
		ID:            p.ID,
		Owner:         domain.Owner{ID: p.Owner.ID, Name: p.Owner.Name},
		Title:         p.Title,
		LocationName:  p.LocationName,
		PricePerNight: domain.MoneyFromFloat(p.PricePerNight),
		Bookings:      bookings,
	}, nil
}
