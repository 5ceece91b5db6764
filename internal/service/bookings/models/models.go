package models

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// BookingResponse модель бронирования для выдачи наружу
type BookingResponse struct {
	ID         int64
	PropertyID int64
	GuestID    int64
	StartDate  string // YYYY-MM-DD
	EndDate    string // YYYY-MM-DD
	Nights     int
	Status     string
}

// BookingListResponse список бронирований объекта (плоское представление)
type BookingListResponse struct {
	PropertyID int64
	Bookings   []BookingResponse
}

// BookedPropertyResponse запись сгруппированного представления гостя:
// объект и бронирования гостя на нём
type BookedPropertyResponse struct {
	PropertyID    int64
	Title         string
	LocationName  string
	PricePerNight float64
	Bookings      []BookingResponse
}

// BookedPropertiesResponse сгруппированное представление гостя
type BookedPropertiesResponse struct {
	UserID           int64
	BookedProperties []BookedPropertyResponse
}

// OccupiedDatesResponse календарь занятости объекта для date-picker
type OccupiedDatesResponse struct {
	PropertyID    int64
	From          string   // YYYY-MM-DD
	To            string   // YYYY-MM-DD
	OccupiedDates []string // занятые дни по возрастанию
}

// FromDomainBooking конвертирует доменное бронирование в response модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		GuestID:    b.GuestID,
		StartDate:  b.Range.StartISO(),
		EndDate:    b.Range.EndISO(),
		Nights:     b.Range.Nights(),
		Status:     string(b.Status),
	}
}

// FromDomainBookingList конвертирует список бронирований объекта
func FromDomainBookingList(propertyID int64, bookings []domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, *FromDomainBooking(&bookings[i]))
	}
	return &BookingListResponse{
		PropertyID: propertyID,
		Bookings:   result,
	}
}

// FromDomainBookedProperties конвертирует сгруппированное представление гостя
func FromDomainBookedProperties(userID int64, props []domain.BookedProperty) *BookedPropertiesResponse {
	result := make([]BookedPropertyResponse, 0, len(props))
	for _, bp := range props {
		bookings := make([]BookingResponse, 0, len(bp.Bookings))
		for i := range bp.Bookings {
			bookings = append(bookings, *FromDomainBooking(&bp.Bookings[i]))
		}
		result = append(result, BookedPropertyResponse{
			PropertyID:    bp.Property.ID,
			Title:         bp.Property.Title,
			LocationName:  bp.Property.LocationName,
			PricePerNight: bp.Property.PricePerNight.Float64(),
			Bookings:      bookings,
		})
	}
	return &BookedPropertiesResponse{
		UserID:           userID,
		BookedProperties: result,
	}
}
