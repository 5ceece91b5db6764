package get_user_bookings

import (
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

// BookingItem HTTP модель одного бронирования гостя
type BookingItem struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Nights    int    `json:"nights"`
	Status    string `json:"status"`
}

// BookedPropertyItem объект размещения с бронированиями гостя на нём
type BookedPropertyItem struct {
	PropertyID    int64         `json:"propertyId"`
	Title         string        `json:"title"`
	LocationName  string        `json:"locationName"`
	PricePerNight float64       `json:"pricePerNight"`
	Bookings      []BookingItem `json:"bookings"`
}

// BookedPropertiesResponse HTTP response model
type BookedPropertiesResponse struct {
	UserID           int64                `json:"userId"`
	BookedProperties []BookedPropertyItem `json:"bookedProperties"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookedPropertiesResponse) *BookedPropertiesResponse {
	props := make([]BookedPropertyItem, 0, len(resp.BookedProperties))
	for _, bp := range resp.BookedProperties {
		bookings := make([]BookingItem, 0, len(bp.Bookings))
		for _, b := range bp.Bookings {
			bookings = append(bookings, BookingItem{
				ID:        b.ID,
				StartDate: b.StartDate,
				EndDate:   b.EndDate,
				Nights:    b.Nights,
				Status:    b.Status,
			})
		}
		props = append(props, BookedPropertyItem{
			PropertyID:    bp.PropertyID,
			Title:         bp.Title,
			LocationName:  bp.LocationName,
			PricePerNight: bp.PricePerNight,
			Bookings:      bookings,
		})
	}
	return &BookedPropertiesResponse{
		UserID:           resp.UserID,
		BookedProperties: props,
	}
}
