package get_property_bookings

import (
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

// BookingItem HTTP модель одного бронирования в списке
type BookingItem struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	GuestID    int64  `json:"guestId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Nights     int    `json:"nights"`
	Status     string `json:"status"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	PropertyID int64         `json:"propertyId"`
	Bookings   []BookingItem `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]BookingItem, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		bookings = append(bookings, BookingItem{
			ID:         b.ID,
			PropertyID: b.PropertyID,
			GuestID:    b.GuestID,
			StartDate:  b.StartDate,
			EndDate:    b.EndDate,
			Nights:     b.Nights,
			Status:     b.Status,
		})
	}
	return &BookingListResponse{
		PropertyID: resp.PropertyID,
		Bookings:   bookings,
	}
}
