package edit_booking

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
	editBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/edit_booking"
)

// EditBookingRequest HTTP request model
type EditBookingRequest struct {
	StartDate string `json:"startDate"` // "2025-03-01"
	EndDate   string `json:"endDate"`   // "2025-03-05"
}

// PriceResponse детализация стоимости в HTTP ответе
type PriceResponse struct {
	Nights      int     `json:"nights"`
	BaseTotal   float64 `json:"baseTotal"`
	CleaningFee float64 `json:"cleaningFee"`
	ServiceFee  float64 `json:"serviceFee"`
	GrandTotal  float64 `json:"grandTotal"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64         `json:"id"`
	PropertyID int64         `json:"propertyId"`
	GuestID    int64         `json:"guestId"`
	StartDate  string        `json:"startDate"`
	EndDate    string        `json:"endDate"`
	Nights     int           `json:"nights"`
	Status     string        `json:"status"`
	Price      PriceResponse `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *EditBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*editBooking.Request, error) {
	rng, err := domain.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &editBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		Range:     rng,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *editBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.Booking.ID,
		PropertyID: resp.Booking.PropertyID,
		GuestID:    resp.Booking.GuestID,
		StartDate:  resp.Booking.Range.StartISO(),
		EndDate:    resp.Booking.Range.EndISO(),
		Nights:     resp.Booking.Range.Nights(),
		Status:     string(resp.Booking.Status),
		Price: PriceResponse{
			Nights:      resp.Price.Nights,
			BaseTotal:   resp.Price.BaseTotal.Float64(),
			CleaningFee: resp.Price.CleaningFee.Float64(),
			ServiceFee:  resp.Price.ServiceFee.Float64(),
			GrandTotal:  resp.Price.GrandTotal.Float64(),
		},
	}
}
