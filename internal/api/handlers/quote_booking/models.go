package quote_booking

import (
	quoteBooking "github.com/m04kA/SMC-StayBookingService/internal/usecase/quote_booking"
)

// QuoteResponse HTTP response model с детализацией стоимости проживания
type QuoteResponse struct {
	PropertyID    int64   `json:"propertyId"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	PricePerNight float64 `json:"pricePerNight"`
	Nights        int     `json:"nights"`
	BaseTotal     float64 `json:"baseTotal"`
	CleaningFee   float64 `json:"cleaningFee"`
	ServiceFee    float64 `json:"serviceFee"`
	GrandTotal    float64 `json:"grandTotal"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(req *quoteBooking.Request, resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		PropertyID:    req.PropertyID,
		StartDate:     req.Range.StartISO(),
		EndDate:       req.Range.EndISO(),
		PricePerNight: resp.PricePerNight.Float64(),
		Nights:        resp.Price.Nights,
		BaseTotal:     resp.Price.BaseTotal.Float64(),
		CleaningFee:   resp.Price.CleaningFee.Float64(),
		ServiceFee:    resp.Price.ServiceFee.Float64(),
		GrandTotal:    resp.Price.GrandTotal.Float64(),
	}
}
