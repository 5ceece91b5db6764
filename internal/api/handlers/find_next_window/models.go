package find_next_window

import (
	findNextWindow "github.com/m04kA/SMC-StayBookingService/internal/usecase/find_next_window"
)

// NextWindowResponse HTTP response model с найденным свободным окном
type NextWindowResponse struct {
	PropertyID int64  `json:"propertyId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Nights     int    `json:"nights"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(propertyID int64, resp *findNextWindow.Response) *NextWindowResponse {
	return &NextWindowResponse{
		PropertyID: propertyID,
		StartDate:  resp.Window.StartISO(),
		EndDate:    resp.Window.EndISO(),
		Nights:     resp.Window.Nights(),
	}
}
