package get_occupied_dates

import (
	"github.com/m04kA/SMC-StayBookingService/internal/service/bookings/models"
)

// OccupiedDatesResponse HTTP response model для date-picker клиента
type OccupiedDatesResponse struct {
	PropertyID    int64    `json:"propertyId"`
	From          string   `json:"from"`
	To            string   `json:"to"`
	OccupiedDates []string `json:"occupiedDates"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.OccupiedDatesResponse) *OccupiedDatesResponse {
	return &OccupiedDatesResponse{
		PropertyID:    resp.PropertyID,
		From:          resp.From,
		To:            resp.To,
		OccupiedDates: resp.OccupiedDates,
	}
}
