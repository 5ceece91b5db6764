package quote_booking

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Request модель запроса на расчёт стоимости проживания
type Request struct {
	PropertyID int64            // ID объекта размещения
	Range      domain.DateRange // Диапазон заезд-выезд
}

// Response модель ответа с детализацией стоимости
type Response struct {
	PricePerNight domain.Money          // Цена за ночь объекта
	Price         domain.PriceBreakdown // Детализация стоимости
}
