package create_booking

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID     int64            // ID гостя
	PropertyID int64            // ID объекта размещения
	Range      domain.DateRange // Диапазон заезд-выезд
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking domain.Booking        // Подтверждённое бэкендом бронирование
	Price   domain.PriceBreakdown // Детализация стоимости
}
