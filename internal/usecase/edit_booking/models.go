package edit_booking

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Request модель запроса на изменение дат бронирования
type Request struct {
	UserID    int64            // ID гостя
	BookingID int64            // ID существующего бронирования
	Range     domain.DateRange // Новый диапазон заезд-выезд
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Booking domain.Booking        // Бронирование с заменённым диапазоном, ID прежний
	Price   domain.PriceBreakdown // Перерасчитанная стоимость
}
