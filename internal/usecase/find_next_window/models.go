package find_next_window

import (
	"github.com/m04kA/SMC-StayBookingService/internal/domain"
)

// Request модель запроса на поиск ближайшего свободного окна
type Request struct {
	PropertyID   int64 // ID объекта размещения
	WindowNights int   // Желаемая длительность проживания в ночах
}

// Response модель ответа с найденным окном
type Response struct {
	Window domain.DateRange // Ближайший свободный диапазон заезд-выезд
}
