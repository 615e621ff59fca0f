package check_availability

import "github.com/m04kA/FDS-ReservationService/pkg/types"

// Request запрос доступности столов на слот (дата, время)
type Request struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// Response доступность всех столов на слот
type Response struct {
	Date        string           // Дата слота
	Time        types.TimeString // Время слота
	FreeSeats   map[string]int   // Стол → свободные места (не меньше 0)
	TotalGuests int              // Всего гостей уже допущено на слот
}
