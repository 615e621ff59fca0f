package create_reservation

import (
	"time"

	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// Request сырой запрос на бронирование, как пришел от гостя
// Все поля строковые: нормализация и типизация — работа валидатора
type Request struct {
	Name   string // Имя гостя
	Phone  string // Телефон (итальянский формат, допускаются +39/0039 и разделители)
	Date   string // Дата в формате YYYY-MM-DD
	Time   string // Время в формате HH:MM
	Guests string // Число гостей: "1".."20" или литерал "7+"
	Table  string // Идентификатор стола
	Notes  string // Заметки (опционально)
}

// Response подтвержденная бронь
type Response struct {
	ID      int64            // ID брони, присвоенный хранилищем
	Name    string           // Имя после нормализации
	Phone   string           // Телефон после нормализации
	Date    string           // Дата бронирования
	Time    types.TimeString // Время бронирования
	Guests  int              // Число гостей (после раскрытия "7+")
	Table   string           // Стол
	Notes   string           // Заметки после нормализации

	CreatedAt time.Time // Момент допуска
}
