package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField возвращается, когда обязательное поле не заполнено
	ErrMissingField = errors.New("create_reservation: missing required field")

	// ErrInvalidName возвращается при некорректном имени (короче 2 или длиннее 100 символов)
	ErrInvalidName = errors.New("create_reservation: invalid name")

	// ErrInvalidPhone возвращается при некорректном итальянском номере телефона
	ErrInvalidPhone = errors.New("create_reservation: invalid phone number")

	// ErrInvalidDateFormat возвращается, когда дата не разбирается как YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("create_reservation: invalid date format")

	// ErrPastDate возвращается при дате строго раньше сегодняшней
	ErrPastDate = errors.New("create_reservation: date is in the past")

	// ErrInvalidTimeFormat возвращается, когда время не соответствует HH:MM
	ErrInvalidTimeFormat = errors.New("create_reservation: invalid time format")

	// ErrInvalidPartySize возвращается, когда число гостей вне диапазона [1, 20]
	ErrInvalidPartySize = errors.New("create_reservation: invalid party size")

	// ErrUnknownTable возвращается, когда стол отсутствует в планировке зала
	ErrUnknownTable = errors.New("create_reservation: unknown table")

	// ErrNotBookable возвращается для зарезервированного стола (вместимость 0)
	ErrNotBookable = errors.New("create_reservation: table is not bookable")

	// ErrInvalidNotes возвращается, когда заметки длиннее допустимого
	ErrInvalidNotes = errors.New("create_reservation: notes too long")

	// ErrInsufficientCapacity возвращается, когда на столе не хватает мест
	// Ожидаемый исход гонки за конечный ресурс, не ошибка сервиса
	ErrInsufficientCapacity = errors.New("create_reservation: insufficient capacity")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// CapacityError отказ по вместимости с деталями для показа гостю
type CapacityError struct {
	Requested int // Запрошено мест
	Available int // Доступно мест на момент проверки
	Capacity  int // Полная вместимость стола
}

// Error реализует error
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%v: requested %d, available %d of %d",
		ErrInsufficientCapacity, e.Requested, e.Available, e.Capacity)
}

// Unwrap позволяет errors.Is(err, ErrInsufficientCapacity)
func (e *CapacityError) Unwrap() error {
	return ErrInsufficientCapacity
}
