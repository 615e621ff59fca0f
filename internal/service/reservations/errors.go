package reservations

import "errors"

var (
	// ErrInvalidFilter возвращается при некорректных параметрах фильтра
	ErrInvalidFilter = errors.New("reservations.service: invalid filter")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations.service: internal error")
)
