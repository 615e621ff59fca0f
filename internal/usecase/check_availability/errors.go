package check_availability

import "errors"

var (
	// ErrMissingParams возвращается, когда дата или время не переданы
	ErrMissingParams = errors.New("check_availability: date and time are required")

	// ErrInvalidDateFormat возвращается, когда дата не разбирается как YYYY-MM-DD
	ErrInvalidDateFormat = errors.New("check_availability: invalid date format")

	// ErrInvalidTimeFormat возвращается, когда время не соответствует HH:MM
	ErrInvalidTimeFormat = errors.New("check_availability: invalid time format")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
