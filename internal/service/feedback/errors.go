package feedback

import "errors"

var (
	// ErrEmptyMessage возвращается, когда сообщение отзыва отсутствует или короче минимума
	ErrEmptyMessage = errors.New("feedback.service: message is required")

	// ErrMessageTooLong возвращается, когда сообщение длиннее допустимого
	ErrMessageTooLong = errors.New("feedback.service: message too long")

	// ErrInvalidRating возвращается, когда оценка вне диапазона [0, 5]
	ErrInvalidRating = errors.New("feedback.service: rating out of range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("feedback.service: internal error")
)
