package domain

import "time"

// Feedback отзыв гостя
type Feedback struct {
	ID        int64
	Name      string // "Anonimo", если гость не представился
	Rating    int    // 0..5
	Message   string
	CreatedAt time.Time
}

// ReminderRequest заявка на напоминание о событии
type ReminderRequest struct {
	ID        int64
	Contact   string
	CreatedAt time.Time
}
