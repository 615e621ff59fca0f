package reminders

import (
	"context"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

// ReminderRepository интерфейс репозитория заявок на напоминание
type ReminderRepository interface {
	Create(ctx context.Context, req *domain.ReminderRequest) (*domain.ReminderRequest, error)
	List(ctx context.Context, limit int) ([]*domain.ReminderRequest, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
