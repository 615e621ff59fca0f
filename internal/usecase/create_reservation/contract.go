package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	SumGuests(ctx context.Context, date string, t types.TimeString, tableID string) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
// Чтение занятости и запись брони выполняются в одной транзакции:
// при ошибке хранилища не остается частично примененного состояния
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// SlotLocker взаимное исключение по ключу (дата, время, стол)
// Acquire блокируется, пока ключ занят; при отмене контекста возвращает
// ошибку, не захватив блокировку
type SlotLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// OutcomeRecorder счетчик исходов попыток бронирования (может быть nil)
type OutcomeRecorder interface {
	ObserveReservationOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
