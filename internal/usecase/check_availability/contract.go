package check_availability

import (
	"context"

	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	SumGuestsByTable(ctx context.Context, date string, t types.TimeString) (map[string]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
