package get_reservations

import (
	"context"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/internal/service/reservations"
)

type ReservationsService interface {
	List(ctx context.Context, req *reservations.ListRequest) ([]*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
