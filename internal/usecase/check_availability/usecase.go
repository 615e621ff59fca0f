package check_availability

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// UseCase use case расчета доступности столов на слот
//
// Чистое чтение: снимок занятости считается заново на каждый запрос и
// между запросами не кэшируется — результат отражает все брони,
// зафиксированные к моменту вызова.
type UseCase struct {
	reservationRepo ReservationRepository
	catalog         *domain.Catalog
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, catalog *domain.Catalog, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalog:         catalog,
		logger:          logger,
	}
}

// Execute возвращает свободные места по каждому столу на (дата, время)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := strings.TrimSpace(req.Date)
	rawTime := strings.TrimSpace(req.Time)

	if date == "" || rawTime == "" {
		return nil, ErrMissingParams
	}

	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateFormat, date)
	}

	slotTime, err := types.NewTimeStringFromString(rawTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, rawTime)
	}

	occupied, err := uc.reservationRepo.SumGuestsByTable(ctx, date, slotTime)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to read occupancy for %s %s: %v", date, slotTime, err)
		return nil, fmt.Errorf("%w: failed to read occupancy: %v", ErrInternal, err)
	}

	// Свободные места: вместимость минус занято, не меньше нуля.
	// Столы без броней в occupied отсутствуют — для них занято 0.
	freeSeats := make(map[string]int, uc.catalog.Len())
	totalGuests := 0

	for _, id := range uc.catalog.ReservedIDs() {
		freeSeats[id] = 0
	}
	for _, id := range uc.catalog.StandardIDs() {
		capacity, _ := uc.catalog.Capacity(id)
		free := capacity - occupied[id]
		if free < 0 {
			free = 0
		}
		freeSeats[id] = free
	}
	for _, guests := range occupied {
		totalGuests += guests
	}

	uc.logger.Info("CheckAvailability: %s %s - %d guests admitted across %d tables",
		date, slotTime, totalGuests, len(occupied))

	return &Response{
		Date:        date,
		Time:        slotTime,
		FreeSeats:   freeSeats,
		TotalGuests: totalGuests,
	}, nil
}
