package reservations

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/ptr"
	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// Service сервис листинга броней для персонала
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ListRequest параметры листинга; каждый фильтр опционален
type ListRequest struct {
	Date  string // Фильтр по дате YYYY-MM-DD
	Time  string // Фильтр по времени HH:MM
	Table string // Фильтр по столу
	Limit int    // 0 = лимит по умолчанию
}

// List возвращает брони по фильтру, новые первыми
func (s *Service) List(ctx context.Context, req *ListRequest) ([]*domain.Reservation, error) {
	filter := domain.ReservationsFilter{Limit: req.Limit}

	if date := strings.TrimSpace(req.Date); date != "" {
		if _, err := time.Parse(domain.DateFormat, date); err != nil {
			s.logger.Warn("List: invalid date filter %q", date)
			return nil, fmt.Errorf("%w: date %q", ErrInvalidFilter, date)
		}
		filter.Date = ptr.Ptr(date)
	}

	if rawTime := strings.TrimSpace(req.Time); rawTime != "" {
		slotTime, err := types.NewTimeStringFromString(rawTime)
		if err != nil {
			s.logger.Warn("List: invalid time filter %q", rawTime)
			return nil, fmt.Errorf("%w: time %q", ErrInvalidFilter, rawTime)
		}
		filter.Time = ptr.Ptr(slotTime)
	}

	if table := strings.TrimSpace(req.Table); table != "" {
		filter.TableID = ptr.Ptr(table)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("List: returned %d reservations", len(reservations))
	return reservations, nil
}
