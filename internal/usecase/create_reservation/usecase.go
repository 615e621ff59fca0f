package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

// Исходы для бизнес-метрик
const (
	outcomeAdmitted = "admitted"
	outcomeRejected = "rejected"
	outcomeConflict = "capacity_conflict"
	outcomeError    = "error"
)

// UseCase use case создания брони: валидация запроса и допуск по вместимости
//
// Контроллер допуска — единственное место сервиса, где корректность
// зависит от дисциплины конкурентности: чтение занятости, решение и
// запись выполняются как один атомарный блок на ключ (дата, время, стол).
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	locks           SlotLocker
	catalog         *domain.Catalog
	timeProvider    TimeProvider
	outcomes        OutcomeRecorder
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// outcomes может быть nil, если метрики выключены
func NewUseCase(
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	locks SlotLocker,
	catalog *domain.Catalog,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		locks:           locks,
		catalog:         catalog,
		timeProvider:    &RealTimeProvider{},
		outcomes:        outcomes,
		logger:          logger,
	}
}

// Execute выполняет попытку бронирования
//
// Двухфазный гейт на ключ (дата, время, стол): Open — проверка
// вместимости, затем Committed (бронь записана) либо Rejected (состояние
// не изменилось). Внутреннего retry нет: отклоненный запрос гость
// отправляет заново как новую попытку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: table=%s, date=%s, time=%s, guests=%s",
		req.Table, req.Date, req.Time, req.Guests)

	// 1. Валидация и нормализация входных данных
	res, err := validateRequest(req, uc.catalog, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.observe(outcomeRejected)
		return nil, err
	}

	// 2. Захватываем блокировку слота. Критическая секция обязана
	// накрывать "прочитать занятость, решить, записать" целиком: без
	// этого два конкурентных запроса могут оба увидеть достаточно мест
	// и оба записаться сверх вместимости.
	release, err := uc.locks.Acquire(ctx, res.SlotKey())
	if err != nil {
		// Контекст отменен во время ожидания — в хранилище ничего не пишем
		uc.logger.Warn("CreateReservation: lock wait aborted for slot %s: %v", res.SlotKey(), err)
		return nil, fmt.Errorf("create_reservation: acquire slot lock: %w", err)
	}
	defer release()

	capacity, _ := uc.catalog.Capacity(res.TableID)

	// 3-4. Чтение занятости и запись брони в одной транзакции:
	// при ошибке хранилища либо бронь записана целиком, либо ничего
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		occupied, err := uc.reservationRepo.SumGuests(txCtx, res.Date, res.Time, res.TableID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to read occupancy for slot %s: %v", res.SlotKey(), err)
			return fmt.Errorf("%w: failed to read occupancy: %v", ErrInternal, err)
		}

		if occupied > capacity {
			// Нарушение инварианта вместимости: такое состояние могла
			// оставить только более ранняя ошибка. Не чиним молча.
			uc.logger.Error("CreateReservation: INVARIANT VIOLATION: slot %s occupancy %d exceeds capacity %d",
				res.SlotKey(), occupied, capacity)
			return fmt.Errorf("%w: occupancy %d exceeds capacity %d", ErrInternal, occupied, capacity)
		}

		available := capacity - occupied
		if res.Guests > available {
			uc.logger.Info("CreateReservation: slot %s full: requested %d, available %d of %d",
				res.SlotKey(), res.Guests, available, capacity)
			return &CapacityError{
				Requested: res.Guests,
				Available: available,
				Capacity:  capacity,
			}
		}

		if _, err := uc.reservationRepo.Create(txCtx, res); err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation for slot %s: %v", res.SlotKey(), err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case isCapacityConflict(err):
			uc.observe(outcomeConflict)
		default:
			uc.observe(outcomeError)
		}
		return nil, err
	}

	uc.observe(outcomeAdmitted)
	uc.logger.Info("CreateReservation: admitted reservation id=%d, slot %s, guests=%d",
		res.ID, res.SlotKey(), res.Guests)

	return &Response{
		ID:        res.ID,
		Name:      res.Name,
		Phone:     res.Phone,
		Date:      res.Date,
		Time:      res.Time,
		Guests:    res.Guests,
		Table:     res.TableID,
		Notes:     res.Notes,
		CreatedAt: res.CreatedAt,
	}, nil
}

// observe инкрементирует счетчик исходов, если метрики включены
func (uc *UseCase) observe(outcome string) {
	if uc.outcomes != nil {
		uc.outcomes.ObserveReservationOutcome(outcome)
	}
}

// isCapacityConflict возвращает true для отказа по вместимости
func isCapacityConflict(err error) bool {
	var capErr *CapacityError
	return errors.As(err, &capErr)
}
