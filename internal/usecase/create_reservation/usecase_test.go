package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/slotlock"
	"github.com/m04kA/FDS-ReservationService/pkg/types"
)

// memoryRepo потокобезопасный репозиторий в памяти для тестов
type memoryRepo struct {
	mu           sync.Mutex
	nextID       int64
	reservations []*domain.Reservation

	createErr error
	sumErr    error
}

func (r *memoryRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}

	r.nextID++
	res.ID = r.nextID
	res.CreatedAt = time.Now()
	stored := *res
	r.reservations = append(r.reservations, &stored)
	return res, nil
}

func (r *memoryRepo) SumGuests(_ context.Context, date string, t types.TimeString, tableID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sumErr != nil {
		return 0, r.sumErr
	}

	total := 0
	for _, res := range r.reservations {
		if res.Date == date && res.Time == t && res.TableID == tableID {
			total += res.Guests
		}
	}
	return total, nil
}

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reservations)
}

// passthroughTxManager выполняет fn без настоящей транзакции:
// атомарность в тестах обеспечивает slotlock
type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fixedTime детерминированный провайдер времени
type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// outcomeCounter собирает исходы для проверки метрик
type outcomeCounter struct {
	mu       sync.Mutex
	outcomes map[string]int
}

func newOutcomeCounter() *outcomeCounter {
	return &outcomeCounter{outcomes: make(map[string]int)}
}

func (c *outcomeCounter) ObserveReservationOutcome(outcome string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcomes[outcome]++
}

func (c *outcomeCounter) get(outcome string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcomes[outcome]
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *memoryRepo, outcomes *outcomeCounter) *UseCase {
	uc := NewUseCase(
		repo,
		passthroughTxManager{},
		slotlock.New(),
		domain.DefaultCatalog(),
		outcomes,
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestUseCase_Execute_Admits(t *testing.T) {
	repo := &memoryRepo{}
	outcomes := newOutcomeCounter()
	uc := newTestUseCase(repo, outcomes)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 4, resp.Guests)
	assert.Equal(t, "5", resp.Table)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, 1, repo.count())
	assert.Equal(t, 1, outcomes.get("admitted"))
}

func TestUseCase_Execute_ValidationFailureWritesNothing(t *testing.T) {
	repo := &memoryRepo{}
	outcomes := newOutcomeCounter()
	uc := newTestUseCase(repo, outcomes)

	req := validRequest()
	req.Date = "2020-01-01"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
	assert.Zero(t, repo.count())
	assert.Equal(t, 1, outcomes.get("rejected"))
}

func TestUseCase_Execute_FillsTableExactly(t *testing.T) {
	repo := &memoryRepo{}
	outcomes := newOutcomeCounter()
	uc := newTestUseCase(repo, outcomes)

	// Стол на 10 мест: 4 + 6 заполняют его ровно
	first := validRequest()
	first.Guests = "4"
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := validRequest()
	second.Guests = "6"
	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)

	// Еще один гость уже не помещается
	third := validRequest()
	third.Guests = "1"
	_, err = uc.Execute(context.Background(), third)

	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	assert.ErrorIs(t, err, ErrInsufficientCapacity)
	assert.Equal(t, 1, capErr.Requested)
	assert.Equal(t, 0, capErr.Available)
	assert.Equal(t, 10, capErr.Capacity)

	assert.Equal(t, 2, repo.count())
	assert.Equal(t, 1, outcomes.get("capacity_conflict"))
}

func TestUseCase_Execute_RejectionDoesNotChangeState(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, newOutcomeCounter())

	first := validRequest()
	first.Guests = "8"
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Отказ не меняет занятость: после него помещаются те же 2 гостя
	tooMany := validRequest()
	tooMany.Guests = "3"
	_, err = uc.Execute(context.Background(), tooMany)
	require.ErrorIs(t, err, ErrInsufficientCapacity)

	fits := validRequest()
	fits.Guests = "2"
	_, err = uc.Execute(context.Background(), fits)
	assert.NoError(t, err)
}

func TestUseCase_Execute_ConcurrentRace(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, newOutcomeCounter())

	// Два конкурента по 6 гостей на стол в 10 мест: пройти должен ровно один
	var wg sync.WaitGroup
	results := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.Guests = "6"
			_, results[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	admitted := 0
	conflicts := 0
	for _, err := range results {
		switch {
		case err == nil:
			admitted++
		case errors.Is(err, ErrInsufficientCapacity):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, admitted)
	assert.Equal(t, 1, conflicts)
	assert.Equal(t, 1, repo.count())
}

func TestUseCase_Execute_ConcurrentDistinctSlots(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, newOutcomeCounter())

	// Разные столы не конкурируют между собой
	tables := []string{"3", "4", "5", "6", "7"}
	var wg sync.WaitGroup
	errs := make([]error, len(tables))

	for i, table := range tables {
		wg.Add(1)
		go func(i int, table string) {
			defer wg.Done()
			req := validRequest()
			req.Table = table
			req.Guests = "10"
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i, table)
	}
	wg.Wait()

	for i, err := range errs {
		assert.NoError(t, err, "table %s", tables[i])
	}
	assert.Equal(t, len(tables), repo.count())
}

func TestUseCase_Execute_CanceledContextDuringLockWait(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, newOutcomeCounter())

	// Держим блокировку слота, чтобы Execute встал в очередь
	locks := uc.locks.(*slotlock.KeyedLock)
	release, err := locks.Acquire(context.Background(), domain.SlotKey("2026-06-14", "19:30", "5"))
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(ctx, validRequest())
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Execute did not return after context cancellation")
	}

	// Ожидавший запрос не дошел до хранилища
	assert.Zero(t, repo.count())
}

func TestUseCase_Execute_StorageErrorIsInternal(t *testing.T) {
	repo := &memoryRepo{createErr: errors.New("connection reset")}
	outcomes := newOutcomeCounter()
	uc := newTestUseCase(repo, outcomes)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, outcomes.get("error"))
}

func TestUseCase_Execute_InvariantViolationIsInternal(t *testing.T) {
	repo := &memoryRepo{}
	uc := newTestUseCase(repo, newOutcomeCounter())

	// Поврежденное состояние: занятость выше вместимости
	repo.reservations = append(repo.reservations,
		&domain.Reservation{Date: "2026-06-14", Time: "19:30", TableID: "5", Guests: 11})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, repo.count())
}
