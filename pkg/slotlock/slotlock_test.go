package slotlock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedLock_MutualExclusion(t *testing.T) {
	locks := New()

	const workers = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := locks.Acquire(context.Background(), "slot")
			if err != nil {
				t.Error(err)
				return
			}
			defer release()

			// Без взаимного исключения инкремент через локальную копию
			// потерял бы обновления
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestKeyedLock_IndependentKeys(t *testing.T) {
	locks := New()

	releaseA, err := locks.Acquire(context.Background(), "a")
	require.NoError(t, err)
	defer releaseA()

	// Другой ключ не должен ждать освобождения "a"
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	releaseB, err := locks.Acquire(ctx, "b")
	require.NoError(t, err)
	releaseB()
}

func TestKeyedLock_CanceledWaiter(t *testing.T) {
	locks := New()

	release, err := locks.Acquire(context.Background(), "slot")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := locks.Acquire(ctx, "slot")
		done <- err
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("waiter did not return after cancellation")
	}

	// Владелец не пострадал и может освободить ключ
	release()
	assert.Zero(t, locks.Len())
}

func TestKeyedLock_EntriesAreCleanedUp(t *testing.T) {
	locks := New()

	for i := 0; i < 10; i++ {
		release, err := locks.Acquire(context.Background(), "slot")
		require.NoError(t, err)
		release()
	}

	assert.Zero(t, locks.Len())
}

func TestKeyedLock_ReleaseIsIdempotent(t *testing.T) {
	locks := New()

	release, err := locks.Acquire(context.Background(), "slot")
	require.NoError(t, err)

	release()
	release() // повторный вызов не должен паниковать или ломать счетчики

	assert.Zero(t, locks.Len())

	// Ключ снова доступен
	release2, err := locks.Acquire(context.Background(), "slot")
	require.NoError(t, err)
	release2()
}
