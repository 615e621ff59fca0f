package reminders

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

type memoryRepo struct {
	nextID    int64
	reminders []*domain.ReminderRequest

	lastListLimit int
}

func (r *memoryRepo) Create(_ context.Context, req *domain.ReminderRequest) (*domain.ReminderRequest, error) {
	r.nextID++
	req.ID = r.nextID
	stored := *req
	r.reminders = append(r.reminders, &stored)
	return req, nil
}

func (r *memoryRepo) List(_ context.Context, limit int) ([]*domain.ReminderRequest, error) {
	r.lastListLimit = limit
	if limit > len(r.reminders) {
		limit = len(r.reminders)
	}
	return r.reminders[:limit], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSubmit(t *testing.T) {
	svc := NewService(&memoryRepo{}, nopLogger{})

	t.Run("valid contact", func(t *testing.T) {
		req, err := svc.Submit(context.Background(), "mario@example.com")
		require.NoError(t, err)
		assert.Equal(t, "mario@example.com", req.Contact)
	})

	t.Run("empty contact", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrEmptyContact)
	})

	t.Run("long contact is truncated", func(t *testing.T) {
		req, err := svc.Submit(context.Background(), strings.Repeat("a", domain.MaxContactLength*2))
		require.NoError(t, err)
		assert.Equal(t, domain.MaxContactLength, utf8.RuneCountInString(req.Contact))
	})
}

func TestList_UsesFixedLimit(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RemindersLimit, repo.lastListLimit)
}
