package feedback

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

// memoryRepo репозиторий отзывов в памяти
type memoryRepo struct {
	nextID    int64
	feedbacks []*domain.Feedback

	lastListLimit int
}

func (r *memoryRepo) Create(_ context.Context, fb *domain.Feedback) (*domain.Feedback, error) {
	r.nextID++
	fb.ID = r.nextID
	stored := *fb
	r.feedbacks = append(r.feedbacks, &stored)
	return fb, nil
}

func (r *memoryRepo) List(_ context.Context, limit int) ([]*domain.Feedback, error) {
	r.lastListLimit = limit
	if limit > len(r.feedbacks) {
		limit = len(r.feedbacks)
	}
	return r.feedbacks[:limit], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestSubmit_Valid(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nopLogger{})

	fb, err := svc.Submit(context.Background(), &SubmitRequest{
		Name:    "Mario",
		Rating:  5,
		Message: "Ottima serata!",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), fb.ID)
	assert.Equal(t, "Mario", fb.Name)
	assert.Equal(t, 5, fb.Rating)
	assert.Equal(t, "Ottima serata!", fb.Message)
}

func TestSubmit_AnonymousWhenNameEmpty(t *testing.T) {
	svc := NewService(&memoryRepo{}, nopLogger{})

	fb, err := svc.Submit(context.Background(), &SubmitRequest{
		Name:    "   ",
		Rating:  4,
		Message: "Tutto bene",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AnonymousName, fb.Name)
}

func TestSubmit_MessageValidation(t *testing.T) {
	svc := NewService(&memoryRepo{}, nopLogger{})

	t.Run("empty", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), &SubmitRequest{Rating: 3, Message: ""})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), &SubmitRequest{Rating: 3, Message: "ok"})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := svc.Submit(context.Background(), &SubmitRequest{
			Rating:  3,
			Message: strings.Repeat("a", domain.MaxFeedbackMessageLength+1),
		})
		assert.ErrorIs(t, err, ErrMessageTooLong)
	})

	t.Run("markup is escaped", func(t *testing.T) {
		fb, err := svc.Submit(context.Background(), &SubmitRequest{
			Rating:  3,
			Message: "<b>bello</b>",
		})
		require.NoError(t, err)
		assert.NotContains(t, fb.Message, "<")
	})
}

func TestSubmit_RatingValidation(t *testing.T) {
	svc := NewService(&memoryRepo{}, nopLogger{})

	for _, rating := range []int{-1, 6} {
		_, err := svc.Submit(context.Background(), &SubmitRequest{
			Rating:  rating,
			Message: "messaggio valido",
		})
		assert.ErrorIs(t, err, ErrInvalidRating)
	}
}

func TestList_LimitBounds(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFeedbackLimit, repo.lastListLimit)

	_, err = svc.List(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxFeedbackLimit, repo.lastListLimit)

	_, err = svc.List(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, repo.lastListLimit)
}
