package feedback

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/sanitize"
)

// Service сервис приема и выдачи отзывов гостей
type Service struct {
	feedbackRepo FeedbackRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(feedbackRepo FeedbackRepository, logger Logger) *Service {
	return &Service{
		feedbackRepo: feedbackRepo,
		logger:       logger,
	}
}

// SubmitRequest сырой отзыв гостя
type SubmitRequest struct {
	Name    string // Опционально; пустое имя становится "Anonimo"
	Rating  int    // 0..5
	Message string
}

// Submit валидирует и сохраняет отзыв
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*domain.Feedback, error) {
	message := sanitize.Text(req.Message, 0)
	if utf8.RuneCountInString(message) < domain.MinFeedbackMessageLength {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > domain.MaxFeedbackMessageLength {
		return nil, fmt.Errorf("%w: longer than %d characters", ErrMessageTooLong, domain.MaxFeedbackMessageLength)
	}

	if req.Rating < domain.MinFeedbackRating || req.Rating > domain.MaxFeedbackRating {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, req.Rating)
	}

	name := sanitize.Text(req.Name, domain.MaxNameLength)
	if strings.TrimSpace(name) == "" {
		name = domain.AnonymousName
	}

	fb, err := s.feedbackRepo.Create(ctx, &domain.Feedback{
		Name:    name,
		Rating:  req.Rating,
		Message: message,
	})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: saved feedback id=%d, rating=%d", fb.ID, fb.Rating)
	return fb, nil
}

// List возвращает последние отзывы
func (s *Service) List(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	if limit <= 0 {
		limit = domain.DefaultFeedbackLimit
	}
	if limit > domain.MaxFeedbackLimit {
		limit = domain.MaxFeedbackLimit
	}

	feedbacks, err := s.feedbackRepo.List(ctx, limit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return feedbacks, nil
}
