package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/pkg/sanitize"
)

var (
	// ErrEmptyContact возвращается, когда контакт не указан
	ErrEmptyContact = errors.New("reminders.service: contact is required")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reminders.service: internal error")
)

// Service сервис заявок "напомните мне о событии"
type Service struct {
	reminderRepo ReminderRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса напоминаний
func NewService(reminderRepo ReminderRepository, logger Logger) *Service {
	return &Service{
		reminderRepo: reminderRepo,
		logger:       logger,
	}
}

// Submit сохраняет контакт для напоминания
// Контакт — внутреннее поле без контракта формата, поэтому здесь
// допустимо тихое усечение при санитизации
func (s *Service) Submit(ctx context.Context, contact string) (*domain.ReminderRequest, error) {
	contact = sanitize.Text(contact, domain.MaxContactLength)
	if contact == "" {
		return nil, ErrEmptyContact
	}

	req, err := s.reminderRepo.Create(ctx, &domain.ReminderRequest{Contact: contact})
	if err != nil {
		s.logger.Error("Submit: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: saved reminder request id=%d", req.ID)
	return req, nil
}

// List возвращает последние заявки
func (s *Service) List(ctx context.Context) ([]*domain.ReminderRequest, error) {
	reminders, err := s.reminderRepo.List(ctx, domain.RemindersLimit)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return reminders, nil
}
