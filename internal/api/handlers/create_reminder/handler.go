package create_reminder

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/internal/service/reminders"
)

const (
	msgInvalidRequestBody = "Corpo della richiesta non valido."
	msgEmptyContact       = "Inserisci un contatto per il promemoria."
)

type RemindersService interface {
	Submit(ctx context.Context, contact string) (*domain.ReminderRequest, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service RemindersService
	logger  Logger
}

func NewHandler(service RemindersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// createReminderRequest форма заявки на напоминание
type createReminderRequest struct {
	Contact string `json:"contatto"`
}

// createReminderResponse обертка успешного ответа
type createReminderResponse struct {
	Success   bool   `json:"success"`
	ID        int64  `json:"id"`
	Contact   string `json:"contatto"`
	CreatedAt string `json:"timestamp"`
	Message   string `json:"message"`
}

// Handle POST /api/v1/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reminders - Invalid request body: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, "MissingField", msgInvalidRequestBody)
		return
	}

	reminder, err := h.service.Submit(r.Context(), req.Contact)
	if err != nil {
		if errors.Is(err, reminders.ErrEmptyContact) {
			handlers.RespondError(w, http.StatusBadRequest, "EmptyContact", msgEmptyContact)
			return
		}
		h.logger.Error("POST /reminders - Failed to create reminder: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reminders - Reminder created: id=%d", reminder.ID)
	handlers.RespondJSON(w, http.StatusCreated, createReminderResponse{
		Success:   true,
		ID:        reminder.ID,
		Contact:   reminder.Contact,
		CreatedAt: reminder.CreatedAt.Format(time.RFC3339),
		Message:   "Ti avviseremo prima dell'evento!",
	})
}
