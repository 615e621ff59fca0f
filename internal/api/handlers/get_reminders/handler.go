package get_reminders

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

type RemindersService interface {
	List(ctx context.Context) ([]*domain.ReminderRequest, error)
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

// reminderItem заявка в ответе
type reminderItem struct {
	ID        int64  `json:"id"`
	Contact   string `json:"contatto"`
	CreatedAt string `json:"timestamp"`
}

// listResponse ответ листинга заявок
type listResponse struct {
	Success   bool           `json:"success"`
	Count     int            `json:"count"`
	Reminders []reminderItem `json:"promemoria"`
}

// Handle GET /api/v1/reminders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /reminders - Failed to list reminders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := listResponse{
		Success:   true,
		Count:     len(items),
		Reminders: make([]reminderItem, 0, len(items)),
	}
	for _, item := range items {
		resp.Reminders = append(resp.Reminders, reminderItem{
			ID:        item.ID,
			Contact:   item.Contact,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
