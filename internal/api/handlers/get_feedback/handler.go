package get_feedback

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	"github.com/m04kA/FDS-ReservationService/internal/domain"
)

type FeedbackService interface {
	List(ctx context.Context, limit int) ([]*domain.Feedback, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service FeedbackService
	logger  Logger
}

func NewHandler(service FeedbackService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// feedbackItem отзыв в ответе
type feedbackItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Rating    int    `json:"valutazione"`
	Message   string `json:"messaggio"`
	CreatedAt string `json:"timestamp"`
}

// listResponse ответ листинга отзывов
type listResponse struct {
	Success   bool           `json:"success"`
	Count     int            `json:"count"`
	Feedbacks []feedbackItem `json:"feedbacks"`
}

// Handle GET /api/v1/feedback?limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /feedback - Invalid limit: %q", rawLimit)
			handlers.RespondError(w, http.StatusBadRequest, "InvalidFilter", "Parametri di filtro non validi.")
			return
		}
		limit = parsed
	}

	feedbacks, err := h.service.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /feedback - Failed to list feedback: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := listResponse{
		Success:   true,
		Count:     len(feedbacks),
		Feedbacks: make([]feedbackItem, 0, len(feedbacks)),
	}
	for _, fb := range feedbacks {
		resp.Feedbacks = append(resp.Feedbacks, feedbackItem{
			ID:        fb.ID,
			Name:      fb.Name,
			Rating:    fb.Rating,
			Message:   fb.Message,
			CreatedAt: fb.CreatedAt.Format(time.RFC3339),
		})
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
