package create_feedback

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/FDS-ReservationService/internal/api/handlers"
	"github.com/m04kA/FDS-ReservationService/internal/service/feedback"
)

const (
	msgInvalidRequestBody = "Corpo della richiesta non valido."
	msgEmptyMessage       = "Il messaggio deve contenere almeno 3 caratteri."
	msgMessageTooLong     = "Il messaggio è troppo lungo (massimo 1000 caratteri)."
	msgInvalidRating      = "La valutazione deve essere tra 0 e 5."
)

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

// createFeedbackRequest форма отзыва гостя
type createFeedbackRequest struct {
	Name    string `json:"nome,omitempty"`
	Rating  int    `json:"valutazione"`
	Message string `json:"messaggio"`
}

// feedbackItem отзыв в ответе
type feedbackItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	Rating    int    `json:"valutazione"`
	Message   string `json:"messaggio"`
	CreatedAt string `json:"timestamp"`
}

// createFeedbackResponse обертка успешного ответа
type createFeedbackResponse struct {
	Success  bool         `json:"success"`
	Feedback feedbackItem `json:"feedback"`
	Message  string       `json:"message"`
}

// Handle POST /api/v1/feedback
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createFeedbackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /feedback - Invalid request body: %v", err)
		handlers.RespondError(w, http.StatusBadRequest, "MissingField", msgInvalidRequestBody)
		return
	}

	fb, err := h.service.Submit(r.Context(), &feedback.SubmitRequest{
		Name:    req.Name,
		Rating:  req.Rating,
		Message: req.Message,
	})
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.logger.Info("POST /feedback - Feedback created: id=%d, rating=%d", fb.ID, fb.Rating)
	handlers.RespondJSON(w, http.StatusCreated, createFeedbackResponse{
		Success: true,
		Feedback: feedbackItem{
			ID:        fb.ID,
			Name:      fb.Name,
			Rating:    fb.Rating,
			Message:   fb.Message,
			CreatedAt: fb.CreatedAt.Format(time.RFC3339),
		},
		Message: "Grazie per il tuo feedback!",
	})
}

func (h *Handler) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, feedback.ErrEmptyMessage):
		handlers.RespondError(w, http.StatusBadRequest, "EmptyMessage", msgEmptyMessage)

	case errors.Is(err, feedback.ErrMessageTooLong):
		handlers.RespondError(w, http.StatusBadRequest, "MessageTooLong", msgMessageTooLong)

	case errors.Is(err, feedback.ErrInvalidRating):
		handlers.RespondError(w, http.StatusBadRequest, "InvalidRating", msgInvalidRating)

	default:
		h.logger.Error("POST /feedback - Failed to create feedback: %v", err)
		handlers.RespondInternalError(w)
	}
}
