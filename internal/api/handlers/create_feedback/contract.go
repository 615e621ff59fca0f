package create_feedback

import (
	"context"

	"github.com/m04kA/FDS-ReservationService/internal/domain"
	"github.com/m04kA/FDS-ReservationService/internal/service/feedback"
)

type FeedbackService interface {
	Submit(ctx context.Context, req *feedback.SubmitRequest) (*domain.Feedback, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
