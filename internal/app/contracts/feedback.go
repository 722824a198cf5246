package contracts

import (
	"context"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
)

type FeedbackRepository interface {
	CreateFeedback(ctx context.Context, feedback *models.Feedback) error
	FindByID(ctx context.Context, feedbackID string) (*models.Feedback, error)
	FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Feedback, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Feedback, error)
	UpdateFeedback(ctx context.Context, feedback *models.Feedback) error
	// StatsByDoctorIDs omits doctors without feedback.
	StatsByDoctorIDs(ctx context.Context, doctorIDs []string) (map[string]models.FeedbackStats, error)
}

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error)
	GetFeedbackByID(ctx context.Context, feedbackID string) (*responses.Feedback, error)
	GetFeedbackByAppointmentID(ctx context.Context, appointmentID string) (*responses.Feedback, error)
	GetDoctorFeedback(ctx context.Context, doctorID string) (*responses.DoctorFeedback, error)
	ReplyFeedback(ctx context.Context, feedbackID string, request *requests.ReplyFeedback) (*responses.Feedback, error)
}
