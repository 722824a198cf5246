package feedbacks

import (
	"context"
	"math"
	"strings"
	"sync"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type feedbackUsecase struct {
	FeedbackRepository    contracts.FeedbackRepository
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
	now                   func() time.Time
}

var (
	feedbackUsecaseInstance contracts.FeedbackUsecase
	onceFeedbackUsecase     sync.Once
)

func NewFeedbackUsecase(
	feedbackRepository contracts.FeedbackRepository,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.FeedbackUsecase {
	onceFeedbackUsecase.Do(func() {
		feedbackUsecaseInstance = &feedbackUsecase{
			FeedbackRepository:    feedbackRepository,
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			EventPublisher:        eventPublisher,
			Log:                   logger,
			now:                   time.Now,
		}
	})
	return feedbackUsecaseInstance
}

func (uc *feedbackUsecase) CreateFeedback(ctx context.Context, request *requests.CreateFeedback) (*responses.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.CreateFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	if request.Rating < 1 || request.Rating > 5 {
		return nil, exceptions.ErrRatingOutOfRange()
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, request.AppointmentID)
	}
	if appointment.Status != constvars.AppointmentStatusCompleted &&
		appointment.Status != constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrFeedbackNotAllowed()
	}

	existing, err := uc.FeedbackRepository.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrFeedbackAlreadyExists(nil)
	}

	feedback := &models.Feedback{
		ID:            uuid.NewString(),
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Rating:        request.Rating,
		Comment:       strings.TrimSpace(request.Comment),
	}
	feedback.SetCreatedAtUpdatedAt(uc.now())

	if err := uc.FeedbackRepository.CreateFeedback(ctx, feedback); err != nil {
		uc.Log.Error("feedbackUsecase.CreateFeedback error creating feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.EventFeedbackCreated, feedbackEvent{
		FeedbackID:    feedback.ID,
		AppointmentID: feedback.AppointmentID,
		DoctorID:      feedback.DoctorID,
		PatientID:     feedback.PatientID,
		Rating:        feedback.Rating,
	}); err != nil {
		uc.Log.Error("feedbackUsecase.CreateFeedback failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFeedbackIDKey, feedback.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info("feedbackUsecase.CreateFeedback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFeedbackIDKey, feedback.ID),
	)
	response := feedback.ToResponse()
	return &response, nil
}

func (uc *feedbackUsecase) GetFeedbackByID(ctx context.Context, feedbackID string) (*responses.Feedback, error) {
	uc.Log.Info("feedbackUsecase.GetFeedbackByID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingFeedbackIDKey, feedbackID),
	)

	feedback, err := uc.findFeedback(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	response := feedback.ToResponse()
	return &response, nil
}

func (uc *feedbackUsecase) GetFeedbackByAppointmentID(ctx context.Context, appointmentID string) (*responses.Feedback, error) {
	uc.Log.Info("feedbackUsecase.GetFeedbackByAppointmentID called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	feedback, err := uc.FeedbackRepository.FindByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, exceptions.ErrFeedbackNotFound(nil, appointmentID)
	}
	response := feedback.ToResponse()
	return &response, nil
}

// GetDoctorFeedback lists a doctor's feedback newest first with the average rating
// rounded to one decimal.
func (uc *feedbackUsecase) GetDoctorFeedback(ctx context.Context, doctorID string) (*responses.DoctorFeedback, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.GetDoctorFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	feedback, err := uc.FeedbackRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	result := &responses.DoctorFeedback{
		DoctorID: doctorID,
		Count:    len(feedback),
		Items:    make([]responses.Feedback, 0, len(feedback)),
	}
	total := 0
	for i := range feedback {
		total += feedback[i].Rating
		result.Items = append(result.Items, feedback[i].ToResponse())
	}
	if result.Count > 0 {
		result.AverageRating = math.Round(float64(total)/float64(result.Count)*10) / 10
	}
	return result, nil
}

func (uc *feedbackUsecase) ReplyFeedback(ctx context.Context, feedbackID string, request *requests.ReplyFeedback) (*responses.Feedback, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("feedbackUsecase.ReplyFeedback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFeedbackIDKey, feedbackID),
		zap.String("author", request.Author),
	)

	text := strings.TrimSpace(request.Text)
	if text == "" {
		return nil, exceptions.ErrReplyTextRequired()
	}

	feedback, err := uc.findFeedback(ctx, feedbackID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	switch request.Author {
	case constvars.ActorDoctor:
		feedback.DoctorReply = text
		feedback.DoctorReplyAt = &now
	case constvars.ActorPatient:
		feedback.PatientReply = text
		feedback.PatientReplyAt = &now
	default:
		return nil, exceptions.ErrUnknownActor()
	}
	feedback.SetUpdatedAt(now)

	if err := uc.FeedbackRepository.UpdateFeedback(ctx, feedback); err != nil {
		uc.Log.Error("feedbackUsecase.ReplyFeedback error updating feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("feedbackUsecase.ReplyFeedback succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFeedbackIDKey, feedback.ID),
	)
	response := feedback.ToResponse()
	return &response, nil
}

func (uc *feedbackUsecase) findFeedback(ctx context.Context, feedbackID string) (*models.Feedback, error) {
	feedback, err := uc.FeedbackRepository.FindByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}
	if feedback == nil {
		return nil, exceptions.ErrFeedbackNotFound(nil, feedbackID)
	}
	return feedback, nil
}

type feedbackEvent struct {
	FeedbackID    string `json:"feedbackId"`
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Rating        int    `json:"rating"`
}
