package controllers

import (
	"net/http"
	"sync"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackController struct {
	Log             *zap.Logger
	FeedbackUsecase contracts.FeedbackUsecase
}

var (
	feedbackControllerInstance *FeedbackController
	onceFeedbackController     sync.Once
)

func NewFeedbackController(logger *zap.Logger, feedbackUsecase contracts.FeedbackUsecase) *FeedbackController {
	onceFeedbackController.Do(func() {
		feedbackControllerInstance = &FeedbackController{
			Log:             logger,
			FeedbackUsecase: feedbackUsecase,
		}
	})
	return feedbackControllerInstance
}

func (ctrl *FeedbackController) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("FeedbackController.CreateFeedback called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	request := new(requests.CreateFeedback)
	if err := decodeAndValidate(r, request, utils.SanitizeFeedbackRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.FeedbackUsecase.CreateFeedback(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "FeedbackController.CreateFeedback", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateFeedbackSuccessMessage, response)
}

func (ctrl *FeedbackController) FindByID(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := urlParam(r, constvars.URLParamFeedbackID, utils.ValidateUrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.FeedbackUsecase.GetFeedbackByID(ctx, feedbackID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "FeedbackController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFeedbackSuccessMessage, response)
}

func (ctrl *FeedbackController) FindByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := urlParam(r, constvars.URLParamAppointmentID, utils.ValidateAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.FeedbackUsecase.GetFeedbackByAppointmentID(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "FeedbackController.FindByAppointment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFeedbackSuccessMessage, response)
}

func (ctrl *FeedbackController) FindByDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.FeedbackUsecase.GetDoctorFeedback(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "FeedbackController.FindByDoctor", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFeedbackSuccessMessage, response)
}

func (ctrl *FeedbackController) Reply(w http.ResponseWriter, r *http.Request) {
	feedbackID, err := urlParam(r, constvars.URLParamFeedbackID, utils.ValidateUrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("FeedbackController.Reply called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingFeedbackIDKey, feedbackID),
	)

	request := new(requests.ReplyFeedback)
	if err := decodeAndValidate(r, request, nil); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.FeedbackUsecase.ReplyFeedback(ctx, feedbackID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "FeedbackController.Reply", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReplyFeedbackSuccessMessage, response)
}
