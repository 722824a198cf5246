package controllers

import (
	"net/http"
	"strings"
	"sync"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			AppointmentUsecase: appointmentUsecase,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	if err := decodeAndValidate(r, request, utils.SanitizeCreateAppointmentRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "AppointmentController.CreateAppointment", err)
		return
	}

	utils.LogBusinessEvent(ctrl.Log, "appointment_booked", requestID,
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
		zap.String(constvars.LoggingDoctorIDKey, response.DoctorID),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := r.URL.Query()
	filter := &requests.AppointmentFilter{
		DoctorID:   strings.TrimSpace(query.Get(constvars.URLQueryParamDoctor)),
		PatientID:  strings.TrimSpace(query.Get(constvars.URLQueryParamPatient)),
		Date:       strings.TrimSpace(query.Get(constvars.URLQueryParamDate)),
		Status:     strings.ToLower(strings.TrimSpace(query.Get(constvars.URLQueryParamStatus))),
		Mode:       strings.ToLower(strings.TrimSpace(query.Get(constvars.URLQueryParamMode))),
		Pagination: *utils.BuildPaginationRequest(r),
	}
	if err := utils.ValidateStruct(filter); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	appointments, total, err := ctrl.AppointmentUsecase.GetAppointments(ctx, filter)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "AppointmentController.FindAll", err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, pagination, appointments)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := urlParam(r, constvars.URLParamAppointmentID, utils.ValidateAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "AppointmentController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := urlParam(r, constvars.URLParamAppointmentID, utils.ValidateAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("AppointmentController.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	request := new(requests.UpdateAppointmentStatus)
	if err := decodeAndValidate(r, request, nil); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.UpdateAppointmentStatus(ctx, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "AppointmentController.UpdateStatus", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentStatusSuccessMessage, response)
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := urlParam(r, constvars.URLParamAppointmentID, utils.ValidateAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("AppointmentController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	request := new(requests.CancelAppointment)
	if err := decodeAndValidate(r, request, utils.SanitizeCancelAppointmentRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "AppointmentController.Cancel", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Reschedule(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := urlParam(r, constvars.URLParamAppointmentID, utils.ValidateAppointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("AppointmentController.Reschedule called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	request := new(requests.RescheduleAppointment)
	if err := decodeAndValidate(r, request, utils.SanitizeRescheduleAppointmentRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.RescheduleAppointment(ctx, appointmentID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "AppointmentController.Reschedule", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RescheduleAppointmentSuccessMessage, response)
}
