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

	"go.uber.org/zap"
)

// SlotController serves recurring slots, availability and schedule exports.
type SlotController struct {
	Log         *zap.Logger
	SlotUsecase contracts.SlotUsecase
}

var (
	slotControllerInstance *SlotController
	onceSlotController     sync.Once
)

func NewSlotController(logger *zap.Logger, slotUsecase contracts.SlotUsecase) *SlotController {
	onceSlotController.Do(func() {
		slotControllerInstance = &SlotController{
			Log:         logger,
			SlotUsecase: slotUsecase,
		}
	})
	return slotControllerInstance
}

func (ctrl *SlotController) CreateSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("SlotController.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.CreateSlot)
	if err := decodeAndValidate(r, request, utils.SanitizeCreateSlotRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	slots, err := ctrl.SlotUsecase.CreateSlot(ctx, doctorID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "SlotController.CreateSlot", err)
		return
	}

	ctrl.Log.Info("SlotController.CreateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Int(constvars.LoggingCountKey, len(slots)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateSlotSuccessMessage, slots)
}

func (ctrl *SlotController) FindAll(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	slots, err := ctrl.SlotUsecase.GetSlots(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "SlotController.FindAll", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, slots)
}

func (ctrl *SlotController) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	slotID, err := urlParam(r, constvars.URLParamSlotID, utils.ValidateUrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("SlotController.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	if err := ctrl.SlotUsecase.DeleteSlot(ctx, doctorID, slotID); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "SlotController.DeleteSlot", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSlotSuccessMessage, nil)
}

// GetAvailability answers ?date=YYYY-MM-DD&mode=online|in-person&location=&exclude=.
func (ctrl *SlotController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	params := r.URL.Query()
	query := &requests.AvailabilityQuery{
		DoctorID:             doctorID,
		Date:                 strings.TrimSpace(params.Get(constvars.URLQueryParamDate)),
		Mode:                 strings.ToLower(strings.TrimSpace(params.Get(constvars.URLQueryParamMode))),
		LocationID:           strings.TrimSpace(params.Get(constvars.URLQueryParamLocation)),
		ExcludeAppointmentID: strings.TrimSpace(params.Get(constvars.URLQueryParamExclude)),
	}
	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	availability, err := ctrl.SlotUsecase.GetAvailability(ctx, query)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "SlotController.GetAvailability", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailabilitySuccessMessage, availability)
}

func (ctrl *SlotController) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("SlotController.ExportSchedule called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	export, err := ctrl.SlotUsecase.ExportSchedule(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "SlotController.ExportSchedule", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportScheduleSuccessMessage, export)
}
