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

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			Log:           logger,
			DoctorUsecase: doctorUsecase,
		}
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("DoctorController.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	request := new(requests.CreateDoctor)
	if err := decodeAndValidate(r, request, utils.SanitizeCreateDoctorRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.CreateDoctor(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.CreateDoctor", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, response)
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("DoctorController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
	)

	query := r.URL.Query()
	filter := &requests.DoctorFilter{
		Specialty:      query.Get(constvars.URLQueryParamSpecialty),
		ApprovalStatus: query.Get(constvars.URLQueryParamApproval),
		Pagination:     *utils.BuildPaginationRequest(r),
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	doctors, total, err := ctrl.DoctorUsecase.GetDoctors(ctx, filter)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.FindAll", err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, filter.Page, filter.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, pagination, doctors)
}

func (ctrl *DoctorController) FindByID(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.GetDoctorByID(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorSuccessMessage, response)
}

func (ctrl *DoctorController) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DoctorController.UpdateSettings called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.UpdateDoctorSettings)
	if err := decodeAndValidate(r, request, utils.SanitizeUpdateDoctorSettingsRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpdateDoctorSettings(ctx, doctorID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.UpdateSettings", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorSettingsSuccessMessage, response)
}

func (ctrl *DoctorController) UpdateApproval(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DoctorController.UpdateApproval called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.UpdateDoctorApproval)
	if err := decodeAndValidate(r, request, nil); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpdateDoctorApproval(ctx, doctorID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.UpdateApproval", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorApprovalSuccessMessage, response)
}

func (ctrl *DoctorController) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties := ctrl.DoctorUsecase.GetSpecialties(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSpecialtiesSuccessMessage, specialties)
}

func (ctrl *DoctorController) Recommend(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get(constvars.URLQueryParamSpecialty)
	ctrl.Log.Info("DoctorController.Recommend called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.URLQueryParamSpecialty, specialty),
	)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.GetRecommendedDoctors(ctx, specialty)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.Recommend", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRecommendedDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) Block(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("DoctorController.Block called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.BlockDoctor)
	if err := decodeAndValidate(r, request, nil); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.BlockDoctor(ctx, doctorID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.Block", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BlockDoctorSuccessMessage, response)
}

func (ctrl *DoctorController) Unblock(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UnblockDoctor(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "DoctorController.Unblock", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UnblockDoctorSuccessMessage, response)
}
