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

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		patientControllerInstance = &PatientController{
			Log:            logger,
			PatientUsecase: patientUsecase,
		}
	})
	return patientControllerInstance
}

func (ctrl *PatientController) CreatePatient(w http.ResponseWriter, r *http.Request) {
	ctrl.Log.Info("PatientController.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
	)

	request := new(requests.CreatePatient)
	if err := decodeAndValidate(r, request, utils.SanitizeCreatePatientRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.PatientUsecase.CreatePatient(ctx, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "PatientController.CreatePatient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreatePatientSuccessMessage, response)
}

func (ctrl *PatientController) FindByID(w http.ResponseWriter, r *http.Request) {
	patientID, err := urlParam(r, constvars.URLParamPatientID, utils.ValidateUrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.PatientUsecase.GetPatientByID(ctx, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "PatientController.FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, response)
}

func (ctrl *PatientController) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	patientID, err := urlParam(r, constvars.URLParamPatientID, utils.ValidateUrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PatientController.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	request := new(requests.UpdatePatient)
	if err := decodeAndValidate(r, request, utils.SanitizeUpdatePatientRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.PatientUsecase.UpdatePatient(ctx, patientID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "PatientController.UpdatePatient", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdatePatientSuccessMessage, response)
}

func (ctrl *PatientController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	patientID, err := urlParam(r, constvars.URLParamPatientID, utils.ValidateUrlParamID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	doctors, err := ctrl.PatientUsecase.GetFavoriteDoctors(ctx, patientID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "PatientController.GetFavorites", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFavoriteDoctorsSuccessMessage, doctors)
}

func (ctrl *PatientController) AddFavorite(w http.ResponseWriter, r *http.Request) {
	patientID, doctorID, err := favoriteParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PatientController.AddFavorite called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	if err := ctrl.PatientUsecase.AddFavoriteDoctor(ctx, patientID, doctorID); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "PatientController.AddFavorite", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddFavoriteDoctorSuccessMessage, nil)
}

func (ctrl *PatientController) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	patientID, doctorID, err := favoriteParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("PatientController.RemoveFavorite called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	if err := ctrl.PatientUsecase.RemoveFavoriteDoctor(ctx, patientID, doctorID); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "PatientController.RemoveFavorite", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RemoveFavoriteDoctorSuccessMessage, nil)
}

func favoriteParams(r *http.Request) (string, string, error) {
	patientID, err := urlParam(r, constvars.URLParamPatientID, utils.ValidateUrlParamID)
	if err != nil {
		return "", "", err
	}
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		return "", "", err
	}
	return patientID, doctorID, nil
}
