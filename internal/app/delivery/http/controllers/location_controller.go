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

type LocationController struct {
	Log             *zap.Logger
	LocationUsecase contracts.LocationUsecase
}

var (
	locationControllerInstance *LocationController
	onceLocationController     sync.Once
)

func NewLocationController(logger *zap.Logger, locationUsecase contracts.LocationUsecase) *LocationController {
	onceLocationController.Do(func() {
		locationControllerInstance = &LocationController{
			Log:             logger,
			LocationUsecase: locationUsecase,
		}
	})
	return locationControllerInstance
}

func (ctrl *LocationController) CreateLocation(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("LocationController.CreateLocation called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	request := new(requests.CreateLocation)
	if err := decodeAndValidate(r, request, utils.SanitizeCreateLocationRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.LocationUsecase.CreateLocation(ctx, doctorID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "LocationController.CreateLocation", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateLocationSuccessMessage, response)
}

func (ctrl *LocationController) FindAll(w http.ResponseWriter, r *http.Request) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	locations, err := ctrl.LocationUsecase.GetLocations(ctx, doctorID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "LocationController.FindAll", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetLocationsSuccessMessage, locations)
}

func (ctrl *LocationController) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	doctorID, locationID, err := locationParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("LocationController.UpdateLocation called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingLocationIDKey, locationID),
	)

	request := new(requests.UpdateLocation)
	if err := decodeAndValidate(r, request, utils.SanitizeUpdateLocationRequest); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	response, err := ctrl.LocationUsecase.UpdateLocation(ctx, doctorID, locationID, request)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, r, "LocationController.UpdateLocation", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateLocationSuccessMessage, response)
}

func (ctrl *LocationController) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	doctorID, locationID, err := locationParams(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.Log.Info("LocationController.DeleteLocation called",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingLocationIDKey, locationID),
	)

	ctx, cancel := withUsecaseTimeout(r)
	defer cancel()

	if err := ctrl.LocationUsecase.DeleteLocation(ctx, doctorID, locationID); err != nil {
		writeUsecaseError(ctrl.Log, w, r, "LocationController.DeleteLocation", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteLocationSuccessMessage, nil)
}

func locationParams(r *http.Request) (string, string, error) {
	doctorID, err := urlParam(r, constvars.URLParamDoctorID, utils.ValidateDoctorID)
	if err != nil {
		return "", "", err
	}
	locationID, err := urlParam(r, constvars.URLParamLocationID, utils.ValidateUrlParamID)
	if err != nil {
		return "", "", err
	}
	return doctorID, locationID, nil
}
