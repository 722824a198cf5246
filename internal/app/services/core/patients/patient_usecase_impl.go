package patients

import (
	"context"
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

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	Log               *zap.Logger
	now               func() time.Time
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	logger *zap.Logger,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			DoctorRepository:  doctorRepository,
			Log:               logger,
			now:               time.Now,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	checks := []func() error{
		func() error { return utils.ValidateName(request.FirstName, "First name", true) },
		func() error { return utils.ValidateName(request.LastName, "Last name", true) },
		func() error { return utils.ValidateEmail(request.Email) },
		func() error { return utils.ValidatePhone(request.Phone) },
		func() error { return utils.ValidatePassword(request.Password) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return nil, exceptions.ErrProfileValidation(err)
		}
	}

	email := strings.ToLower(request.Email)
	existing, err := uc.PatientRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	patient := &models.Patient{
		ID:              uuid.NewString(),
		Email:           email,
		Password:        hashedPassword,
		FirstName:       utils.CapitalizeName(request.FirstName),
		LastName:        utils.CapitalizeName(request.LastName),
		Phone:           request.Phone,
		Gender:          request.Gender,
		DateOfBirth:     request.DateOfBirth,
		FavoriteDoctors: []string{},
	}
	patient.SetCreatedAtUpdatedAt(uc.now())

	if err := uc.PatientRepository.CreatePatient(ctx, patient); err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)
	response := patient.ToResponse()
	return &response, nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	response := patient.ToResponse()
	return &response, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if request.FirstName != nil {
		if err := utils.ValidateName(*request.FirstName, "First name", true); err != nil {
			return nil, exceptions.ErrProfileValidation(err)
		}
		patient.FirstName = utils.CapitalizeName(*request.FirstName)
	}
	if request.LastName != nil {
		if err := utils.ValidateName(*request.LastName, "Last name", true); err != nil {
			return nil, exceptions.ErrProfileValidation(err)
		}
		patient.LastName = utils.CapitalizeName(*request.LastName)
	}
	if request.Phone != nil {
		if err := utils.ValidatePhone(*request.Phone); err != nil {
			return nil, exceptions.ErrProfileValidation(err)
		}
		patient.Phone = *request.Phone
	}
	if request.Gender != nil {
		patient.Gender = *request.Gender
	}
	if request.DateOfBirth != nil {
		patient.DateOfBirth = *request.DateOfBirth
	}
	patient.SetUpdatedAt(uc.now())

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}

	response := patient.ToResponse()
	return &response, nil
}

func (uc *patientUsecase) AddFavoriteDoctor(ctx context.Context, patientID, doctorID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.AddFavoriteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return err
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil, doctorID)
	}

	added, err := uc.PatientRepository.AddFavoriteDoctor(ctx, patientID, doctorID)
	if err != nil {
		return err
	}
	if !added {
		return exceptions.ErrDoctorAlreadyInFavorites(doctorID)
	}
	return nil
}

func (uc *patientUsecase) RemoveFavoriteDoctor(ctx context.Context, patientID, doctorID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.RemoveFavoriteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if _, err := uc.findPatient(ctx, patientID); err != nil {
		return err
	}

	removed, err := uc.PatientRepository.RemoveFavoriteDoctor(ctx, patientID, doctorID)
	if err != nil {
		return err
	}
	if !removed {
		return exceptions.ErrDoctorNotInFavorites(doctorID)
	}
	return nil
}

// GetFavoriteDoctors skips favorites whose doctor record no longer exists.
func (uc *patientUsecase) GetFavoriteDoctors(ctx context.Context, patientID string) ([]responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetFavoriteDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	favorites := make([]responses.Doctor, 0, len(patient.FavoriteDoctors))
	for _, doctorID := range patient.FavoriteDoctors {
		doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
		if err != nil {
			return nil, err
		}
		if doctor == nil {
			continue
		}
		favorites = append(favorites, doctor.ToResponse())
	}
	return favorites, nil
}

func (uc *patientUsecase) findPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return patient, nil
}
