package doctors

import (
	"context"
	"strings"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository   contracts.DoctorRepository
	FeedbackRepository contracts.FeedbackRepository
	SlotUsecase        contracts.SlotUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	now                func() time.Time
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	feedbackRepository contracts.FeedbackRepository,
	slotUsecase contracts.SlotUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		instance := &doctorUsecase{
			DoctorRepository:   doctorRepository,
			FeedbackRepository: feedbackRepository,
			SlotUsecase:        slotUsecase,
			InternalConfig:     internalConfig,
			Log:                logger,
			now:                time.Now,
		}
		doctorUsecaseInstance = instance
	})
	return doctorUsecaseInstance
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	years, err := uc.validateProfile(request)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor profile validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrProfileValidation(err)
	}

	existing, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
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

	doctorID, err := utils.GenerateDoctorID()
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	doctor := &models.Doctor{
		ID:                  doctorID,
		Email:               strings.ToLower(request.Email),
		Password:            hashedPassword,
		FirstName:           utils.CapitalizeName(request.FirstName),
		MiddleName:          utils.CapitalizeName(request.MiddleName),
		LastName:            utils.CapitalizeName(request.LastName),
		Gender:              request.Gender,
		DateOfBirth:         request.DateOfBirth,
		Specialty:           request.Specialty,
		Phone:               request.Phone,
		LicenseNumber:       request.LicenseNumber,
		YearsOfExperience:   years,
		Bio:                 request.Bio,
		AppointmentInterval: constvars.DefaultAppointmentIntervalMinutes,
		TimeFormat:          constvars.TimeFormat24h,
		DateFormat:          constvars.DateFormats[2],
		ApprovalStatus:      constvars.ApprovalStatusPending,
	}
	if request.Specialty == constvars.SpecialtyOther {
		doctor.PendingSpecialty = utils.CapitalizeSpecialty(request.CustomSpecialty)
	}
	doctor.SetCreatedAtUpdatedAt(uc.now())

	if err := uc.DoctorRepository.CreateDoctor(ctx, doctor); err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	response := doctor.ToResponse()
	return &response, nil
}

// validateProfile runs the registration form checks in display order and
// returns the parsed years of experience.
func (uc *doctorUsecase) validateProfile(request *requests.CreateDoctor) (int, error) {
	checks := []func() error{
		func() error { return utils.ValidateName(request.FirstName, "First name", true) },
		func() error { return utils.ValidateName(request.MiddleName, "Middle name", false) },
		func() error { return utils.ValidateName(request.LastName, "Last name", true) },
		func() error { return utils.ValidateEmail(request.Email) },
		func() error { return utils.ValidatePassword(request.Password) },
		func() error { return utils.ValidateGender(request.Gender) },
		func() error {
			return utils.ValidateDateOfBirth(request.DateOfBirth, uc.now().In(uc.InternalConfig.App.Location()))
		},
		func() error { return utils.ValidateSpecialty(request.Specialty, request.CustomSpecialty) },
		func() error { return utils.ValidatePhone(request.Phone) },
		func() error { return utils.ValidateLicenseNumber(request.LicenseNumber) },
		func() error { return utils.ValidateBio(request.Bio) },
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return 0, err
		}
	}
	return utils.ValidateYearsOfExperience(request.YearsOfExperience)
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctorByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	response := doctor.ToResponse()
	return &response, nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context, filter *requests.DoctorFilter) ([]responses.Doctor, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, filter),
	)

	doctors, total, err := uc.DoctorRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	response := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		response = append(response, doctors[i].ToResponse())
	}
	return response, total, nil
}

func (uc *doctorUsecase) UpdateDoctorSettings(ctx context.Context, doctorID string, request *requests.UpdateDoctorSettings) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateDoctorSettings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	intervalChanged, err := applySettings(doctor, request)
	if err != nil {
		return nil, err
	}
	doctor.SetUpdatedAt(uc.now())

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		uc.Log.Error("doctorUsecase.UpdateDoctorSettings error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if intervalChanged {
		if err := uc.SlotUsecase.InvalidateAvailability(ctx, doctor.ID); err != nil {
			uc.Log.Warn("doctorUsecase.UpdateDoctorSettings failed to invalidate availability",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
				zap.Error(err),
			)
		}
	}

	uc.Log.Info("doctorUsecase.UpdateDoctorSettings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)
	response := doctor.ToResponse()
	return &response, nil
}

// applySettings copies the provided fields onto doctor and reports whether the
// booking interval changed.
func applySettings(doctor *models.Doctor, request *requests.UpdateDoctorSettings) (bool, error) {
	if request.FirstName != nil {
		if err := utils.ValidateName(*request.FirstName, "First name", true); err != nil {
			return false, exceptions.ErrProfileValidation(err)
		}
		doctor.FirstName = utils.CapitalizeName(*request.FirstName)
	}
	if request.MiddleName != nil {
		if err := utils.ValidateName(*request.MiddleName, "Middle name", false); err != nil {
			return false, exceptions.ErrProfileValidation(err)
		}
		doctor.MiddleName = utils.CapitalizeName(*request.MiddleName)
	}
	if request.LastName != nil {
		if err := utils.ValidateName(*request.LastName, "Last name", true); err != nil {
			return false, exceptions.ErrProfileValidation(err)
		}
		doctor.LastName = utils.CapitalizeName(*request.LastName)
	}
	if request.Phone != nil {
		if err := utils.ValidatePhone(*request.Phone); err != nil {
			return false, exceptions.ErrProfileValidation(err)
		}
		doctor.Phone = *request.Phone
	}
	if request.Bio != nil {
		if err := utils.ValidateBio(*request.Bio); err != nil {
			return false, exceptions.ErrProfileValidation(err)
		}
		doctor.Bio = *request.Bio
	}
	if request.TimeFormat != nil {
		doctor.TimeFormat = *request.TimeFormat
	}
	if request.DateFormat != nil {
		doctor.DateFormat = *request.DateFormat
	}

	intervalChanged := false
	if request.AppointmentInterval != nil {
		interval := *request.AppointmentInterval
		if interval < constvars.MinAppointmentIntervalMinutes || interval > constvars.MaxAppointmentIntervalMinutes {
			return false, exceptions.ErrInvalidAppointmentInterval()
		}
		intervalChanged = interval != doctor.IntervalMinutes()
		doctor.AppointmentInterval = interval
	}
	return intervalChanged, nil
}

func (uc *doctorUsecase) UpdateDoctorApproval(ctx context.Context, doctorID string, request *requests.UpdateDoctorApproval) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UpdateDoctorApproval called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	reason := strings.TrimSpace(request.RejectionReason)
	if request.Status == constvars.ApprovalStatusRejected && reason == "" {
		return nil, exceptions.ErrRejectionReasonRequired()
	}

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	doctor.ApprovalStatus = request.Status
	doctor.RejectionReason = ""
	if request.Status == constvars.ApprovalStatusRejected {
		doctor.RejectionReason = reason
	}
	doctor.SetUpdatedAt(uc.now())

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.UpdateDoctorApproval succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.String("approval_status", doctor.ApprovalStatus),
	)
	response := doctor.ToResponse()
	return &response, nil
}

func (uc *doctorUsecase) GetRecommendedDoctors(ctx context.Context, specialty string) ([]responses.RecommendedDoctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetRecommendedDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("specialty", specialty),
	)

	specialty = strings.TrimSpace(specialty)
	if specialty == "" {
		return nil, exceptions.ErrSpecialtyRequired()
	}

	doctors, err := uc.DoctorRepository.FindRecommendable(ctx, specialty)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetRecommendedDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	eligible := make([]models.Doctor, 0, len(doctors))
	doctorIDs := make([]string, 0, len(doctors))
	for i := range doctors {
		if !doctors[i].Recommendable() {
			continue
		}
		eligible = append(eligible, doctors[i])
		doctorIDs = append(doctorIDs, doctors[i].ID)
	}
	stats, err := uc.FeedbackRepository.StatsByDoctorIDs(ctx, doctorIDs)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetRecommendedDoctors error aggregating feedback",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ranked := rankDoctors(eligible, stats, specialty)
	uc.Log.Info("doctorUsecase.GetRecommendedDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(ranked)),
	)
	return ranked, nil
}

func (uc *doctorUsecase) BlockDoctor(ctx context.Context, doctorID string, request *requests.BlockDoctor) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.BlockDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	reason := strings.TrimSpace(request.Reason)
	if reason == "" {
		return nil, exceptions.ErrBlockReasonRequired()
	}

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor.IsBlocked {
		return nil, exceptions.ErrDoctorAlreadyBlocked(doctor.ID)
	}

	now := uc.now()
	doctor.IsBlocked = true
	doctor.BlockReason = reason
	doctor.BlockedAt = &now
	doctor.SetUpdatedAt(now)

	return uc.saveBlockState(ctx, requestID, "doctorUsecase.BlockDoctor", doctor)
}

// UnblockDoctor keeps the last block reason on record.
func (uc *doctorUsecase) UnblockDoctor(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.UnblockDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.IsBlocked {
		return nil, exceptions.ErrDoctorNotBlocked(doctor.ID)
	}

	doctor.IsBlocked = false
	doctor.BlockedAt = nil
	doctor.SetUpdatedAt(uc.now())

	return uc.saveBlockState(ctx, requestID, "doctorUsecase.UnblockDoctor", doctor)
}

func (uc *doctorUsecase) saveBlockState(ctx context.Context, requestID, operation string, doctor *models.Doctor) (*responses.Doctor, error) {
	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		uc.Log.Error(operation+" error updating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.SlotUsecase.InvalidateAvailability(ctx, doctor.ID); err != nil {
		uc.Log.Warn(operation+" failed to invalidate availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
			zap.Error(err),
		)
	}

	uc.Log.Info(operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		zap.Bool("is_blocked", doctor.IsBlocked),
	)
	response := doctor.ToResponse()
	return &response, nil
}

func (uc *doctorUsecase) GetSpecialties(ctx context.Context) *responses.Specialties {
	core := make([]string, len(constvars.CoreSpecialties))
	copy(core, constvars.CoreSpecialties)
	return &responses.Specialties{
		Core:  core,
		Other: constvars.SpecialtyOther,
	}
}

func (uc *doctorUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	return doctor, nil
}
