package locations

import (
	"context"
	"fmt"
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

type locationUsecase struct {
	LocationRepository contracts.LocationRepository
	DoctorRepository   contracts.DoctorRepository
	SlotRepository     contracts.SlotRepository
	SlotUsecase        contracts.SlotUsecase
	LockService        contracts.LockerService
	Log                *zap.Logger
	now                func() time.Time
}

const locationLockTTL = 10 * time.Second

var (
	locationUsecaseInstance contracts.LocationUsecase
	onceLocationUsecase     sync.Once
)

func NewLocationUsecase(
	locationRepository contracts.LocationRepository,
	doctorRepository contracts.DoctorRepository,
	slotRepository contracts.SlotRepository,
	slotUsecase contracts.SlotUsecase,
	lockService contracts.LockerService,
	logger *zap.Logger,
) contracts.LocationUsecase {
	onceLocationUsecase.Do(func() {
		locationUsecaseInstance = &locationUsecase{
			LocationRepository: locationRepository,
			DoctorRepository:   doctorRepository,
			SlotRepository:     slotRepository,
			SlotUsecase:        slotUsecase,
			LockService:        lockService,
			Log:                logger,
			now:                time.Now,
		}
	})
	return locationUsecaseInstance
}

func (uc *locationUsecase) CreateLocation(ctx context.Context, doctorID string, request *requests.CreateLocation) (*responses.Location, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("locationUsecase.CreateLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := uc.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}
	if request.Phone != "" {
		if err := utils.ValidatePhone(request.Phone); err != nil {
			return nil, exceptions.ErrProfileValidation(err)
		}
	}

	location := &models.HospitalLocation{
		ID:       uuid.NewString(),
		DoctorID: doctorID,
		Name:     strings.TrimSpace(request.Name),
		Address:  strings.TrimSpace(request.Address),
		Phone:    request.Phone,
		IsActive: true,
	}
	location.SetCreatedAtUpdatedAt(uc.now())

	if err := uc.LocationRepository.CreateLocation(ctx, location); err != nil {
		uc.Log.Error("locationUsecase.CreateLocation error creating location",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("locationUsecase.CreateLocation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocationIDKey, location.ID),
	)
	response := location.ToResponse()
	return &response, nil
}

func (uc *locationUsecase) GetLocations(ctx context.Context, doctorID string) ([]responses.Location, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("locationUsecase.GetLocations called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if err := uc.ensureDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	locations, err := uc.LocationRepository.FindActiveByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Location, 0, len(locations))
	for i := range locations {
		response = append(response, locations[i].ToResponse())
	}
	return response, nil
}

// UpdateLocation also invalidates availability because cached times carry the location name and address.
func (uc *locationUsecase) UpdateLocation(ctx context.Context, doctorID, locationID string, request *requests.UpdateLocation) (*responses.Location, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("locationUsecase.UpdateLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingLocationIDKey, locationID),
	)

	location, err := uc.findActiveLocation(ctx, doctorID, locationID)
	if err != nil {
		return nil, err
	}

	if request.Name != nil {
		location.Name = strings.TrimSpace(*request.Name)
	}
	if request.Address != nil {
		location.Address = strings.TrimSpace(*request.Address)
	}
	if request.Phone != nil {
		if *request.Phone != "" {
			if err := utils.ValidatePhone(*request.Phone); err != nil {
				return nil, exceptions.ErrProfileValidation(err)
			}
		}
		location.Phone = *request.Phone
	}
	location.SetUpdatedAt(uc.now())

	if err := uc.LocationRepository.UpdateLocation(ctx, location); err != nil {
		return nil, err
	}
	uc.invalidateAvailability(ctx, doctorID)

	response := location.ToResponse()
	return &response, nil
}

func (uc *locationUsecase) DeleteLocation(ctx context.Context, doctorID, locationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("locationUsecase.DeleteLocation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingLocationIDKey, locationID),
	)

	lockKey := fmt.Sprintf(constvars.RedisKeyLocationLockFormat, doctorID, locationID)
	acquired, token, err := uc.LockService.TryLock(ctx, lockKey, locationLockTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return exceptions.ErrSlotScheduleBusy(lockKey)
	}
	defer func() {
		if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			uc.Log.Warn("locationUsecase.DeleteLocation failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	location, err := uc.findActiveLocation(ctx, doctorID, locationID)
	if err != nil {
		return err
	}

	inUse, err := uc.SlotRepository.CountActiveByLocationID(ctx, locationID)
	if err != nil {
		return err
	}
	if inUse > 0 {
		uc.Log.Info("locationUsecase.DeleteLocation rejected, location in use",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingCountKey, inUse),
		)
		return exceptions.ErrLocationHasActiveSlots(locationID)
	}

	location.IsActive = false
	location.SetUpdatedAt(uc.now())
	if err := uc.LocationRepository.UpdateLocation(ctx, location); err != nil {
		return err
	}
	uc.invalidateAvailability(ctx, doctorID)
	return nil
}

func (uc *locationUsecase) ensureDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	return nil
}

func (uc *locationUsecase) findActiveLocation(ctx context.Context, doctorID, locationID string) (*models.HospitalLocation, error) {
	location, err := uc.LocationRepository.FindByID(ctx, doctorID, locationID)
	if err != nil {
		return nil, err
	}
	if location == nil || !location.IsActive {
		return nil, exceptions.ErrLocationNotFound(nil, locationID)
	}
	return location, nil
}

func (uc *locationUsecase) invalidateAvailability(ctx context.Context, doctorID string) {
	if err := uc.SlotUsecase.InvalidateAvailability(ctx, doctorID); err != nil {
		uc.Log.Warn("locationUsecase failed to invalidate availability",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
}
