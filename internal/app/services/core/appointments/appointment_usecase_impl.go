package appointments

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/services/shared/ratelimiter"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

const bookingLimiterGroup = "booking"

var (
	appointmentStatuses = mapset.NewSet(
		constvars.AppointmentStatusUpcoming,
		constvars.AppointmentStatusCompleted,
		constvars.AppointmentStatusCancelled,
	)
	appointmentActors = mapset.NewSet(
		constvars.ActorPatient,
		constvars.ActorDoctor,
		constvars.ActorAdmin,
	)
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	LocationRepository    contracts.LocationRepository
	SlotUsecase           contracts.SlotUsecase
	LockService           contracts.LockerService
	BookingLimiter        *ratelimiter.ResourceLimiter
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	locationRepository contracts.LocationRepository,
	slotUsecase contracts.SlotUsecase,
	lockService contracts.LockerService,
	bookingLimiter *ratelimiter.ResourceLimiter,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		instance := &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			LocationRepository:    locationRepository,
			SlotUsecase:           slotUsecase,
			LockService:           lockService,
			BookingLimiter:        bookingLimiter,
			EventPublisher:        eventPublisher,
			InternalConfig:        internalConfig,
			Log:                   logger,
			now:                   time.Now,
		}
		appointmentUsecaseInstance = instance
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
		zap.String(constvars.LoggingModeKey, request.Mode),
	)

	if err := uc.applyBookingQuota(ctx, request.PatientID); err != nil {
		return nil, err
	}

	doctor, err := uc.findBookableDoctor(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, request.PatientID)
	}

	clock, err := utils.NormalizeClock(request.Time)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	lockKey := bookingLockKey(doctor.ID, request.Date, clock, request.Mode)
	release, err := uc.acquireBookingLock(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	defer release()

	bookable, err := uc.SlotUsecase.CheckBookable(ctx, &contracts.CheckBookableInput{
		Doctor:     doctor,
		Date:       request.Date,
		Time:       clock,
		Mode:       request.Mode,
		LocationID: request.LocationID,
	})
	if err != nil {
		uc.Log.Info("appointmentUsecase.CreateAppointment time is not bookable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointmentID, err := utils.GenerateAppointmentID(uc.now())
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}

	appointment := &models.Appointment{
		ID:         appointmentID,
		PatientID:  patient.ID,
		DoctorID:   doctor.ID,
		Date:       request.Date,
		Time:       bookable.Time,
		Type:       request.Type,
		Mode:       request.Mode,
		LocationID: bookedLocation(request.Mode, bookable.Slot),
		Status:     constvars.AppointmentStatusUpcoming,
		Reason:     strings.TrimSpace(request.Reason),
		BookingKey: models.BuildBookingKey(doctor.ID, request.Date, bookable.Time, request.Mode),
	}
	appointment.SetCreatedAtUpdatedAt(uc.now())

	if err := uc.AppointmentRepository.CreateAppointment(ctx, appointment); err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.afterChange(ctx, constvars.EventAppointmentBooked, appointment)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return uc.toResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, filter),
	)

	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, filter)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, 0, err
	}

	locationIDs := mapset.NewSet[string]()
	for _, appointment := range appointments {
		if appointment.LocationID != "" {
			locationIDs.Add(appointment.LocationID)
		}
	}
	locations := make(map[string]*models.HospitalLocation)
	if locationIDs.Cardinality() > 0 {
		found, err := uc.LocationRepository.FindByIDs(ctx, locationIDs.ToSlice())
		if err != nil {
			return nil, 0, err
		}
		for i := range found {
			locations[found[i].ID] = &found[i]
		}
	}

	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, appointments[i].ToResponse(locations[appointments[i].LocationID]))
	}
	return response, total, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateAppointmentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String("status", request.Status),
	)

	if !appointmentStatuses.Contains(request.Status) {
		return nil, exceptions.ErrInvalidAppointmentStatus()
	}

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.Status == constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrCancelledStatusIsFinal()
	}

	now := uc.now()
	appointment.Status = request.Status
	if notes := strings.TrimSpace(request.Notes); notes != "" {
		appointment.Notes = notes
	}
	if request.Status == constvars.AppointmentStatusCancelled {
		appointment.CancelledAt = &now
		appointment.BookingKey = ""
	}
	appointment.SetUpdatedAt(now)

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.afterChange(ctx, constvars.EventAppointmentStatusUpdated, appointment)
	return uc.toResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if !appointmentActors.Contains(request.CancelledBy) {
		return nil, exceptions.ErrUnknownActor()
	}

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	switch appointment.Status {
	case constvars.AppointmentStatusCancelled:
		return nil, exceptions.ErrAppointmentAlreadyCancelled()
	case constvars.AppointmentStatusCompleted:
		return nil, exceptions.ErrCannotCancelCompleted()
	}

	now := uc.now()
	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.CancellationReason = strings.TrimSpace(request.Reason)
	appointment.CancelledBy = request.CancelledBy
	appointment.CancelledAt = &now
	appointment.BookingKey = ""
	appointment.SetUpdatedAt(now)

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.afterChange(ctx, constvars.EventAppointmentCancelled, appointment)

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return uc.toResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDateKey, request.NewDate),
		zap.String(constvars.LoggingTimeKey, request.NewTime),
	)

	if !appointmentActors.Contains(request.RescheduledBy) {
		return nil, exceptions.ErrUnknownActor()
	}
	reason := strings.TrimSpace(request.Reason)
	if reason == "" {
		return nil, exceptions.ErrRescheduleReasonRequired()
	}

	appointment, err := uc.findAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.Status != constvars.AppointmentStatusUpcoming {
		return nil, exceptions.ErrOnlyUpcomingCanBeRescheduled()
	}

	clock, err := utils.NormalizeClock(request.NewTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if request.NewDate == appointment.Date && clock == appointment.Time {
		return nil, exceptions.ErrBookingSameAsCurrentSchedule()
	}

	doctor, err := uc.findBookableDoctor(ctx, appointment.DoctorID)
	if err != nil {
		return nil, err
	}

	release, err := uc.acquireBookingLock(ctx, bookingLockKey(doctor.ID, request.NewDate, clock, appointment.Mode))
	if err != nil {
		return nil, err
	}
	defer release()

	bookable, err := uc.SlotUsecase.CheckBookable(ctx, &contracts.CheckBookableInput{
		Doctor:               doctor,
		Date:                 request.NewDate,
		Time:                 clock,
		Mode:                 appointment.Mode,
		LocationID:           appointment.LocationID,
		ExcludeAppointmentID: appointment.ID,
	})
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if appointment.OriginalDate == "" {
		appointment.OriginalDate = appointment.Date
		appointment.OriginalTime = appointment.Time
	}
	appointment.Date = request.NewDate
	appointment.Time = bookable.Time
	appointment.LocationID = bookedLocation(appointment.Mode, bookable.Slot)
	appointment.BookingKey = models.BuildBookingKey(doctor.ID, request.NewDate, bookable.Time, appointment.Mode)
	appointment.RescheduleReason = reason
	appointment.RescheduledBy = request.RescheduledBy
	appointment.RescheduledAt = &now
	appointment.SetUpdatedAt(now)

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	uc.afterChange(ctx, constvars.EventAppointmentRescheduled, appointment)

	uc.Log.Info("appointmentUsecase.RescheduleAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return uc.toResponse(ctx, appointment), nil
}

// applyBookingQuota fails open when Redis is unavailable; the booking key
// index still prevents double booking.
func (uc *appointmentUsecase) applyBookingQuota(ctx context.Context, patientID string) error {
	if uc.BookingLimiter == nil {
		return nil
	}
	out, err := uc.BookingLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      patientID,
		LimiterGroupName:  bookingLimiterGroup,
		WindowDurationSec: uc.InternalConfig.App.BookingQuotaWindowInSeconds,
		MaxQuota:          uc.InternalConfig.App.BookingQuotaPerPatient,
		NowUTC:            uc.now().UTC(),
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase booking quota unavailable",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil
	}
	if !out.Allowed {
		return exceptions.ErrTooManyRequests()
	}
	return nil
}

// acquireBookingLock returns the release func for a held lock.
func (uc *appointmentUsecase) acquireBookingLock(ctx context.Context, lockKey string) (func(), error) {
	timeout := time.Duration(uc.InternalConfig.App.BookingLockTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	acquired, token, err := uc.LockService.TryLock(ctx, lockKey, timeout)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrBookingInProgress(lockKey)
	}

	return func() {
		if err := uc.LockService.Unlock(context.WithoutCancel(ctx), lockKey, token); err != nil {
			uc.Log.Warn("appointmentUsecase failed to release booking lock",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}, nil
}

// afterChange invalidates the doctor's cached availability and publishes the
// event. Neither step rolls back the stored change.
func (uc *appointmentUsecase) afterChange(ctx context.Context, eventType string, appointment *models.Appointment) {
	requestID := utils.GetRequestID(ctx)
	if err := uc.SlotUsecase.InvalidateAvailability(ctx, appointment.DoctorID); err != nil {
		uc.Log.Warn("appointmentUsecase failed to invalidate availability",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
			zap.Error(err),
		)
	}
	if err := uc.EventPublisher.Publish(ctx, eventType, newAppointmentEvent(appointment)); err != nil {
		uc.Log.Error("appointmentUsecase failed to publish event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
			zap.Error(err),
		)
	}
}

func (uc *appointmentUsecase) toResponse(ctx context.Context, appointment *models.Appointment) *responses.Appointment {
	var location *models.HospitalLocation
	if appointment.LocationID != "" {
		found, err := uc.LocationRepository.FindByID(ctx, appointment.DoctorID, appointment.LocationID)
		if err != nil {
			uc.Log.Warn("appointmentUsecase failed to load location",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
				zap.String(constvars.LoggingLocationIDKey, appointment.LocationID),
				zap.Error(err),
			)
		}
		location = found
	}
	response := appointment.ToResponse(location)
	return &response
}

// findBookableDoctor rejects doctors an admin has blocked from taking appointments.
func (uc *appointmentUsecase) findBookableDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	if doctor.IsBlocked {
		return nil, exceptions.ErrDoctorBlocked(doctor.ID)
	}
	return doctor, nil
}

func (uc *appointmentUsecase) findAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return appointment, nil
}

func bookingLockKey(doctorID, date, clock, mode string) string {
	return fmt.Sprintf(constvars.RedisKeyBookingLockFormat, doctorID, date, clock, mode)
}

// bookedLocation is the location of the slot that offered the time; online bookings have none.
func bookedLocation(mode string, slot models.AppointmentSlot) string {
	if mode != constvars.AppointmentModeInPerson {
		return ""
	}
	return slot.LocationID
}

type appointmentEvent struct {
	AppointmentID string `json:"appointmentId"`
	DoctorID      string `json:"doctorId"`
	PatientID     string `json:"patientId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Mode          string `json:"mode"`
	LocationID    string `json:"locationId,omitempty"`
	Status        string `json:"status"`
	OriginalDate  string `json:"originalDate,omitempty"`
	OriginalTime  string `json:"originalTime,omitempty"`
	CancelledBy   string `json:"cancelledBy,omitempty"`
	RescheduledBy string `json:"rescheduledBy,omitempty"`
}

func newAppointmentEvent(a *models.Appointment) appointmentEvent {
	return appointmentEvent{
		AppointmentID: a.ID,
		DoctorID:      a.DoctorID,
		PatientID:     a.PatientID,
		Date:          a.Date,
		Time:          a.Time,
		Mode:          a.Mode,
		LocationID:    a.LocationID,
		Status:        a.Status,
		OriginalDate:  a.OriginalDate,
		OriginalTime:  a.OriginalTime,
		CancelledBy:   a.CancelledBy,
		RescheduledBy: a.RescheduledBy,
	}
}
