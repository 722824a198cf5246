package slot

import (
	"context"
	"fmt"
	"strconv"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/dto/responses"
	"telecare-service/internal/pkg/exceptions"
	"telecare-service/internal/pkg/utils"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var bookableModes = mapset.NewThreadUnsafeSet(constvars.AppointmentModeOnline, constvars.AppointmentModeInPerson)

// SlotUsecase owns recurring slots and the availability engine built on them.
type SlotUsecase struct {
	slots        contracts.SlotRepository
	locations    contracts.LocationRepository
	doctors      contracts.DoctorRepository
	appointments contracts.AppointmentRepository
	redis        contracts.RedisRepository
	locker       contracts.LockerService
	storage      contracts.Storage
	config       *config.InternalConfig
	logger       *zap.Logger
	profiles     *profileCache
	location     *time.Location
	now          func() time.Time
}

func NewSlotUsecase(
	slots contracts.SlotRepository,
	locations contracts.LocationRepository,
	doctors contracts.DoctorRepository,
	appointments contracts.AppointmentRepository,
	redis contracts.RedisRepository,
	locker contracts.LockerService,
	storage contracts.Storage,
	config *config.InternalConfig,
	logger *zap.Logger,
) (*SlotUsecase, error) {
	uc := &SlotUsecase{
		slots:        slots,
		locations:    locations,
		doctors:      doctors,
		appointments: appointments,
		redis:        redis,
		locker:       locker,
		storage:      storage,
		config:       config,
		logger:       logger,
		location:     config.App.Location(),
		now:          time.Now,
	}

	profiles, err := newProfileCache(
		config.App.DoctorProfileCacheSize,
		time.Duration(config.App.DoctorProfileCacheTTLInSeconds)*time.Second,
		func() time.Time { return uc.now() },
	)
	if err != nil {
		return nil, err
	}
	uc.profiles = profiles
	return uc, nil
}

func (uc *SlotUsecase) CreateSlot(ctx context.Context, doctorID string, request *requests.CreateSlot) ([]responses.Slot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.CreateSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if _, err := uc.findDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	weekday, ok := utils.ParseWeekday(request.DayOfWeek)
	if !ok {
		return nil, exceptions.ErrInvalidFormat(fmt.Errorf("unknown day %q", request.DayOfWeek), "day_of_week")
	}
	day := weekday.String()

	start, err := utils.ParseClock(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	end, err := utils.ParseClock(request.EndTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}
	if !validWindow(dayWindow{Start: start, End: end}) {
		return nil, exceptions.ErrSlotStartAfterEnd()
	}

	modes := expandModes(request.Mode)
	if !modes.IsSubset(bookableModes) {
		return nil, exceptions.ErrInvalidMode()
	}

	var location *models.HospitalLocation
	if modes.Contains(constvars.AppointmentModeInPerson) {
		if request.LocationID == "" {
			return nil, exceptions.ErrLocationRequiredForInPerson()
		}
		locationKey := locationLockKey(doctorID, request.LocationID)
		acquired, token, err := uc.locker.TryLock(ctx, locationKey, uc.lockTimeout())
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, exceptions.ErrSlotScheduleBusy(locationKey)
		}
		defer uc.releaseLock(ctx, locationKey, token)

		// Checked under the location lock so a concurrent delete cannot deactivate it in between.
		location, err = uc.activeLocation(ctx, doctorID, request.LocationID)
		if err != nil {
			return nil, err
		}
	}

	lockKey := dayLockKey(doctorID, day)
	acquired, token, err := uc.locker.TryLock(ctx, lockKey, uc.lockTimeout())
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSlotScheduleBusy(lockKey)
	}
	defer uc.releaseLock(ctx, lockKey, token)

	existing, err := uc.slots.FindActiveByDoctorAndDay(ctx, doctorID, day)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	candidates := make([]models.AppointmentSlot, 0, modes.Cardinality())
	for _, mode := range []string{constvars.AppointmentModeOnline, constvars.AppointmentModeInPerson} {
		if !modes.Contains(mode) {
			continue
		}
		candidate := models.AppointmentSlot{
			ID:        uuid.NewString(),
			DoctorID:  doctorID,
			DayOfWeek: day,
			StartTime: start.String(),
			EndTime:   end.String(),
			Mode:      mode,
			IsActive:  true,
		}
		if mode == constvars.AppointmentModeInPerson {
			candidate.LocationID = request.LocationID
		}
		candidate.SetCreatedAtUpdatedAt(now)

		conflict, err := findOverlap(existing, candidate)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		if conflict != nil {
			return nil, exceptions.ErrSlotOverlap(mode, displayClock(conflict.StartTime), displayClock(conflict.EndTime), day, conflict.ID)
		}
		candidates = append(candidates, candidate)
	}

	if err := uc.slots.CreateSlots(ctx, candidates); err != nil {
		return nil, err
	}
	uc.bumpAvailabilityVersion(ctx, doctorID)

	out := make([]responses.Slot, 0, len(candidates))
	for i := range candidates {
		if candidates[i].Mode == constvars.AppointmentModeInPerson {
			out = append(out, candidates[i].ToResponse(location))
			continue
		}
		out = append(out, candidates[i].ToResponse(nil))
	}

	uc.logger.Info("SlotUsecase.CreateSlot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int(constvars.LoggingCountKey, len(out)),
	)
	return out, nil
}

func (uc *SlotUsecase) GetSlots(ctx context.Context, doctorID string) ([]responses.Slot, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.GetSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if _, err := uc.findDoctor(ctx, doctorID); err != nil {
		return nil, err
	}

	slots, err := uc.slots.FindActiveByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	sortSlots(slots)

	locations, err := uc.locationsOf(ctx, slots)
	if err != nil {
		return nil, err
	}

	out := make([]responses.Slot, 0, len(slots))
	for i := range slots {
		out = append(out, slots[i].ToResponse(locations[slots[i].LocationID]))
	}
	return out, nil
}

func (uc *SlotUsecase) DeleteSlot(ctx context.Context, doctorID, slotID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.DeleteSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingSlotIDKey, slotID),
	)

	slot, err := uc.slots.FindByID(ctx, doctorID, slotID)
	if err != nil {
		return err
	}
	if slot == nil || !slot.IsActive {
		return exceptions.ErrSlotNotFound(nil, slotID)
	}

	if err := uc.slots.DeactivateSlot(ctx, doctorID, slotID); err != nil {
		return err
	}
	uc.bumpAvailabilityVersion(ctx, doctorID)
	return nil
}

// GetAvailability returns the bookable times of one date. Results for future dates are cached under
// the doctor's availability version.
func (uc *SlotUsecase) GetAvailability(ctx context.Context, query *requests.AvailabilityQuery) (*responses.Availability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, query.DoctorID),
		zap.String(constvars.LoggingDateKey, query.Date),
		zap.String(constvars.LoggingModeKey, query.Mode),
	)

	doctor, err := uc.findDoctor(ctx, query.DoctorID)
	if err != nil {
		return nil, err
	}
	if !bookableModes.Contains(query.Mode) {
		return nil, exceptions.ErrInvalidMode()
	}
	date, err := utils.ParseDate(query.Date, uc.location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	now := uc.now()
	locationID := scopeLocation(query.Mode, query.LocationID)
	dateKey := date.Format(constvars.DateLayout)

	cacheKey := ""
	if query.ExcludeAppointmentID == "" && date.After(utils.StartOfDay(now.In(uc.location))) {
		if version, err := uc.availabilityVersion(ctx, doctor.ID); err == nil {
			cacheKey = availabilityCacheKey(doctor.ID, version, dateKey, query.Mode, locationID)
			if cached := uc.cachedAvailability(ctx, cacheKey); cached != nil {
				return cached, nil
			}
		}
	}

	slots, err := uc.slots.FindActiveByDoctorAndDay(ctx, doctor.ID, date.Weekday().String())
	if err != nil {
		return nil, err
	}
	booked, err := uc.appointments.FindBookedTimes(ctx, doctor.ID, dateKey, query.Mode, query.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}

	offers := computeAvailability(availabilityInput{
		Slots:           slots,
		Date:            date,
		Mode:            query.Mode,
		LocationID:      locationID,
		IntervalMinutes: doctor.IntervalMinutes(),
		Booked:          booked,
		Now:             now,
		Location:        uc.location,
	})

	offered := make([]models.AppointmentSlot, 0)
	for _, offer := range offers {
		offered = append(offered, offer.Slots...)
	}
	locations, err := uc.locationsOf(ctx, offered)
	if err != nil {
		return nil, err
	}

	result := &responses.Availability{
		DoctorID:        doctor.ID,
		Date:            dateKey,
		DayOfWeek:       date.Weekday().String(),
		Mode:            query.Mode,
		LocationID:      locationID,
		IntervalMinutes: doctor.IntervalMinutes(),
		Times:           make([]responses.AvailableTime, 0, len(offers)),
	}
	for _, offer := range offers {
		available := responses.AvailableTime{
			Time:  offer.Clock.String(),
			Slots: make([]responses.AvailableSlot, 0, len(offer.Slots)),
		}
		for _, s := range offer.Slots {
			entry := responses.AvailableSlot{SlotID: s.ID, LocationID: s.LocationID}
			if location := locations[s.LocationID]; location != nil {
				entry.Location = location.Info()
			}
			available.Slots = append(available.Slots, entry)
		}
		result.Times = append(result.Times, available)
	}

	if cacheKey != "" {
		ttl := time.Duration(uc.config.App.AvailabilityCacheTTLInSeconds) * time.Second
		if err := uc.redis.Set(ctx, cacheKey, result, ttl); err != nil {
			uc.logger.Warn("SlotUsecase.GetAvailability failed to cache result",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, cacheKey),
				zap.Error(err),
			)
		}
	}
	return result, nil
}

// CheckBookable verifies that a doctor offers the requested date, time and mode and that nobody holds it.
func (uc *SlotUsecase) CheckBookable(ctx context.Context, in *contracts.CheckBookableInput) (*contracts.CheckBookableOutput, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.CheckBookable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, in.Doctor.ID),
		zap.String(constvars.LoggingDateKey, in.Date),
		zap.String(constvars.LoggingTimeKey, in.Time),
		zap.String(constvars.LoggingModeKey, in.Mode),
	)

	if !bookableModes.Contains(in.Mode) {
		return nil, exceptions.ErrInvalidMode()
	}
	date, err := utils.ParseDate(in.Date, uc.location)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	requested, err := utils.ParseClock(in.Time)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	day := date.Weekday().String()
	daySlots, err := uc.slots.FindActiveByDoctorAndDay(ctx, in.Doctor.ID, day)
	if err != nil {
		return nil, err
	}
	if len(matchingSlots(daySlots, in.Mode, "")) == 0 {
		return nil, exceptions.ErrDoctorNotAvailableOnDay(day, in.Mode)
	}

	var matched *models.AppointmentSlot
	candidates := matchingSlots(daySlots, in.Mode, scopeLocation(in.Mode, in.LocationID))
	for i := range candidates {
		w, err := slotWindow(candidates[i])
		if err != nil || !validWindow(w) {
			continue
		}
		if onGrid(w, requested, in.Doctor.IntervalMinutes()) {
			matched = &candidates[i]
			break
		}
	}
	if matched == nil {
		return nil, exceptions.ErrTimeNotAvailable(day, in.Mode)
	}

	if !utils.AtClock(date, requested, uc.location).After(uc.now()) {
		return nil, exceptions.ErrAppointmentInPast()
	}

	booked, err := uc.appointments.FindBookedTimes(ctx, in.Doctor.ID, date.Format(constvars.DateLayout), in.Mode, in.ExcludeAppointmentID)
	if err != nil {
		return nil, err
	}
	if bookedSet(booked).Contains(requested.String()) {
		return nil, exceptions.ErrTimeSlotAlreadyBooked(nil, in.Mode)
	}

	return &contracts.CheckBookableOutput{Slot: *matched, Time: requested.String()}, nil
}

// InvalidateAvailability moves the doctor to a new availability version so cached days are no longer read.
func (uc *SlotUsecase) InvalidateAvailability(ctx context.Context, doctorID string) error {
	uc.profiles.remove(doctorID)
	if _, err := uc.redis.Increment(ctx, availabilityVersionKey(doctorID)); err != nil {
		return err
	}
	return nil
}

func (uc *SlotUsecase) ExportSchedule(ctx context.Context, doctorID string) (*responses.ScheduleExport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.logger.Info("SlotUsecase.ExportSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	slots, err := uc.slots.FindActiveByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	locations, err := uc.locationsOf(ctx, slots)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	body, err := json.Marshal(buildScheduleDocument(doctor, slots, locations, now, uc.location))
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	bucketName := uc.config.Minio.ScheduleExportBucketName
	objectName, err := uc.storage.UploadJSON(ctx, bucketName, utils.GenerateFileName("schedule", doctor.ID, ".json", now), body)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.config.App.MinioPreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.storage.GetObjectUrlWithExpiryTime(ctx, bucketName, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("SlotUsecase.ExportSchedule succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBucketNameKey, bucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return &responses.ScheduleExport{
		ObjectName: objectName,
		URL:        url,
		ExpiresAt:  now.Add(expiry),
	}, nil
}

func (uc *SlotUsecase) findDoctor(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if doctor, ok := uc.profiles.get(doctorID); ok {
		return doctor, nil
	}
	doctor, err := uc.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil, doctorID)
	}
	uc.profiles.add(*doctor)
	return doctor, nil
}

func (uc *SlotUsecase) activeLocation(ctx context.Context, doctorID, locationID string) (*models.HospitalLocation, error) {
	if locationID == "" {
		return nil, exceptions.ErrLocationRequiredForInPerson()
	}
	location, err := uc.locations.FindByID(ctx, doctorID, locationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, exceptions.ErrLocationNotFound(nil, locationID)
	}
	if !location.IsActive {
		return nil, exceptions.ErrLocationInactive(locationID)
	}
	return location, nil
}

// locationsOf loads the locations referenced by slots, keyed by id.
func (uc *SlotUsecase) locationsOf(ctx context.Context, slots []models.AppointmentSlot) (map[string]*models.HospitalLocation, error) {
	ids := mapset.NewThreadUnsafeSet[string]()
	for _, s := range slots {
		if s.LocationID != "" {
			ids.Add(s.LocationID)
		}
	}
	out := make(map[string]*models.HospitalLocation, ids.Cardinality())
	if ids.Cardinality() == 0 {
		return out, nil
	}

	found, err := uc.locations.FindByIDs(ctx, ids.ToSlice())
	if err != nil {
		return nil, err
	}
	for i := range found {
		out[found[i].ID] = &found[i]
	}
	return out, nil
}

func (uc *SlotUsecase) availabilityVersion(ctx context.Context, doctorID string) (string, error) {
	raw, err := uc.redis.Get(ctx, availabilityVersionKey(doctorID))
	if err != nil {
		uc.logger.Warn("SlotUsecase.availabilityVersion failed to read version",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return "", err
	}
	if raw == "" {
		return "0", nil
	}
	if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
		return "", err
	}
	return raw, nil
}

func (uc *SlotUsecase) cachedAvailability(ctx context.Context, key string) *responses.Availability {
	raw, err := uc.redis.Get(ctx, key)
	if err != nil || raw == "" {
		return nil
	}
	var cached responses.Availability
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		uc.logger.Warn("SlotUsecase.cachedAvailability dropped unreadable entry",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return nil
	}
	return &cached
}

func (uc *SlotUsecase) bumpAvailabilityVersion(ctx context.Context, doctorID string) {
	if err := uc.InvalidateAvailability(ctx, doctorID); err != nil {
		uc.logger.Warn("SlotUsecase failed to bump availability version",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
	}
}

func (uc *SlotUsecase) lockTimeout() time.Duration {
	seconds := uc.config.App.BookingLockTimeoutInSeconds
	if seconds <= 0 {
		seconds = 10
	}
	return time.Duration(seconds) * time.Second
}

// releaseLock is a no-op for empty values.
func (uc *SlotUsecase) releaseLock(ctx context.Context, key, token string) {
	if key == "" || token == "" {
		return
	}
	if err := uc.locker.Unlock(ctx, key, token); err != nil {
		uc.logger.Warn("SlotUsecase failed to release lock",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
}

func displayClock(value string) string {
	if normalized, err := utils.NormalizeClock(value); err == nil {
		return normalized
	}
	return value
}

func buildScheduleDocument(doctor *models.Doctor, slots []models.AppointmentSlot, locations map[string]*models.HospitalLocation, now time.Time, loc *time.Location) scheduleDocument {
	doc := scheduleDocument{
		DoctorID:        doctor.ID,
		DoctorName:      doctor.FullName(),
		IntervalMinutes: doctor.IntervalMinutes(),
		Timezone:        loc.String(),
		GeneratedAt:     now.In(loc),
		Days:            []scheduleDay{},
	}

	plan := buildWeeklyPlan(slots)
	for _, wd := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday} {
		daySlots := plan.forWeekday(wd)
		if len(daySlots) == 0 {
			continue
		}

		day := scheduleDay{DayOfWeek: wd.String()}
		byMode := make(map[string][]dayWindow)
		for _, s := range daySlots {
			w, err := slotWindow(s)
			if err != nil {
				continue
			}
			byMode[s.Mode] = append(byMode[s.Mode], w)

			entry := scheduleSlot{
				ID:           s.ID,
				StartTime:    w.Start.String(),
				EndTime:      w.End.String(),
				Mode:         s.Mode,
				TimesOffered: len(generateTimesBetween(w, doctor.IntervalMinutes())),
			}
			if location := locations[s.LocationID]; location != nil {
				entry.LocationName = location.Name
				entry.LocationAddress = location.Address
			}
			day.Slots = append(day.Slots, entry)
		}

		for _, mode := range []string{constvars.AppointmentModeOnline, constvars.AppointmentModeInPerson} {
			if len(byMode[mode]) == 0 {
				continue
			}
			coverage := scheduleCoverage{Mode: mode}
			for _, w := range mergeWindows(byMode[mode]) {
				coverage.Windows = append(coverage.Windows, w.Start.String()+"-"+w.End.String())
			}
			day.Coverage = append(day.Coverage, coverage)
		}
		doc.Days = append(doc.Days, day)
	}
	return doc
}
