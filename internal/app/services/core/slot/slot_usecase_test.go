package slot

import (
	"context"
	"errors"
	"strings"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/contracts/mocks"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/testutil"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// 2026-03-02 is a Monday.
var fixedNow = time.Date(2026, time.March, 2, 10, 5, 0, 0, time.UTC)

type slotFixture struct {
	slots        *mocks.SlotRepository
	locations    *mocks.LocationRepository
	doctors      *mocks.DoctorRepository
	appointments *mocks.AppointmentRepository
	redis        *mocks.RedisRepository
	locker       *mocks.LockerService
	storage      *mocks.Storage
	doctor       models.Doctor
	uc           *SlotUsecase
}

func newSlotFixture(t *testing.T) *slotFixture {
	t.Helper()

	f := &slotFixture{
		slots:        new(mocks.SlotRepository),
		locations:    new(mocks.LocationRepository),
		doctors:      new(mocks.DoctorRepository),
		appointments: new(mocks.AppointmentRepository),
		redis:        new(mocks.RedisRepository),
		locker:       new(mocks.LockerService),
		storage:      new(mocks.Storage),
		doctor:       testutil.RandomDoctor(),
	}

	cfg := &config.InternalConfig{
		App: config.App{
			Timezone:                                 "UTC",
			BookingLockTimeoutInSeconds:              10,
			AvailabilityCacheTTLInSeconds:            300,
			DoctorProfileCacheSize:                   16,
			DoctorProfileCacheTTLInSeconds:           60,
			MinioPreSignedUrlObjectExpiryTimeInHours: 24,
		},
		Minio: config.AppMinio{ScheduleExportBucketName: "schedule-exports"},
	}

	uc, err := NewSlotUsecase(f.slots, f.locations, f.doctors, f.appointments, f.redis, f.locker, f.storage, cfg, zap.NewNop())
	require.NoError(t, err)
	uc.now = func() time.Time { return fixedNow }
	f.uc = uc

	f.doctors.On("FindByID", mock.Anything, f.doctor.ID).Return(&f.doctor, nil).Maybe()
	return f
}

func (f *slotFixture) expectDayLock(day string) {
	key := dayLockKey(f.doctor.ID, day)
	f.locker.On("TryLock", mock.Anything, key, 10*time.Second).Return(true, "token", nil).Once()
	f.locker.On("Unlock", mock.Anything, key, "token").Return(nil).Once()
}

func (f *slotFixture) expectLocationLock(locationID string) {
	key := locationLockKey(f.doctor.ID, locationID)
	f.locker.On("TryLock", mock.Anything, key, 10*time.Second).Return(true, "location-token", nil).Once()
	f.locker.On("Unlock", mock.Anything, key, "location-token").Return(nil).Once()
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, status, exceptions.StatusCodeOf(err))
}

func TestCreateSlot_BothCreatesOnlineAndInPerson(t *testing.T) {
	f := newSlotFixture(t)
	location := testutil.RandomLocation(f.doctor.ID)

	f.expectLocationLock(location.ID)
	f.locations.On("FindByID", mock.Anything, f.doctor.ID, location.ID).Return(&location, nil)
	f.expectDayLock("Monday")
	f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, "Monday").Return([]models.AppointmentSlot{}, nil)
	f.slots.On("CreateSlots", mock.Anything, mock.MatchedBy(func(slots []models.AppointmentSlot) bool {
		return len(slots) == 2 &&
			slots[0].Mode == online && slots[0].LocationID == "" &&
			slots[1].Mode == inPerson && slots[1].LocationID == location.ID
	})).Return(nil)
	f.redis.On("Increment", mock.Anything, availabilityVersionKey(f.doctor.ID)).Return(int64(1), nil)

	out, err := f.uc.CreateSlot(context.Background(), f.doctor.ID, &requests.CreateSlot{
		DayOfWeek:  "mon",
		StartTime:  "9.00",
		EndTime:    "12:00",
		Mode:       constvars.AppointmentModeBoth,
		LocationID: location.ID,
	})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Monday", out[0].DayOfWeek)
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Nil(t, out[0].Location)
	require.NotNil(t, out[1].Location)
	assert.Equal(t, location.Name, out[1].Location.Name)
	f.slots.AssertExpectations(t)
	f.locker.AssertExpectations(t)
}

func TestCreateSlot_OverlapRejectsWholeRequest(t *testing.T) {
	f := newSlotFixture(t)
	location := testutil.RandomLocation(f.doctor.ID)
	existing := testutil.Slot(f.doctor.ID, "Monday", "9:00", "12:00", online, "")

	f.expectLocationLock(location.ID)
	f.locations.On("FindByID", mock.Anything, f.doctor.ID, location.ID).Return(&location, nil)
	f.expectDayLock("Monday")
	f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, "Monday").Return([]models.AppointmentSlot{existing}, nil)

	_, err := f.uc.CreateSlot(context.Background(), f.doctor.ID, &requests.CreateSlot{
		DayOfWeek:  "Monday",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Mode:       constvars.AppointmentModeBoth,
		LocationID: location.ID,
	})

	assertStatus(t, err, constvars.StatusConflict)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Time slot overlaps with existing online slot (09:00 - 12:00) on Monday. Please choose a different time.", customErr.ClientMessage)
	f.slots.AssertNotCalled(t, "CreateSlots", mock.Anything, mock.Anything)
	f.redis.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything)
}

func TestCreateSlot_TouchingWindowIsAccepted(t *testing.T) {
	f := newSlotFixture(t)
	existing := testutil.Slot(f.doctor.ID, "Tuesday", "09:00", "12:00", online, "")

	f.expectDayLock("Tuesday")
	f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, "Tuesday").Return([]models.AppointmentSlot{existing}, nil)
	f.slots.On("CreateSlots", mock.Anything, mock.Anything).Return(nil)
	f.redis.On("Increment", mock.Anything, availabilityVersionKey(f.doctor.ID)).Return(int64(2), nil)

	out, err := f.uc.CreateSlot(context.Background(), f.doctor.ID, &requests.CreateSlot{
		DayOfWeek: "Tuesday",
		StartTime: "12:00",
		EndTime:   "13:00",
		Mode:      online,
	})

	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestCreateSlot_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		request requests.CreateSlot
		setup   func(f *slotFixture)
		status  int
	}{
		{
			name:    "start after end",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "12:00", EndTime: "09:00", Mode: online},
			status:  constvars.StatusBadRequest,
		},
		{
			name:    "equal start and end",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "09:00", Mode: online},
			status:  constvars.StatusBadRequest,
		},
		{
			name:    "in-person without location",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: inPerson},
			status:  constvars.StatusBadRequest,
		},
		{
			name:    "unknown mode",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: "phone"},
			status:  constvars.StatusBadRequest,
		},
		{
			name:    "inactive location",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: inPerson, LocationID: "loc-1"},
			setup: func(f *slotFixture) {
				location := testutil.RandomLocation(f.doctor.ID)
				location.IsActive = false
				f.expectLocationLock("loc-1")
				f.locations.On("FindByID", mock.Anything, f.doctor.ID, "loc-1").Return(&location, nil)
			},
			status: constvars.StatusBadRequest,
		},
		{
			name:    "missing location",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: inPerson, LocationID: "loc-1"},
			setup: func(f *slotFixture) {
				f.expectLocationLock("loc-1")
				f.locations.On("FindByID", mock.Anything, f.doctor.ID, "loc-1").Return(nil, nil)
			},
			status: constvars.StatusNotFound,
		},
		{
			name:    "location held by a concurrent delete",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: inPerson, LocationID: "loc-1"},
			setup: func(f *slotFixture) {
				f.locker.On("TryLock", mock.Anything, locationLockKey(f.doctor.ID, "loc-1"), mock.Anything).Return(false, "", nil)
			},
			status: constvars.StatusConflict,
		},
		{
			name:    "schedule locked",
			request: requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: online},
			setup: func(f *slotFixture) {
				f.locker.On("TryLock", mock.Anything, dayLockKey(f.doctor.ID, "Monday"), mock.Anything).Return(false, "", nil)
			},
			status: constvars.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSlotFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			request := tt.request
			_, err := f.uc.CreateSlot(context.Background(), f.doctor.ID, &request)
			assertStatus(t, err, tt.status)
			f.slots.AssertNotCalled(t, "CreateSlots", mock.Anything, mock.Anything)
			f.locker.AssertExpectations(t)
		})
	}
}

func TestCreateSlot_UnknownDoctor(t *testing.T) {
	f := newSlotFixture(t)
	f.doctors.On("FindByID", mock.Anything, "dr999999").Return(nil, nil)

	_, err := f.uc.CreateSlot(context.Background(), "dr999999", &requests.CreateSlot{DayOfWeek: "Monday", StartTime: "09:00", EndTime: "10:00", Mode: online})
	assertStatus(t, err, constvars.StatusNotFound)
}

func TestGetSlots_SortedWithLocationsAndCachedDoctor(t *testing.T) {
	f := newSlotFixture(t)
	location := testutil.RandomLocation(f.doctor.ID)
	slots := []models.AppointmentSlot{
		testutil.Slot(f.doctor.ID, "Friday", "09:00", "10:00", online, ""),
		testutil.Slot(f.doctor.ID, "Monday", "13:00", "14:00", inPerson, location.ID),
		testutil.Slot(f.doctor.ID, "Monday", "08:00", "09:00", online, ""),
	}

	f.doctors.ExpectedCalls = nil
	f.doctors.On("FindByID", mock.Anything, f.doctor.ID).Return(&f.doctor, nil).Once()
	f.slots.On("FindActiveByDoctorID", mock.Anything, f.doctor.ID).Return(slots, nil)
	f.locations.On("FindByIDs", mock.Anything, []string{location.ID}).Return([]models.HospitalLocation{location}, nil)

	out, err := f.uc.GetSlots(context.Background(), f.doctor.ID)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "08:00", out[0].StartTime)
	assert.Equal(t, "13:00", out[1].StartTime)
	require.NotNil(t, out[1].Location)
	assert.Equal(t, location.Address, out[1].Location.Address)
	assert.Equal(t, "Friday", out[2].DayOfWeek)

	_, err = f.uc.GetSlots(context.Background(), f.doctor.ID)
	require.NoError(t, err)
	f.doctors.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestDeleteSlot(t *testing.T) {
	t.Run("not owned", func(t *testing.T) {
		f := newSlotFixture(t)
		f.slots.On("FindByID", mock.Anything, f.doctor.ID, "slot-1").Return(nil, nil)

		assertStatus(t, f.uc.DeleteSlot(context.Background(), f.doctor.ID, "slot-1"), constvars.StatusNotFound)
	})

	t.Run("deactivates and bumps version", func(t *testing.T) {
		f := newSlotFixture(t)
		s := testutil.Slot(f.doctor.ID, "Monday", "09:00", "10:00", online, "")
		f.slots.On("FindByID", mock.Anything, f.doctor.ID, s.ID).Return(&s, nil)
		f.slots.On("DeactivateSlot", mock.Anything, f.doctor.ID, s.ID).Return(nil)
		f.redis.On("Increment", mock.Anything, availabilityVersionKey(f.doctor.ID)).Return(int64(4), nil)

		require.NoError(t, f.uc.DeleteSlot(context.Background(), f.doctor.ID, s.ID))
		f.redis.AssertExpectations(t)
	})
}

func TestGetAvailability_ComputesAndCaches(t *testing.T) {
	f := newSlotFixture(t)
	location := testutil.RandomLocation(f.doctor.ID)
	slots := []models.AppointmentSlot{
		testutil.Slot(f.doctor.ID, "Monday", "09:00", "10:00", inPerson, location.ID),
		testutil.Slot(f.doctor.ID, "Monday", "09:00", "12:00", online, ""),
	}
	cacheKey := availabilityCacheKey(f.doctor.ID, "0", "2026-03-09", inPerson, "")

	f.redis.On("Get", mock.Anything, availabilityVersionKey(f.doctor.ID)).Return("", nil)
	f.redis.On("Get", mock.Anything, cacheKey).Return("", nil)
	f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, "Monday").Return(slots, nil)
	f.appointments.On("FindBookedTimes", mock.Anything, f.doctor.ID, "2026-03-09", inPerson, "").Return([]string{"09:30"}, nil)
	f.locations.On("FindByIDs", mock.Anything, []string{location.ID}).Return([]models.HospitalLocation{location}, nil)
	f.redis.On("Set", mock.Anything, cacheKey, mock.Anything, 300*time.Second).Return(nil)

	out, err := f.uc.GetAvailability(context.Background(), &requests.AvailabilityQuery{
		DoctorID: f.doctor.ID,
		Date:     "2026-03-09",
		Mode:     inPerson,
	})

	require.NoError(t, err)
	assert.Equal(t, "Monday", out.DayOfWeek)
	require.Len(t, out.Times, 1)
	assert.Equal(t, "09:00", out.Times[0].Time)
	require.Len(t, out.Times[0].Slots, 1)
	assert.Equal(t, location.Name, out.Times[0].Slots[0].Location.Name)
	f.redis.AssertExpectations(t)
}

func TestGetAvailability_ServesCachedResult(t *testing.T) {
	f := newSlotFixture(t)
	cacheKey := availabilityCacheKey(f.doctor.ID, "7", "2026-03-09", online, "")
	cached, err := json.Marshal(map[string]interface{}{
		"doctor_id": f.doctor.ID,
		"date":      "2026-03-09",
		"mode":      online,
		"times":     []map[string]interface{}{{"time": "09:00", "slots": []interface{}{}}},
	})
	require.NoError(t, err)

	f.redis.On("Get", mock.Anything, availabilityVersionKey(f.doctor.ID)).Return("7", nil)
	f.redis.On("Get", mock.Anything, cacheKey).Return(string(cached), nil)

	out, err := f.uc.GetAvailability(context.Background(), &requests.AvailabilityQuery{
		DoctorID: f.doctor.ID,
		Date:     "2026-03-09",
		Mode:     online,
	})

	require.NoError(t, err)
	require.Len(t, out.Times, 1)
	f.slots.AssertNotCalled(t, "FindActiveByDoctorAndDay", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAvailability_ExcludeSkipsCache(t *testing.T) {
	f := newSlotFixture(t)
	f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, "Monday").Return([]models.AppointmentSlot{
		testutil.Slot(f.doctor.ID, "Monday", "09:00", "10:00", online, ""),
	}, nil)
	f.appointments.On("FindBookedTimes", mock.Anything, f.doctor.ID, "2026-03-09", online, "APT-1-0001").Return([]string{}, nil)

	out, err := f.uc.GetAvailability(context.Background(), &requests.AvailabilityQuery{
		DoctorID:             f.doctor.ID,
		Date:                 "2026-03-09",
		Mode:                 online,
		ExcludeAppointmentID: "APT-1-0001",
	})

	require.NoError(t, err)
	assert.Len(t, out.Times, 2)
	f.redis.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	f.redis.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetAvailability_InvalidInput(t *testing.T) {
	f := newSlotFixture(t)

	_, err := f.uc.GetAvailability(context.Background(), &requests.AvailabilityQuery{DoctorID: f.doctor.ID, Date: "2026-03-09", Mode: "both"})
	assertStatus(t, err, constvars.StatusBadRequest)

	_, err = f.uc.GetAvailability(context.Background(), &requests.AvailabilityQuery{DoctorID: f.doctor.ID, Date: "09-03-2026", Mode: online})
	assertStatus(t, err, constvars.StatusBadRequest)
}

func TestCheckBookable(t *testing.T) {
	daySlots := func(f *slotFixture) []models.AppointmentSlot {
		return []models.AppointmentSlot{
			testutil.Slot(f.doctor.ID, "Monday", "09:00", "12:00", online, ""),
			testutil.Slot(f.doctor.ID, "Monday", "13:00", "15:00", inPerson, "loc-a"),
		}
	}

	tests := []struct {
		name    string
		date    string
		time    string
		mode    string
		loc     string
		booked  []string
		status  int
		message string
	}{
		{name: "on grid", date: "2026-03-09", time: "10:30", mode: online},
		{name: "in-person at location", date: "2026-03-09", time: "14:00", mode: inPerson, loc: "loc-a"},
		{name: "in-person any location", date: "2026-03-09", time: "13:30", mode: inPerson},
		{name: "no slots that day", date: "2026-03-10", time: "10:00", mode: online, status: constvars.StatusBadRequest, message: "Doctor is not available on Tuesdays for online appointments"},
		{name: "off grid", date: "2026-03-09", time: "10:15", mode: online, status: constvars.StatusBadRequest, message: "Selected time is not available for online appointments on Mondays"},
		{name: "at end of window", date: "2026-03-09", time: "12:00", mode: online, status: constvars.StatusBadRequest},
		{name: "wrong location", date: "2026-03-09", time: "14:00", mode: inPerson, loc: "loc-b", status: constvars.StatusBadRequest},
		{name: "elapsed today", date: "2026-03-02", time: "09:30", mode: online, status: constvars.StatusBadRequest, message: constvars.ErrClientAppointmentInPast},
		{name: "booked", date: "2026-03-09", time: "10:30", mode: online, booked: []string{"10:30:00"}, status: constvars.StatusConflict, message: "Time slot is already booked for online appointments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSlotFixture(t)
			day := "Monday"
			if tt.date == "2026-03-10" {
				day = "Tuesday"
				f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, day).Return([]models.AppointmentSlot{}, nil)
			} else {
				f.slots.On("FindActiveByDoctorAndDay", mock.Anything, f.doctor.ID, day).Return(daySlots(f), nil)
			}
			f.appointments.On("FindBookedTimes", mock.Anything, f.doctor.ID, tt.date, tt.mode, "").Return(tt.booked, nil).Maybe()

			out, err := f.uc.CheckBookable(context.Background(), &contracts.CheckBookableInput{
				Doctor:     &f.doctor,
				Date:       tt.date,
				Time:       tt.time,
				Mode:       tt.mode,
				LocationID: tt.loc,
			})

			if tt.status == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.time, out.Time)
				assert.Equal(t, tt.mode, out.Slot.Mode)
				return
			}
			assertStatus(t, err, tt.status)
			if tt.message != "" {
				var customErr *exceptions.CustomError
				require.True(t, errors.As(err, &customErr))
				assert.Equal(t, tt.message, customErr.ClientMessage)
			}
		})
	}
}

func TestInvalidateAvailability_EvictsProfile(t *testing.T) {
	f := newSlotFixture(t)
	f.redis.On("Increment", mock.Anything, availabilityVersionKey(f.doctor.ID)).Return(int64(1), nil)
	f.slots.On("FindActiveByDoctorID", mock.Anything, f.doctor.ID).Return([]models.AppointmentSlot{}, nil)

	_, err := f.uc.GetSlots(context.Background(), f.doctor.ID)
	require.NoError(t, err)
	require.NoError(t, f.uc.InvalidateAvailability(context.Background(), f.doctor.ID))
	_, err = f.uc.GetSlots(context.Background(), f.doctor.ID)
	require.NoError(t, err)

	f.doctors.AssertNumberOfCalls(t, "FindByID", 2)
}

func TestExportSchedule(t *testing.T) {
	f := newSlotFixture(t)
	location := testutil.RandomLocation(f.doctor.ID)
	slots := []models.AppointmentSlot{
		testutil.Slot(f.doctor.ID, "Monday", "09:00", "10:00", online, ""),
		testutil.Slot(f.doctor.ID, "Monday", "10:00", "11:00", online, ""),
		testutil.Slot(f.doctor.ID, "Wednesday", "13:00", "15:00", inPerson, location.ID),
	}

	var uploaded []byte
	f.slots.On("FindActiveByDoctorID", mock.Anything, f.doctor.ID).Return(slots, nil)
	f.locations.On("FindByIDs", mock.Anything, []string{location.ID}).Return([]models.HospitalLocation{location}, nil)
	f.storage.On("UploadJSON", mock.Anything, "schedule-exports", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "schedule_"+f.doctor.ID+"_") && strings.HasSuffix(name, ".json")
	}), mock.Anything).Run(func(args mock.Arguments) {
		uploaded = args.Get(3).([]byte)
	}).Return("schedule_"+f.doctor.ID+"_20260302_100500.json", nil)
	f.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "schedule-exports", "schedule_"+f.doctor.ID+"_20260302_100500.json", 24*time.Hour).
		Return("https://minio.local/presigned", nil)

	out, err := f.uc.ExportSchedule(context.Background(), f.doctor.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/presigned", out.URL)
	assert.Equal(t, fixedNow.Add(24*time.Hour), out.ExpiresAt)

	var doc scheduleDocument
	require.NoError(t, json.Unmarshal(uploaded, &doc))
	require.Len(t, doc.Days, 2)
	assert.Equal(t, "Monday", doc.Days[0].DayOfWeek)
	assert.Equal(t, []string{"09:00-11:00"}, doc.Days[0].Coverage[0].Windows)
	assert.Equal(t, location.Name, doc.Days[1].Slots[0].LocationName)
	assert.Equal(t, 4, doc.Days[1].Slots[0].TimesOffered)
}

func TestExportSchedule_UploadFailure(t *testing.T) {
	f := newSlotFixture(t)
	f.slots.On("FindActiveByDoctorID", mock.Anything, f.doctor.ID).Return([]models.AppointmentSlot{}, nil)
	f.storage.On("UploadJSON", mock.Anything, "schedule-exports", mock.Anything, mock.Anything).
		Return("", exceptions.ErrMinioCreateObject(errors.New("connection refused"), "schedule-exports"))

	_, err := f.uc.ExportSchedule(context.Background(), f.doctor.ID)
	assertStatus(t, err, constvars.StatusInternalServerError)
	f.storage.AssertNotCalled(t, "GetObjectUrlWithExpiryTime", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
