package appointments

import (
	"context"
	"errors"
	"net/http"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/contracts/mocks"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/services/shared/ratelimiter"
	"telecare-service/internal/app/testutil"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

type appointmentFixture struct {
	uc           *appointmentUsecase
	appointments *mocks.AppointmentRepository
	doctors      *mocks.DoctorRepository
	patients     *mocks.PatientRepository
	locations    *mocks.LocationRepository
	slots        *mocks.SlotUsecase
	locker       *mocks.LockerService
	redis        *mocks.RedisRepository
	events       *mocks.EventPublisher
	doctor       models.Doctor
	patient      models.Patient
}

func newAppointmentFixture(quota int) *appointmentFixture {
	f := &appointmentFixture{
		appointments: new(mocks.AppointmentRepository),
		doctors:      new(mocks.DoctorRepository),
		patients:     new(mocks.PatientRepository),
		locations:    new(mocks.LocationRepository),
		slots:        new(mocks.SlotUsecase),
		locker:       new(mocks.LockerService),
		redis:        new(mocks.RedisRepository),
		events:       new(mocks.EventPublisher),
		doctor:       testutil.RandomDoctor(),
		patient:      testutil.RandomPatient(),
	}
	f.uc = &appointmentUsecase{
		AppointmentRepository: f.appointments,
		DoctorRepository:      f.doctors,
		PatientRepository:     f.patients,
		LocationRepository:    f.locations,
		SlotUsecase:           f.slots,
		LockService:           f.locker,
		BookingLimiter:        ratelimiter.NewResourceLimiter(f.redis, zap.NewNop()),
		EventPublisher:        f.events,
		InternalConfig: &config.InternalConfig{App: config.App{
			BookingQuotaPerPatient:      quota,
			BookingQuotaWindowInSeconds: 60,
			BookingLockTimeoutInSeconds: 10,
		}},
		Log: zap.NewNop(),
		now: func() time.Time { return fixedNow },
	}

	f.doctors.On("FindByID", mock.Anything, f.doctor.ID).Return(&f.doctor, nil).Maybe()
	f.patients.On("FindByID", mock.Anything, f.patient.ID).Return(&f.patient, nil).Maybe()
	return f
}

func (f *appointmentFixture) expectLock(key string) {
	f.locker.On("TryLock", mock.Anything, key, 10*time.Second).Return(true, "token", nil).Once()
	f.locker.On("Unlock", mock.Anything, key, "token").Return(nil).Once()
}

func (f *appointmentFixture) expectSideEffects(eventType string) {
	f.slots.On("InvalidateAvailability", mock.Anything, f.doctor.ID).Return(nil).Once()
	f.events.On("Publish", mock.Anything, eventType, mock.Anything).Return(nil).Once()
}

func (f *appointmentFixture) upcoming(mode string) *models.Appointment {
	appointment := &models.Appointment{
		ID:         "APT-1772445600-1234",
		PatientID:  f.patient.ID,
		DoctorID:   f.doctor.ID,
		Date:       "2026-03-09",
		Time:       "09:00",
		Mode:       mode,
		Status:     constvars.AppointmentStatusUpcoming,
		BookingKey: models.BuildBookingKey(f.doctor.ID, "2026-03-09", "09:00", mode),
	}
	if mode == constvars.AppointmentModeInPerson {
		appointment.LocationID = "loc-a"
	}
	return appointment
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	return exceptions.StatusCodeOf(err)
}

func TestCreateAppointment(t *testing.T) {
	t.Run("in-person booking takes the slot location", func(t *testing.T) {
		f := newAppointmentFixture(0)
		location := testutil.RandomLocation(f.doctor.ID)
		slot := testutil.Slot(f.doctor.ID, "Monday", "09:00", "12:00", constvars.AppointmentModeInPerson, location.ID)
		lockKey := "lock:booking:" + f.doctor.ID + ":2026-03-09:09:30:in-person"

		f.expectLock(lockKey)
		f.slots.On("CheckBookable", mock.Anything, mock.MatchedBy(func(in *contracts.CheckBookableInput) bool {
			return in.Doctor.ID == f.doctor.ID && in.Time == "09:30" && in.LocationID == ""
		})).Return(&contracts.CheckBookableOutput{Slot: slot, Time: "09:30"}, nil)
		f.appointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.LocationID == location.ID &&
				a.Status == constvars.AppointmentStatusUpcoming &&
				a.BookingKey == f.doctor.ID+"|2026-03-09|09:30|in-person" &&
				a.CreatedAt.Equal(fixedNow)
		})).Return(nil)
		f.expectSideEffects(constvars.EventAppointmentBooked)
		f.locations.On("FindByID", mock.Anything, f.doctor.ID, location.ID).Return(&location, nil)

		response, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID,
			DoctorID:  f.doctor.ID,
			Date:      "2026-03-09",
			Time:      "9:30",
			Mode:      constvars.AppointmentModeInPerson,
		})
		require.NoError(t, err)
		assert.Equal(t, "09:30", response.Time)
		require.NotNil(t, response.Location)
		assert.Equal(t, location.Name, response.Location.Name)

		f.locker.AssertExpectations(t)
		f.slots.AssertExpectations(t)
		f.events.AssertExpectations(t)
	})

	t.Run("rule violation releases the lock", func(t *testing.T) {
		f := newAppointmentFixture(0)
		lockKey := "lock:booking:" + f.doctor.ID + ":2026-03-10:09:00:online"
		f.expectLock(lockKey)
		f.slots.On("CheckBookable", mock.Anything, mock.Anything).
			Return(nil, exceptions.ErrDoctorNotAvailableOnDay("Tuesday", constvars.AppointmentModeOnline))

		_, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID,
			DoctorID:  f.doctor.ID,
			Date:      "2026-03-10",
			Time:      "09:00",
			Mode:      constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, "Doctor is not available on Tuesdays for online appointments", err.(*exceptions.CustomError).ClientMessage)
		f.locker.AssertExpectations(t)
		f.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("concurrent booking holds the lock", func(t *testing.T) {
		f := newAppointmentFixture(0)
		f.locker.On("TryLock", mock.Anything, mock.Anything, mock.Anything).Return(false, "", nil)

		_, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID, DoctorID: f.doctor.ID, Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		f.slots.AssertNotCalled(t, "CheckBookable", mock.Anything, mock.Anything)
	})

	t.Run("unique index conflict surfaces as already booked", func(t *testing.T) {
		f := newAppointmentFixture(0)
		slot := testutil.Slot(f.doctor.ID, "Monday", "09:00", "12:00", constvars.AppointmentModeOnline, "")
		f.expectLock("lock:booking:" + f.doctor.ID + ":2026-03-09:09:00:online")
		f.slots.On("CheckBookable", mock.Anything, mock.Anything).Return(&contracts.CheckBookableOutput{Slot: slot, Time: "09:00"}, nil)
		f.appointments.On("CreateAppointment", mock.Anything, mock.Anything).
			Return(exceptions.ErrTimeSlotAlreadyBooked(errors.New("E11000"), constvars.AppointmentModeOnline))

		_, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID, DoctorID: f.doctor.ID, Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusConflict, statusOf(t, err))
		assert.Equal(t, "Time slot is already booked for online appointments", err.(*exceptions.CustomError).ClientMessage)
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure keeps the booking", func(t *testing.T) {
		f := newAppointmentFixture(0)
		slot := testutil.Slot(f.doctor.ID, "Monday", "09:00", "12:00", constvars.AppointmentModeOnline, "")
		f.expectLock("lock:booking:" + f.doctor.ID + ":2026-03-09:09:00:online")
		f.slots.On("CheckBookable", mock.Anything, mock.Anything).Return(&contracts.CheckBookableOutput{Slot: slot, Time: "09:00"}, nil)
		f.appointments.On("CreateAppointment", mock.Anything, mock.Anything).Return(nil)
		f.slots.On("InvalidateAvailability", mock.Anything, f.doctor.ID).Return(nil)
		f.events.On("Publish", mock.Anything, constvars.EventAppointmentBooked, mock.Anything).Return(errors.New("broker down"))

		response, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID, DoctorID: f.doctor.ID, Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		require.NoError(t, err)
		assert.Empty(t, response.LocationID)
	})

	t.Run("unknown doctor and patient", func(t *testing.T) {
		f := newAppointmentFixture(0)
		f.doctors.On("FindByID", mock.Anything, "dr404404").Return(nil, nil)
		f.patients.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

		_, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID, DoctorID: "dr404404", Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
		assert.Equal(t, constvars.ErrClientDoctorNotFound, err.(*exceptions.CustomError).ClientMessage)

		_, err = f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: "ghost", DoctorID: f.doctor.ID, Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	t.Run("blocked doctor takes no bookings", func(t *testing.T) {
		f := newAppointmentFixture(0)
		f.doctor.IsBlocked = true

		_, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID, DoctorID: f.doctor.ID, Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, constvars.ErrClientDoctorBlocked, err.(*exceptions.CustomError).ClientMessage)
		f.locker.AssertNotCalled(t, "TryLock", mock.Anything, mock.Anything, mock.Anything)
		f.appointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("patient quota exceeded", func(t *testing.T) {
		f := newAppointmentFixture(2)
		f.redis.On("IncrementWithTTL", mock.Anything, mock.Anything, 61*time.Second).Return(int64(3), nil)

		_, err := f.uc.CreateAppointment(context.Background(), &requests.CreateAppointment{
			PatientID: f.patient.ID, DoctorID: f.doctor.ID, Date: "2026-03-09", Time: "09:00", Mode: constvars.AppointmentModeOnline,
		})
		assert.Equal(t, http.StatusTooManyRequests, statusOf(t, err))
		f.doctors.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("clears the booking key", func(t *testing.T) {
		f := newAppointmentFixture(0)
		appointment := f.upcoming(constvars.AppointmentModeOnline)
		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		f.appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusCancelled && a.BookingKey == "" && a.CancelledAt != nil
		})).Return(nil)
		f.expectSideEffects(constvars.EventAppointmentCancelled)

		response, err := f.uc.CancelAppointment(context.Background(), appointment.ID, &requests.CancelAppointment{
			Reason:      " feeling better ",
			CancelledBy: constvars.ActorPatient,
		})
		require.NoError(t, err)
		assert.Equal(t, "feeling better", response.CancellationReason)
		assert.Equal(t, constvars.ActorPatient, response.CancelledBy)
		f.events.AssertExpectations(t)
	})

	tests := []struct {
		name    string
		status  string
		actor   string
		message string
	}{
		{"already cancelled", constvars.AppointmentStatusCancelled, constvars.ActorDoctor, "Appointment is already cancelled"},
		{"completed", constvars.AppointmentStatusCompleted, constvars.ActorDoctor, "Cannot cancel a completed appointment"},
		{"unknown actor", constvars.AppointmentStatusUpcoming, "robot", constvars.ErrClientUnknownActor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAppointmentFixture(0)
			appointment := f.upcoming(constvars.AppointmentModeOnline)
			appointment.Status = tt.status
			f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil).Maybe()

			_, err := f.uc.CancelAppointment(context.Background(), appointment.ID, &requests.CancelAppointment{CancelledBy: tt.actor})
			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
			assert.Equal(t, tt.message, err.(*exceptions.CustomError).ClientMessage)
			f.appointments.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	t.Run("completes an upcoming appointment", func(t *testing.T) {
		f := newAppointmentFixture(0)
		appointment := f.upcoming(constvars.AppointmentModeOnline)
		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		f.appointments.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
		f.expectSideEffects(constvars.EventAppointmentStatusUpdated)

		response, err := f.uc.UpdateAppointmentStatus(context.Background(), appointment.ID, &requests.UpdateAppointmentStatus{
			Status: constvars.AppointmentStatusCompleted,
			Notes:  "follow up in two weeks",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, response.Status)
		assert.Equal(t, "follow up in two weeks", response.Notes)
	})

	t.Run("cancelled is final", func(t *testing.T) {
		f := newAppointmentFixture(0)
		appointment := f.upcoming(constvars.AppointmentModeOnline)
		appointment.Status = constvars.AppointmentStatusCancelled
		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)

		_, err := f.uc.UpdateAppointmentStatus(context.Background(), appointment.ID, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusUpcoming})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})

	t.Run("cancelling through status frees the time", func(t *testing.T) {
		f := newAppointmentFixture(0)
		appointment := f.upcoming(constvars.AppointmentModeOnline)
		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		f.appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.BookingKey == ""
		})).Return(nil)
		f.expectSideEffects(constvars.EventAppointmentStatusUpdated)

		_, err := f.uc.UpdateAppointmentStatus(context.Background(), appointment.ID, &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCancelled})
		require.NoError(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		f := newAppointmentFixture(0)
		_, err := f.uc.UpdateAppointmentStatus(context.Background(), "APT-1", &requests.UpdateAppointmentStatus{Status: "no-show"})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		f.appointments.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing appointment", func(t *testing.T) {
		f := newAppointmentFixture(0)
		f.appointments.On("FindByID", mock.Anything, "APT-404").Return(nil, nil)

		_, err := f.uc.UpdateAppointmentStatus(context.Background(), "APT-404", &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})
}

func TestRescheduleAppointment(t *testing.T) {
	t.Run("keeps the first original schedule", func(t *testing.T) {
		f := newAppointmentFixture(0)
		appointment := f.upcoming(constvars.AppointmentModeInPerson)
		appointment.OriginalDate = "2026-03-05"
		appointment.OriginalTime = "14:00"
		slot := testutil.Slot(f.doctor.ID, "Tuesday", "09:00", "12:00", constvars.AppointmentModeInPerson, "loc-a")

		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		f.expectLock("lock:booking:" + f.doctor.ID + ":2026-03-10:10:00:in-person")
		f.slots.On("CheckBookable", mock.Anything, mock.MatchedBy(func(in *contracts.CheckBookableInput) bool {
			return in.ExcludeAppointmentID == appointment.ID && in.LocationID == "loc-a" && in.Mode == constvars.AppointmentModeInPerson
		})).Return(&contracts.CheckBookableOutput{Slot: slot, Time: "10:00"}, nil)
		f.appointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.BookingKey == f.doctor.ID+"|2026-03-10|10:00|in-person"
		})).Return(nil)
		f.expectSideEffects(constvars.EventAppointmentRescheduled)
		f.locations.On("FindByID", mock.Anything, f.doctor.ID, "loc-a").Return(nil, nil)

		response, err := f.uc.RescheduleAppointment(context.Background(), appointment.ID, &requests.RescheduleAppointment{
			NewDate:       "2026-03-10",
			NewTime:       "10:00",
			Reason:        "clinic closed",
			RescheduledBy: constvars.ActorDoctor,
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-10", response.Date)
		assert.Equal(t, "10:00", response.Time)
		assert.Equal(t, "2026-03-05", response.OriginalDate)
		assert.Equal(t, "14:00", response.OriginalTime)
		assert.Equal(t, "clinic closed", response.RescheduleReason)
	})

	t.Run("first reschedule records the original", func(t *testing.T) {
		f := newAppointmentFixture(0)
		appointment := f.upcoming(constvars.AppointmentModeOnline)
		slot := testutil.Slot(f.doctor.ID, "Monday", "09:00", "12:00", constvars.AppointmentModeOnline, "")

		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)
		f.expectLock("lock:booking:" + f.doctor.ID + ":2026-03-09:11:00:online")
		f.slots.On("CheckBookable", mock.Anything, mock.Anything).Return(&contracts.CheckBookableOutput{Slot: slot, Time: "11:00"}, nil)
		f.appointments.On("UpdateAppointment", mock.Anything, mock.Anything).Return(nil)
		f.expectSideEffects(constvars.EventAppointmentRescheduled)

		response, err := f.uc.RescheduleAppointment(context.Background(), appointment.ID, &requests.RescheduleAppointment{
			NewDate: "2026-03-09", NewTime: "11:00", Reason: "conflict", RescheduledBy: constvars.ActorPatient,
		})
		require.NoError(t, err)
		assert.Equal(t, "2026-03-09", response.OriginalDate)
		assert.Equal(t, "09:00", response.OriginalTime)
	})

	t.Run("blocked doctor cannot be rescheduled to", func(t *testing.T) {
		f := newAppointmentFixture(0)
		f.doctor.IsBlocked = true
		appointment := f.upcoming(constvars.AppointmentModeOnline)
		f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil)

		_, err := f.uc.RescheduleAppointment(context.Background(), appointment.ID, &requests.RescheduleAppointment{
			NewDate: "2026-03-10", NewTime: "10:00", Reason: "conflict", RescheduledBy: constvars.ActorPatient,
		})
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		assert.Equal(t, constvars.ErrClientDoctorBlocked, err.(*exceptions.CustomError).ClientMessage)
		f.slots.AssertNotCalled(t, "CheckBookable", mock.Anything, mock.Anything)
		f.appointments.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name    string
			status  string
			request requests.RescheduleAppointment
			message string
		}{
			{"reason required", constvars.AppointmentStatusUpcoming, requests.RescheduleAppointment{NewDate: "2026-03-10", NewTime: "10:00", Reason: "  ", RescheduledBy: constvars.ActorPatient}, constvars.ErrClientRescheduleReasonRequired},
			{"only upcoming", constvars.AppointmentStatusCompleted, requests.RescheduleAppointment{NewDate: "2026-03-10", NewTime: "10:00", Reason: "x", RescheduledBy: constvars.ActorPatient}, constvars.ErrClientOnlyUpcomingCanBeRescheduled},
			{"same schedule", constvars.AppointmentStatusUpcoming, requests.RescheduleAppointment{NewDate: "2026-03-09", NewTime: "9:00", Reason: "x", RescheduledBy: constvars.ActorPatient}, constvars.ErrClientBookingSameAsCurrentSchedule},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newAppointmentFixture(0)
				appointment := f.upcoming(constvars.AppointmentModeOnline)
				appointment.Status = tt.status
				f.appointments.On("FindByID", mock.Anything, appointment.ID).Return(appointment, nil).Maybe()

				_, err := f.uc.RescheduleAppointment(context.Background(), appointment.ID, &tt.request)
				assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
				assert.Equal(t, tt.message, err.(*exceptions.CustomError).ClientMessage)
				f.slots.AssertNotCalled(t, "CheckBookable", mock.Anything, mock.Anything)
			})
		}
	})
}

func TestGetAppointments_LoadsLocationsOnce(t *testing.T) {
	f := newAppointmentFixture(0)
	location := testutil.RandomLocation(f.doctor.ID)
	first := f.upcoming(constvars.AppointmentModeInPerson)
	first.LocationID = location.ID
	second := f.upcoming(constvars.AppointmentModeInPerson)
	second.ID = "APT-1772445600-9999"
	second.LocationID = location.ID
	online := f.upcoming(constvars.AppointmentModeOnline)

	filter := &requests.AppointmentFilter{DoctorID: f.doctor.ID, Pagination: requests.Pagination{Page: 1, PageSize: 20}}
	f.appointments.On("FindAll", mock.Anything, filter).Return([]models.Appointment{*first, *second, *online}, 3, nil)
	f.locations.On("FindByIDs", mock.Anything, []string{location.ID}).Return([]models.HospitalLocation{location}, nil).Once()

	appointments, total, err := f.uc.GetAppointments(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, appointments, 3)
	assert.Equal(t, location.Name, appointments[1].Location.Name)
	assert.Nil(t, appointments[2].Location)
	f.locations.AssertExpectations(t)
}
