package patients

import (
	"context"
	"net/http"
	"telecare-service/internal/app/contracts/mocks"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/testutil"
	"telecare-service/internal/pkg/dto/requests"
	"telecare-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPatientUsecase() (*patientUsecase, *mocks.PatientRepository, *mocks.DoctorRepository) {
	patients := new(mocks.PatientRepository)
	doctors := new(mocks.DoctorRepository)
	return &patientUsecase{
		PatientRepository: patients,
		DoctorRepository:  doctors,
		Log:               zap.NewNop(),
		now:               time.Now,
	}, patients, doctors
}

func TestCreatePatient(t *testing.T) {
	request := &requests.CreatePatient{
		Email:     "John.Smith@Example.com",
		Password:  "Str0ng!Pass",
		FirstName: "john",
		LastName:  "o'neil",
		Phone:     "081234567890",
	}

	t.Run("success", func(t *testing.T) {
		uc, patients, _ := newTestPatientUsecase()
		patients.On("FindByEmail", mock.Anything, "john.smith@example.com").Return(nil, nil)
		patients.On("CreatePatient", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
			return p.ID != "" && p.Password != request.Password && p.FirstName == "John" && p.FavoriteDoctors != nil
		})).Return(nil)

		patient, err := uc.CreatePatient(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, "john.smith@example.com", patient.Email)
		assert.Empty(t, patient.FavoriteDoctors)
	})

	t.Run("weak password", func(t *testing.T) {
		uc, patients, _ := newTestPatientUsecase()
		weak := *request
		weak.Password = "password"

		_, err := uc.CreatePatient(context.Background(), &weak)
		require.Error(t, err)
		assert.Contains(t, err.(*exceptions.CustomError).ClientMessage, "uppercase")
		patients.AssertNotCalled(t, "CreatePatient", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		uc, patients, _ := newTestPatientUsecase()
		existing := testutil.RandomPatient()
		patients.On("FindByEmail", mock.Anything, mock.Anything).Return(&existing, nil)

		_, err := uc.CreatePatient(context.Background(), request)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	})
}

func TestFavoriteDoctors(t *testing.T) {
	patient := testutil.RandomPatient()
	doctor := testutil.RandomDoctor()

	t.Run("add requires an existing doctor", func(t *testing.T) {
		uc, patients, doctors := newTestPatientUsecase()
		patients.On("FindByID", mock.Anything, patient.ID).Return(&patient, nil)
		doctors.On("FindByID", mock.Anything, "dr404404").Return(nil, nil)

		err := uc.AddFavoriteDoctor(context.Background(), patient.ID, "dr404404")
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
		patients.AssertNotCalled(t, "AddFavoriteDoctor", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("add twice conflicts", func(t *testing.T) {
		uc, patients, doctors := newTestPatientUsecase()
		patients.On("FindByID", mock.Anything, patient.ID).Return(&patient, nil)
		doctors.On("FindByID", mock.Anything, doctor.ID).Return(&doctor, nil)
		patients.On("AddFavoriteDoctor", mock.Anything, patient.ID, doctor.ID).Return(false, nil)

		err := uc.AddFavoriteDoctor(context.Background(), patient.ID, doctor.ID)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	})

	t.Run("remove missing favorite", func(t *testing.T) {
		uc, patients, _ := newTestPatientUsecase()
		patients.On("FindByID", mock.Anything, patient.ID).Return(&patient, nil)
		patients.On("RemoveFavoriteDoctor", mock.Anything, patient.ID, doctor.ID).Return(false, nil)

		err := uc.RemoveFavoriteDoctor(context.Background(), patient.ID, doctor.ID)
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("list skips removed doctors", func(t *testing.T) {
		uc, patients, doctors := newTestPatientUsecase()
		withFavorites := patient
		withFavorites.FavoriteDoctors = []string{doctor.ID, "dr000000"}
		patients.On("FindByID", mock.Anything, patient.ID).Return(&withFavorites, nil)
		doctors.On("FindByID", mock.Anything, doctor.ID).Return(&doctor, nil)
		doctors.On("FindByID", mock.Anything, "dr000000").Return(nil, nil)

		favorites, err := uc.GetFavoriteDoctors(context.Background(), patient.ID)
		require.NoError(t, err)
		require.Len(t, favorites, 1)
		assert.Equal(t, doctor.ID, favorites[0].ID)
	})

	t.Run("unknown patient", func(t *testing.T) {
		uc, patients, _ := newTestPatientUsecase()
		patients.On("FindByID", mock.Anything, "nobody").Return(nil, nil)

		_, err := uc.GetFavoriteDoctors(context.Background(), "nobody")
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}
