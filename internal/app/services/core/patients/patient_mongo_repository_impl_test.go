package patients

import (
	"context"
	"net/http"
	"telecare-service/internal/app/testutil"
	"telecare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestPatientMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewPatientMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Code: 11000, Message: "duplicate key"}))

		patient := testutil.RandomPatient()
		err := repo.CreatePatient(context.Background(), &patient)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	})

	mt.Run("add favorite reports a change", func(mt *mtest.T) {
		repo := NewPatientMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		added, err := repo.AddFavoriteDoctor(context.Background(), "patient-1", "dr000001")
		require.NoError(t, err)
		assert.True(t, added)
	})

	mt.Run("remove missing favorite reports no change", func(mt *mtest.T) {
		repo := NewPatientMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		removed, err := repo.RemoveFavoriteDoctor(context.Background(), "patient-1", "dr000001")
		require.NoError(t, err)
		assert.False(t, removed)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewPatientMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "telecare.patients", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "patient-1"},
			{Key: "email", Value: "jane@example.com"},
			{Key: "favoriteDoctors", Value: bson.A{"dr000001"}},
		}))

		patient, err := repo.FindByEmail(context.Background(), "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, patient)
		assert.True(t, patient.HasFavorite("dr000001"))
	})
}
