package slot

import (
	"context"
	"net/http"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/testutil"
	"telecare-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestSlotMongoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create many", func(mt *mtest.T) {
		repo := NewSlotMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.CreateSlots(context.Background(), []models.AppointmentSlot{
			testutil.Slot("dr000001", "Monday", "09:00", "12:00", online, ""),
			testutil.Slot("dr000001", "Monday", "09:00", "12:00", inPerson, "loc-a"),
		})
		require.NoError(t, err)
	})

	mt.Run("create nothing skips the round trip", func(mt *mtest.T) {
		repo := NewSlotMongoRepository(mt.DB)
		require.NoError(t, repo.CreateSlots(context.Background(), nil))
	})

	mt.Run("count active in-person slots", func(mt *mtest.T) {
		repo := NewSlotMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "telecare.appointment_slots", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}))

		count, err := repo.CountActiveByLocationID(context.Background(), "loc-a")
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	mt.Run("deactivate unknown slot", func(mt *mtest.T) {
		repo := NewSlotMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.DeactivateSlot(context.Background(), "dr000001", "slot-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}
