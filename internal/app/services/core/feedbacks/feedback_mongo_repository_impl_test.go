package feedbacks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFeedbackMongoRepository_StatsByDoctorIDs(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("groups ratings per doctor", func(mt *mtest.T) {
		repo := NewFeedbackMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "telecare.feedback", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "dr000001"}, {Key: "averageRating", Value: 4.5}, {Key: "count", Value: int32(12)}},
			bson.D{{Key: "_id", Value: "dr000002"}, {Key: "averageRating", Value: 3.0}, {Key: "count", Value: int32(1)}},
		))

		stats, err := repo.StatsByDoctorIDs(context.Background(), []string{"dr000001", "dr000002", "dr000003"})
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 4.5, stats["dr000001"].AverageRating)
		assert.Equal(t, 12, stats["dr000001"].Count)
		assert.Equal(t, 1, stats["dr000002"].Count)
		assert.Zero(t, stats["dr000003"].Count)
	})

	mt.Run("no doctors skips the round trip", func(mt *mtest.T) {
		repo := NewFeedbackMongoRepository(mt.DB)

		stats, err := repo.StatsByDoctorIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	mt.Run("aggregate failure", func(mt *mtest.T) {
		repo := NewFeedbackMongoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "bad pipeline"}))

		_, err := repo.StatsByDoctorIDs(context.Background(), []string{"dr000001"})
		require.Error(t, err)
	})
}
