package feedbacks

import (
	"context"
	"errors"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Database) contracts.FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionFeedback),
	}
}

func (r *FeedbackMongoRepository) Initialize(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "appointmentId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("UniqueFeedbackAppointment"),
		},
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("DoctorFeedback"),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *FeedbackMongoRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) error {
	_, err := r.Collection.InsertOne(ctx, feedback)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrFeedbackAlreadyExists(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *FeedbackMongoRepository) FindByID(ctx context.Context, feedbackID string) (*models.Feedback, error) {
	return r.findOne(ctx, bson.M{"_id": feedbackID})
}

func (r *FeedbackMongoRepository) FindByAppointmentID(ctx context.Context, appointmentID string) (*models.Feedback, error) {
	return r.findOne(ctx, bson.M{"appointmentId": appointmentID})
}

func (r *FeedbackMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.Collection.FindOne(ctx, filter).Decode(&feedback)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &feedback, nil
}

func (r *FeedbackMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Feedback, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"doctorId": doctorID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	feedbacks := make([]models.Feedback, 0)
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return feedbacks, nil
}

func (r *FeedbackMongoRepository) StatsByDoctorIDs(ctx context.Context, doctorIDs []string) (map[string]models.FeedbackStats, error) {
	stats := make(map[string]models.FeedbackStats, len(doctorIDs))
	if len(doctorIDs) == 0 {
		return stats, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"doctorId": bson.M{"$in": doctorIDs}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$doctorId"},
			{Key: "averageRating", Value: bson.M{"$avg": "$rating"}},
			{Key: "count", Value: bson.M{"$sum": 1}},
		}}},
	}
	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var rows []models.FeedbackStats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for _, row := range rows {
		stats[row.DoctorID] = row
	}
	return stats, nil
}

func (r *FeedbackMongoRepository) UpdateFeedback(ctx context.Context, feedback *models.Feedback) error {
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": feedback.ID}, feedback)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrFeedbackNotFound(nil, feedback.ID)
	}
	return nil
}
