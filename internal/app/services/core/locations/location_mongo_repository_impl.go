package locations

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

type LocationMongoRepository struct {
	Collection *mongo.Collection
}

func NewLocationMongoRepository(db *mongo.Database) contracts.LocationRepository {
	return &LocationMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionLocations),
	}
}

func (r *LocationMongoRepository) Initialize(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "isActive", Value: 1}},
		Options: options.Index().SetName("DoctorActiveLocations"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *LocationMongoRepository) CreateLocation(ctx context.Context, location *models.HospitalLocation) error {
	if _, err := r.Collection.InsertOne(ctx, location); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *LocationMongoRepository) FindByID(ctx context.Context, doctorID, locationID string) (*models.HospitalLocation, error) {
	var location models.HospitalLocation
	err := r.Collection.FindOne(ctx, bson.M{"_id": locationID, "doctorId": doctorID}).Decode(&location)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &location, nil
}

func (r *LocationMongoRepository) FindByIDs(ctx context.Context, locationIDs []string) ([]models.HospitalLocation, error) {
	if len(locationIDs) == 0 {
		return []models.HospitalLocation{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": locationIDs}}, options.Find())
}

func (r *LocationMongoRepository) FindActiveByDoctorID(ctx context.Context, doctorID string) ([]models.HospitalLocation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return r.find(ctx, bson.M{"doctorId": doctorID, "isActive": true}, opts)
}

func (r *LocationMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.HospitalLocation, error) {
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	locations := make([]models.HospitalLocation, 0)
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return locations, nil
}

func (r *LocationMongoRepository) UpdateLocation(ctx context.Context, location *models.HospitalLocation) error {
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": location.ID, "doctorId": location.DoctorID}, location)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrLocationNotFound(nil, location.ID)
	}
	return nil
}
