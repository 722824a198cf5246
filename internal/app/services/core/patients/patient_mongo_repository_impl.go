package patients

import (
	"context"
	"errors"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/models"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Database) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) Initialize(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("UniquePatientEmail"),
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrEmailAlreadyExist(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"_id": patientID})
}

func (r *PatientMongoRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	result, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": patient.ID}, patient)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil, patient.ID)
	}
	return nil
}

func (r *PatientMongoRepository) AddFavoriteDoctor(ctx context.Context, patientID, doctorID string) (bool, error) {
	filter := bson.M{"_id": patientID, "favoriteDoctors": bson.M{"$ne": doctorID}}
	update := bson.M{
		"$addToSet": bson.M{"favoriteDoctors": doctorID},
		"$set":      bson.M{"updatedAt": time.Now()},
	}
	return r.updateFavorites(ctx, filter, update)
}

func (r *PatientMongoRepository) RemoveFavoriteDoctor(ctx context.Context, patientID, doctorID string) (bool, error) {
	filter := bson.M{"_id": patientID, "favoriteDoctors": doctorID}
	update := bson.M{
		"$pull": bson.M{"favoriteDoctors": doctorID},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	return r.updateFavorites(ctx, filter, update)
}

// updateFavorites reports whether the favorites array changed.
func (r *PatientMongoRepository) updateFavorites(ctx context.Context, filter, update bson.M) (bool, error) {
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount > 0, nil
}
