package slot

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

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Database) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionSlots),
	}
}

func (r *SlotMongoRepository) Initialize(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "doctorId", Value: 1}, {Key: "dayOfWeek", Value: 1}, {Key: "isActive", Value: 1}},
			Options: options.Index().SetName("DoctorDayActiveSlots"),
		},
		{
			Keys: bson.D{{Key: "locationId", Value: 1}},
			Options: options.Index().
				SetName("ActiveInPersonSlotLocation").
				SetPartialFilterExpression(bson.D{{Key: "isActive", Value: true}}),
		},
	})
	if err != nil {
		return exceptions.ErrMongoDBCreateIndex(err)
	}
	return nil
}

func (r *SlotMongoRepository) CreateSlots(ctx context.Context, slots []models.AppointmentSlot) error {
	if len(slots) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(slots))
	for i := range slots {
		documents = append(documents, slots[i])
	}
	if _, err := r.Collection.InsertMany(ctx, documents); err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, doctorID, slotID string) (*models.AppointmentSlot, error) {
	var slot models.AppointmentSlot
	err := r.Collection.FindOne(ctx, bson.M{"_id": slotID, "doctorId": doctorID}).Decode(&slot)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindActiveByDoctorID(ctx context.Context, doctorID string) ([]models.AppointmentSlot, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "isActive": true})
}

func (r *SlotMongoRepository) FindActiveByDoctorAndDay(ctx context.Context, doctorID, dayOfWeek string) ([]models.AppointmentSlot, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID, "dayOfWeek": dayOfWeek, "isActive": true})
}

func (r *SlotMongoRepository) find(ctx context.Context, filter bson.M) ([]models.AppointmentSlot, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	slots := make([]models.AppointmentSlot, 0)
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) CountActiveByLocationID(ctx context.Context, locationID string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"locationId": locationID,
		"mode":       constvars.AppointmentModeInPerson,
		"isActive":   true,
	})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *SlotMongoRepository) DeactivateSlot(ctx context.Context, doctorID, slotID string) error {
	result, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": slotID, "doctorId": doctorID},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}},
	)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrSlotNotFound(nil, slotID)
	}
	return nil
}
