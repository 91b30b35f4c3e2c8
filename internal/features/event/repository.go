package event

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Event, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Event, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, event *Event) error
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type EventRepositoryImpl struct {
	collection *mongo.Collection
}

func NewEventRepository(mongodb *database.MongodbDB) EventRepository {
	return &EventRepositoryImpl{
		collection: mongodb.DB.Collection("events"),
	}
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *Event) error {
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

func (r *EventRepositoryImpl) FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Event, error) {
	var event Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "temple_id": templeID}).Decode(&event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"temple_id": templeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, event *Event) error {
	update := bson.M{
		"$set": bson.M{
			"name":       event.Name,
			"date":       event.Date,
			"location":   event.Location,
			"status":     event.Status,
			"updated_at": event.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "temple_id": templeID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "temple_id": templeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
