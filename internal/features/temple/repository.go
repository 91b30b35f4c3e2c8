package temple

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TempleRepository interface {
	Create(ctx context.Context, temple *Temple) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Temple, error)
	List(ctx context.Context) ([]Temple, error)
	Update(ctx context.Context, id primitive.ObjectID, temple *Temple) error
}

type TempleRepositoryImpl struct {
	collection *mongo.Collection
}

func NewTempleRepository(mongodb *database.MongodbDB) TempleRepository {
	return &TempleRepositoryImpl{
		collection: mongodb.DB.Collection("temples"),
	}
}

func (r *TempleRepositoryImpl) Create(ctx context.Context, temple *Temple) error {
	_, err := r.collection.InsertOne(ctx, temple)
	return err
}

func (r *TempleRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Temple, error) {
	var temple Temple
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&temple)
	if err != nil {
		return nil, err
	}
	return &temple, nil
}

func (r *TempleRepositoryImpl) List(ctx context.Context) ([]Temple, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var temples []Temple
	if err := cursor.All(ctx, &temples); err != nil {
		return nil, err
	}
	return temples, nil
}

func (r *TempleRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, temple *Temple) error {
	update := bson.M{
		"$set": bson.M{
			"name":               temple.Name,
			"alternate_name":     temple.AlternateName,
			"location":           temple.Location,
			"image":              temple.Image,
			"description":        temple.Description,
			"founded_year":       temple.FoundedYear,
			"history_images":     temple.HistoryImages,
			"gods_and_goddesses": temple.GodsAndGoddesses,
			"festivals":          temple.Festivals,
			"pujaris":            temple.Pujaris,
			"management":         temple.Management,
			"updated_at":         temple.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
