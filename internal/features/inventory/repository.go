package inventory

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *Item) error
	FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Item, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Item, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, item *Item) error
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type InventoryRepositoryImpl struct {
	collection *mongo.Collection
}

func NewInventoryRepository(mongodb *database.MongodbDB) InventoryRepository {
	return &InventoryRepositoryImpl{
		collection: mongodb.DB.Collection("inventories"),
	}
}

func (r *InventoryRepositoryImpl) Create(ctx context.Context, item *Item) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *InventoryRepositoryImpl) FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Item, error) {
	var item Item
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "temple_id": templeID}).Decode(&item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"temple_id": templeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InventoryRepositoryImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, item *Item) error {
	update := bson.M{
		"$set": bson.M{
			"name":        item.Name,
			"category":    item.Category,
			"quantity":    item.Quantity,
			"unit":        item.Unit,
			"unit_price":  item.UnitPrice,
			"total_price": item.TotalPrice,
			"updated_at":  item.UpdatedAt,
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

func (r *InventoryRepositoryImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "temple_id": templeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
