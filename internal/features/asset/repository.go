package asset

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *Asset) error
	FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Asset, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Asset, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, asset *Asset) error
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type AssetRepositoryImpl struct {
	collection *mongo.Collection
}

func NewAssetRepository(mongodb *database.MongodbDB) AssetRepository {
	return &AssetRepositoryImpl{
		collection: mongodb.DB.Collection("assets"),
	}
}

func (r *AssetRepositoryImpl) Create(ctx context.Context, asset *Asset) error {
	_, err := r.collection.InsertOne(ctx, asset)
	return err
}

func (r *AssetRepositoryImpl) FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Asset, error) {
	var asset Asset
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "temple_id": templeID}).Decode(&asset)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *AssetRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Asset, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"temple_id": templeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	assets := []Asset{}
	if err := cursor.All(ctx, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetRepositoryImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, asset *Asset) error {
	update := bson.M{
		"$set": bson.M{
			"asset_type":       asset.AssetType,
			"name":             asset.Name,
			"description":      asset.Description,
			"acquisition_date": asset.AcquisitionDate,
			"acquisition_cost": asset.AcquisitionCost,
			"current_value":    asset.CurrentValue,
			"address":          asset.Address,
			"pincode":          asset.Pincode,
			"status":           asset.Status,
			"rent_details":     asset.RentDetails,
			"updated_at":       asset.UpdatedAt,
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

func (r *AssetRepositoryImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "temple_id": templeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
