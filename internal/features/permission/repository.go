package permission

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionRepository interface {
	Create(ctx context.Context, permission *Permission) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Permission, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Permission, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Permission, error)
	Update(ctx context.Context, id primitive.ObjectID, permission *Permission) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PermissionRepositoryImpl struct {
	collection *mongo.Collection
}

func NewPermissionRepository(mongodb *database.MongodbDB) PermissionRepository {
	return &PermissionRepositoryImpl{
		collection: mongodb.DB.Collection("permissions"),
	}
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, permission *Permission) error {
	_, err := r.collection.InsertOne(ctx, permission)
	return err
}

func (r *PermissionRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*Permission, error) {
	var permission Permission
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&permission)
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *PermissionRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Permission, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"temple_id": templeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var permissions []Permission
	if err := cursor.All(ctx, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *PermissionRepositoryImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Permission, error) {
	if len(ids) == 0 {
		return []Permission{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var permissions []Permission
	if err := cursor.All(ctx, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

func (r *PermissionRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, permission *Permission) error {
	update := bson.M{
		"$set": bson.M{
			"permission_name": permission.PermissionName,
			"actions":         permission.Actions,
			"updated_at":      permission.UpdatedAt,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "temple_id": permission.TempleID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *PermissionRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
