package superadmin

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SuperAdminRepository interface {
	Create(ctx context.Context, admin *SuperAdmin) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*SuperAdmin, error)
	FindByEmail(ctx context.Context, email string) (*SuperAdmin, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) (*SuperAdmin, error)
	Update(ctx context.Context, id primitive.ObjectID, admin *SuperAdmin) error
}

type SuperAdminRepositoryImpl struct {
	collection *mongo.Collection
}

func NewSuperAdminRepository(mongodb *database.MongodbDB) SuperAdminRepository {
	return &SuperAdminRepositoryImpl{
		collection: mongodb.DB.Collection("superadmins"),
	}
}

func (r *SuperAdminRepositoryImpl) Create(ctx context.Context, admin *SuperAdmin) error {
	_, err := r.collection.InsertOne(ctx, admin)
	return err
}

func (r *SuperAdminRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*SuperAdmin, error) {
	var admin SuperAdmin
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *SuperAdminRepositoryImpl) FindByEmail(ctx context.Context, email string) (*SuperAdmin, error) {
	var admin SuperAdmin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *SuperAdminRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) (*SuperAdmin, error) {
	var admin SuperAdmin
	err := r.collection.FindOne(ctx, bson.M{"temple_id": templeID}).Decode(&admin)
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *SuperAdminRepositoryImpl) Update(ctx context.Context, id primitive.ObjectID, admin *SuperAdmin) error {
	update := bson.M{
		"$set": bson.M{
			"username":        admin.Username,
			"email":           admin.Email,
			"password":        admin.Password,
			"phone_number":    admin.PhoneNumber,
			"profile_picture": admin.ProfilePicture,
			"updated_at":      admin.UpdatedAt,
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
