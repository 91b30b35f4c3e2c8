package tenant

import (
	"context"
	"regexp"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *Tenant) error
	FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Tenant, error)
	Search(ctx context.Context, templeID primitive.ObjectID, searchTerm string) ([]Tenant, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, tenant *Tenant) error
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type TenantRepositoryImpl struct {
	collection *mongo.Collection
}

func NewTenantRepository(mongodb *database.MongodbDB) TenantRepository {
	return &TenantRepositoryImpl{
		collection: mongodb.DB.Collection("tenants"),
	}
}

// buildSearchFilter matches the term case-insensitively across every
// human-readable tenant field. The term is a literal substring, not a
// regex pattern.
func buildSearchFilter(templeID primitive.ObjectID, searchTerm string) bson.M {
	filter := bson.M{"temple_id": templeID}

	if searchTerm != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(searchTerm), Options: "i"}
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": regex}},
			{"contact_info": bson.M{"$regex": regex}},
			{"email": bson.M{"$regex": regex}},
			{"address": bson.M{"$regex": regex}},
			{"status": bson.M{"$regex": regex}},
		}
	}
	return filter
}

func (r *TenantRepositoryImpl) Create(ctx context.Context, tenant *Tenant) error {
	_, err := r.collection.InsertOne(ctx, tenant)
	return err
}

func (r *TenantRepositoryImpl) FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Tenant, error) {
	var tenant Tenant
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "temple_id": templeID}).Decode(&tenant)
	if err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *TenantRepositoryImpl) Search(ctx context.Context, templeID primitive.ObjectID, searchTerm string) ([]Tenant, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, buildSearchFilter(templeID, searchTerm), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tenants := []Tenant{}
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

func (r *TenantRepositoryImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, tenant *Tenant) error {
	update := bson.M{
		"$set": bson.M{
			"name":         tenant.Name,
			"contact_info": tenant.ContactInfo,
			"email":        tenant.Email,
			"address":      tenant.Address,
			"pin_code":     tenant.PinCode,
			"status":       tenant.Status,
			"updated_at":   tenant.UpdatedAt,
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

func (r *TenantRepositoryImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "temple_id": templeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
