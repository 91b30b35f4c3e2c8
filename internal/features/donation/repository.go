package donation

import (
	"context"
	"regexp"
	"time"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DonationRepository interface {
	Create(ctx context.Context, donation *Donation) error
	FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Donation, error)
	List(ctx context.Context, templeID primitive.ObjectID, query ListQuery) ([]Donation, error)
	Count(ctx context.Context, templeID primitive.ObjectID) (int64, error)
	CountSince(ctx context.Context, templeID primitive.ObjectID, since time.Time) (int64, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Donation, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, donation *Donation) error
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type DonationRepositoryImpl struct {
	collection *mongo.Collection
}

func NewDonationRepository(mongodb *database.MongodbDB) DonationRepository {
	return &DonationRepositoryImpl{
		collection: mongodb.DB.Collection("donations"),
	}
}

// buildListFilter translates the list query into a Mongo filter. The search
// term matches donor, seva and village case-insensitively as a literal
// substring; quoting keeps user input out of the server regex engine.
func buildListFilter(templeID primitive.ObjectID, query ListQuery) bson.M {
	filter := bson.M{"temple_id": templeID}

	if query.PaymentMethod != "" {
		filter["payment_method"] = query.PaymentMethod
	}
	if query.Tehsil != "" {
		filter["tehsil"] = query.Tehsil
	}
	if query.SearchTerm != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(query.SearchTerm), Options: "i"}
		filter["$or"] = []bson.M{
			{"donor_name": bson.M{"$regex": regex}},
			{"seva_name": bson.M{"$regex": regex}},
			{"village": bson.M{"$regex": regex}},
		}
	}
	return filter
}

func (r *DonationRepositoryImpl) Create(ctx context.Context, donation *Donation) error {
	_, err := r.collection.InsertOne(ctx, donation)
	return err
}

func (r *DonationRepositoryImpl) FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Donation, error) {
	var donation Donation
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "temple_id": templeID}).Decode(&donation)
	if err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *DonationRepositoryImpl) List(ctx context.Context, templeID primitive.ObjectID, query ListQuery) ([]Donation, error) {
	sortOrder := -1
	if query.SortAsc {
		sortOrder = 1
	}

	findOptions := options.Find()
	findOptions.SetSkip(query.StartIndex)
	findOptions.SetSort(bson.D{{Key: "updated_at", Value: sortOrder}})

	cursor, err := r.collection.Find(ctx, buildListFilter(templeID, query), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	donations := []Donation{}
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationRepositoryImpl) Count(ctx context.Context, templeID primitive.ObjectID) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"temple_id": templeID})
}

func (r *DonationRepositoryImpl) CountSince(ctx context.Context, templeID primitive.ObjectID, since time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"temple_id":  templeID,
		"created_at": bson.M{"$gte": since},
	})
}

func (r *DonationRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Donation, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"temple_id": templeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var donations []Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *DonationRepositoryImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, donation *Donation) error {
	update := bson.M{
		"$set": bson.M{
			"donor_name":      donation.DonorName,
			"seva_name":       donation.SevaName,
			"country":         donation.Country,
			"state":           donation.State,
			"district":        donation.District,
			"tehsil":          donation.Tehsil,
			"village":         donation.Village,
			"contact_info":    donation.ContactInfo,
			"payment_method":  donation.PaymentMethod,
			"donation_amount": donation.DonationAmount,
			"updated_at":      donation.UpdatedAt,
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

func (r *DonationRepositoryImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "temple_id": templeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
