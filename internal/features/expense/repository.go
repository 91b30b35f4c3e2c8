package expense

import (
	"context"

	"go-temple/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *Expense) error
	FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Expense, error)
	FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Expense, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, expense *Expense) error
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type ExpenseRepositoryImpl struct {
	collection *mongo.Collection
}

func NewExpenseRepository(mongodb *database.MongodbDB) ExpenseRepository {
	return &ExpenseRepositoryImpl{
		collection: mongodb.DB.Collection("expenses"),
	}
}

func (r *ExpenseRepositoryImpl) Create(ctx context.Context, expense *Expense) error {
	_, err := r.collection.InsertOne(ctx, expense)
	return err
}

func (r *ExpenseRepositoryImpl) FindOne(ctx context.Context, templeID, id primitive.ObjectID) (*Expense, error) {
	var expense Expense
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "temple_id": templeID}).Decode(&expense)
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *ExpenseRepositoryImpl) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Expense, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"temple_id": templeID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	expenses := []Expense{}
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (r *ExpenseRepositoryImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, expense *Expense) error {
	update := bson.M{
		"$set": bson.M{
			"title":       expense.Title,
			"description": expense.Description,
			"amount":      expense.Amount,
			"date":        expense.Date,
			"category":    expense.Category,
			"status":      expense.Status,
			"event_id":    expense.EventID,
			"updated_at":  expense.UpdatedAt,
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

func (r *ExpenseRepositoryImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "temple_id": templeID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
