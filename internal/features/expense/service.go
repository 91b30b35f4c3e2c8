package expense

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/activity"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ExpenseService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateExpenseRequest) (*Expense, error)
	Get(ctx context.Context, templeID, id primitive.ObjectID) (*Expense, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Expense, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateExpenseRequest) (*Expense, error)
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type ExpenseServiceImpl struct {
	Repo ExpenseRepository
	Feed *activity.Hub
}

func NewExpenseService(repo ExpenseRepository, feed *activity.Hub) ExpenseService {
	return &ExpenseServiceImpl{
		Repo: repo,
		Feed: feed,
	}
}

func (s *ExpenseServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateExpenseRequest) (*Expense, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = DefaultStatus
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	var eventID *primitive.ObjectID
	if req.Event != "" {
		id, err := primitive.ObjectIDFromHex(req.Event)
		if err != nil {
			return nil, apperr.Validation("Invalid Event ID")
		}
		eventID = &id
	}

	now := time.Now()
	expense := &Expense{
		ID:          primitive.NewObjectID(),
		TempleID:    templeID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Category:    req.Category,
		Status:      status,
		EventID:     eventID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, expense); err != nil {
		return nil, err
	}

	if s.Feed != nil {
		s.Feed.Publish(activity.Event{
			Type:     "expense.created",
			TempleID: templeID.Hex(),
			Payload:  expense,
		})
	}
	return expense, nil
}

func (s *ExpenseServiceImpl) Get(ctx context.Context, templeID, id primitive.ObjectID) (*Expense, error) {
	expense, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Expense not found.")
		}
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Expense, error) {
	return s.Repo.FindByTemple(ctx, templeID)
}

func (s *ExpenseServiceImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateExpenseRequest) (*Expense, error) {
	expense, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Expense not found.")
		}
		return nil, err
	}

	if req.Title != "" {
		expense.Title = req.Title
	}
	if req.Description != "" {
		expense.Description = req.Description
	}
	if req.Amount > 0 {
		expense.Amount = req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != "" {
		if !contains(Categories, req.Category) {
			return nil, apperr.Validation("Category is required")
		}
		expense.Category = req.Category
	}
	if req.Status != "" {
		if !contains(Statuses, req.Status) {
			return nil, apperr.Validation("Invalid status.")
		}
		expense.Status = req.Status
	}
	if req.Event != "" {
		eventID, err := primitive.ObjectIDFromHex(req.Event)
		if err != nil {
			return nil, apperr.Validation("Invalid Event ID")
		}
		expense.EventID = &eventID
	}
	expense.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, templeID, id, expense); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Expense not found.")
		}
		return nil, err
	}
	return expense, nil
}

func (s *ExpenseServiceImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, templeID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Expense not found.")
		}
		return err
	}
	return nil
}
