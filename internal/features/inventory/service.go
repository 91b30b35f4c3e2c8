package inventory

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type InventoryService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateItemRequest) (*Item, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Item, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateItemRequest) (*Item, error)
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type InventoryServiceImpl struct {
	Repo InventoryRepository
}

func NewInventoryService(repo InventoryRepository) InventoryService {
	return &InventoryServiceImpl{Repo: repo}
}

func (s *InventoryServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateItemRequest) (*Item, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	item := &Item{
		ID:         primitive.NewObjectID(),
		TempleID:   templeID,
		Name:       req.Name,
		Category:   req.Category,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		UnitPrice:  req.UnitPrice,
		TotalPrice: req.Quantity * req.UnitPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Item, error) {
	return s.Repo.FindByTemple(ctx, templeID)
}

func (s *InventoryServiceImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateItemRequest) (*Item, error) {
	item, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Inventory item not found.")
		}
		return nil, err
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.UnitPrice > 0 {
		item.UnitPrice = req.UnitPrice
	}
	// The derived total tracks whichever factor changed.
	item.TotalPrice = item.Quantity * item.UnitPrice
	item.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, templeID, id, item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Inventory item not found.")
		}
		return nil, err
	}
	return item, nil
}

func (s *InventoryServiceImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, templeID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Inventory item not found.")
		}
		return err
	}
	return nil
}
