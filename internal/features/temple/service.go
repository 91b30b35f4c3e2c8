package temple

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TempleService interface {
	Create(ctx context.Context, req CreateTempleRequest) (*Temple, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Temple, error)
	List(ctx context.Context) ([]Temple, error)
	Update(ctx context.Context, id primitive.ObjectID, req UpdateTempleRequest) (*Temple, error)
}

type TempleServiceImpl struct {
	Repo TempleRepository
}

func NewTempleService(repo TempleRepository) TempleService {
	return &TempleServiceImpl{Repo: repo}
}

func (s *TempleServiceImpl) Create(ctx context.Context, req CreateTempleRequest) (*Temple, error) {
	if req.Name == "" {
		return nil, apperr.Validation("Temple name is required")
	}
	if req.Location == "" {
		return nil, apperr.Validation("Location is required")
	}

	image := req.Image
	if image == "" {
		image = DefaultImage
	}

	now := time.Now()
	t := &Temple{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		AlternateName: req.AlternateName,
		Location:      req.Location,
		Image:         image,
		Description:   req.Description,
		FoundedYear:   req.FoundedYear,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TempleServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*Temple, error) {
	t, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Temple not found")
		}
		return nil, err
	}
	return t, nil
}

func (s *TempleServiceImpl) List(ctx context.Context) ([]Temple, error) {
	return s.Repo.List(ctx)
}

func (s *TempleServiceImpl) Update(ctx context.Context, id primitive.ObjectID, req UpdateTempleRequest) (*Temple, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.AlternateName != "" {
		existing.AlternateName = req.AlternateName
	}
	if req.Location != "" {
		existing.Location = req.Location
	}
	if req.Image != "" {
		existing.Image = req.Image
	}
	if req.Description != "" {
		existing.Description = req.Description
	}
	if req.FoundedYear != 0 {
		existing.FoundedYear = req.FoundedYear
	}
	if req.HistoryImages != nil {
		existing.HistoryImages = req.HistoryImages
	}
	if req.GodsAndGoddesses != nil {
		existing.GodsAndGoddesses = req.GodsAndGoddesses
	}
	if req.Festivals != nil {
		existing.Festivals = req.Festivals
	}
	if req.Pujaris != nil {
		existing.Pujaris = req.Pujaris
	}
	if req.Management != nil {
		existing.Management = req.Management
	}
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, id, existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Temple not found")
		}
		return nil, err
	}
	return existing, nil
}
