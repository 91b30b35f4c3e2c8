package permission

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PermissionService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreatePermissionRequest) (*Permission, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Permission, error)
	Update(ctx context.Context, id, templeID primitive.ObjectID, req UpdatePermissionRequest) (*Permission, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PermissionServiceImpl struct {
	Repo PermissionRepository
}

func NewPermissionService(repo PermissionRepository) PermissionService {
	return &PermissionServiceImpl{Repo: repo}
}

func (s *PermissionServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreatePermissionRequest) (*Permission, error) {
	if err := Validate(req.PermissionName, req.Actions); err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Permission{
		ID:             primitive.NewObjectID(),
		TempleID:       templeID,
		PermissionName: req.PermissionName,
		Actions:        req.Actions,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PermissionServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Permission, error) {
	return s.Repo.FindByTemple(ctx, templeID)
}

func (s *PermissionServiceImpl) Update(ctx context.Context, id, templeID primitive.ObjectID, req UpdatePermissionRequest) (*Permission, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Permission not found.")
		}
		return nil, err
	}

	if req.PermissionName != "" {
		existing.PermissionName = req.PermissionName
	}
	if req.Actions != nil {
		existing.Actions = req.Actions
	}
	if err := Validate(existing.PermissionName, existing.Actions); err != nil {
		return nil, err
	}

	existing.TempleID = templeID
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, id, existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Permission not found.")
		}
		return nil, err
	}
	return existing, nil
}

func (s *PermissionServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	// Users/roles still referencing the permission keep a dangling ref;
	// flattening skips refs that no longer resolve.
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Permission not found.")
		}
		return err
	}
	return nil
}
