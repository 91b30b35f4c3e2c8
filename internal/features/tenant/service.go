package tenant

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TenantService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateTenantRequest) (*Tenant, error)
	Search(ctx context.Context, templeID primitive.ObjectID, searchTerm string) ([]Tenant, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateTenantRequest) (*Tenant, error)
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type TenantServiceImpl struct {
	Repo TenantRepository
}

func NewTenantService(repo TenantRepository) TenantService {
	return &TenantServiceImpl{Repo: repo}
}

func (s *TenantServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateTenantRequest) (*Tenant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	now := time.Now()
	tenant := &Tenant{
		ID:          primitive.NewObjectID(),
		TempleID:    templeID,
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Email:       req.Email,
		Address:     req.Address,
		PinCode:     req.PinCode,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *TenantServiceImpl) Search(ctx context.Context, templeID primitive.ObjectID, searchTerm string) ([]Tenant, error) {
	return s.Repo.Search(ctx, templeID, searchTerm)
}

func (s *TenantServiceImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateTenantRequest) (*Tenant, error) {
	tenant, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Tenant not found.")
		}
		return nil, err
	}

	if req.Name != "" {
		tenant.Name = req.Name
	}
	if req.ContactInfo != "" {
		if len(req.ContactInfo) != 10 {
			return nil, apperr.Validation("Contact Info must be a 10-digit number")
		}
		tenant.ContactInfo = req.ContactInfo
	}
	if req.Email != "" {
		tenant.Email = req.Email
	}
	if req.Address != "" {
		tenant.Address = req.Address
	}
	if req.PinCode != 0 {
		tenant.PinCode = req.PinCode
	}
	if req.Status != "" {
		if !validStatus(req.Status) {
			return nil, apperr.Validation("Status must be either Active or Inactive")
		}
		tenant.Status = req.Status
	}
	tenant.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, templeID, id, tenant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Tenant not found.")
		}
		return nil, err
	}
	return tenant, nil
}

func (s *TenantServiceImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	// Assets renting to this tenant keep a dangling ref; the asset view
	// shows it unresolved. No cascade.
	if err := s.Repo.Delete(ctx, templeID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Tenant not found.")
		}
		return err
	}
	return nil
}
