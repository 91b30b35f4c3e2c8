package asset

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AssetService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateAssetRequest) (*Asset, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Asset, error)
	Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateAssetRequest) (*Asset, error)
	Delete(ctx context.Context, templeID, id primitive.ObjectID) error
}

type AssetServiceImpl struct {
	Repo AssetRepository
}

func NewAssetService(repo AssetRepository) AssetService {
	return &AssetServiceImpl{Repo: repo}
}

func buildRentDetails(req *RentDetailsRequest) (*RentDetails, error) {
	if req == nil {
		return nil, nil
	}

	details := &RentDetails{
		RentAmount:     req.RentAmount,
		LeaseStartDate: req.LeaseStartDate,
		LeaseEndDate:   req.LeaseEndDate,
		PaymentStatus:  req.PaymentStatus,
	}
	if details.PaymentStatus == "" {
		details.PaymentStatus = DefaultPaymentStatus
	}
	if req.Tenant != "" {
		tenantID, err := primitive.ObjectIDFromHex(req.Tenant)
		if err != nil {
			return nil, apperr.Validation("Invalid tenant ID.")
		}
		details.TenantID = &tenantID
	}
	return details, nil
}

func (s *AssetServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateAssetRequest) (*Asset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = DefaultStatus
	}

	rentDetails, err := buildRentDetails(req.RentDetails)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &Asset{
		ID:              primitive.NewObjectID(),
		TempleID:        templeID,
		AssetType:       req.AssetType,
		Name:            req.Name,
		Description:     req.Description,
		AcquisitionDate: req.AcquisitionDate,
		AcquisitionCost: req.AcquisitionCost,
		CurrentValue:    req.CurrentValue,
		Address:         req.Address,
		Pincode:         req.Pincode,
		Status:          status,
		RentDetails:     rentDetails,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.Repo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *AssetServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]Asset, error) {
	return s.Repo.FindByTemple(ctx, templeID)
}

func (s *AssetServiceImpl) Update(ctx context.Context, templeID, id primitive.ObjectID, req UpdateAssetRequest) (*Asset, error) {
	asset, err := s.Repo.FindOne(ctx, templeID, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Asset not found.")
		}
		return nil, err
	}

	if req.AssetType != "" {
		if !contains(AssetTypes, req.AssetType) {
			return nil, apperr.Validation("Asset Type is required")
		}
		asset.AssetType = req.AssetType
	}
	if req.Name != "" {
		asset.Name = req.Name
	}
	if req.Description != "" {
		asset.Description = req.Description
	}
	if req.AcquisitionDate != nil {
		asset.AcquisitionDate = req.AcquisitionDate
	}
	if req.AcquisitionCost != "" {
		asset.AcquisitionCost = req.AcquisitionCost
	}
	if req.CurrentValue != "" {
		asset.CurrentValue = req.CurrentValue
	}
	if req.Address != "" {
		asset.Address = req.Address
	}
	if req.Pincode != 0 {
		asset.Pincode = req.Pincode
	}
	if req.Status != "" {
		if !contains(Statuses, req.Status) {
			return nil, apperr.Validation("Invalid status.")
		}
		asset.Status = req.Status
	}
	if req.RentDetails != nil {
		if req.RentDetails.PaymentStatus != "" && !contains(PaymentStatuses, req.RentDetails.PaymentStatus) {
			return nil, apperr.Validation("Invalid payment status.")
		}
		rentDetails, err := buildRentDetails(req.RentDetails)
		if err != nil {
			return nil, err
		}
		asset.RentDetails = rentDetails
	}
	asset.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, templeID, id, asset); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Asset not found.")
		}
		return nil, err
	}
	return asset, nil
}

func (s *AssetServiceImpl) Delete(ctx context.Context, templeID, id primitive.ObjectID) error {
	if err := s.Repo.Delete(ctx, templeID, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Asset not found.")
		}
		return err
	}
	return nil
}
