package asset

import (
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RentDetails is attached to an asset currently leased out.
type RentDetails struct {
	TenantID       *primitive.ObjectID `json:"tenantId,omitempty" bson:"tenant_id,omitempty"`
	RentAmount     float64             `json:"rentAmount,omitempty" bson:"rent_amount,omitempty"`
	LeaseStartDate *time.Time          `json:"leaseStartDate,omitempty" bson:"lease_start_date,omitempty"`
	LeaseEndDate   *time.Time          `json:"leaseEndDate,omitempty" bson:"lease_end_date,omitempty"`
	PaymentStatus  string              `json:"paymentStatus,omitempty" bson:"payment_status,omitempty"`
}

// Asset is a temple property or valuable.
type Asset struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID        primitive.ObjectID `json:"templeId" bson:"temple_id"`
	AssetType       string             `json:"assetType" bson:"asset_type"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	AcquisitionDate *time.Time         `json:"acquisitionDate,omitempty" bson:"acquisition_date,omitempty"`
	AcquisitionCost string             `json:"acquisitionCost,omitempty" bson:"acquisition_cost,omitempty"`
	CurrentValue    string             `json:"currentValue,omitempty" bson:"current_value,omitempty"`
	Address         string             `json:"address" bson:"address"`
	Pincode         int                `json:"pincode" bson:"pincode"`
	Status          string             `json:"status" bson:"status"`
	RentDetails     *RentDetails       `json:"rentDetails,omitempty" bson:"rent_details,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updated_at"`
}

// AssetTypes is the fixed asset type vocabulary.
var AssetTypes = []string{
	"Land", "Building", "Shop", "Rental Property",
	"Vehicle", "Jewelry", "Furniture", "Equipment",
}

var Statuses = []string{"Active", "Under Maintenance", "Inactive"}

var PaymentStatuses = []string{"Paid", "Pending", "Overdue"}

const (
	DefaultStatus        = "Active"
	DefaultPaymentStatus = "Pending"
)

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

type RentDetailsRequest struct {
	Tenant         string     `json:"tenant,omitempty"`
	RentAmount     float64    `json:"rentAmount,omitempty"`
	LeaseStartDate *time.Time `json:"leaseStartDate,omitempty"`
	LeaseEndDate   *time.Time `json:"leaseEndDate,omitempty"`
	PaymentStatus  string     `json:"paymentStatus,omitempty"`
}

type CreateAssetRequest struct {
	AssetType       string              `json:"assetType"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	AcquisitionDate *time.Time          `json:"acquisitionDate,omitempty"`
	AcquisitionCost string              `json:"acquisitionCost,omitempty"`
	CurrentValue    string              `json:"currentValue,omitempty"`
	Address         string              `json:"address"`
	Pincode         int                 `json:"pincode"`
	Status          string              `json:"status,omitempty"`
	RentDetails     *RentDetailsRequest `json:"rentDetails,omitempty"`
}

func (r CreateAssetRequest) Validate() error {
	if !contains(AssetTypes, r.AssetType) {
		return apperr.Validation("Asset Type is required")
	}
	if r.Name == "" {
		return apperr.Validation("Name is required")
	}
	if r.Address == "" {
		return apperr.Validation("Address is required")
	}
	if r.Pincode == 0 {
		return apperr.Validation("Pin Code is required")
	}
	if r.Status != "" && !contains(Statuses, r.Status) {
		return apperr.Validation("Invalid status.")
	}
	if r.RentDetails != nil && r.RentDetails.PaymentStatus != "" &&
		!contains(PaymentStatuses, r.RentDetails.PaymentStatus) {
		return apperr.Validation("Invalid payment status.")
	}
	return nil
}

type UpdateAssetRequest struct {
	AssetType       string              `json:"assetType,omitempty"`
	Name            string              `json:"name,omitempty"`
	Description     string              `json:"description,omitempty"`
	AcquisitionDate *time.Time          `json:"acquisitionDate,omitempty"`
	AcquisitionCost string              `json:"acquisitionCost,omitempty"`
	CurrentValue    string              `json:"currentValue,omitempty"`
	Address         string              `json:"address,omitempty"`
	Pincode         int                 `json:"pincode,omitempty"`
	Status          string              `json:"status,omitempty"`
	RentDetails     *RentDetailsRequest `json:"rentDetails,omitempty"`
}
