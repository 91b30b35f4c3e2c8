package tenant

import (
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tenant is a party renting a temple property.
type Tenant struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID    primitive.ObjectID `json:"templeId" bson:"temple_id"`
	Name        string             `json:"name" bson:"name"`
	ContactInfo string             `json:"contactInfo" bson:"contact_info"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	Address     string             `json:"address" bson:"address"`
	PinCode     int                `json:"pinCode" bson:"pin_code"`
	Status      string             `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updated_at"`
}

var Statuses = []string{"Active", "Inactive"}

const DefaultStatus = "Active"

func validStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type CreateTenantRequest struct {
	Name        string `json:"name"`
	ContactInfo string `json:"contactInfo"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address"`
	PinCode     int    `json:"pinCode"`
	Status      string `json:"status,omitempty"`
}

func (r CreateTenantRequest) Validate() error {
	switch {
	case r.Name == "":
		return apperr.Validation("Name is required")
	case len(r.ContactInfo) != 10:
		return apperr.Validation("Contact Info must be a 10-digit number")
	case r.Address == "":
		return apperr.Validation("Address is required")
	case r.PinCode == 0:
		return apperr.Validation("Pin Code is required")
	}
	if r.Status != "" && !validStatus(r.Status) {
		return apperr.Validation("Status must be either Active or Inactive")
	}
	return nil
}

type UpdateTenantRequest struct {
	Name        string `json:"name,omitempty"`
	ContactInfo string `json:"contactInfo,omitempty"`
	Email       string `json:"email,omitempty"`
	Address     string `json:"address,omitempty"`
	PinCode     int    `json:"pinCode,omitempty"`
	Status      string `json:"status,omitempty"`
}
