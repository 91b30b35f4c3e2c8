package inventory

import (
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item is one stocked inventory entry of a temple.
type Item struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID   primitive.ObjectID `json:"templeId" bson:"temple_id"`
	Name       string             `json:"name" bson:"name"`
	Category   string             `json:"category" bson:"category"`
	Quantity   float64            `json:"quantity" bson:"quantity"`
	Unit       string             `json:"unit" bson:"unit"`
	UnitPrice  float64            `json:"unitPrice" bson:"unit_price"`
	TotalPrice float64            `json:"totalPrice" bson:"total_price"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}

type CreateItemRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unitPrice"`
}

func (r CreateItemRequest) Validate() error {
	switch {
	case r.Name == "":
		return apperr.Validation("Name is required")
	case r.Category == "":
		return apperr.Validation("Category is required")
	case r.Quantity <= 0:
		return apperr.Validation("Quantity is required")
	case r.Unit == "":
		return apperr.Validation("Unit is required")
	case r.UnitPrice <= 0:
		return apperr.Validation("Unit Price is required")
	}
	return nil
}

type UpdateItemRequest struct {
	Name      string  `json:"name,omitempty"`
	Category  string  `json:"category,omitempty"`
	Quantity  float64 `json:"quantity,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
}
