package event

import (
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a temple happening (festival, function, gathering).
type Event struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID  primitive.ObjectID `json:"templeId" bson:"temple_id"`
	Name      string             `json:"name" bson:"name"`
	Date      time.Time          `json:"date" bson:"date"`
	Location  string             `json:"location" bson:"location"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

var Statuses = []string{"pending", "completed"}

const DefaultStatus = "pending"

func validStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

type CreateEventRequest struct {
	Name     string    `json:"name"`
	Date     time.Time `json:"date,omitempty"`
	Location string    `json:"location"`
	Status   string    `json:"status,omitempty"`
}

func (r CreateEventRequest) Validate() error {
	if r.Name == "" {
		return apperr.Validation("Name is required")
	}
	if r.Location == "" {
		return apperr.Validation("Location is required")
	}
	if r.Status != "" && !validStatus(r.Status) {
		return apperr.Validation("Invalid status.")
	}
	return nil
}

type UpdateEventRequest struct {
	Name     string     `json:"name,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Location string     `json:"location,omitempty"`
	Status   string     `json:"status,omitempty"`
}
