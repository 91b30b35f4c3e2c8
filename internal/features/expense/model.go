package expense

import (
	"time"

	"go-temple/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Expense is a temple outgoing, optionally tied to an event.
type Expense struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	TempleID    primitive.ObjectID  `json:"templeId" bson:"temple_id"`
	Title       string              `json:"title" bson:"title"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	Amount      float64             `json:"amount" bson:"amount"`
	Date        time.Time           `json:"date" bson:"date"`
	Category    string              `json:"category" bson:"category"`
	Status      string              `json:"status" bson:"status"`
	EventID     *primitive.ObjectID `json:"eventId,omitempty" bson:"event_id,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updated_at"`
}

// Categories is the fixed expense category vocabulary.
var Categories = []string{
	"Rituals & Poojas",
	"Festivals & Events",
	"Maintenance & Repairs",
	"Utilities",
	"Staff Salaries",
	"Charity & Donations",
	"Food & Prasadam",
	"Decorations & Flowers",
	"Security",
	"Miscellaneous",
}

// Statuses is the expense approval lifecycle.
var Statuses = []string{"pending", "approved", "completed", "rejected"}

const DefaultStatus = "pending"

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

type CreateExpenseRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date,omitempty"`
	Category    string    `json:"category"`
	Status      string    `json:"status,omitempty"`
	Event       string    `json:"event,omitempty"`
}

func (r CreateExpenseRequest) Validate() error {
	if r.Title == "" {
		return apperr.Validation("Title is required")
	}
	if r.Amount <= 0 {
		return apperr.Validation("Amount is required")
	}
	if !contains(Categories, r.Category) {
		return apperr.Validation("Category is required")
	}
	if r.Status != "" && !contains(Statuses, r.Status) {
		return apperr.Validation("Invalid status.")
	}
	return nil
}

type UpdateExpenseRequest struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	Amount      float64    `json:"amount,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	Category    string     `json:"category,omitempty"`
	Status      string     `json:"status,omitempty"`
	Event       string     `json:"event,omitempty"`
}
