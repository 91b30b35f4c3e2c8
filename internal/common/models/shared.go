package models

import (
	"time"
)

const (
	// ClaimsKey is the fiber.Ctx Locals key under which the auth middleware
	// stores the verified token claims.
	ClaimsKey = "claims"
)

// Action is the fixed CRUD action vocabulary used by permissions and tokens.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ValidActions lists every action a permission may grant.
var ValidActions = []Action{ActionCreate, ActionRead, ActionUpdate, ActionDelete}

// IsValidAction reports whether s is part of the action vocabulary.
func IsValidAction(s string) bool {
	for _, a := range ValidActions {
		if string(a) == s {
			return true
		}
	}
	return false
}

// Log is the document shape the async zap sink writes to the "logs" collection.
type Log struct {
	Message      string    `bson:"message"`
	Caller       string    `bson:"caller"`
	LogLevelId   int       `bson:"log_level_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc"`
}
