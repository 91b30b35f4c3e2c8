package permission

import (
	"time"

	"go-temple/internal/common/apperr"
	common_models "go-temple/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Permission grants a subset of the CRUD action vocabulary under a fixed,
// enumerated name. Scoped to one temple.
type Permission struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TempleID       primitive.ObjectID `json:"templeId" bson:"temple_id"`
	PermissionName string             `json:"permissionName" bson:"permission_name"`
	Actions        []string           `json:"actions" bson:"actions"`
	CreatedAt      time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updatedAt" bson:"updated_at"`
}

// ValidPermissionNames is the closed vocabulary of permission names.
var ValidPermissionNames = []string{
	"donation-creator",
	"donation-viewer",
	"donation-editor",
	"donation-deleter",
	"donation-contributor",
	"donation-manager",
	"donation-supervisor",
}

// Validate checks the name and actions against the fixed vocabularies.
func Validate(name string, actions []string) error {
	valid := false
	for _, n := range ValidPermissionNames {
		if n == name {
			valid = true
			break
		}
	}
	if !valid {
		return apperr.Validation("Invalid permission name.")
	}

	if actions == nil {
		return apperr.Validation("Invalid actions.")
	}
	for _, a := range actions {
		if !common_models.IsValidAction(a) {
			return apperr.Validation("Invalid actions.")
		}
	}
	return nil
}

type CreatePermissionRequest struct {
	PermissionName string   `json:"permissionName"`
	Actions        []string `json:"actions"`
}

type UpdatePermissionRequest struct {
	PermissionName string   `json:"permissionName,omitempty"`
	Actions        []string `json:"actions,omitempty"`
}
