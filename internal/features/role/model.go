package role

import (
	"sort"
	"time"

	"go-temple/internal/features/permission"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the stored document: a named bundle of permission references
// scoped to one temple.
type Role struct {
	ID            primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	TempleID      primitive.ObjectID   `json:"templeId" bson:"temple_id"`
	Name          string               `json:"name" bson:"name"`
	PermissionIDs []primitive.ObjectID `json:"permissionIds" bson:"permissions"`
	CreatedAt     time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt     time.Time            `json:"updatedAt" bson:"updated_at"`
}

// View is a role with its permissions resolved, the shape clients receive
// and the input to action flattening. Dangling permission refs are dropped
// during population.
type View struct {
	ID          primitive.ObjectID      `json:"id"`
	TempleID    primitive.ObjectID      `json:"templeId"`
	Name        string                  `json:"name"`
	Permissions []permission.Permission `json:"permissions"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// FlattenActions computes the set union of actions across every permission
// of every role. Duplicates collapse; a role without permissions contributes
// nothing. The result is sorted so tokens are deterministic.
func FlattenActions(roles []View) []string {
	seen := make(map[string]bool)
	for _, r := range roles {
		for _, p := range r.Permissions {
			for _, a := range p.Actions {
				seen[a] = true
			}
		}
	}

	actions := make([]string, 0, len(seen))
	for a := range seen {
		actions = append(actions, a)
	}
	sort.Strings(actions)
	return actions
}

type CreateRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type UpdateRoleRequest struct {
	Name        string   `json:"name,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}
