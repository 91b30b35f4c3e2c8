package role

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/permission"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoleService interface {
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateRoleRequest) (*Role, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]View, error)
	Populate(ctx context.Context, ids []primitive.ObjectID) ([]View, error)
	Update(ctx context.Context, id, templeID primitive.ObjectID, req UpdateRoleRequest) (*Role, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type RoleServiceImpl struct {
	Repo           RoleRepository
	PermissionRepo permission.PermissionRepository
}

func NewRoleService(repo RoleRepository, permissionRepo permission.PermissionRepository) RoleService {
	return &RoleServiceImpl{
		Repo:           repo,
		PermissionRepo: permissionRepo,
	}
}

func (s *RoleServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateRoleRequest) (*Role, error) {
	if req.Name == "" {
		return nil, apperr.Validation("Role name is required.")
	}
	if req.Permissions == nil {
		return nil, apperr.Validation("Invalid permissions.")
	}

	permIDs, err := parseObjectIDs(req.Permissions)
	if err != nil {
		return nil, apperr.Validation("Invalid permission ID.")
	}

	now := time.Now()
	role := &Role{
		ID:            primitive.NewObjectID(),
		TempleID:      templeID,
		Name:          req.Name,
		PermissionIDs: permIDs,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *RoleServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]View, error) {
	roles, err := s.Repo.FindByTemple(ctx, templeID)
	if err != nil {
		return nil, err
	}
	return s.populateRoles(ctx, roles)
}

// Populate resolves roles with their permissions, mirroring the nested
// populate the API has always exposed. Unresolvable refs are skipped.
func (s *RoleServiceImpl) Populate(ctx context.Context, ids []primitive.ObjectID) ([]View, error) {
	roles, err := s.Repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.populateRoles(ctx, roles)
}

func (s *RoleServiceImpl) populateRoles(ctx context.Context, roles []Role) ([]View, error) {
	// Collect every permission ref once, then resolve in a single query.
	idSet := make(map[primitive.ObjectID]bool)
	var allIDs []primitive.ObjectID
	for _, r := range roles {
		for _, id := range r.PermissionIDs {
			if !idSet[id] {
				idSet[id] = true
				allIDs = append(allIDs, id)
			}
		}
	}

	perms, err := s.PermissionRepo.FindByIDs(ctx, allIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]permission.Permission, len(perms))
	for _, p := range perms {
		byID[p.ID] = p
	}

	views := make([]View, 0, len(roles))
	for _, r := range roles {
		view := View{
			ID:          r.ID,
			TempleID:    r.TempleID,
			Name:        r.Name,
			Permissions: []permission.Permission{},
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
		for _, id := range r.PermissionIDs {
			if p, ok := byID[id]; ok {
				view.Permissions = append(view.Permissions, p)
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *RoleServiceImpl) Update(ctx context.Context, id, templeID primitive.ObjectID, req UpdateRoleRequest) (*Role, error) {
	existing, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Role not found.")
		}
		return nil, err
	}

	if req.Name != "" {
		existing.Name = req.Name
	}
	if req.Permissions != nil {
		permIDs, err := parseObjectIDs(req.Permissions)
		if err != nil {
			return nil, apperr.Validation("Invalid permission ID.")
		}
		existing.PermissionIDs = permIDs
	}

	existing.TempleID = templeID
	existing.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, id, existing); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Role not found.")
		}
		return nil, err
	}
	return existing, nil
}

func (s *RoleServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	// Users still referencing the role keep a dangling ref; population
	// skips it. No cascade.
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("Role not found.")
		}
		return err
	}
	return nil
}

func parseObjectIDs(hexes []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
