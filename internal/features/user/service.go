package user

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/auth"
	"go-temple/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService interface {
	Signin(ctx context.Context, req SigninRequest) (*View, string, error)
	Create(ctx context.Context, templeID primitive.ObjectID, req CreateUserRequest) (*View, error)
	GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]View, error)
	Edit(ctx context.Context, callerID, callerTempleID string, superAdmin bool, id primitive.ObjectID, req EditUserRequest) (*View, error)
	Delete(ctx context.Context, callerTempleID string, id primitive.ObjectID) error
}

type UserServiceImpl struct {
	Repo        UserRepository
	RoleService role.RoleService
	Issuer      *auth.TokenIssuer
}

func NewUserService(repo UserRepository, roleService role.RoleService, issuer *auth.TokenIssuer) UserService {
	return &UserServiceImpl{
		Repo:        repo,
		RoleService: roleService,
		Issuer:      issuer,
	}
}

// Signin authenticates a user and bakes the flattened role actions into
// the session token. Role or permission edits after this point are not
// visible until the next signin.
func (s *UserServiceImpl) Signin(ctx context.Context, req SigninRequest) (*View, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperr.Validation("All fields are required.")
	}

	user, err := s.Repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", apperr.NotFound("User not found.")
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, "", apperr.Validation("Invalid Password.")
	}

	roles, err := s.RoleService.Populate(ctx, user.RoleIDs)
	if err != nil {
		return nil, "", err
	}

	token, err := s.Issuer.Issue(user.ID, user.TempleID, false, role.FlattenActions(roles))
	if err != nil {
		return nil, "", err
	}
	return s.view(user, roles), token, nil
}

func (s *UserServiceImpl) Create(ctx context.Context, templeID primitive.ObjectID, req CreateUserRequest) (*View, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("All fields are required.")
	}
	if req.Roles == nil {
		return nil, apperr.Validation("Invalid roles.")
	}

	roleIDs, err := parseObjectIDs(req.Roles)
	if err != nil {
		return nil, apperr.Validation("Invalid role ID.")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &User{
		ID:             primitive.NewObjectID(),
		TempleID:       templeID,
		Username:       req.Username,
		Email:          req.Email,
		Password:       hash,
		PhoneNumber:    req.PhoneNumber,
		ProfilePicture: DefaultProfilePicture,
		RoleIDs:        roleIDs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	roles, err := s.RoleService.Populate(ctx, user.RoleIDs)
	if err != nil {
		return nil, err
	}
	return s.view(user, roles), nil
}

func (s *UserServiceImpl) GetByTemple(ctx context.Context, templeID primitive.ObjectID) ([]View, error) {
	users, err := s.Repo.FindByTemple(ctx, templeID)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(users))
	for i := range users {
		roles, err := s.RoleService.Populate(ctx, users[i].RoleIDs)
		if err != nil {
			return nil, err
		}
		views = append(views, *s.view(&users[i], roles))
	}
	return views, nil
}

// Edit lets a user update its own record; a super admin may update any
// user of its own temple. The target's temple is checked against the
// caller's claims, admin included.
func (s *UserServiceImpl) Edit(ctx context.Context, callerID, callerTempleID string, superAdmin bool, id primitive.ObjectID, req EditUserRequest) (*View, error) {
	if !superAdmin && callerID != id.Hex() {
		return nil, apperr.AuthRequired("Permission not granted to update this user.")
	}

	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}
	if user.TempleID.Hex() != callerTempleID {
		return nil, apperr.Forbidden("Access denied: Wrong temple.")
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.ProfilePicture != "" {
		user.ProfilePicture = req.ProfilePicture
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			return nil, apperr.Validation("Password must be at least 6 characters.")
		}
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if req.Roles != nil {
		roleIDs, err := parseObjectIDs(req.Roles)
		if err != nil {
			return nil, apperr.Validation("Invalid role ID.")
		}
		user.RoleIDs = roleIDs
	}
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, id, user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found.")
		}
		return nil, err
	}

	roles, err := s.RoleService.Populate(ctx, user.RoleIDs)
	if err != nil {
		return nil, err
	}
	return s.view(user, roles), nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, callerTempleID string, id primitive.ObjectID) error {
	user, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("User not found.")
		}
		return err
	}
	if user.TempleID.Hex() != callerTempleID {
		return apperr.Forbidden("Access denied: Wrong temple.")
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return apperr.NotFound("User not found.")
		}
		return err
	}
	return nil
}

func (s *UserServiceImpl) view(u *User, roles []role.View) *View {
	return &View{
		ID:             u.ID,
		TempleID:       u.TempleID,
		Username:       u.Username,
		Email:          u.Email,
		PhoneNumber:    u.PhoneNumber,
		ProfilePicture: u.ProfilePicture,
		Roles:          roles,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
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
