package superadmin

import (
	"context"
	"errors"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/auth"
	"go-temple/internal/features/temple"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type SuperAdminService interface {
	Create(ctx context.Context, req CreateSuperAdminRequest) (*SuperAdmin, string, error)
	Signin(ctx context.Context, req SigninRequest) (*SuperAdmin, string, error)
	Edit(ctx context.Context, callerID string, req EditSuperAdminRequest) (*SuperAdmin, error)
}

type SuperAdminServiceImpl struct {
	Repo       SuperAdminRepository
	TempleRepo temple.TempleRepository
	Issuer     *auth.TokenIssuer
}

func NewSuperAdminService(repo SuperAdminRepository, templeRepo temple.TempleRepository, issuer *auth.TokenIssuer) SuperAdminService {
	return &SuperAdminServiceImpl{
		Repo:       repo,
		TempleRepo: templeRepo,
		Issuer:     issuer,
	}
}

// Create registers the one super admin a temple is allowed. The existence
// check runs before any write, so a conflict leaves the first record
// untouched.
func (s *SuperAdminServiceImpl) Create(ctx context.Context, req CreateSuperAdminRequest) (*SuperAdmin, string, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, "", apperr.Validation("All fields are required.")
	}

	templeID, err := primitive.ObjectIDFromHex(req.TempleID)
	if err != nil {
		return nil, "", apperr.Validation("Invalid temple ID")
	}

	if _, err := s.TempleRepo.FindByID(ctx, templeID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", apperr.NotFound("Temple not found")
		}
		return nil, "", err
	}

	if _, err := s.Repo.FindByTemple(ctx, templeID); err == nil {
		return nil, "", apperr.Conflict("A super admin already exists for this temple")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	admin := &SuperAdmin{
		ID:             primitive.NewObjectID(),
		TempleID:       templeID,
		Username:       req.Username,
		Email:          req.Email,
		Password:       hash,
		PhoneNumber:    req.PhoneNumber,
		IsAdmin:        true,
		ProfilePicture: DefaultProfilePicture,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.Repo.Create(ctx, admin); err != nil {
		return nil, "", err
	}

	token, err := s.Issuer.Issue(admin.ID, admin.TempleID, true, nil)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// Signin authenticates the admin principal. Unknown email and wrong
// password fail with distinguishable responses, matching the original API.
func (s *SuperAdminServiceImpl) Signin(ctx context.Context, req SigninRequest) (*SuperAdmin, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", apperr.Validation("All fields are required.")
	}

	admin, err := s.Repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", apperr.NotFound("User not found.")
		}
		return nil, "", err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, "", apperr.Validation("Invalid Password.")
	}

	token, err := s.Issuer.Issue(admin.ID, admin.TempleID, true, nil)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}

// Edit is self-service: the caller may only edit its own record.
func (s *SuperAdminServiceImpl) Edit(ctx context.Context, callerID string, req EditSuperAdminRequest) (*SuperAdmin, error) {
	if req.ID == "" || req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, apperr.Validation("Cannot update super Admin with empty fields.")
	}
	if req.ID != callerID {
		return nil, apperr.AuthRequired("Permission not granted to update this super admin.")
	}

	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return nil, apperr.Validation("Invalid super admin ID.")
	}

	admin, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("SuperAdmin not found.")
		}
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin.Username = req.Username
	admin.Email = req.Email
	admin.Password = hash
	admin.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, id, admin); err != nil {
		return nil, err
	}
	return admin, nil
}
