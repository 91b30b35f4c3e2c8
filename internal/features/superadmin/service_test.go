package superadmin

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/auth"
	"go-temple/internal/features/temple"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeAdminRepo struct {
	admins []SuperAdmin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *SuperAdmin) error {
	f.admins = append(f.admins, *admin)
	return nil
}

func (f *fakeAdminRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*SuperAdmin, error) {
	for i := range f.admins {
		if f.admins[i].ID == id {
			return &f.admins[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*SuperAdmin, error) {
	for i := range f.admins {
		if f.admins[i].Email == email {
			return &f.admins[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAdminRepo) FindByTemple(ctx context.Context, templeID primitive.ObjectID) (*SuperAdmin, error) {
	for i := range f.admins {
		if f.admins[i].TempleID == templeID {
			return &f.admins[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeAdminRepo) Update(ctx context.Context, id primitive.ObjectID, admin *SuperAdmin) error {
	for i := range f.admins {
		if f.admins[i].ID == id {
			f.admins[i] = *admin
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeTempleRepo struct {
	temple.TempleRepository
	temples []temple.Temple
}

func (f *fakeTempleRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*temple.Temple, error) {
	for i := range f.temples {
		if f.temples[i].ID == id {
			return &f.temples[i], nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func newService(t1 temple.Temple) (*SuperAdminServiceImpl, *fakeAdminRepo) {
	repo := &fakeAdminRepo{}
	return &SuperAdminServiceImpl{
		Repo:       repo,
		TempleRepo: &fakeTempleRepo{temples: []temple.Temple{t1}},
		Issuer:     auth.NewTokenIssuerWith("test-secret", time.Hour),
	}, repo
}

func TestCreateSuperAdmin(t *testing.T) {
	t1 := temple.Temple{ID: primitive.NewObjectID(), Name: "Shree Ram Mandir"}
	svc, repo := newService(t1)

	admin, token, err := svc.Create(context.Background(), CreateSuperAdminRequest{
		TempleID: t1.ID.Hex(),
		Username: "a",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !admin.IsAdmin {
		t.Error("IsAdmin = false, want true")
	}
	if admin.Password == "secret1" {
		t.Error("password stored in plaintext")
	}
	if token == "" {
		t.Error("no token issued")
	}

	claims, err := svc.Issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if !claims.SuperAdmin {
		t.Error("claims.SuperAdmin = false, want true")
	}
	if len(claims.Actions) != 0 {
		t.Errorf("admin token carries actions %v, want none", claims.Actions)
	}

	// A second admin for the same temple must conflict and leave the
	// first record untouched.
	first := repo.admins[0]
	_, _, err = svc.Create(context.Background(), CreateSuperAdminRequest{
		TempleID: t1.ID.Hex(),
		Username: "b",
		Email:    "b@x.com",
		Password: "secret2",
	})
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("second create err = %v, want ErrConflict", err)
	}
	if len(repo.admins) != 1 {
		t.Fatalf("len(admins) = %d, want 1", len(repo.admins))
	}
	if repo.admins[0] != first {
		t.Error("first super admin record changed on conflicting create")
	}
}

func TestCreateSuperAdminMissingTemple(t *testing.T) {
	svc, _ := newService(temple.Temple{ID: primitive.NewObjectID()})

	_, _, err := svc.Create(context.Background(), CreateSuperAdminRequest{
		TempleID: primitive.NewObjectID().Hex(),
		Username: "a",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSigninDistinguishesFailures(t *testing.T) {
	t1 := temple.Temple{ID: primitive.NewObjectID()}
	svc, _ := newService(t1)

	_, _, err := svc.Create(context.Background(), CreateSuperAdminRequest{
		TempleID: t1.ID.Hex(),
		Username: "a",
		Email:    "a@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name     string
		req      SigninRequest
		wantKind error
	}{
		{name: "unknown email", req: SigninRequest{Email: "nobody@x.com", Password: "secret1"}, wantKind: apperr.ErrNotFound},
		{name: "wrong password", req: SigninRequest{Email: "a@x.com", Password: "wrong"}, wantKind: apperr.ErrValidation},
		{name: "missing fields", req: SigninRequest{}, wantKind: apperr.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Signin(context.Background(), tt.req)
			if !errors.Is(err, tt.wantKind) {
				t.Errorf("err = %v, want %v", err, tt.wantKind)
			}
		})
	}

	admin, token, err := svc.Signin(context.Background(), SigninRequest{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("valid signin failed: %v", err)
	}
	if admin.Email != "a@x.com" || token == "" {
		t.Error("valid signin returned wrong principal or empty token")
	}
}
