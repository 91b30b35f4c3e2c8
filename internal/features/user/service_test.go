package user

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go-temple/internal/common/apperr"
	"go-temple/internal/features/auth"
	"go-temple/internal/features/permission"
	"go-temple/internal/features/role"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeUserRepo struct {
	users []User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *User) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByTemple(ctx context.Context, templeID primitive.ObjectID) ([]User, error) {
	var out []User
	for i := range f.users {
		if f.users[i].TempleID == templeID {
			out = append(out, f.users[i])
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, user *User) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users[i] = *user
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeRoleService struct {
	role.RoleService
	views map[primitive.ObjectID]role.View
}

func (f *fakeRoleService) Populate(ctx context.Context, ids []primitive.ObjectID) ([]role.View, error) {
	out := []role.View{}
	for _, id := range ids {
		if v, ok := f.views[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func roleView(actions ...string) role.View {
	return role.View{
		ID:   primitive.NewObjectID(),
		Name: "staff",
		Permissions: []permission.Permission{
			{PermissionName: "donation-creator", Actions: actions},
		},
	}
}

func newUserService(views ...role.View) (*UserServiceImpl, *fakeUserRepo) {
	byID := make(map[primitive.ObjectID]role.View)
	for _, v := range views {
		byID[v.ID] = v
	}
	repo := &fakeUserRepo{}
	return &UserServiceImpl{
		Repo:        repo,
		RoleService: &fakeRoleService{views: byID},
		Issuer:      auth.NewTokenIssuerWith("test-secret", time.Hour),
	}, repo
}

func seedUser(t *testing.T, repo *fakeUserRepo, templeID primitive.ObjectID, email, password string, roleIDs ...primitive.ObjectID) User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	u := User{
		ID:       primitive.NewObjectID(),
		TempleID: templeID,
		Username: "u",
		Email:    email,
		Password: hash,
		RoleIDs:  roleIDs,
	}
	repo.users = append(repo.users, u)
	return u
}

func TestSigninBakesFlattenedActions(t *testing.T) {
	rv := roleView("create", "read")
	svc, repo := newUserService(rv)

	templeID := primitive.NewObjectID()
	seedUser(t, repo, templeID, "u@x.com", "secret1", rv.ID)

	view, token, err := svc.Signin(context.Background(), SigninRequest{Email: "u@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Signin failed: %v", err)
	}
	if len(view.Roles) != 1 {
		t.Fatalf("len(Roles) = %d, want 1", len(view.Roles))
	}

	claims, err := svc.Issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.SuperAdmin {
		t.Error("claims.SuperAdmin = true, want false")
	}
	if claims.TempleID != templeID.Hex() {
		t.Errorf("claims.TempleID = %q, want %q", claims.TempleID, templeID.Hex())
	}
	if want := []string{"create", "read"}; !reflect.DeepEqual(claims.Actions, want) {
		t.Errorf("claims.Actions = %v, want %v", claims.Actions, want)
	}
}

func TestSigninDistinguishesUserFailures(t *testing.T) {
	svc, repo := newUserService()
	seedUser(t, repo, primitive.NewObjectID(), "u@x.com", "secret1")

	tests := []struct {
		name     string
		req      SigninRequest
		wantKind error
	}{
		{name: "unknown email", req: SigninRequest{Email: "nobody@x.com", Password: "secret1"}, wantKind: apperr.ErrNotFound},
		{name: "wrong password", req: SigninRequest{Email: "u@x.com", Password: "wrong"}, wantKind: apperr.ErrValidation},
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
}

func TestEditAuthorization(t *testing.T) {
	svc, repo := newUserService()
	templeID := primitive.NewObjectID()
	foreignTempleID := primitive.NewObjectID()
	subject := seedUser(t, repo, templeID, "u@x.com", "secret1")

	tests := []struct {
		name         string
		callerID     string
		callerTemple string
		superAdmin   bool
		wantErr      error
	}{
		{name: "self edit", callerID: subject.ID.Hex(), callerTemple: templeID.Hex(), superAdmin: false, wantErr: nil},
		{name: "admin edit same temple", callerID: primitive.NewObjectID().Hex(), callerTemple: templeID.Hex(), superAdmin: true, wantErr: nil},
		{name: "other user denied", callerID: primitive.NewObjectID().Hex(), callerTemple: templeID.Hex(), superAdmin: false, wantErr: apperr.ErrAuthRequired},
		{name: "foreign temple admin denied", callerID: primitive.NewObjectID().Hex(), callerTemple: foreignTempleID.Hex(), superAdmin: true, wantErr: apperr.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view, err := svc.Edit(context.Background(), tt.callerID, tt.callerTemple, tt.superAdmin, subject.ID, EditUserRequest{Username: "renamed"})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && view.Username != "renamed" {
				t.Errorf("Username = %q, want %q", view.Username, "renamed")
			}
		})
	}

	// The denied edit must not have touched the stored record.
	stored, err := repo.FindByID(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.TempleID != templeID {
		t.Errorf("stored TempleID = %v, want %v", stored.TempleID, templeID)
	}
}

func TestDeleteScopedToTemple(t *testing.T) {
	svc, repo := newUserService()
	templeA := primitive.NewObjectID()
	templeB := primitive.NewObjectID()
	victim := seedUser(t, repo, templeB, "victim@x.com", "secret1")
	own := seedUser(t, repo, templeA, "own@x.com", "secret1")

	// An admin of temple A cannot remove temple B's user.
	err := svc.Delete(context.Background(), templeA.Hex(), victim.ID)
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Fatalf("cross-temple delete err = %v, want ErrForbidden", err)
	}
	if _, err := repo.FindByID(context.Background(), victim.ID); err != nil {
		t.Fatal("foreign-temple user removed by denied delete")
	}

	if err := svc.Delete(context.Background(), templeA.Hex(), own.ID); err != nil {
		t.Fatalf("same-temple delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), own.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Error("same-temple user still present after delete")
	}

	err = svc.Delete(context.Background(), templeA.Hex(), primitive.NewObjectID())
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown user err = %v, want ErrNotFound", err)
	}
}

func TestEditRejectsShortPassword(t *testing.T) {
	svc, repo := newUserService()
	templeID := primitive.NewObjectID()
	subject := seedUser(t, repo, templeID, "u@x.com", "secret1")

	_, err := svc.Edit(context.Background(), subject.ID.Hex(), templeID.Hex(), false, subject.ID, EditUserRequest{Password: "abc"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v, want ErrValidation", err)
	}

	// A valid new password must be stored hashed.
	_, err = svc.Edit(context.Background(), subject.ID.Hex(), templeID.Hex(), false, subject.ID, EditUserRequest{Password: "longenough"})
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	stored, err := repo.FindByID(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Password == "longenough" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(stored.Password, "longenough") {
		t.Error("stored hash does not match new password")
	}
}
