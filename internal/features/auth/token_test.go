package auth

import (
	"errors"
	"testing"
	"time"

	"go-temple/internal/common/apperr"
	common_models "go-temple/internal/common/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	issuer := NewTokenIssuerWith("test-secret", time.Hour)

	id := primitive.NewObjectID()
	actions := []string{"create", "read"}

	token, err := issuer.Issue(id, primitive.NewObjectID(), false, actions)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.ID != id.Hex() {
		t.Errorf("ID = %q, want %q", claims.ID, id.Hex())
	}
	if claims.SuperAdmin {
		t.Error("SuperAdmin = true, want false")
	}
	if len(claims.Actions) != 2 || claims.Actions[0] != "create" || claims.Actions[1] != "read" {
		t.Errorf("Actions = %v, want %v", claims.Actions, actions)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	issuer := NewTokenIssuerWith("test-secret", -time.Minute)

	token, err := issuer.Issue(primitive.NewObjectID(), primitive.NewObjectID(), false, nil)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, apperr.ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyTamperedToken(t *testing.T) {
	issuer := NewTokenIssuerWith("test-secret", time.Hour)
	other := NewTokenIssuerWith("other-secret", time.Hour)

	token, err := other.Issue(primitive.NewObjectID(), primitive.NewObjectID(), true, nil)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = issuer.Verify(token)
	if !errors.Is(err, apperr.ErrAuthRequired) {
		t.Errorf("err = %v, want ErrAuthRequired", err)
	}
	if errors.Is(err, apperr.ErrTokenExpired) {
		t.Error("bad signature must not classify as expired")
	}

	_, err = issuer.Verify("not-a-token")
	if !errors.Is(err, apperr.ErrAuthRequired) {
		t.Errorf("err = %v, want ErrAuthRequired for malformed token", err)
	}
}

func TestClaimsAllows(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		action common_models.Action
		want   bool
	}{
		{
			name:   "super admin bypasses everything",
			claims: Claims{SuperAdmin: true},
			action: common_models.ActionDelete,
			want:   true,
		},
		{
			name:   "granted action",
			claims: Claims{Actions: []string{"read", "update"}},
			action: common_models.ActionUpdate,
			want:   true,
		},
		{
			name:   "missing action",
			claims: Claims{Actions: []string{"read", "update"}},
			action: common_models.ActionDelete,
			want:   false,
		},
		{
			name:   "no actions at all",
			claims: Claims{},
			action: common_models.ActionRead,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.claims.Allows(tt.action); got != tt.want {
				t.Errorf("Allows(%q) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "secret1") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "secret2") {
		t.Error("wrong password accepted")
	}
}
