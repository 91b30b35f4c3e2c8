package auth

import (
	"errors"
	"time"

	"go-temple/internal/common/apperr"
	common_models "go-temple/internal/common/models"
	"go-temple/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Claims is the session token payload. Actions are flattened from the
// principal's roles at issue time; a super admin carries no action list
// because the bypass applies.
type Claims struct {
	ID         string   `json:"id"`
	TempleID   string   `json:"templeId"`
	SuperAdmin bool     `json:"superAdmin"`
	Actions    []string `json:"actions,omitempty"`
	jwt.RegisteredClaims
}

// Allows reports whether the principal may perform the given action.
// Super admins bypass all permission checks.
func (c *Claims) Allows(action common_models.Action) bool {
	if c.SuperAdmin {
		return true
	}
	for _, a := range c.Actions {
		if a == string(action) {
			return true
		}
	}
	return false
}

// TokenIssuer mints and verifies signed session tokens. The secret and TTL
// are injected once at startup; nothing here reads ambient state.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// NewTokenIssuerWith builds an issuer with an explicit secret and TTL,
// used by the seeder and by tests.
func NewTokenIssuerWith(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token for the principal. The temple id pins every
// later request to the principal's own tenant.
func (i *TokenIssuer) Issue(id, templeID primitive.ObjectID, superAdmin bool, actions []string) (string, error) {
	claims := Claims{
		ID:         id.Hex(),
		TempleID:   templeID.Hex(),
		SuperAdmin: superAdmin,
		Actions:    actions,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify checks signature and expiry. An expired token fails with
// apperr.ErrTokenExpired so the gate can signal the client refresh flow;
// every other failure is apperr.ErrAuthRequired.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return i.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.ErrTokenExpired
		}
		return nil, apperr.ErrAuthRequired
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperr.ErrAuthRequired
}
