package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	common_models "go-temple/internal/common/models"
	"go-temple/internal/features/auth"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const testCookie = "access_token"

func newGatedApp(t *testing.T, issuer *auth.TokenIssuer, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()

	handlers := []fiber.Handler{RequireAuth(issuer, testCookie, false)}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/protected", handlers...)
	return app
}

func TestRequireAuthStates(t *testing.T) {
	issuer := auth.NewTokenIssuerWith("gate-secret", time.Hour)
	expiredIssuer := auth.NewTokenIssuerWith("gate-secret", -time.Minute)
	foreignIssuer := auth.NewTokenIssuerWith("wrong-secret", time.Hour)

	id := primitive.NewObjectID()
	valid, _ := issuer.Issue(id, primitive.NewObjectID(), false, []string{"read"})
	expired, _ := expiredIssuer.Issue(id, primitive.NewObjectID(), false, []string{"read"})
	tampered, _ := foreignIssuer.Issue(id, primitive.NewObjectID(), false, []string{"read"})

	tests := []struct {
		name       string
		token      string
		wantStatus int
		wantCode   string
	}{
		{name: "no cookie", token: "", wantStatus: 401},
		{name: "tampered token", token: tampered, wantStatus: 401},
		{name: "expired token", token: expired, wantStatus: 401, wantCode: TokenExpiredCode},
		{name: "valid token", token: valid, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGatedApp(t, issuer)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.token != "" {
				req.Header.Set("Cookie", testCookie+"="+tt.token)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}

			if tt.wantCode != "" {
				body, _ := io.ReadAll(resp.Body)
				var parsed map[string]interface{}
				json.Unmarshal(body, &parsed)
				if parsed["code"] != tt.wantCode {
					t.Errorf("code = %v, want %q", parsed["code"], tt.wantCode)
				}
			}
		})
	}
}

func TestRequireSuperAdmin(t *testing.T) {
	issuer := auth.NewTokenIssuerWith("gate-secret", time.Hour)

	adminToken, _ := issuer.Issue(primitive.NewObjectID(), primitive.NewObjectID(), true, nil)
	userToken, _ := issuer.Issue(primitive.NewObjectID(), primitive.NewObjectID(), false, []string{"create", "read", "update", "delete"})

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{name: "super admin passes", token: adminToken, wantStatus: 200},
		{name: "regular user rejected regardless of actions", token: userToken, wantStatus: 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGatedApp(t, issuer, RequireSuperAdmin())

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Cookie", testCookie+"="+tt.token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequireTempleScope(t *testing.T) {
	issuer := auth.NewTokenIssuerWith("gate-secret", time.Hour)

	templeID := primitive.NewObjectID()
	userToken, _ := issuer.Issue(primitive.NewObjectID(), templeID, false, []string{"read"})
	adminToken, _ := issuer.Issue(primitive.NewObjectID(), templeID, true, nil)

	app := fiber.New()
	chain := func(c *fiber.Ctx) error { return c.SendString("ok") }
	app.Get("/t/:templeId/resource", RequireAuth(issuer, testCookie, false), RequireTempleScope(), chain)
	app.Get("/unscoped", RequireAuth(issuer, testCookie, false), RequireTempleScope(), chain)

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
	}{
		{name: "own temple", path: "/t/" + templeID.Hex() + "/resource", token: userToken, wantStatus: 200},
		{name: "foreign temple", path: "/t/" + primitive.NewObjectID().Hex() + "/resource", token: userToken, wantStatus: 403},
		{name: "admin gets no foreign-temple exception", path: "/t/" + primitive.NewObjectID().Hex() + "/resource", token: adminToken, wantStatus: 403},
		{name: "route without temple param", path: "/unscoped", token: userToken, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			req.Header.Set("Cookie", testCookie+"="+tt.token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}

func TestRequireAction(t *testing.T) {
	issuer := auth.NewTokenIssuerWith("gate-secret", time.Hour)

	updater, _ := issuer.Issue(primitive.NewObjectID(), primitive.NewObjectID(), false, []string{"update"})
	admin, _ := issuer.Issue(primitive.NewObjectID(), primitive.NewObjectID(), true, nil)

	tests := []struct {
		name       string
		token      string
		action     common_models.Action
		wantStatus int
	}{
		{name: "granted action", token: updater, action: common_models.ActionUpdate, wantStatus: 200},
		{name: "missing action forbidden", token: updater, action: common_models.ActionDelete, wantStatus: 403},
		{name: "admin bypass", token: admin, action: common_models.ActionDelete, wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newGatedApp(t, issuer, RequireAction(tt.action))

			req := httptest.NewRequest("GET", "/protected", nil)
			req.Header.Set("Cookie", testCookie+"="+tt.token)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test failed: %v", err)
			}
			resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
