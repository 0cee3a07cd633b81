package middleware

import (
	"console-backend/lib/rbac"
	authutils "console-backend/lib/utils/auth-utils"
	"console-backend/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedApp() *fiber.App {
	rbac.NewHandler()
	app := fiber.New()
	app.Use(AuthorizationWithSecret(testSecret))
	app.Use(ScopeRequired())
	app.Use(RbacMiddleware())
	ok := func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserScope(ctx) + "/" + GetUserID(ctx) + "/" + string(GetUserRole(ctx)))
	}
	app.Post("/api/v1/roles", ok)
	app.Get("/api/v1/roles/:idRole", ok)
	return app
}

func newToken(t *testing.T, scopeID string, role models.UserRole) string {
	token, err := authutils.GetToken(testSecret, time.Hour, "user-1", "alice", scopeID, role)
	require.Nil(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) int {
	resp, err := app.Test(req)
	require.Nil(t, err)
	return resp.StatusCode
}

func TestAuthorization(t *testing.T) {
	app := newProtectedApp()

	t.Run(`bearer header accepted`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+newToken(t, "scope-1", models.ViewerRole))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run(`console cookie accepted`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		req.AddCookie(&http.Cookie{Name: TokenCookie, Value: newToken(t, "scope-1", models.ViewerRole)})
		require.Equal(t, fiber.StatusOK, doRequest(t, app, req))
	})

	t.Run(`missing or foreign token rejected`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		require.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, req))

		token, err := authutils.GetToken("other-secret", time.Hour, "user-1", "alice", "scope-1", models.AdminRole)
		require.Nil(t, err)
		req = httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		require.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, req))
	})

	t.Run(`expired token rejected`, func(t *testing.T) {
		token, err := authutils.GetToken(testSecret, -time.Minute, "user-1", "alice", "scope-1", models.AdminRole)
		require.Nil(t, err)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		require.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, req))
	})

	t.Run(`missing scope forbidden`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+newToken(t, "", models.AdminRole))
		require.Equal(t, fiber.StatusForbidden, doRequest(t, app, req))
	})
}

func TestRbacMiddleware(t *testing.T) {
	app := newProtectedApp()

	t.Run(`viewer can not manage roles`, func(t *testing.T) {
		token := newToken(t, "scope-1", models.ViewerRole)
		for _, path := range []string{"/api/v1/roles", "/api/v1/Roles", "/API/V1/ROLES/"} {
			req := httptest.NewRequest(http.MethodPost, path, nil)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			require.Equal(t, fiber.StatusForbidden, doRequest(t, app, req), path)
		}
	})

	t.Run(`admin can manage roles`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roles", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+newToken(t, "scope-1", models.AdminRole))
		require.Equal(t, fiber.StatusOK, doRequest(t, app, req))
	})

	t.Run(`unknown role forbidden`, func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/roles/42", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+newToken(t, "scope-1", ""))
		require.Equal(t, fiber.StatusForbidden, doRequest(t, app, req))
	})
}
