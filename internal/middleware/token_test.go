package middleware

import (
	"Blognest/internal/entity"
	jwtPkg "Blognest/pkg/jwt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, Middleware) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mw := New(logger)
	app := fiber.New()
	return app, mw
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token, _, err := jwtPkg.Sign(map[string]interface{}{
		"id":      "u1",
		"email":   "admin@acme.example",
		"company": "acme",
		"role":    role,
	}, time.Hour)
	require.NoError(t, err)
	return token
}

func TestTokenMiddlewareMissingHeader(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	app, mw := newTestApp(t)
	app.Get("/private", mw.NewTokenMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareMalformedToken(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	app, mw := newTestApp(t)
	app.Get("/private", mw.NewTokenMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestTokenMiddlewareValidTokenExposesUser(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	app, mw := newTestApp(t)
	app.Get("/private", mw.NewTokenMiddleware, func(c *fiber.Ctx) error {
		user, err := jwtPkg.GetUserLoginData(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(user)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, entity.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTokenMiddlewareRejectsWrongSecret(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	token := signTestToken(t, entity.RoleAdmin)

	t.Setenv(AccessTokenSecret, "rotated-secret")
	app, mw := newTestApp(t)
	app.Get("/private", mw.NewTokenMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSuperAdminMiddlewareRejectsAdmin(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	app, mw := newTestApp(t)
	app.Get("/root", mw.NewTokenMiddleware, mw.NewSuperAdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/root", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, entity.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestSuperAdminMiddlewareAllowsSuperAdmin(t *testing.T) {
	t.Setenv(AccessTokenSecret, "test-secret")
	app, mw := newTestApp(t)
	app.Get("/root", mw.NewTokenMiddleware, mw.NewSuperAdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/root", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, entity.RoleSuperAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
