package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofiber-todo/infrastructure/memory"
	"gofiber-todo/pkg/utils"
)

func newAuthApp(auth *SessionAuth) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Get("/private/", auth.Authenticated(), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.SendString(user.Username)
	})
	app.Get("/login/", auth.RedirectIfAuthenticated(), func(c *fiber.Ctx) error {
		return c.SendString("login form")
	})
	app.Get("/maybe/", auth.Optional(), func(c *fiber.Ctx) error {
		if user, err := utils.GetUserFromContext(c); err == nil {
			return c.SendString(user.Username)
		}
		return c.SendString("anonymous")
	})
	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	buf := make([]byte, 1024)
	n, _ := resp.Body.Read(buf)
	return string(buf[:n])
}

func TestAuthenticated_RedirectsAnonymousToLogin(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	app := newAuthApp(NewSessionAuth(signer, nil, "sessionid"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login/?next=%2Fprivate%2F", resp.Header.Get("Location"))
}

func TestAuthenticated_BearerAndCookie(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	app := newAuthApp(NewSessionAuth(signer, nil, "sessionid"))
	token, err := signer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", body(t, resp))

	req = httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: token.Token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthenticated_InvalidBearerIs401(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	app := newAuthApp(NewSessionAuth(signer, nil, "sessionid"))

	req := httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthenticated_RevokedSession(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	revoker := memory.NewSessionRevoker()
	app := newAuthApp(NewSessionAuth(signer, revoker, "sessionid"))

	token, err := signer.Issue(uuid.New(), "alice")
	require.NoError(t, err)
	require.NoError(t, revoker.Revoke(context.Background(), token.SessionID, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: token.Token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
}

func TestRedirectIfAuthenticated(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	app := newAuthApp(NewSessionAuth(signer, nil, "sessionid"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	token, err := signer.Issue(uuid.New(), "alice")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/login/", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: token.Token})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestOptional(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	app := newAuthApp(NewSessionAuth(signer, nil, "sessionid"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/maybe/", nil))
	require.NoError(t, err)
	assert.Equal(t, "anonymous", body(t, resp))
}

type brokenRevoker struct{}

func (brokenRevoker) Revoke(context.Context, string, time.Duration) error {
	return errors.New("redis: connection refused")
}

func (brokenRevoker) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func TestAuthenticated_RevocationStoreDownIs500(t *testing.T) {
	signer := utils.NewSessionSigner("secret", "test", time.Hour)
	app := newAuthApp(NewSessionAuth(signer, brokenRevoker{}, "sessionid"))
	token, err := signer.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: token.Token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/private/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
