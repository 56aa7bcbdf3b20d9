package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/casting-agency/internal/auth"
	"github.com/iliyamo/casting-agency/internal/utils"
)

const testSecret = "unit-test-secret"

func newProtectedEcho(perm auth.Permission) *echo.Echo {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, JWTAuth(testSecret), RequirePermission(perm))
	return e
}

func doGet(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec := doGet(newProtectedEcho(auth.ReadActors), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Unauthorized")
}

func TestJWTAuthGarbageToken(t *testing.T) {
	rec := doGet(newProtectedEcho(auth.ReadActors), "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "dev", []auth.Permission{auth.ReadActors}, -5)
	require.NoError(t, err)

	rec := doGet(newProtectedEcho(auth.ReadActors), tok.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", "dev", []auth.Permission{auth.ReadActors}, 5)
	require.NoError(t, err)

	rec := doGet(newProtectedEcho(auth.ReadActors), tok.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequirePermissionForbidden(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "dev", []auth.Permission{auth.ReadMovies}, 5)
	require.NoError(t, err)

	rec := doGet(newProtectedEcho(auth.ReadActors), tok.Token)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "Forbidden")
}

func TestRequirePermissionAllowed(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "dev", []auth.Permission{auth.ReadActors, auth.ReadMovies}, 5)
	require.NoError(t, err)

	rec := doGet(newProtectedEcho(auth.ReadActors), tok.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "pong", rec.Body.String())
}
