package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("asha@example.com", "Asha", "customer", 1)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	claims := TryGetClaimsFromAuthHeader(c)
	require.NotNil(t, claims)
	require.Equal(t, "asha@example.com", claims.Email)
	require.Equal(t, "customer", claims.Role)
}

func TestJWTMiddlewareRejectsGarbage(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not bearer", "Basic abc"},
		{"malformed token", "Bearer not.a.token"},
	}

	h := JWTMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			require.NoError(t, h(e.NewContext(req, rec)))
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	e := echo.New()
	h := AdminOnly(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("auth_claims", &Claims{Email: "x@example.com", Role: "customer"})
	require.NoError(t, h(c))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("auth_claims", &Claims{Email: "admin@example.com", Role: "admin"})
	require.NoError(t, h(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
