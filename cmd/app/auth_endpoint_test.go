package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// Registration validation failures must come back as 400 with a
// machine-readable code, never as a generic 500.
func TestRegisterRejectsInvalidInput(t *testing.T) {
	e := echo.New()
	// validation fires before any store access, so no repository is needed
	svc := services.NewAuthService(nil, services.NewLocalValidator(), nil)
	registerAuthRoutes(e.Group("/api"), svc)

	tests := []struct {
		name string
		body string
	}{
		{"invalid email", `{"email":"not-an-email","name":"Asha","password":"longenough1"}`},
		{"short password", `{"email":"asha@example.com","name":"Asha","password":"tiny5"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, "validation", body["code"])
		})
	}
}
