package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestJSONErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validation", fmt.Errorf("%w: invalid email format", services.ErrValidation), http.StatusBadRequest, "validation"},
		{"cart empty", services.ErrCartEmpty, http.StatusBadRequest, "cart_empty"},
		{"invalid coupon", services.ErrInvalidCoupon, http.StatusBadRequest, "invalid_coupon"},
		{"not found", services.ErrNotFound, http.StatusNotFound, "not_found"},
		{"bad credentials", services.ErrBadCredentials, http.StatusUnauthorized, "unauthorized"},
		{"unknown stays internal", errors.New("pool exhausted"), http.StatusInternalServerError, "internal"},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, jsonError(c, tt.err))
			require.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.Equal(t, tt.wantCode, body["code"])
		})
	}
}
