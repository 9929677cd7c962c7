package main

import (
	"errors"
	"net/http"

	"UniqueSeriesAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// jsonError maps business errors onto HTTP statuses with a machine-readable
// code. Unrecognized errors become a generic 500 so internals never leak.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return c.JSON(http.StatusBadRequest, map[string]string{"code": "validation", "message": err.Error()})
	case errors.Is(err, services.ErrCartEmpty):
		return c.JSON(http.StatusBadRequest, map[string]string{"code": "cart_empty", "message": err.Error()})
	case errors.Is(err, services.ErrInvalidCoupon):
		return c.JSON(http.StatusBadRequest, map[string]string{"code": "invalid_coupon", "message": err.Error()})
	case errors.Is(err, services.ErrPriceMismatch), errors.Is(err, services.ErrProductGone):
		return c.JSON(http.StatusBadRequest, map[string]string{"code": "bad_request", "message": err.Error()})
	case errors.Is(err, services.ErrDuplicateEmail):
		return c.JSON(http.StatusBadRequest, map[string]string{"code": "duplicate_email", "message": err.Error()})
	case errors.Is(err, services.ErrBadCredentials), errors.Is(err, services.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, map[string]string{"code": "unauthorized", "message": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"code": "not_found", "message": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{"code": "internal", "message": "something went wrong"})
	}
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"code": "bad_request", "message": msg})
}
