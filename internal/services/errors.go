package services

import "errors"

// Business-rule errors. Endpoints match on these to pick status codes;
// anything else is a 500.
var (
	ErrValidation     = errors.New("validation failed")
	ErrCartEmpty      = errors.New("Cart is empty")
	ErrInvalidCoupon  = errors.New("Invalid or expired coupon, or usage limit reached")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not found")
	ErrProductGone    = errors.New("product missing or unavailable")
	ErrPriceMismatch  = errors.New("cart price out of date, re-add the item")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrBadCredentials = errors.New("invalid credentials")
)
