package services

import (
	"context"
	"fmt"
	"regexp"
)

// EmailValidator decides whether an address may register. A rejection wraps
// ErrValidation; any other error is an infrastructure failure.
type EmailValidator interface {
	Validate(ctx context.Context, email string) error
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// LocalValidator is the offline fallback when the reputation API is not
// configured: format check only.
type LocalValidator struct{}

func NewLocalValidator() *LocalValidator {
	return &LocalValidator{}
}

func (LocalValidator) Validate(_ context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", ErrValidation)
	}
	return nil
}
