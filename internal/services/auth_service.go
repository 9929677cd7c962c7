package services

import (
	"context"
	"fmt"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLen = 8

type AuthService struct {
	Users     *repository.UserRepository
	Validator EmailValidator
	Notifier  *Notifier
}

func NewAuthService(u *repository.UserRepository, v EmailValidator, n *Notifier) *AuthService {
	return &AuthService{Users: u, Validator: v, Notifier: n}
}

// Register creates a customer account keyed by email and fires the welcome
// mail best effort.
func (s *AuthService) Register(ctx context.Context, email, name, password string, phone *string) (*model.User, error) {
	if err := s.Validator.Validate(ctx, email); err != nil {
		return nil, err
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, MinPasswordLen)
	}

	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{Email: email, Name: name, PasswordHash: string(hash), Phone: phone}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Notifier.Welcome(ctx, email, name)

	u.PasswordHash = ""
	return u, nil
}

// Login authenticates and returns a signed token plus the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		// do not reveal whether email exists
		return "", nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrBadCredentials
	}

	token, err := middleware.GenerateToken(u.Email, u.Name, "customer", 72)
	if err != nil {
		return "", nil, err
	}

	u.PasswordHash = ""
	return token, u, nil
}
