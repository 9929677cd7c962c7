package services

import (
	"context"

	"UniqueSeriesAPI/internal/middleware"
	"UniqueSeriesAPI/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AdminService struct {
	Repo *repository.AdminRepository
}

func NewAdminService(r *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: r}
}

// Login authenticates an admin and returns a token with the admin role.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	a, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}
	return middleware.GenerateToken(a.Email, a.Name, "admin", 12)
}

type DashboardStats struct {
	Orders       int64 `json:"orders"`
	PendingCarts int64 `json:"pending_carts"`
	OpenMessages int64 `json:"open_messages"`
}

func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	orders, carts, messages, err := s.Repo.DashboardCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardStats{Orders: orders, PendingCarts: carts, OpenMessages: messages}, nil
}
