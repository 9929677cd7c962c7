package services

import (
	"context"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"
)

type ProfileService struct {
	Users *repository.UserRepository
}

func NewProfileService(u *repository.UserRepository) *ProfileService {
	return &ProfileService{Users: u}
}

func (s *ProfileService) Get(ctx context.Context, email string) (*model.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (s *ProfileService) Update(ctx context.Context, email, name string, phone, address *string) (*model.User, error) {
	if err := s.Users.UpdateProfile(ctx, email, name, phone, address); err != nil {
		return nil, ErrNotFound
	}
	return s.Get(ctx, email)
}
