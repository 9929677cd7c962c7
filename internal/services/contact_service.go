package services

import (
	"context"
	"errors"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"
)

type ContactService struct {
	Repo *repository.ContactRepository
}

func NewContactService(r *repository.ContactRepository) *ContactService {
	return &ContactService{Repo: r}
}

func (s *ContactService) Submit(ctx context.Context, m *model.ContactMessage) (int64, error) {
	if m.Name == "" || m.Email == "" || m.Message == "" {
		return 0, errors.New("name, email and message are required")
	}
	return s.Repo.Create(ctx, m)
}

func (s *ContactService) List(ctx context.Context, status string) ([]model.ContactMessage, error) {
	return s.Repo.List(ctx, status)
}

func (s *ContactService) Assign(ctx context.Context, messageID int64, adminEmail string) error {
	return s.Repo.Assign(ctx, messageID, adminEmail)
}

func (s *ContactService) Close(ctx context.Context, messageID int64) error {
	return s.Repo.Close(ctx, messageID)
}
