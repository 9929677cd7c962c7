package services

import (
	"context"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"
)

type WishlistService struct {
	Repo     *repository.WishlistRepository
	Products *repository.ProductRepository
}

func NewWishlistService(r *repository.WishlistRepository, pr *repository.ProductRepository) *WishlistService {
	return &WishlistService{Repo: r, Products: pr}
}

func (s *WishlistService) Add(ctx context.Context, email, productName string) error {
	p, err := s.Products.GetByName(ctx, productName)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.Repo.Add(ctx, email, productName)
}

func (s *WishlistService) List(ctx context.Context, email string) ([]model.WishlistItem, error) {
	return s.Repo.List(ctx, email)
}

func (s *WishlistService) Remove(ctx context.Context, email, productName string) error {
	return s.Repo.Remove(ctx, email, productName)
}
