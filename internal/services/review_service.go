package services

import (
	"context"
	"errors"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"
)

type ReviewService struct {
	Repo     *repository.ReviewRepository
	Products *repository.ProductRepository
}

func NewReviewService(r *repository.ReviewRepository, pr *repository.ProductRepository) *ReviewService {
	return &ReviewService{Repo: r, Products: pr}
}

func (s *ReviewService) Create(ctx context.Context, rv *model.ProductReview) (int64, error) {
	if rv.Rating < 1 || rv.Rating > 5 {
		return 0, errors.New("rating must be between 1 and 5")
	}
	p, err := s.Products.GetByName(ctx, rv.ProductName)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return 0, ErrNotFound
	}
	return s.Repo.Create(ctx, rv)
}

func (s *ReviewService) ListByProduct(ctx context.Context, productName string) ([]model.ProductReview, error) {
	return s.Repo.ListByProduct(ctx, productName)
}

func (s *ReviewService) Delete(ctx context.Context, reviewID int64, email string) error {
	return s.Repo.Delete(ctx, reviewID, email)
}
