package services

import (
	"context"
	"errors"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(r *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: r}
}

var validProductTypes = map[string]bool{
	model.ProductTypeCustomNote:  true,
	model.ProductTypeNoteBouquet: true,
	model.ProductTypePhotoFrame:  true,
	model.ProductTypeGiftBox:     true,
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if !validProductTypes[p.Type] {
		return errors.New("unknown product type")
	}
	if p.BasePrice < 0 {
		return errors.New("base price cannot be negative")
	}
	return s.Repo.Create(ctx, p)
}

func (s *ProductService) Get(ctx context.Context, name string) (*model.Product, error) {
	p, err := s.Repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context, onlyAvailable bool, limit, offset int) ([]model.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.Repo.List(ctx, onlyAvailable, limit, offset)
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if !validProductTypes[p.Type] {
		return errors.New("unknown product type")
	}
	return s.Repo.Update(ctx, p)
}

func (s *ProductService) Delete(ctx context.Context, name string) error {
	return s.Repo.Delete(ctx, name)
}
