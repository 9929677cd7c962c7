package services

import (
	"context"
	"fmt"
	"strings"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/pricing"
	"UniqueSeriesAPI/internal/repository"
)

type CartService struct {
	Repo     *repository.CartRepository
	Products *repository.ProductRepository
}

func NewCartService(r *repository.CartRepository, pr *repository.ProductRepository) *CartService {
	return &CartService{Repo: r, Products: pr}
}

// Add puts qty units of a product with the given customization into the
// customer's cart. The unit price is derived server side and frozen on the
// row; a matching pending line (same product, photo and instructions) is
// incremented instead of duplicated.
func (s *CartService) Add(ctx context.Context, email, productName string, qty int, c pricing.Customization, photoURL *string) error {
	if qty < 1 {
		qty = 1
	}

	p, err := s.Products.GetByName(ctx, productName)
	if err != nil {
		return err
	}
	if p == nil || !p.Available {
		return ErrProductGone
	}

	unit := pricing.UnitPrice(*p, c)

	line := &model.Order{
		CustomerEmail:  email,
		ProductName:    productName,
		Quantity:       qty,
		UnitPrice:      unit.InexactFloat64(),
		CustomPhotoURL: photoURL,
		Instructions:   instructionsText(c),
	}
	return s.Repo.AddOrIncrement(ctx, line)
}

// instructionsText renders the customization as the fulfillment-facing free
// text stored on the line. It is deterministic so identical customizations
// match the same cart line.
func instructionsText(c pricing.Customization) *string {
	var parts []string
	if c.NameOnNote != "" {
		parts = append(parts, "Name: "+c.NameOnNote)
	}
	if c.Denomination > 0 {
		parts = append(parts, fmt.Sprintf("Denomination: %d", c.Denomination))
	}
	if c.NoteCount > 1 {
		parts = append(parts, fmt.Sprintf("Notes: %d", c.NoteCount))
	}
	if c.EventDate != "" {
		parts = append(parts, "Date: "+c.EventDate)
	}
	if c.Occasion != "" {
		parts = append(parts, "Occasion: "+c.Occasion)
	}
	if len(parts) == 0 {
		return nil
	}
	out := strings.Join(parts, " | ")
	return &out
}

func (s *CartService) Update(ctx context.Context, email string, lineID int64, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
	}
	return s.Repo.SetQuantity(ctx, email, lineID, qty)
}

func (s *CartService) Remove(ctx context.Context, email string, lineID int64) error {
	return s.Repo.Remove(ctx, email, lineID)
}

func (s *CartService) Clear(ctx context.Context, email string) error {
	return s.Repo.Clear(ctx, email)
}

// Get returns the cart (items + total).
func (s *CartService) Get(ctx context.Context, email string) (*model.CartResponse, error) {
	lines, err := s.Repo.ListPending(ctx, email)
	if err != nil {
		return nil, err
	}

	resp := &model.CartResponse{Items: []model.CartItem{}}
	for _, l := range lines {
		sub := l.UnitPrice * float64(l.Quantity)
		resp.Items = append(resp.Items, model.CartItem{
			ID:             l.ID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			Subtotal:       sub,
			CustomPhotoURL: l.CustomPhotoURL,
			Instructions:   l.Instructions,
		})
		resp.Total += sub
	}
	return resp, nil
}
