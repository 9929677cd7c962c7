package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/repository"
)

type CouponService struct {
	Repo *repository.CouponRepository
}

func NewCouponService(r *repository.CouponRepository) *CouponService {
	return &CouponService{Repo: r}
}

func (s *CouponService) Create(ctx context.Context, c *model.Coupon) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return errors.New("coupon code is required")
	}
	switch c.DiscountType {
	case model.DiscountTypePercentage:
		if c.DiscountValue <= 0 || c.DiscountValue > 100 {
			return errors.New("percentage discount must be in (0, 100]")
		}
	case model.DiscountTypeFixed:
		if c.DiscountValue <= 0 {
			return errors.New("fixed discount must be positive")
		}
	default:
		return errors.New("unknown discount type")
	}
	if c.UsageLimit != nil && *c.UsageLimit < 1 {
		return errors.New("usage limit must be at least 1")
	}
	return s.Repo.Create(ctx, c)
}

func (s *CouponService) List(ctx context.Context) ([]model.Coupon, error) {
	return s.Repo.List(ctx)
}

// Preview reports whether a code would currently apply, without redeeming
// it. The answer is advisory: checkout still performs the atomic redemption.
func (s *CouponService) Preview(ctx context.Context, code string) (*model.Coupon, error) {
	c, err := s.Repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive {
		return nil, ErrInvalidCoupon
	}
	if c.ExpiryDate != nil && !c.ExpiryDate.After(time.Now()) {
		return nil, ErrInvalidCoupon
	}
	if c.UsageLimit != nil && c.TimesUsed >= *c.UsageLimit {
		return nil, ErrInvalidCoupon
	}
	return c, nil
}

func (s *CouponService) SetActive(ctx context.Context, code string, active bool) error {
	return s.Repo.SetActive(ctx, code, active)
}

func (s *CouponService) Delete(ctx context.Context, code string) error {
	return s.Repo.Delete(ctx, code)
}
