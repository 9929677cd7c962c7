package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	DB *pgxpool.Pool
}

func NewCouponRepository(db *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{DB: db}
}

// RedeemTx validates and redeems a coupon in one conditional UPDATE: the
// guards (active, unexpired, under usage limit) and the times_used increment
// are a single statement, so two checkouts racing for the last redemption
// cannot both succeed. Returns nil when the coupon is invalid, expired or
// exhausted (zero rows affected).
func (r *CouponRepository) RedeemTx(ctx context.Context, tx pgx.Tx, code string) (*model.Coupon, error) {
	query := `
		UPDATE coupons
		SET times_used = times_used + 1, updated_at = NOW()
		WHERE code=$1
		  AND is_active = true
		  AND (expiry_date IS NULL OR expiry_date > NOW())
		  AND (usage_limit IS NULL OR times_used < usage_limit)
		RETURNING code, discount_type, discount_value, times_used, usage_limit
	`
	var c model.Coupon
	err := tx.QueryRow(ctx, query, code).Scan(&c.Code, &c.DiscountType, &c.DiscountValue, &c.TimesUsed, &c.UsageLimit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	c.IsActive = true
	return &c, nil
}

func (r *CouponRepository) Create(ctx context.Context, c *model.Coupon) error {
	query := `
		INSERT INTO coupons (code, discount_type, discount_value, expiry_date, usage_limit, times_used, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7)
	`
	_, err := r.DB.Exec(ctx, query, c.Code, c.DiscountType, c.DiscountValue, c.ExpiryDate, c.UsageLimit, c.IsActive, time.Now())
	return err
}

func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var c model.Coupon
	query := `
		SELECT code, discount_type, discount_value, expiry_date, usage_limit, times_used, is_active, created_at, updated_at
		FROM coupons
		WHERE code=$1
	`
	err := r.DB.QueryRow(ctx, query, code).Scan(
		&c.Code, &c.DiscountType, &c.DiscountValue, &c.ExpiryDate, &c.UsageLimit, &c.TimesUsed, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]model.Coupon, error) {
	query := `
		SELECT code, discount_type, discount_value, expiry_date, usage_limit, times_used, is_active, created_at, updated_at
		FROM coupons
		ORDER BY created_at DESC
	`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Coupon
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(&c.Code, &c.DiscountType, &c.DiscountValue, &c.ExpiryDate, &c.UsageLimit, &c.TimesUsed, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// SetActive flips the active flag.
func (r *CouponRepository) SetActive(ctx context.Context, code string, active bool) error {
	tag, err := r.DB.Exec(ctx, `UPDATE coupons SET is_active=$1, updated_at=NOW() WHERE code=$2`, active, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("coupon not found")
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, code string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM coupons WHERE code=$1`, code)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("coupon not found")
	}
	return nil
}
