package model

import "time"

// Coupon discount types.
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon represents a row in the coupons table. Code is the primary key.
// TimesUsed only ever moves forward; the conditional redemption UPDATE is
// the single writer that keeps TimesUsed <= UsageLimit.
type Coupon struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue float64    `json:"discount_value"`
	ExpiryDate    *time.Time `json:"expiry_date,omitempty"`
	UsageLimit    *int       `json:"usage_limit,omitempty"`
	TimesUsed     int        `json:"times_used"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
