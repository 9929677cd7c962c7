package model

import "time"

// Payment is the order-level record written by checkout in the same
// transaction that confirms the line rows: one row per order_number.
type Payment struct {
	PaymentID      int64      `json:"payment_id"`
	OrderNumber    string     `json:"order_number"`
	UPIReferenceID string     `json:"upi_reference_id"`
	Subtotal       float64    `json:"subtotal"`
	Discount       float64    `json:"discount"`
	ShippingFee    float64    `json:"shipping_fee"`
	Total          float64    `json:"total"`
	CouponCode     *string    `json:"coupon_code,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}
