package model

import "time"

// Order statuses. A row with status pending/pending is a cart line; checkout
// rewrites it in place into a confirmed order line.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Order represents a row in the orders table. While pending it is one cart
// line for one customer; after checkout every line of the same purchase
// shares one order_number.
type Order struct {
	ID              int64      `json:"id"`
	OrderNumber     *string    `json:"order_number,omitempty"`
	CustomerEmail   string     `json:"customer_email"`
	CustomerName    *string    `json:"customer_name,omitempty"`
	CustomerPhone   *string    `json:"customer_phone,omitempty"`
	ShippingAddress *string    `json:"shipping_address,omitempty"`
	ProductName     string     `json:"product_name"`
	Quantity        int        `json:"quantity"`
	UnitPrice       float64    `json:"unit_price"`
	LineTotal       *float64   `json:"line_total,omitempty"`
	CustomPhotoURL  *string    `json:"custom_photo_url,omitempty"`
	Instructions    *string    `json:"datewith_instructions,omitempty"`
	OrderStatus     string     `json:"order_status"`
	PaymentStatus   string     `json:"payment_status"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// CartItem is what the API exposes for one pending line.
type CartItem struct {
	ID             int64   `json:"id"`
	ProductName    string  `json:"product_name"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	Subtotal       float64 `json:"subtotal"`
	CustomPhotoURL *string `json:"custom_photo_url,omitempty"`
	Instructions   *string `json:"datewith_instructions,omitempty"`
}

// CartResponse is returned by GET /api/cart.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
