package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ConfirmLineTx rewrites one pending cart row in place into a confirmed
// order line sharing the consolidated order_number. line_total is this
// line's own unit_price*quantity share, not the order grand total.
func (r *OrderRepository) ConfirmLineTx(
	ctx context.Context,
	tx pgx.Tx,
	lineID int64,
	orderNumber string,
	customerName, customerPhone, shippingAddress string,
	lineTotal float64,
) error {
	query := `
		UPDATE orders
		SET order_number=$1,
		    customer_name=$2,
		    customer_phone=$3,
		    shipping_address=$4,
		    line_total=$5,
		    order_status='confirmed',
		    payment_status='completed',
		    updated_at=$6
		WHERE id=$7 AND order_status='pending' AND payment_status='pending'
	`
	tag, err := tx.Exec(ctx, query, orderNumber, customerName, customerPhone, shippingAddress, lineTotal, time.Now(), lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart line vanished during checkout")
	}
	return nil
}

// GetByOrderNumber returns all line rows of one confirmed order.
func (r *OrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) ([]model.Order, error) {
	query := `
		SELECT id, order_number, customer_email, customer_name, customer_phone, shipping_address,
		       product_name, quantity, unit_price, line_total, custom_photo_url, datewith_instructions,
		       order_status, payment_status, created_at, updated_at
		FROM orders
		WHERE order_number=$1
		ORDER BY id
	`
	rows, err := r.DB.Query(ctx, query, orderNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByCustomer returns a customer's confirmed order lines, newest first.
func (r *OrderRepository) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	query := `
		SELECT id, order_number, customer_email, customer_name, customer_phone, shipping_address,
		       product_name, quantity, unit_price, line_total, custom_photo_url, datewith_instructions,
		       order_status, payment_status, created_at, updated_at
		FROM orders
		WHERE customer_email=$1 AND order_number IS NOT NULL
		ORDER BY id DESC
	`
	rows, err := r.DB.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.CustomerEmail, &o.CustomerName, &o.CustomerPhone, &o.ShippingAddress,
			&o.ProductName, &o.Quantity, &o.UnitPrice, &o.LineTotal, &o.CustomPhotoURL, &o.Instructions,
			&o.OrderStatus, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateStatus moves every line of an order to a new fulfillment status.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderNumber, status string) error {
	tag, err := r.DB.Exec(ctx, `UPDATE orders SET order_status=$1, updated_at=$2 WHERE order_number=$3`, status, time.Now(), orderNumber)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("order not found")
	}
	return nil
}

// UpdatePhotoURL rewrites one line's photo location after asset promotion.
// Runs outside the checkout transaction, best effort.
func (r *OrderRepository) UpdatePhotoURL(ctx context.Context, lineID int64, photoURL string) error {
	_, err := r.DB.Exec(ctx, `UPDATE orders SET custom_photo_url=$1, updated_at=$2 WHERE id=$3`, photoURL, time.Now(), lineID)
	return err
}
