package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CartRepository works on pending order rows: a cart line IS an orders row
// with order_status='pending' AND payment_status='pending'.
type CartRepository struct {
	DB *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{DB: db}
}

const pendingFilter = `order_status='pending' AND payment_status='pending'`

// AddOrIncrement bumps the quantity of an existing pending line matching
// (email, product, photo, instructions), or inserts a new line. NULL photo
// and instructions match each other (IS NOT DISTINCT FROM).
func (r *CartRepository) AddOrIncrement(ctx context.Context, line *model.Order) error {
	update := `
		UPDATE orders
		SET quantity = quantity + $1, updated_at = $2
		WHERE customer_email=$3 AND product_name=$4
		  AND custom_photo_url IS NOT DISTINCT FROM $5
		  AND datewith_instructions IS NOT DISTINCT FROM $6
		  AND ` + pendingFilter
	tag, err := r.DB.Exec(ctx, update,
		line.Quantity, time.Now(),
		line.CustomerEmail, line.ProductName, line.CustomPhotoURL, line.Instructions,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	insert := `
		INSERT INTO orders
			(customer_email, product_name, quantity, unit_price, custom_photo_url, datewith_instructions,
			 order_status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending', 'pending', $7)
	`
	_, err = r.DB.Exec(ctx, insert,
		line.CustomerEmail, line.ProductName, line.Quantity, line.UnitPrice,
		line.CustomPhotoURL, line.Instructions, time.Now(),
	)
	return err
}

// ListPending returns the customer's cart lines.
func (r *CartRepository) ListPending(ctx context.Context, email string) ([]model.Order, error) {
	query := `
		SELECT id, customer_email, product_name, quantity, unit_price, custom_photo_url, datewith_instructions, created_at
		FROM orders
		WHERE customer_email=$1 AND ` + pendingFilter + `
		ORDER BY id
	`
	rows, err := r.DB.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCartLines(rows)
}

// ListPendingTx is ListPending inside the checkout transaction.
func (r *CartRepository) ListPendingTx(ctx context.Context, tx pgx.Tx, email string) ([]model.Order, error) {
	query := `
		SELECT id, customer_email, product_name, quantity, unit_price, custom_photo_url, datewith_instructions, created_at
		FROM orders
		WHERE customer_email=$1 AND ` + pendingFilter + `
		ORDER BY id
	`
	rows, err := tx.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCartLines(rows)
}

func scanCartLines(rows pgx.Rows) ([]model.Order, error) {
	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerEmail, &o.ProductName, &o.Quantity, &o.UnitPrice, &o.CustomPhotoURL, &o.Instructions, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.OrderStatus = model.OrderStatusPending
		o.PaymentStatus = model.PaymentStatusPending
		out = append(out, o)
	}
	return out, rows.Err()
}

// SetQuantity sets the exact quantity of one pending line owned by email.
func (r *CartRepository) SetQuantity(ctx context.Context, email string, lineID int64, qty int) error {
	query := `
		UPDATE orders SET quantity=$1, updated_at=$2
		WHERE id=$3 AND customer_email=$4 AND ` + pendingFilter
	tag, err := r.DB.Exec(ctx, query, qty, time.Now(), lineID, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

// Remove deletes one pending line owned by email.
func (r *CartRepository) Remove(ctx context.Context, email string, lineID int64) error {
	query := `DELETE FROM orders WHERE id=$1 AND customer_email=$2 AND ` + pendingFilter
	tag, err := r.DB.Exec(ctx, query, lineID, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("cart item not found")
	}
	return nil
}

// Clear deletes all pending lines for a customer.
func (r *CartRepository) Clear(ctx context.Context, email string) error {
	query := `DELETE FROM orders WHERE customer_email=$1 AND ` + pendingFilter
	_, err := r.DB.Exec(ctx, query, email)
	return err
}
