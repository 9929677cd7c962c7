package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WishlistRepository struct {
	DB *pgxpool.Pool
}

func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{DB: db}
}

// Add saves a product for a customer; saving the same product twice is a
// no-op.
func (r *WishlistRepository) Add(ctx context.Context, email, productName string) error {
	query := `
		INSERT INTO wishlist (customer_email, product_name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (customer_email, product_name) DO NOTHING
	`
	_, err := r.DB.Exec(ctx, query, email, productName, time.Now())
	return err
}

func (r *WishlistRepository) List(ctx context.Context, email string) ([]model.WishlistItem, error) {
	query := `
		SELECT wishlist_id, customer_email, product_name, created_at
		FROM wishlist
		WHERE customer_email=$1
		ORDER BY wishlist_id DESC
	`
	rows, err := r.DB.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WishlistItem
	for rows.Next() {
		var w model.WishlistItem
		if err := rows.Scan(&w.WishlistID, &w.CustomerEmail, &w.ProductName, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WishlistRepository) Remove(ctx context.Context, email, productName string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM wishlist WHERE customer_email=$1 AND product_name=$2`, email, productName)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("wishlist item not found")
	}
	return nil
}
