package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	DB *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *model.ProductReview) (int64, error) {
	var id int64
	query := `
		INSERT INTO product_reviews (product_name, customer_email, customer_name, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING review_id
	`
	err := r.DB.QueryRow(ctx, query, rv.ProductName, rv.CustomerEmail, rv.CustomerName, rv.Rating, rv.Comment, time.Now()).Scan(&id)
	return id, err
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productName string) ([]model.ProductReview, error) {
	query := `
		SELECT review_id, product_name, customer_email, customer_name, rating, comment, created_at
		FROM product_reviews
		WHERE product_name=$1
		ORDER BY review_id DESC
	`
	rows, err := r.DB.Query(ctx, query, productName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ProductReview
	for rows.Next() {
		var rv model.ProductReview
		if err := rows.Scan(&rv.ReviewID, &rv.ProductName, &rv.CustomerEmail, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

// Delete removes a review; only its author may delete it.
func (r *ReviewRepository) Delete(ctx context.Context, reviewID int64, email string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM product_reviews WHERE review_id=$1 AND customer_email=$2`, reviewID, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("review not found")
	}
	return nil
}
