package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*model.AdminUser, error) {
	var a model.AdminUser
	query := `SELECT email, name, password_hash, created_at FROM admin_users WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&a.Email, &a.Name, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, errors.New("admin not found")
	}
	return &a, nil
}

func (r *AdminRepository) Create(ctx context.Context, a *model.AdminUser) error {
	query := `INSERT INTO admin_users (email, name, password_hash, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, query, a.Email, a.Name, a.PasswordHash, time.Now())
	return err
}

// DashboardCounts powers the admin landing page.
func (r *AdminRepository) DashboardCounts(ctx context.Context) (orders, pendingCarts, openMessages int64, err error) {
	query := `
		SELECT
			(SELECT COUNT(DISTINCT order_number) FROM orders WHERE order_number IS NOT NULL),
			(SELECT COUNT(*) FROM orders WHERE order_status='pending' AND payment_status='pending'),
			(SELECT COUNT(*) FROM contact_messages WHERE status='open')
	`
	err = r.DB.QueryRow(ctx, query).Scan(&orders, &pendingCarts, &openMessages)
	return orders, pendingCarts, openMessages, err
}
