package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts a new user. Email is the primary key.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	query := `INSERT INTO users (email, name, password_hash, phone, address, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.DB.Exec(ctx, query, u.Email, u.Name, u.PasswordHash, u.Phone, u.Address, time.Now())
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	query := `SELECT email, name, password_hash, phone, address, created_at, updated_at FROM users WHERE email=$1`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&u.Email, &u.Name, &u.PasswordHash, &u.Phone, &u.Address, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, errors.New("user not found")
	}
	return &u, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`
	if err := r.DB.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateProfile updates name, phone and address for a user.
func (r *UserRepository) UpdateProfile(ctx context.Context, email, name string, phone, address *string) error {
	query := `UPDATE users SET name=$1, phone=$2, address=$3, updated_at=$4 WHERE email=$5`
	tag, err := r.DB.Exec(ctx, query, name, phone, address, time.Now(), email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}
