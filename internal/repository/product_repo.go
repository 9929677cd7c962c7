package repository

import (
	"context"
	"errors"
	"time"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (name, type, description, base_price, available, fulfillment_days, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.DB.Exec(ctx, query, p.Name, p.Type, p.Description, p.BasePrice, p.Available, p.FulfillmentDays, p.ImageURL, time.Now())
	return err
}

func (r *ProductRepository) GetByName(ctx context.Context, name string) (*model.Product, error) {
	var p model.Product
	query := `
		SELECT name, type, description, base_price, available, fulfillment_days, image_url, created_at, updated_at
		FROM products
		WHERE name=$1
	`
	err := r.DB.QueryRow(ctx, query, name).Scan(
		&p.Name, &p.Type, &p.Description, &p.BasePrice, &p.Available, &p.FulfillmentDays, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// GetByNameTx is GetByName inside an open transaction; checkout uses it to
// re-verify every cart line against the live product row.
func (r *ProductRepository) GetByNameTx(ctx context.Context, tx pgx.Tx, name string) (*model.Product, error) {
	var p model.Product
	query := `
		SELECT name, type, description, base_price, available, fulfillment_days, image_url, created_at, updated_at
		FROM products
		WHERE name=$1
	`
	err := tx.QueryRow(ctx, query, name).Scan(
		&p.Name, &p.Type, &p.Description, &p.BasePrice, &p.Available, &p.FulfillmentDays, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, onlyAvailable bool, limit, offset int) ([]model.Product, error) {
	query := `
		SELECT name, type, description, base_price, available, fulfillment_days, image_url, created_at, updated_at
		FROM products
		WHERE ($1 = false OR available = true)
		ORDER BY name
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.Query(ctx, query, onlyAvailable, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.Name, &p.Type, &p.Description, &p.BasePrice, &p.Available, &p.FulfillmentDays, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products
		SET type=$1, description=$2, base_price=$3, available=$4, fulfillment_days=$5, image_url=$6, updated_at=$7
		WHERE name=$8
	`
	tag, err := r.DB.Exec(ctx, query, p.Type, p.Description, p.BasePrice, p.Available, p.FulfillmentDays, p.ImageURL, time.Now(), p.Name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE name=$1`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("product not found")
	}
	return nil
}
