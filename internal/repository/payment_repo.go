package repository

import (
	"context"
	"errors"

	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// CreateTx writes the order-level money record inside the checkout
// transaction: subtotal, discount, shipping, grand total and the UPI
// reference that settles out of band.
func (r *PaymentRepository) CreateTx(ctx context.Context, tx pgx.Tx, p *model.Payment) (int64, error) {
	var id int64
	query := `
		INSERT INTO payments (order_number, upi_reference_id, subtotal, discount, shipping_fee, total, coupon_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING payment_id
	`
	err := tx.QueryRow(ctx, query,
		p.OrderNumber, p.UPIReferenceID, p.Subtotal, p.Discount, p.ShippingFee, p.Total, p.CouponCode,
	).Scan(&id)
	return id, err
}

func (r *PaymentRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Payment, error) {
	var p model.Payment
	query := `
		SELECT payment_id, order_number, upi_reference_id, subtotal, discount, shipping_fee, total, coupon_code, created_at
		FROM payments
		WHERE order_number=$1
	`
	err := r.DB.QueryRow(ctx, query, orderNumber).Scan(
		&p.PaymentID, &p.OrderNumber, &p.UPIReferenceID, &p.Subtotal, &p.Discount, &p.ShippingFee, &p.Total, &p.CouponCode, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
