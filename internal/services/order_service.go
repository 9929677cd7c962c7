package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"UniqueSeriesAPI/internal/model"
	"UniqueSeriesAPI/internal/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Narrow store contracts over the repository methods the checkout
// transaction touches. The pgxpool-backed repositories satisfy them;
// tests substitute fakes.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type cartReader interface {
	ListPendingTx(ctx context.Context, tx pgx.Tx, email string) ([]model.Order, error)
}

type productReader interface {
	GetByNameTx(ctx context.Context, tx pgx.Tx, name string) (*model.Product, error)
}

type couponRedeemer interface {
	RedeemTx(ctx context.Context, tx pgx.Tx, code string) (*model.Coupon, error)
}

type orderStore interface {
	ConfirmLineTx(ctx context.Context, tx pgx.Tx, lineID int64, orderNumber string, customerName, customerPhone, shippingAddress string, lineTotal float64) error
	GetByOrderNumber(ctx context.Context, orderNumber string) ([]model.Order, error)
	ListByCustomer(ctx context.Context, email string) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderNumber, status string) error
	UpdatePhotoURL(ctx context.Context, lineID int64, photoURL string) error
}

type paymentStore interface {
	CreateTx(ctx context.Context, tx pgx.Tx, p *model.Payment) (int64, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Payment, error)
}

type OrderService struct {
	DB       txBeginner
	Cart     cartReader
	Orders   orderStore
	Products productReader
	Coupons  couponRedeemer
	Payments paymentStore
	Assets   AssetStore
	Notifier *Notifier
	Log      zerolog.Logger
}

func NewOrderService(
	db txBeginner,
	cart cartReader,
	orders orderStore,
	products productReader,
	coupons couponRedeemer,
	payments paymentStore,
	assets AssetStore,
	notifier *Notifier,
	log zerolog.Logger,
) *OrderService {
	return &OrderService{
		DB:       db,
		Cart:     cart,
		Orders:   orders,
		Products: products,
		Coupons:  coupons,
		Payments: payments,
		Assets:   assets,
		Notifier: notifier,
		Log:      log,
	}
}

type PlaceOrderInput struct {
	CustomerEmail   string
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
	CouponCode      string
}

type PlaceOrderResult struct {
	OrderNumber    string   `json:"order_number"`
	OrderNumbers   []string `json:"order_numbers"`
	UPIReferenceID string   `json:"upi_reference_id"`
	OrderAmount    float64  `json:"order_amount"`
	Subtotal       float64  `json:"subtotal"`
	Discount       float64  `json:"discount"`
	ShippingFee    float64  `json:"shipping_fee"`
	AppliedCoupon  *string  `json:"applied_coupon"`
}

// PlaceOrder consolidates every pending cart row of the customer into one
// confirmed order, atomically: load pending lines, re-verify products,
// redeem the coupon (single conditional UPDATE), compute totals, rewrite
// each line with the shared order_number and write the order-level payment
// row, all inside one transaction. Asset promotion and notifications run
// after commit, best effort.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*PlaceOrderResult, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	lines, err := s.Cart.ListPendingTx(ctx, tx, in.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	orderNumber := newOrderNumber()
	upiRef := newUPIReference()

	priceLines := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		p, err := s.Products.GetByNameTx(ctx, tx, l.ProductName)
		if err != nil {
			return nil, fmt.Errorf("verify product %s: %w", l.ProductName, err)
		}
		if p == nil || !p.Available {
			return nil, ErrProductGone
		}
		// the frozen price was derived server side at add time; it can only
		// sit at or above the live base price
		if l.UnitPrice < p.BasePrice {
			return nil, ErrPriceMismatch
		}
		priceLines = append(priceLines, pricing.Line{
			UnitPrice: decimal.NewFromFloat(l.UnitPrice),
			Quantity:  l.Quantity,
		})
	}

	var coupon *model.Coupon
	if in.CouponCode != "" {
		coupon, err = s.Coupons.RedeemTx(ctx, tx, in.CouponCode)
		if err != nil {
			return nil, fmt.Errorf("redeem coupon: %w", err)
		}
		if coupon == nil {
			return nil, ErrInvalidCoupon
		}
	}

	summary := pricing.Summarize(priceLines, coupon)

	for _, l := range lines {
		lineTotal := decimal.NewFromFloat(l.UnitPrice).
			Mul(decimal.NewFromInt(int64(l.Quantity))).
			Round(2).InexactFloat64()
		if err := s.Orders.ConfirmLineTx(ctx, tx, l.ID, orderNumber,
			in.CustomerName, in.CustomerPhone, in.ShippingAddress, lineTotal); err != nil {
			return nil, fmt.Errorf("confirm line %d: %w", l.ID, err)
		}
	}

	payment := &model.Payment{
		OrderNumber:    orderNumber,
		UPIReferenceID: upiRef,
		Subtotal:       summary.Subtotal.InexactFloat64(),
		Discount:       summary.Discount.InexactFloat64(),
		ShippingFee:    summary.ShippingFee.InexactFloat64(),
		Total:          summary.Total.InexactFloat64(),
	}
	if coupon != nil {
		payment.CouponCode = &coupon.Code
	}
	if _, err := s.Payments.CreateTx(ctx, tx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	// the order is authoritative from here on; everything below is best effort
	s.promoteAssets(ctx, lines, orderNumber)
	s.Notifier.OrderConfirmed(ctx, in.CustomerEmail, in.CustomerName, in.CustomerPhone, orderNumber, payment.Total)

	result := &PlaceOrderResult{
		OrderNumber:    orderNumber,
		OrderNumbers:   []string{orderNumber},
		UPIReferenceID: upiRef,
		OrderAmount:    payment.Total,
		Subtotal:       payment.Subtotal,
		Discount:       payment.Discount,
		ShippingFee:    payment.ShippingFee,
		AppliedCoupon:  payment.CouponCode,
	}
	return result, nil
}

// promoteAssets moves each line's pending CDN folder under the order's
// namespace and rewrites the stored photo URLs. Failures are logged and
// swallowed; the committed order stands either way.
func (s *OrderService) promoteAssets(ctx context.Context, lines []model.Order, orderNumber string) {
	if s.Assets == nil {
		return
	}

	moved := map[string]bool{}
	for _, l := range lines {
		if l.CustomPhotoURL == nil {
			continue
		}
		src, dst, newURL, ok := promotedAssetPath(*l.CustomPhotoURL, orderNumber)
		if !ok {
			continue
		}
		if !moved[src] {
			assets, err := s.Assets.ListFolder(ctx, src)
			if err != nil {
				s.Log.Warn().Err(err).
					Str("order_number", orderNumber).
					Str("folder", src).
					Msg("asset folder listing failed")
				continue
			}
			if len(assets) == 0 {
				s.Log.Warn().
					Str("order_number", orderNumber).
					Str("folder", src).
					Msg("pending asset folder is empty, skipping promotion")
				continue
			}
			if err := s.Assets.MoveFolder(ctx, src, dst); err != nil {
				s.Log.Warn().Err(err).
					Str("order_number", orderNumber).
					Str("folder", src).
					Msg("asset promotion failed")
				continue
			}
			moved[src] = true
		}
		if err := s.Orders.UpdatePhotoURL(ctx, l.ID, newURL); err != nil {
			s.Log.Warn().Err(err).
				Int64("line_id", l.ID).
				Msg("photo url rewrite failed")
		}
	}
}

// promotedAssetPath maps a pending photo URL onto its post-checkout
// location: .../pending/<token>/file -> .../orders/<order_number>/file.
// ok is false when the URL carries no pending folder.
func promotedAssetPath(photoURL, orderNumber string) (src, dst, newURL string, ok bool) {
	const marker = "/pending/"
	i := strings.Index(photoURL, marker)
	if i < 0 {
		return "", "", "", false
	}
	rest := photoURL[i+len(marker):]
	j := strings.Index(rest, "/")
	if j <= 0 {
		return "", "", "", false
	}
	token := rest[:j]

	src = "pending/" + token
	dst = "orders/" + orderNumber
	newURL = photoURL[:i] + "/orders/" + orderNumber + rest[j:]
	return src, dst, newURL, true
}

// newOrderNumber builds a date-prefixed order number with a random suffix.
// Uniqueness is statistical; the unique order_number on the payments row
// makes a collision fail the transaction instead of merging two orders.
func newOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	return fmt.Sprintf("USN%s-%s", time.Now().Format("20060102"), suffix)
}

func newUPIReference() string {
	return "UPI-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:16])
}

// GetByNumber returns the lines and payment record of one order.
func (s *OrderService) GetByNumber(ctx context.Context, email, orderNumber string, isAdmin bool) ([]model.Order, *model.Payment, error) {
	lines, err := s.Orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, nil, err
	}
	if len(lines) == 0 {
		return nil, nil, ErrNotFound
	}
	if !isAdmin && lines[0].CustomerEmail != email {
		return nil, nil, ErrNotFound
	}

	payment, err := s.Payments.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, nil, err
	}
	return lines, payment, nil
}

func (s *OrderService) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	return s.Orders.ListByCustomer(ctx, email)
}

// UpdateStatus is the admin fulfillment transition.
func (s *OrderService) UpdateStatus(ctx context.Context, orderNumber, status string) error {
	switch status {
	case model.OrderStatusConfirmed, model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled:
	default:
		return fmt.Errorf("unknown order status %q", status)
	}
	return s.Orders.UpdateStatus(ctx, orderNumber, status)
}
