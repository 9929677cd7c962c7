package services

import (
	"context"
	"testing"

	"UniqueSeriesAPI/external/imagekit"
	"UniqueSeriesAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeTx satisfies pgx.Tx; only Commit and Rollback matter here.
type fakeTx struct {
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

func (t *fakeTx) CopyFrom(ctx context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) SendBatch(ctx context.Context, _ *pgx.Batch) pgx.BatchResults { return nil }
func (t *fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(ctx context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Exec(ctx context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (t *fakeTx) Query(ctx context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(ctx context.Context, _ string, _ ...any) pgx.Row        { return nil }
func (t *fakeTx) Conn() *pgx.Conn                                                 { return nil }

type fakeBeginner struct{ tx *fakeTx }

func (f *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) { return f.tx, nil }

type fakeCartReader struct{ lines []model.Order }

func (f *fakeCartReader) ListPendingTx(ctx context.Context, _ pgx.Tx, email string) ([]model.Order, error) {
	return f.lines, nil
}

type fakeProductReader struct{ byName map[string]*model.Product }

func (f *fakeProductReader) GetByNameTx(ctx context.Context, _ pgx.Tx, name string) (*model.Product, error) {
	return f.byName[name], nil
}

type fakeCouponRedeemer struct {
	coupon *model.Coupon
	calls  int
}

func (f *fakeCouponRedeemer) RedeemTx(ctx context.Context, _ pgx.Tx, code string) (*model.Coupon, error) {
	f.calls++
	return f.coupon, nil
}

type confirmedLine struct {
	lineID      int64
	orderNumber string
	lineTotal   float64
}

type fakeOrderStore struct {
	confirmed []confirmedLine
	photoURLs map[int64]string
}

func (f *fakeOrderStore) ConfirmLineTx(ctx context.Context, _ pgx.Tx, lineID int64, orderNumber string, _, _, _ string, lineTotal float64) error {
	f.confirmed = append(f.confirmed, confirmedLine{lineID, orderNumber, lineTotal})
	return nil
}

func (f *fakeOrderStore) GetByOrderNumber(ctx context.Context, orderNumber string) ([]model.Order, error) {
	return nil, nil
}
func (f *fakeOrderStore) ListByCustomer(ctx context.Context, email string) ([]model.Order, error) {
	return nil, nil
}
func (f *fakeOrderStore) UpdateStatus(ctx context.Context, orderNumber, status string) error {
	return nil
}
func (f *fakeOrderStore) UpdatePhotoURL(ctx context.Context, lineID int64, photoURL string) error {
	f.photoURLs[lineID] = photoURL
	return nil
}

type fakePaymentStore struct{ created *model.Payment }

func (f *fakePaymentStore) CreateTx(ctx context.Context, _ pgx.Tx, p *model.Payment) (int64, error) {
	f.created = p
	return 1, nil
}

func (f *fakePaymentStore) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Payment, error) {
	return f.created, nil
}

type fakeAssetStore struct {
	files  map[string][]imagekit.Asset
	listed []string
	moved  [][2]string
}

func (f *fakeAssetStore) ListFolder(ctx context.Context, folderPath string) ([]imagekit.Asset, error) {
	f.listed = append(f.listed, folderPath)
	return f.files[folderPath], nil
}

func (f *fakeAssetStore) MoveFolder(ctx context.Context, src, dst string) error {
	f.moved = append(f.moved, [2]string{src, dst})
	return nil
}

type checkoutFixture struct {
	tx       *fakeTx
	cart     *fakeCartReader
	products *fakeProductReader
	coupons  *fakeCouponRedeemer
	orders   *fakeOrderStore
	payments *fakePaymentStore
	assets   *fakeAssetStore
	svc      *OrderService
}

func newCheckoutFixture() *checkoutFixture {
	f := &checkoutFixture{
		tx:       &fakeTx{},
		cart:     &fakeCartReader{},
		products: &fakeProductReader{byName: map[string]*model.Product{}},
		coupons:  &fakeCouponRedeemer{},
		orders:   &fakeOrderStore{photoURLs: map[int64]string{}},
		payments: &fakePaymentStore{},
		assets:   &fakeAssetStore{files: map[string][]imagekit.Asset{}},
	}
	f.svc = NewOrderService(
		&fakeBeginner{tx: f.tx},
		f.cart, f.orders, f.products, f.coupons, f.payments,
		f.assets,
		NewNotifier(nil, nil, zerolog.Nop()),
		zerolog.Nop(),
	)
	return f
}

func (f *checkoutFixture) addProduct(name string, basePrice float64, available bool) {
	f.products.byName[name] = &model.Product{Name: name, BasePrice: basePrice, Available: available}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newCheckoutFixture()

	res, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{CustomerEmail: "asha@example.com"})

	require.Nil(t, res)
	require.ErrorIs(t, err, ErrCartEmpty)
	require.True(t, f.tx.rolledBack)
	require.False(t, f.tx.committed)
	require.Nil(t, f.payments.created)
}

func TestPlaceOrderInvalidCouponRollsBack(t *testing.T) {
	f := newCheckoutFixture()
	f.addProduct("Birthday Note", 200, true)
	f.cart.lines = []model.Order{{ID: 7, CustomerEmail: "asha@example.com", ProductName: "Birthday Note", Quantity: 1, UnitPrice: 200}}
	f.coupons.coupon = nil // redemption guard matched nothing

	res, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerEmail: "asha@example.com",
		CouponCode:    "EXPIRED",
	})

	require.Nil(t, res)
	require.ErrorIs(t, err, ErrInvalidCoupon)
	require.Equal(t, 1, f.coupons.calls)
	require.True(t, f.tx.rolledBack)
	require.False(t, f.tx.committed)
	require.Empty(t, f.orders.confirmed)
	require.Nil(t, f.payments.created)
}

func TestPlaceOrderRejectsStaleLines(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *checkoutFixture)
		line    model.Order
		wantErr error
	}{
		{
			"product removed",
			func(f *checkoutFixture) {},
			model.Order{ID: 1, ProductName: "Gone Note", Quantity: 1, UnitPrice: 200},
			ErrProductGone,
		},
		{
			"product unavailable",
			func(f *checkoutFixture) { f.addProduct("Paused Note", 200, false) },
			model.Order{ID: 1, ProductName: "Paused Note", Quantity: 1, UnitPrice: 200},
			ErrProductGone,
		},
		{
			"frozen price below live base",
			func(f *checkoutFixture) { f.addProduct("Repriced Note", 250, true) },
			model.Order{ID: 1, ProductName: "Repriced Note", Quantity: 1, UnitPrice: 200},
			ErrPriceMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture()
			tt.setup(f)
			f.cart.lines = []model.Order{tt.line}

			res, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{CustomerEmail: "asha@example.com"})

			require.Nil(t, res)
			require.ErrorIs(t, err, tt.wantErr)
			require.True(t, f.tx.rolledBack)
			require.Empty(t, f.orders.confirmed)
			require.Nil(t, f.payments.created)
		})
	}
}

func TestPlaceOrderConsolidatesLines(t *testing.T) {
	f := newCheckoutFixture()
	f.addProduct("Birthday Note", 500, true)
	f.addProduct("Photo Frame", 300, true)
	f.cart.lines = []model.Order{
		{ID: 7, CustomerEmail: "asha@example.com", ProductName: "Birthday Note", Quantity: 2, UnitPrice: 500},
		{ID: 9, CustomerEmail: "asha@example.com", ProductName: "Photo Frame", Quantity: 1, UnitPrice: 300},
	}

	res, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerEmail:   "asha@example.com",
		CustomerName:    "Asha",
		ShippingAddress: "12 MG Road",
	})

	require.NoError(t, err)
	require.True(t, f.tx.committed)

	// every line carries the same consolidated order number
	require.Len(t, f.orders.confirmed, 2)
	require.Equal(t, res.OrderNumber, f.orders.confirmed[0].orderNumber)
	require.Equal(t, res.OrderNumber, f.orders.confirmed[1].orderNumber)
	require.Regexp(t, `^USN\d{8}-[0-9A-F]{10}$`, res.OrderNumber)

	// line totals are per line, not the order grand total
	require.Equal(t, int64(7), f.orders.confirmed[0].lineID)
	require.Equal(t, 1000.0, f.orders.confirmed[0].lineTotal)
	require.Equal(t, int64(9), f.orders.confirmed[1].lineID)
	require.Equal(t, 300.0, f.orders.confirmed[1].lineTotal)

	// 1300 clears the free-shipping threshold
	require.NotNil(t, f.payments.created)
	require.Equal(t, res.OrderNumber, f.payments.created.OrderNumber)
	require.Equal(t, 1300.0, f.payments.created.Subtotal)
	require.Equal(t, 0.0, f.payments.created.ShippingFee)
	require.Equal(t, 1300.0, f.payments.created.Total)
	require.Nil(t, f.payments.created.CouponCode)
	require.Equal(t, 0, f.coupons.calls)
}

func TestPlaceOrderAppliesCoupon(t *testing.T) {
	f := newCheckoutFixture()
	f.addProduct("Photo Frame", 300, true)
	f.cart.lines = []model.Order{
		{ID: 3, CustomerEmail: "asha@example.com", ProductName: "Photo Frame", Quantity: 1, UnitPrice: 300},
	}
	f.coupons.coupon = &model.Coupon{Code: "SAVE10", DiscountType: model.DiscountTypePercentage, DiscountValue: 10}

	res, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CustomerEmail: "asha@example.com",
		CouponCode:    "SAVE10",
	})

	require.NoError(t, err)
	require.True(t, f.tx.committed)
	require.Equal(t, 1, f.coupons.calls)

	// 300 - 10% = 270, under the free-shipping threshold so 68 is added
	require.Equal(t, 300.0, f.payments.created.Subtotal)
	require.Equal(t, 30.0, f.payments.created.Discount)
	require.Equal(t, 68.0, f.payments.created.ShippingFee)
	require.Equal(t, 338.0, f.payments.created.Total)
	require.NotNil(t, f.payments.created.CouponCode)
	require.Equal(t, "SAVE10", *f.payments.created.CouponCode)
	require.Equal(t, 338.0, res.OrderAmount)
}

func TestPlaceOrderPromotesAssets(t *testing.T) {
	f := newCheckoutFixture()
	f.addProduct("Photo Frame", 300, true)
	f.cart.lines = []model.Order{
		{
			ID:             5,
			CustomerEmail:  "asha@example.com",
			ProductName:    "Photo Frame",
			Quantity:       1,
			UnitPrice:      300,
			CustomPhotoURL: strPtr("https://ik.imagekit.io/shop/pending/ab12cd/front.jpg"),
		},
	}
	f.assets.files["pending/ab12cd"] = []imagekit.Asset{{Name: "front.jpg"}}

	res, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{CustomerEmail: "asha@example.com"})

	require.NoError(t, err)
	require.Equal(t, []string{"pending/ab12cd"}, f.assets.listed)
	require.Equal(t, [][2]string{{"pending/ab12cd", "orders/" + res.OrderNumber}}, f.assets.moved)
	require.Equal(t,
		"https://ik.imagekit.io/shop/orders/"+res.OrderNumber+"/front.jpg",
		f.orders.photoURLs[5])
}

func TestPlaceOrderSkipsEmptyPendingFolder(t *testing.T) {
	f := newCheckoutFixture()
	f.addProduct("Photo Frame", 300, true)
	f.cart.lines = []model.Order{
		{
			ID:             5,
			CustomerEmail:  "asha@example.com",
			ProductName:    "Photo Frame",
			Quantity:       1,
			UnitPrice:      300,
			CustomPhotoURL: strPtr("https://ik.imagekit.io/shop/pending/ab12cd/front.jpg"),
		},
	}
	// nothing uploaded under pending/ab12cd

	_, err := f.svc.PlaceOrder(context.Background(), PlaceOrderInput{CustomerEmail: "asha@example.com"})

	require.NoError(t, err)
	require.Empty(t, f.assets.moved)
	require.Empty(t, f.orders.photoURLs)
}
