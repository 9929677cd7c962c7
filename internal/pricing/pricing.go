package pricing

import (
	"strings"

	"UniqueSeriesAPI/internal/model"

	"github.com/shopspring/decimal"
)

// Pricing constants. Amounts are INR.
const (
	FreeShippingAbove = 999 // strictly greater than this ships free
	FlatShippingFee   = 68

	nameFreeLetters = 6  // letters printed at no charge on a custom note
	nameLetterRate  = 15 // per letter beyond the free allowance
)

// Customization is the per-line personalization supplied at cart-add time.
// It drives the unit-price surcharge; the client-side preview of these
// numbers is never trusted.
type Customization struct {
	NameOnNote   string `json:"name_on_note,omitempty"`
	Denomination int    `json:"denomination,omitempty"`
	NoteCount    int    `json:"note_count,omitempty"`
	EventDate    string `json:"event_date,omitempty"`
	Occasion     string `json:"occasion,omitempty"`
}

// Line is one cart line as seen by the summary computation.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Summary is the order-level money breakdown, every field rounded to 2
// decimals.
type Summary struct {
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// UnitPrice derives the price of one unit of a product with the given
// customization: base price plus the per-letter name surcharge and the note
// denomination. This is the single source of truth; cart-add freezes its
// result on the row and checkout re-derives it to verify nothing drifted.
func UnitPrice(p model.Product, c Customization) decimal.Decimal {
	price := decimal.NewFromFloat(p.BasePrice)

	switch p.Type {
	case model.ProductTypeCustomNote:
		price = price.Add(nameSurcharge(c.NameOnNote))
		if c.Denomination > 0 {
			price = price.Add(decimal.NewFromInt(int64(c.Denomination)))
		}
	case model.ProductTypeNoteBouquet:
		count := c.NoteCount
		if count < 1 {
			count = 1
		}
		if c.Denomination > 0 {
			price = price.Add(decimal.NewFromInt(int64(c.Denomination * count)))
		}
	}

	return price.Round(2)
}

func nameSurcharge(name string) decimal.Decimal {
	letters := len([]rune(strings.ReplaceAll(name, " ", "")))
	if letters <= nameFreeLetters {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64((letters - nameFreeLetters) * nameLetterRate))
}

// DiscountFor computes the coupon discount for a subtotal, clamped to
// [0, subtotal] and rounded to 2 decimals.
func DiscountFor(c *model.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}
	var d decimal.Decimal
	switch c.DiscountType {
	case model.DiscountTypePercentage:
		d = subtotal.Mul(decimal.NewFromFloat(c.DiscountValue)).Div(decimal.NewFromInt(100))
	case model.DiscountTypeFixed:
		d = decimal.NewFromFloat(c.DiscountValue)
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(subtotal) {
		d = subtotal
	}
	return d.Round(2)
}

// ShippingFee is 0 when the post-discount subtotal is strictly above the
// free-shipping threshold, else the flat fee.
func ShippingFee(afterDiscount decimal.Decimal) decimal.Decimal {
	if afterDiscount.GreaterThan(decimal.NewFromInt(FreeShippingAbove)) {
		return decimal.Zero
	}
	return decimal.NewFromInt(FlatShippingFee)
}

// Summarize folds cart lines and an optional coupon into the order totals.
func Summarize(lines []Line, coupon *model.Coupon) Summary {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)

	discount := DiscountFor(coupon, subtotal)
	afterDiscount := subtotal.Sub(discount)
	shipping := ShippingFee(afterDiscount)

	return Summary{
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: shipping,
		Total:       afterDiscount.Add(shipping).Round(2),
	}
}
