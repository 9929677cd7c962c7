package pricing

import (
	"testing"

	"UniqueSeriesAPI/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name          string
		afterDiscount string
		expected      string
	}{
		{"zero subtotal", "0", "68"},
		{"below threshold", "500", "68"},
		{"at threshold 999 still pays", "999", "68"},
		{"just above threshold", "999.01", "0"},
		{"1000 ships free", "1000", "0"},
		{"large order", "12500", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingFee(d(tt.afterDiscount))
			require.True(t, got.Equal(d(tt.expected)), "got %s want %s", got, tt.expected)
		})
	}
}

func TestDiscountFor(t *testing.T) {
	limit := 5
	tests := []struct {
		name     string
		coupon   *model.Coupon
		subtotal string
		expected string
	}{
		{"nil coupon", nil, "300", "0"},
		{
			"ten percent",
			&model.Coupon{Code: "TEN", DiscountType: model.DiscountTypePercentage, DiscountValue: 10},
			"300", "30",
		},
		{
			"percentage rounds to 2 decimals",
			&model.Coupon{Code: "P15", DiscountType: model.DiscountTypePercentage, DiscountValue: 15},
			"333.33", "50",
		},
		{
			"hundred percent clamps at subtotal",
			&model.Coupon{Code: "FULL", DiscountType: model.DiscountTypePercentage, DiscountValue: 150},
			"200", "200",
		},
		{
			"fixed amount",
			&model.Coupon{Code: "F50", DiscountType: model.DiscountTypeFixed, DiscountValue: 50, UsageLimit: &limit},
			"300", "50",
		},
		{
			"fixed clamps at subtotal",
			&model.Coupon{Code: "F500", DiscountType: model.DiscountTypeFixed, DiscountValue: 500},
			"120", "120",
		},
		{
			"unknown type discounts nothing",
			&model.Coupon{Code: "X", DiscountType: "bogus", DiscountValue: 50},
			"300", "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountFor(tt.coupon, d(tt.subtotal))
			require.True(t, got.Equal(d(tt.expected)), "got %s want %s", got, tt.expected)
		})
	}
}

func TestUnitPrice(t *testing.T) {
	customNote := model.Product{Name: "birthday-note", Type: model.ProductTypeCustomNote, BasePrice: 199}
	bouquet := model.Product{Name: "note-bouquet", Type: model.ProductTypeNoteBouquet, BasePrice: 499}
	frame := model.Product{Name: "photo-frame", Type: model.ProductTypePhotoFrame, BasePrice: 899}

	tests := []struct {
		name     string
		product  model.Product
		custom   Customization
		expected string
	}{
		{"plain custom note", customNote, Customization{}, "199"},
		{"short name is free", customNote, Customization{NameOnNote: "Asha"}, "199"},
		{"six letters exactly free", customNote, Customization{NameOnNote: "Ananya"}, "199"},
		{"per-letter beyond six", customNote, Customization{NameOnNote: "Satyaprakash"}, "289"}, // 6 extra letters * 15
		{"spaces are not letters", customNote, Customization{NameOnNote: "Anu Rao"}, "199"},
		{"denomination added", customNote, Customization{Denomination: 200}, "399"},
		{"name and denomination", customNote, Customization{NameOnNote: "Satyaprakash", Denomination: 50}, "339"},
		{"bouquet counts notes", bouquet, Customization{Denomination: 10, NoteCount: 12}, "619"},
		{"bouquet defaults one note", bouquet, Customization{Denomination: 20}, "519"},
		{"frame ignores customization", frame, Customization{NameOnNote: "Satyaprakash", Denomination: 500}, "899"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UnitPrice(tt.product, tt.custom)
			require.True(t, got.Equal(d(tt.expected)), "got %s want %s", got, tt.expected)
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Run("two units at 500 ship free with no coupon", func(t *testing.T) {
		s := Summarize([]Line{{UnitPrice: d("500"), Quantity: 2}}, nil)
		require.True(t, s.Subtotal.Equal(d("1000")))
		require.True(t, s.Discount.IsZero())
		require.True(t, s.ShippingFee.IsZero())
		require.True(t, s.Total.Equal(d("1000")))
	})

	t.Run("ten percent coupon pulls order under free shipping", func(t *testing.T) {
		ten := &model.Coupon{Code: "TEN", DiscountType: model.DiscountTypePercentage, DiscountValue: 10}
		s := Summarize([]Line{{UnitPrice: d("300"), Quantity: 1}}, ten)
		require.True(t, s.Subtotal.Equal(d("300")))
		require.True(t, s.Discount.Equal(d("30")))
		require.True(t, s.ShippingFee.Equal(d("68")))
		require.True(t, s.Total.Equal(d("338")))
	})

	t.Run("multiple lines accumulate", func(t *testing.T) {
		s := Summarize([]Line{
			{UnitPrice: d("289"), Quantity: 2},
			{UnitPrice: d("619"), Quantity: 1},
		}, nil)
		require.True(t, s.Subtotal.Equal(d("1197")))
		require.True(t, s.ShippingFee.IsZero())
		require.True(t, s.Total.Equal(d("1197")))
	})

	t.Run("empty cart totals zero plus shipping", func(t *testing.T) {
		s := Summarize(nil, nil)
		require.True(t, s.Subtotal.IsZero())
		require.True(t, s.Total.Equal(d("68")))
	})
}
