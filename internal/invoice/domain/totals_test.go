package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInvoice(items []LineItem, taxRate, discount decimal.Decimal) Invoice {
	inv := DefaultInvoice(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "USD")
	inv.Items = items
	inv.Settings.TaxRate = taxRate
	inv.Settings.Discount = discount
	return inv
}

func item(qty, unit string) LineItem {
	return LineItem{
		ID:        "item",
		Qty:       decimal.RequireFromString(qty),
		UnitPrice: decimal.RequireFromString(unit),
	}
}

// TestComputeTotals_Derivation checks the full chain on a known invoice:
// 2 x 100 with 10% tax and a 5.00 discount lands at 215.00.
func TestComputeTotals_Derivation(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("2", "100")},
		decimal.RequireFromString("10"),
		decimal.RequireFromString("5"),
	)

	totals := inv.ComputeTotals()
	assert.True(t, totals.Subtotal.Equal(decimal.RequireFromString("200")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("20")), "tax %s", totals.Tax)
	assert.True(t, totals.Discount.Equal(decimal.RequireFromString("5")), "discount %s", totals.Discount)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("215")), "total %s", totals.Total)
}

func TestSubtotal_SumsAllItems(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("1", "19.99"), item("0.5", "100"), item("3", "0")},
		decimal.Zero, decimal.Zero,
	)
	assert.True(t, inv.Subtotal().Equal(decimal.RequireFromString("69.99")))
}

func TestSubtotal_NoItemsIsZero(t *testing.T) {
	inv := testInvoice(nil, decimal.Zero, decimal.Zero)
	assert.True(t, inv.Subtotal().IsZero())
	assert.True(t, inv.Total().IsZero())
}

func TestTaxAmount_NegativeRateClampsToZero(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("1", "100")},
		decimal.RequireFromString("-25"),
		decimal.Zero,
	)
	assert.True(t, inv.TaxAmount().IsZero())
	assert.True(t, inv.Total().Equal(decimal.RequireFromString("100")))
}

func TestTaxAmount_RatesAboveHundredApplyUncapped(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("1", "100")},
		decimal.RequireFromString("150"),
		decimal.Zero,
	)
	assert.True(t, inv.TaxAmount().Equal(decimal.RequireFromString("150")))
}

func TestDiscountAmount_NegativeClampsToZero(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("1", "100")},
		decimal.Zero,
		decimal.RequireFromString("-10"),
	)
	assert.True(t, inv.DiscountAmount().IsZero())
}

// A discount larger than subtotal plus tax produces a negative total; the
// model stores it as-is.
func TestTotal_MayGoNegative(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("1", "10")},
		decimal.Zero,
		decimal.RequireFromString("25"),
	)
	assert.True(t, inv.Total().Equal(decimal.RequireFromString("-15")))
}

func TestComputeTotals_FractionalQuantities(t *testing.T) {
	inv := testInvoice(
		[]LineItem{item("2.5", "19.99")},
		decimal.RequireFromString("7.25"),
		decimal.Zero,
	)

	totals := inv.ComputeTotals()
	require.True(t, totals.Subtotal.Equal(decimal.RequireFromString("49.975")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.RequireFromString("3.62318750")), "tax %s", totals.Tax)
}
