package domain

import "github.com/shopspring/decimal"

var pctDivisor = decimal.NewFromInt(100)

// Totals are the derived amounts for one invoice state. They are pure
// functions of the stored fields, recomputed on every read.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"taxAmount"`
	Discount decimal.Decimal `json:"discountAmount"`
	Total    decimal.Decimal `json:"total"`
}

// Subtotal sums qty × unit price over all line items.
func (inv Invoice) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Amount())
	}
	return sum
}

// TaxAmount applies the tax rate to the subtotal. Negative rates clamp to
// zero; positive rates apply uncapped.
func (inv Invoice) TaxAmount() decimal.Decimal {
	rate := inv.Settings.TaxRate
	if rate.IsNegative() {
		return decimal.Zero
	}
	return inv.Subtotal().Mul(rate).Div(pctDivisor)
}

// DiscountAmount is a flat subtraction in invoice currency, clamped at zero.
func (inv Invoice) DiscountAmount() decimal.Decimal {
	if inv.Settings.Discount.IsNegative() {
		return decimal.Zero
	}
	return inv.Settings.Discount
}

// Total may go negative when the discount exceeds subtotal plus tax; that is
// accepted, not clamped.
func (inv Invoice) Total() decimal.Decimal {
	return inv.Subtotal().Add(inv.TaxAmount()).Sub(inv.DiscountAmount())
}

// ComputeTotals evaluates all derived amounts at once.
func (inv Invoice) ComputeTotals() Totals {
	subtotal := inv.Subtotal()
	tax := inv.TaxAmount()
	discount := inv.DiscountAmount()
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal.Add(tax).Sub(discount),
	}
}
