package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney_KnownCurrency(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{name: "grouped dollars", amount: "1234.5", code: "USD", want: "$1,234.50"},
		{name: "whole amount", amount: "500", code: "USD", want: "$500.00"},
		{name: "rounds to cents", amount: "49.975", code: "USD", want: "$49.98"},
		{name: "zero", amount: "0", code: "USD", want: "$0.00"},
		{name: "negative", amount: "-15", code: "USD", want: "-$15.00"},
		{name: "lowercase code", amount: "10", code: "usd", want: "$10.00"},
		{name: "euro", amount: "99.9", code: "EUR", want: "€99.90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Money(decimal.RequireFromString(tc.amount), tc.code)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMoney_VeryLargeAmountsKeepEveryDigit(t *testing.T) {
	// Amounts past float64's integer range must not lose grouping digits.
	got := Money(decimal.RequireFromString("12345678901234567890.5"), "USD")
	assert.Equal(t, "$12,345,678,901,234,567,890.50", got)

	got = Money(decimal.RequireFromString("-98765432109876543210.99"), "USD")
	assert.Equal(t, "-$98,765,432,109,876,543,210.99", got)
}

func TestMoney_UnknownCodeFallsBack(t *testing.T) {
	got := Money(decimal.RequireFromString("12"), "WAT")
	assert.Equal(t, "WAT 12.00", got)
}

func TestMoney_BlankCodeFallsBackToUSD(t *testing.T) {
	got := Money(decimal.RequireFromString("12"), "")
	assert.Equal(t, "USD 12.00", got)
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Mar 01, 2026", Date("2026-03-01"))
	assert.Equal(t, "", Date(""))
	// Unparseable input passes through so a half-typed date still shows.
	assert.Equal(t, "2026-3", Date("2026-3"))
	assert.Equal(t, "soon", Date("soon"))
}

func TestQuantity(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{raw: "2", want: "2"},
		{raw: "2.50", want: "2.5"},
		{raw: "0.5", want: "0.5"},
		{raw: "3.000", want: "3"},
		{raw: "0", want: "0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Quantity(decimal.RequireFromString(tc.raw)), "quantity %s", tc.raw)
	}
}
