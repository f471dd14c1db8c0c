package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain number", raw: `12.5`, want: "12.5"},
		{name: "numeric string", raw: `"7"`, want: "7"},
		{name: "padded numeric string", raw: `" 3.25 "`, want: "3.25"},
		{name: "negative", raw: `-4`, want: "-4"},
		{name: "null coerces to zero", raw: `null`, want: "0"},
		{name: "garbage coerces to zero", raw: `"abc"`, want: "0"},
		{name: "empty string coerces to zero", raw: `""`, want: "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Number
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &n))
			assert.Equal(t, tc.want, n.String())
		})
	}
}

func TestNumber_InsidePatch(t *testing.T) {
	var patch ItemPatch
	require.NoError(t, json.Unmarshal([]byte(`{"qty":"not a number","unitPrice":19.99}`), &patch))

	require.NotNil(t, patch.Qty)
	assert.True(t, patch.Qty.IsZero())
	require.NotNil(t, patch.UnitPrice)
	assert.Equal(t, "19.99", patch.UnitPrice.String())
	assert.Nil(t, patch.Description)
}

func TestTemplateVariant_Valid(t *testing.T) {
	assert.True(t, TemplateModern.Valid())
	assert.True(t, TemplateClassic.Valid())
	assert.True(t, TemplateMinimal.Valid())
	assert.False(t, TemplateVariant("vintage").Valid())
	assert.False(t, TemplateVariant("").Valid())
}

func TestInvoice_CloneIsIndependent(t *testing.T) {
	orig := DefaultInvoice(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "USD")
	clone := orig.Clone()

	require.Len(t, clone.Items, 1)
	clone.Items[0].Description = "mutated"
	clone.Business.Name = "mutated"

	assert.Equal(t, "Service Fee", orig.Items[0].Description)
	assert.Equal(t, "Your Business Name", orig.Business.Name)
}

func TestDefaultInvoice_Shape(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	inv := DefaultInvoice(now, "")

	assert.Equal(t, "USD", inv.Meta.Currency)
	assert.Equal(t, "INV-2026-001", inv.Meta.Number)
	assert.Equal(t, "2026-03-01", inv.Meta.IssueDate)
	assert.Equal(t, "2026-03-08", inv.Meta.DueDate)
	require.Len(t, inv.Items, 1)
	assert.NotEmpty(t, inv.Items[0].ID)
	assert.Equal(t, TemplateModern, inv.Settings.Template)
	assert.Equal(t, "#7C3AED", inv.Settings.AccentColor)
}
