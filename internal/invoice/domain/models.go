// Package domain contains the session-scoped invoice model.
package domain

import (
	"github.com/shopspring/decimal"
)

// TemplateVariant selects the document style. The set is closed; the
// renderer switches exhaustively over it.
type TemplateVariant string

const (
	TemplateModern  TemplateVariant = "modern"
	TemplateClassic TemplateVariant = "classic"
	TemplateMinimal TemplateVariant = "minimal"
)

// Valid reports whether v names a known variant.
func (v TemplateVariant) Valid() bool {
	switch v {
	case TemplateModern, TemplateClassic, TemplateMinimal:
		return true
	}
	return false
}

// Address is a free-text postal address. Line2 is optional.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// Meta carries invoice identity and dates. Dates are calendar dates held as
// ISO strings ("2006-01-02"); no ordering between issue and due date is
// enforced.
type Meta struct {
	Currency  string `json:"currency"`
	Number    string `json:"invoiceNumber"`
	IssueDate string `json:"issueDate"`
	DueDate   string `json:"dueDate"`
}

// Party identifies one side of the invoice. All fields are free text.
type Party struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email"`
}

// BrandedParty is a Party that may carry a logo, held as an already
// embeddable data-URI string. Only the business side is branded.
type BrandedParty struct {
	Party
	Logo string `json:"logo,omitempty"`
}

// LineItem is one billable row. The id is opaque, unique for the session
// lifetime, and stable across reorders and deletions. The row total is
// always derived, never stored.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Qty         decimal.Decimal `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Amount returns qty × unit price.
func (li LineItem) Amount() decimal.Decimal {
	return li.Qty.Mul(li.UnitPrice)
}

// Settings holds presentation and computation knobs. Values are stored
// exactly as written; clamping happens only on derived reads.
type Settings struct {
	TaxRate     decimal.Decimal `json:"taxRate"`
	Discount    decimal.Decimal `json:"discount"`
	AccentColor string          `json:"accentColor"`
	Template    TemplateVariant `json:"template"`
}

// Notes holds the free-text notes, terms and footer blocks.
type Notes struct {
	Notes  string `json:"notes"`
	Terms  string `json:"terms"`
	Footer string `json:"footer"`
}

// Invoice is the root aggregate, owned exclusively by the editing session.
type Invoice struct {
	Meta     Meta         `json:"meta"`
	Business BrandedParty `json:"business"`
	Client   Party        `json:"client"`
	Items    []LineItem   `json:"items"`
	Settings Settings     `json:"settings"`
	Notes    Notes        `json:"notes"`
}

// Clone returns a deep copy; the items slice is the only reference field.
func (inv Invoice) Clone() Invoice {
	out := inv
	out.Items = make([]LineItem, len(inv.Items))
	copy(out.Items, inv.Items)
	return out
}
