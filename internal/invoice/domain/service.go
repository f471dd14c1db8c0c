package domain

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Number is a lenient decimal for patch payloads: JSON numbers and numeric
// strings parse normally, anything unparseable decodes as zero so the model
// never stores a non-numeric value in a numeric field.
type Number struct {
	decimal.Decimal
}

func (n *Number) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		n.Decimal = decimal.Zero
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		raw = strings.TrimSpace(s)
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		n.Decimal = decimal.Zero
		return nil
	}
	n.Decimal = parsed
	return nil
}

// Patch types. A nil field leaves the stored value untouched; everything
// else replaces it verbatim. No validation happens at the mutation boundary.

type MetaPatch struct {
	Currency  *string `json:"currency"`
	Number    *string `json:"invoiceNumber"`
	IssueDate *string `json:"issueDate"`
	DueDate   *string `json:"dueDate"`
}

type PartyPatch struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

type BusinessPatch struct {
	PartyPatch
	Logo *string `json:"logo"`
}

type AddressPatch struct {
	Line1   *string `json:"line1"`
	Line2   *string `json:"line2"`
	State   *string `json:"state"`
	Country *string `json:"country"`
}

type ItemPatch struct {
	Description *string `json:"description"`
	Qty         *Number `json:"qty"`
	UnitPrice   *Number `json:"unitPrice"`
}

type SettingsPatch struct {
	TaxRate     *Number          `json:"taxRate"`
	Discount    *Number          `json:"discount"`
	AccentColor *string          `json:"accentColor"`
	Template    *TemplateVariant `json:"template"`
}

type NotesPatch struct {
	Notes  *string `json:"notes"`
	Terms  *string `json:"terms"`
	Footer *string `json:"footer"`
}

// Session is the editing session's state container: one invoice, mutated in
// place by field-level patches, readable as a consistent snapshot. Patching
// one sub-object never alters its siblings. Implementations are injected;
// there is no ambient singleton.
type Session interface {
	// Current returns a snapshot of the invoice and the mutation revision.
	// The revision increments on every successful mutation.
	Current() (Invoice, uint64)

	PatchMeta(patch MetaPatch)
	PatchBusiness(patch BusinessPatch)
	PatchBusinessAddress(patch AddressPatch)
	PatchClient(patch PartyPatch)
	PatchClientAddress(patch AddressPatch)
	PatchSettings(patch SettingsPatch)
	PatchNotes(patch NotesPatch)

	// AddItem appends a fresh empty row and returns it. Ids never collide
	// with any item seen earlier in the session.
	AddItem() LineItem
	// UpdateItem merges patch into the matching row; unknown ids are a no-op.
	UpdateItem(id string, patch ItemPatch)
	// RemoveItem drops the matching row; unknown ids are a no-op. Removing
	// the last row is permitted.
	RemoveItem(id string)

	// Reset discards all mutations and reinstates a fresh default invoice.
	// The default row gets a newly generated id.
	Reset() Invoice

	// Watch registers for revision notifications. The returned cancel must
	// be called when the watcher goes away.
	Watch() (<-chan uint64, func())
}
