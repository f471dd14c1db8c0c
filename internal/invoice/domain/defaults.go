package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dueInDays = 7

// DefaultInvoice builds the invoice a fresh session starts from: issued
// today, due in a week, one default line item, the given default currency.
func DefaultInvoice(now time.Time, currency string) Invoice {
	if currency == "" {
		currency = "USD"
	}
	return Invoice{
		Meta: Meta{
			Currency:  currency,
			Number:    fmt.Sprintf("INV-%d-001", now.Year()),
			IssueDate: now.Format("2006-01-02"),
			DueDate:   now.AddDate(0, 0, dueInDays).Format("2006-01-02"),
		},
		Business: BrandedParty{
			Party: Party{
				Name: "Your Business Name",
				Address: Address{
					Line1:   "Street Address",
					Line2:   "Suite / Floor",
					State:   "State",
					Country: "United States",
				},
				Phone: "+1 555-0100",
				Email: "billing@business.com",
			},
		},
		Client: Party{
			Name: "Client Company",
			Address: Address{
				Line1:   "Client Street",
				State:   "State",
				Country: "United States",
			},
			Phone: "+1 555-0199",
			Email: "accounts@client.com",
		},
		Items: []LineItem{
			{
				ID:          uuid.NewString(),
				Description: "Service Fee",
				Qty:         decimal.NewFromInt(1),
				UnitPrice:   decimal.NewFromInt(500),
			},
		},
		Settings: Settings{
			TaxRate:     decimal.Zero,
			Discount:    decimal.Zero,
			AccentColor: "#7C3AED",
			Template:    TemplateModern,
		},
		Notes: Notes{
			Notes:  "Thank you for your business.",
			Terms:  "Payment due within 7 days.",
			Footer: "SpeedyBill",
		},
	}
}
