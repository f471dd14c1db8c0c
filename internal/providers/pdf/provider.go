// Package pdf is the paginated print facility. Unlike the export pipeline
// it never rasterizes: the invoice is handed to the platform's own A4
// renderer, which paginates long item lists itself.
package pdf

import (
	"context"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
)

// PrintJob is a finished print document.
type PrintJob struct {
	Document []byte
	Title    string
}

// Printer renders an invoice as a paginated A4 document with zero margins
// and exact color reproduction.
type Printer interface {
	Print(ctx context.Context, inv domain.Invoice) (*PrintJob, error)
}
