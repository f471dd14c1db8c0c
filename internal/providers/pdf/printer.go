package pdf

import (
	"context"
	"fmt"
	"regexp"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/format"
)

var (
	colorInk  = &props.Color{Red: 26, Green: 31, Blue: 54}
	colorGray = &props.Color{Red: 105, Green: 115, Blue: 134}

	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// MarotoPrinter implements Printer with maroto's A4 paginated layout.
type MarotoPrinter struct{}

func NewPrinter() Printer {
	return &MarotoPrinter{}
}

func (p *MarotoPrinter) Print(ctx context.Context, inv domain.Invoice) (*PrintJob, error) {
	_ = ctx

	title := inv.Meta.Number
	if title == "" {
		title = "invoice"
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(0).WithRightMargin(0).
		WithTopMargin(0).WithBottomMargin(0).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)
	accent := accentColor(inv.Settings.AccentColor)
	cur := inv.Meta.Currency

	m.AddRow(16,
		text.NewCol(6, inv.Business.Name, props.Text{
			Size: 16, Style: fontstyle.Bold, Top: 5, Left: 10, Color: colorInk,
		}),
		text.NewCol(6, "INVOICE", props.Text{
			Size: 22, Style: fontstyle.Bold, Top: 4, Right: 10, Align: align.Right, Color: accent,
		}),
	)

	m.AddRow(22,
		col.New(6).Add(
			text.New(inv.Business.Address.Line1, props.Text{Size: 9, Top: 0, Left: 10, Color: colorGray}),
			text.New(inv.Business.Address.Line2, props.Text{Size: 9, Top: 4, Left: 10, Color: colorGray}),
			text.New(locality(inv.Business.Address), props.Text{Size: 9, Top: 8, Left: 10, Color: colorGray}),
			text.New(inv.Business.Email, props.Text{Size: 9, Top: 12, Left: 10, Color: colorGray}),
			text.New(inv.Business.Phone, props.Text{Size: 9, Top: 16, Left: 10, Color: colorGray}),
		),
		col.New(6).Add(
			text.New("Invoice #: "+inv.Meta.Number, props.Text{Size: 9, Top: 0, Right: 10, Align: align.Right}),
			text.New("Issue Date: "+format.Date(inv.Meta.IssueDate), props.Text{Size: 9, Top: 4, Right: 10, Align: align.Right}),
			text.New("Due Date: "+format.Date(inv.Meta.DueDate), props.Text{Size: 9, Top: 8, Right: 10, Align: align.Right}),
		),
	)

	m.AddRow(26,
		col.New(6).Add(
			text.New("BILL TO", props.Text{Size: 8, Style: fontstyle.Bold, Left: 10, Color: colorGray}),
			text.New(inv.Client.Name, props.Text{Size: 11, Style: fontstyle.Bold, Top: 5, Left: 10, Color: colorInk}),
			text.New(inv.Client.Address.Line1, props.Text{Size: 9, Top: 10, Left: 10, Color: colorGray}),
			text.New(locality(inv.Client.Address), props.Text{Size: 9, Top: 14, Left: 10, Color: colorGray}),
			text.New(inv.Client.Email, props.Text{Size: 9, Top: 18, Left: 10, Color: colorGray}),
		),
		col.New(6),
	)

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, item := range inv.Items {
		m.AddRows(itemRow(item, cur))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	totals := inv.ComputeTotals()
	m.AddRows(totalRow("Subtotal", format.Money(totals.Subtotal, cur), false, nil))
	m.AddRows(totalRow("Tax", format.Money(totals.Tax, cur), false, nil))
	m.AddRows(totalRow("Discount", "-"+format.Money(totals.Discount, cur), false, nil))
	m.AddRows(totalRow("Total", format.Money(totals.Total, cur), true, accent))

	if inv.Notes.Notes != "" {
		m.AddRow(14,
			col.New(12).Add(
				text.New("NOTES", props.Text{Size: 8, Style: fontstyle.Bold, Top: 4, Left: 10, Color: colorGray}),
				text.New(inv.Notes.Notes, props.Text{Size: 9, Top: 9, Left: 10, Color: colorInk}),
			),
		)
	}
	if inv.Notes.Terms != "" {
		m.AddRow(14,
			col.New(12).Add(
				text.New("TERMS", props.Text{Size: 8, Style: fontstyle.Bold, Top: 4, Left: 10, Color: colorGray}),
				text.New(inv.Notes.Terms, props.Text{Size: 9, Top: 9, Left: 10, Color: colorInk}),
			),
		)
	}
	if inv.Notes.Footer != "" {
		m.AddRow(12,
			text.NewCol(12, inv.Notes.Footer, props.Text{
				Size: 8, Top: 6, Align: align.Center, Color: colorGray,
			}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("print: generate document: %w", err)
	}
	return &PrintJob{Document: doc.GetBytes(), Title: title}, nil
}

func tableHeaderRow() core.Row {
	style := props.Text{Size: 9, Style: fontstyle.Bold, Top: 2, Color: colorInk}
	right := style
	right.Align = align.Right
	left := style
	left.Left = 10
	rightPad := right
	rightPad.Right = 10
	return row.New(8).Add(
		text.NewCol(6, "Description", left),
		text.NewCol(2, "Qty", right),
		text.NewCol(2, "Unit Price", right),
		text.NewCol(2, "Total", rightPad),
	)
}

func itemRow(item domain.LineItem, currency string) core.Row {
	desc := item.Description
	if desc == "" {
		desc = "-"
	}
	return row.New(8).Add(
		text.NewCol(6, desc, props.Text{Size: 9, Top: 2, Left: 10}),
		text.NewCol(2, format.Quantity(item.Qty), props.Text{Size: 9, Top: 2, Align: align.Right}),
		text.NewCol(2, format.Money(item.UnitPrice, currency), props.Text{Size: 9, Top: 2, Align: align.Right}),
		text.NewCol(2, format.Money(item.Amount(), currency), props.Text{Size: 9, Top: 2, Align: align.Right, Right: 10}),
	)
}

func totalRow(label, value string, final bool, accent *props.Color) core.Row {
	size := 9.0
	style := fontstyle.Normal
	color := colorInk
	if final {
		size = 12
		style = fontstyle.Bold
		if accent != nil {
			color = accent
		}
	}
	return row.New(7).Add(
		col.New(8),
		text.NewCol(2, label, props.Text{Size: size, Style: style, Top: 1, Color: color}),
		text.NewCol(2, value, props.Text{Size: size, Style: style, Top: 1, Align: align.Right, Right: 10, Color: color}),
	)
}

// accentColor parses the six-digit hex accent; anything else falls back to
// the ink color.
func accentColor(value string) *props.Color {
	if !hexColorPattern.MatchString(value) {
		return colorInk
	}
	parse := func(s string) int {
		n := 0
		fmt.Sscanf(s, "%02x", &n)
		return n
	}
	return &props.Color{
		Red:   parse(value[1:3]),
		Green: parse(value[3:5]),
		Blue:  parse(value[5:7]),
	}
}

func locality(a domain.Address) string {
	switch {
	case a.State == "" && a.Country == "":
		return ""
	case a.State == "":
		return a.Country
	case a.Country == "":
		return a.State
	}
	return a.State + ", " + a.Country
}
