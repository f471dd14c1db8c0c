package render

import (
	"image/color"
	"strings"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/format"
)

// Style rules keyed off the template variant: the accent frame each variant
// draws around the page.
type frame struct {
	top, bottom, left float64
}

// variantFrame is the closed mapping over template variants. New variants
// must be added here.
func variantFrame(v domain.TemplateVariant) frame {
	switch v {
	case domain.TemplateModern:
		return frame{top: 8}
	case domain.TemplateClassic:
		return frame{top: 4, bottom: 4}
	case domain.TemplateMinimal:
		return frame{left: 4}
	default:
		// Unknown variants render as modern rather than unframed.
		return frame{top: 8}
	}
}

var (
	colorInk     = color.RGBA{R: 0x1A, G: 0x1F, B: 0x36, A: 255}
	colorMuted   = color.RGBA{R: 0x6B, G: 0x72, B: 0x80, A: 255}
	colorFaint   = color.RGBA{R: 0x9C, G: 0xA3, B: 0xAF, A: 255}
	colorRule    = color.RGBA{R: 0xD1, G: 0xD5, B: 0xDB, A: 255}
	colorRowRule = color.RGBA{R: 0xE5, G: 0xE7, B: 0xEB, A: 255}
	colorTableBG = color.RGBA{R: 0xF9, G: 0xFA, B: 0xFB, A: 255}
	colorPaper   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	pagePadding = 40.0
	lineFactor  = 1.45
	// Approximate advance per glyph as a fraction of the font size; used
	// only for wrapping, the rasterizer draws with real font metrics.
	glyphFactor = 0.52

	displayMargin = 24
)

// Renderer lays out an invoice snapshot into a measured Document.
type Renderer struct{}

func NewRenderer() *Renderer { return &Renderer{} }

type layout struct {
	doc *Document
	y   float64
}

func (l *layout) box(b Box) {
	l.doc.Boxes = append(l.doc.Boxes, b)
}

// text places one line and returns its height without advancing the cursor.
func (l *layout) text(x, y, w float64, s string, size float64, bold bool, align Align, c color.RGBA) float64 {
	if s == "" {
		return 0
	}
	l.box(Box{
		Kind: BoxText, X: x, Y: y, W: w, H: size * lineFactor,
		Text: s, FontSize: size, Bold: bold, Align: align, Color: c,
	})
	return size * lineFactor
}

// para places wrapped text and returns the total height consumed.
func (l *layout) para(x, y, w float64, s string, size float64, bold bool, align Align, c color.RGBA) float64 {
	used := 0.0
	for _, line := range wrapText(s, w, size) {
		used += l.text(x, y+used, w, line, size, bold, align, c)
	}
	return used
}

func (l *layout) rule(y float64, c color.RGBA) {
	l.box(Box{Kind: BoxRect, X: pagePadding, Y: y, W: l.doc.Width - 2*pagePadding, H: 1, Color: c})
}

// Render lays out the invoice at its natural size. The result carries the
// on-screen decoration (margin, paper shadow); export snapshots strip it.
func (r *Renderer) Render(inv domain.Invoice) *Document {
	accent := parseHex(inv.Settings.AccentColor)
	fr := variantFrame(inv.Settings.Template)
	cur := inv.Meta.Currency

	doc := &Document{
		Width:      PageWidth,
		Background: colorPaper,
		Margin:     displayMargin,
		Shadow:     true,
		Transform:  1,
	}
	l := &layout{doc: doc, y: pagePadding + fr.top}

	colW := (PageWidth - 2*pagePadding) / 2

	// Header: business identity left, invoice meta right.
	left := l.y
	if inv.Business.Logo != "" {
		l.box(Box{Kind: BoxImage, X: pagePadding, Y: left, W: 120, H: 56, DataURI: inv.Business.Logo})
		left += 56 + 16
	}
	left += l.para(pagePadding, left, colW, inv.Business.Name, 24, true, AlignLeft, colorInk)
	left += 8
	left += l.para(pagePadding, left, colW, inv.Business.Address.Line1, 13, false, AlignLeft, colorMuted)
	left += l.para(pagePadding, left, colW, inv.Business.Address.Line2, 13, false, AlignLeft, colorMuted)
	left += l.para(pagePadding, left, colW, joinLocality(inv.Business.Address), 13, false, AlignLeft, colorMuted)
	left += 8
	left += l.para(pagePadding, left, colW, inv.Business.Email, 13, false, AlignLeft, colorMuted)
	left += l.para(pagePadding, left, colW, inv.Business.Phone, 13, false, AlignLeft, colorMuted)

	right := l.y
	rx := PageWidth - pagePadding - colW
	right += l.text(rx, right, colW, "INVOICE", 36, true, AlignRight, accent)
	right += 14
	right += l.text(rx, right, colW, "Invoice #: "+inv.Meta.Number, 13, false, AlignRight, colorInk)
	right += l.text(rx, right, colW, "Issue Date: "+format.Date(inv.Meta.IssueDate), 13, false, AlignRight, colorInk)
	right += l.text(rx, right, colW, "Due Date: "+format.Date(inv.Meta.DueDate), 13, false, AlignRight, colorInk)

	l.y = maxF(left, right) + 36

	// From / Bill To.
	fromY := l.y
	fromY += l.text(pagePadding, fromY, colW, "FROM", 11, true, AlignLeft, colorFaint)
	fromY += 6
	fromY += l.para(pagePadding, fromY, colW, inv.Business.Name, 14, true, AlignLeft, colorInk)
	fromY += l.para(pagePadding, fromY, colW, inv.Business.Address.Line1, 13, false, AlignLeft, colorMuted)
	fromY += l.para(pagePadding, fromY, colW, inv.Business.Address.Line2, 13, false, AlignLeft, colorMuted)
	fromY += l.para(pagePadding, fromY, colW, joinLocality(inv.Business.Address), 13, false, AlignLeft, colorMuted)
	fromY += l.para(pagePadding, fromY, colW, inv.Business.Email, 13, false, AlignLeft, colorMuted)

	billY := l.y
	bx := pagePadding + colW + 24
	billW := PageWidth - pagePadding - bx
	billY += l.text(bx, billY, billW, "BILL TO", 11, true, AlignLeft, colorFaint)
	billY += 6
	billY += l.para(bx, billY, billW, inv.Client.Name, 14, true, AlignLeft, colorInk)
	billY += l.para(bx, billY, billW, inv.Client.Address.Line1, 13, false, AlignLeft, colorMuted)
	billY += l.para(bx, billY, billW, inv.Client.Address.Line2, 13, false, AlignLeft, colorMuted)
	billY += l.para(bx, billY, billW, joinLocality(inv.Client.Address), 13, false, AlignLeft, colorMuted)
	billY += l.para(bx, billY, billW, inv.Client.Email, 13, false, AlignLeft, colorMuted)

	l.y = maxF(fromY, billY) + 30

	// Items table.
	tableW := PageWidth - 2*pagePadding
	descW := tableW * 0.46
	numW := tableW * 0.18
	headerH := 36.0
	l.box(Box{Kind: BoxRect, X: pagePadding, Y: l.y, W: tableW, H: headerH, Color: colorTableBG})
	cellY := l.y + (headerH-13*lineFactor)/2
	l.text(pagePadding+12, cellY, descW, "Description", 13, true, AlignLeft, colorInk)
	l.text(pagePadding+descW, cellY, numW, "Qty", 13, true, AlignRight, colorInk)
	l.text(pagePadding+descW+numW, cellY, numW, "Unit Price", 13, true, AlignRight, colorInk)
	l.text(pagePadding+descW+2*numW, cellY, numW, "Total", 13, true, AlignRight, colorInk)
	l.y += headerH
	l.rule(l.y, colorRule)

	for _, item := range inv.Items {
		rowTop := l.y + 10
		desc := item.Description
		if desc == "" {
			desc = "-"
		}
		used := l.para(pagePadding+12, rowTop, descW-24, desc, 13, false, AlignLeft, colorInk)
		l.text(pagePadding+descW, rowTop, numW, format.Quantity(item.Qty), 13, false, AlignRight, colorInk)
		l.text(pagePadding+descW+numW, rowTop, numW, format.Money(item.UnitPrice, cur), 13, false, AlignRight, colorInk)
		l.text(pagePadding+descW+2*numW, rowTop, numW, format.Money(item.Amount(), cur), 13, true, AlignRight, colorInk)
		l.y = rowTop + maxF(used, 13*lineFactor) + 10
		l.rule(l.y, colorRowRule)
	}
	l.y += 26

	// Totals, right-aligned block.
	totals := inv.ComputeTotals()
	totalsW := 280.0
	tx := PageWidth - pagePadding - totalsW
	l.text(tx, l.y, totalsW/2, "Subtotal", 13, false, AlignLeft, colorInk)
	l.y += l.text(tx+totalsW/2, l.y, totalsW/2, format.Money(totals.Subtotal, cur), 13, false, AlignRight, colorInk)
	l.y += 6
	l.text(tx, l.y, totalsW/2, "Tax", 13, false, AlignLeft, colorInk)
	l.y += l.text(tx+totalsW/2, l.y, totalsW/2, format.Money(totals.Tax, cur), 13, false, AlignRight, colorInk)
	l.y += 6
	l.text(tx, l.y, totalsW/2, "Discount", 13, false, AlignLeft, colorInk)
	l.y += l.text(tx+totalsW/2, l.y, totalsW/2, "-"+format.Money(totals.Discount, cur), 13, false, AlignRight, colorInk)
	l.y += 10
	l.box(Box{Kind: BoxRect, X: tx, Y: l.y, W: totalsW, H: 1, Color: colorRule})
	l.y += 12
	l.text(tx, l.y, totalsW/2, "Total", 22, true, AlignLeft, accent)
	l.y += l.text(tx+totalsW/2, l.y, totalsW/2, format.Money(totals.Total, cur), 22, true, AlignRight, accent)
	l.y += 40

	// Notes and terms.
	bodyW := PageWidth - 2*pagePadding
	if inv.Notes.Notes != "" {
		l.y += l.text(pagePadding, l.y, bodyW, "NOTES", 11, true, AlignLeft, colorFaint)
		l.y += 4
		l.y += l.para(pagePadding, l.y, bodyW, inv.Notes.Notes, 13, false, AlignLeft, colorMuted)
		l.y += 20
	}
	if inv.Notes.Terms != "" {
		l.y += l.text(pagePadding, l.y, bodyW, "TERMS", 11, true, AlignLeft, colorFaint)
		l.y += 4
		l.y += l.para(pagePadding, l.y, bodyW, inv.Notes.Terms, 13, false, AlignLeft, colorMuted)
		l.y += 20
	}

	// Footer, centered at the bottom of the page.
	l.y += 30
	footerH := l.text(pagePadding, l.y, bodyW, inv.Notes.Footer, 11, false, AlignCenter, colorFaint)
	l.y += footerH

	doc.Height = maxF(PageMinHeight, l.y+pagePadding+fr.bottom)

	// Accent frame, drawn from the final measured height.
	if fr.top > 0 {
		doc.Boxes = append([]Box{{Kind: BoxRect, X: 0, Y: 0, W: PageWidth, H: fr.top, Color: accent}}, doc.Boxes...)
	}
	if fr.bottom > 0 {
		l.box(Box{Kind: BoxRect, X: 0, Y: doc.Height - fr.bottom, W: PageWidth, H: fr.bottom, Color: accent})
	}
	if fr.left > 0 {
		l.box(Box{Kind: BoxRect, X: 0, Y: 0, W: fr.left, H: doc.Height, Color: accent})
	}

	return doc
}

func joinLocality(a domain.Address) string {
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

// wrapText greedily wraps on spaces using the approximate glyph advance.
// Words longer than the line are emitted unbroken.
func wrapText(s string, maxWidth, fontSize float64) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	perLine := int(maxWidth / (fontSize * glyphFactor))
	if perLine < 1 {
		perLine = 1
	}

	var lines []string
	for _, hard := range strings.Split(s, "\n") {
		words := strings.Fields(hard)
		if len(words) == 0 {
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) <= perLine {
				line += " " + w
				continue
			}
			lines = append(lines, line)
			line = w
		}
		lines = append(lines, line)
	}
	return lines
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
