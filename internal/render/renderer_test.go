package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() domain.Invoice {
	return domain.DefaultInvoice(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "USD")
}

func TestRender_NaturalSize(t *testing.T) {
	doc := NewRenderer().Render(sampleInvoice())

	w, h := doc.Size()
	assert.Equal(t, float64(PageWidth), w)
	assert.GreaterOrEqual(t, h, float64(PageMinHeight))
	assert.NotEmpty(t, doc.Boxes)
}

func TestRender_CarriesDisplayDecoration(t *testing.T) {
	doc := NewRenderer().Render(sampleInvoice())

	assert.Equal(t, 24.0, doc.Margin)
	assert.True(t, doc.Shadow)
	assert.Equal(t, 1.0, doc.Transform)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, doc.Background)
}

func TestRender_ColumnGeometry(t *testing.T) {
	doc := NewRenderer().Render(sampleInvoice())

	var headline *Box
	for i := range doc.Boxes {
		if doc.Boxes[i].Text == "INVOICE" {
			headline = &doc.Boxes[i]
			break
		}
	}
	require.NotNil(t, headline, "headline box missing")

	// The header columns split the printable width in half and the right
	// column ends at the page padding.
	colW := (float64(PageWidth) - 2*pagePadding) / 2
	assert.Equal(t, colW, headline.W)
	assert.Equal(t, float64(PageWidth)-pagePadding-colW, headline.X)
	assert.Equal(t, float64(PageWidth)-pagePadding, headline.X+headline.W)
}

func TestRender_HeightGrowsWithItems(t *testing.T) {
	r := NewRenderer()
	inv := sampleInvoice()
	base := r.Render(inv)

	for i := 0; i < 40; i++ {
		inv.Items = append(inv.Items, domain.LineItem{
			ID:          "extra",
			Description: "Line item that occupies a full row in the table",
			Qty:         decimal.NewFromInt(1),
			UnitPrice:   decimal.NewFromInt(10),
		})
	}
	tall := r.Render(inv)

	assert.Greater(t, tall.Height, base.Height)
	assert.Equal(t, base.Width, tall.Width)
}

func TestRender_VariantFrames(t *testing.T) {
	r := NewRenderer()
	accent := color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 255}

	cases := []struct {
		variant domain.TemplateVariant
		check   func(t *testing.T, doc *Document)
	}{
		{
			variant: domain.TemplateModern,
			check: func(t *testing.T, doc *Document) {
				top := doc.Boxes[0]
				assert.Equal(t, BoxRect, top.Kind)
				assert.Equal(t, 0.0, top.Y)
				assert.Equal(t, 8.0, top.H)
				assert.Equal(t, accent, top.Color)
			},
		},
		{
			variant: domain.TemplateClassic,
			check: func(t *testing.T, doc *Document) {
				top := doc.Boxes[0]
				assert.Equal(t, 4.0, top.H)
				bottom := doc.Boxes[len(doc.Boxes)-1]
				assert.Equal(t, doc.Height-4, bottom.Y)
				assert.Equal(t, accent, bottom.Color)
			},
		},
		{
			variant: domain.TemplateMinimal,
			check: func(t *testing.T, doc *Document) {
				left := doc.Boxes[len(doc.Boxes)-1]
				assert.Equal(t, 0.0, left.X)
				assert.Equal(t, 4.0, left.W)
				assert.Equal(t, doc.Height, left.H)
			},
		},
	}

	for _, tc := range cases {
		t.Run(string(tc.variant), func(t *testing.T) {
			inv := sampleInvoice()
			inv.Settings.Template = tc.variant
			tc.check(t, r.Render(inv))
		})
	}
}

func TestRender_UnknownVariantFallsBackToModern(t *testing.T) {
	inv := sampleInvoice()
	inv.Settings.Template = domain.TemplateVariant("vintage")

	doc := NewRenderer().Render(inv)
	top := doc.Boxes[0]
	assert.Equal(t, 8.0, top.H)
}

func TestRender_LogoBecomesImageBox(t *testing.T) {
	inv := sampleInvoice()
	inv.Business.Logo = "data:image/png;base64,AAAA"

	doc := NewRenderer().Render(inv)
	found := false
	for _, b := range doc.Boxes {
		if b.Kind == BoxImage {
			found = true
			assert.Equal(t, inv.Business.Logo, b.DataURI)
		}
	}
	require.True(t, found, "logo should produce an image box")
}

func TestSanitizeColor(t *testing.T) {
	assert.Equal(t, "#1A2B3C", sanitizeColor("#1A2B3C"))
	assert.Equal(t, "#abcdef", sanitizeColor("#abcdef"))
	assert.Equal(t, fallbackAccent, sanitizeColor("red"))
	assert.Equal(t, fallbackAccent, sanitizeColor("#12345"))
	assert.Equal(t, fallbackAccent, sanitizeColor("#1234567"))
	assert.Equal(t, fallbackAccent, sanitizeColor("123456"))
	assert.Equal(t, fallbackAccent, sanitizeColor(""))
	assert.Equal(t, fallbackAccent, sanitizeColor("#GGGGGG"))
}

func TestParseHex(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 255}, parseHex("#7C3AED"))
	assert.Equal(t, color.RGBA{R: 0, G: 0, B: 0, A: 255}, parseHex("#000000"))
	// Invalid input resolves through the sanitizer to the fallback accent.
	assert.Equal(t, color.RGBA{R: 0x7C, G: 0x3A, B: 0xED, A: 255}, parseHex("not a color"))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven eight nine ten", 100, 13)
	assert.Greater(t, len(lines), 1)

	assert.Nil(t, wrapText("", 100, 13))
	assert.Nil(t, wrapText("   ", 100, 13))

	// A single over-long word is emitted unbroken.
	long := wrapText("supercalifragilisticexpialidocious", 50, 13)
	require.Len(t, long, 1)
	assert.Equal(t, "supercalifragilisticexpialidocious", long[0])

	// Hard newlines always break.
	hard := wrapText("first\nsecond", 10000, 13)
	assert.Equal(t, []string{"first", "second"}, hard)
}

func TestJoinLocality(t *testing.T) {
	assert.Equal(t, "CA, United States", joinLocality(domain.Address{State: "CA", Country: "United States"}))
	assert.Equal(t, "CA", joinLocality(domain.Address{State: "CA"}))
	assert.Equal(t, "Japan", joinLocality(domain.Address{Country: "Japan"}))
	assert.Equal(t, "", joinLocality(domain.Address{}))
}
