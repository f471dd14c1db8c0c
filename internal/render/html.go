package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/invoice/format"
	"github.com/shopspring/decimal"
)

const previewHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.Meta.Number}}</title>
  <style>
    :root {
      --accent: {{.Accent}};
      --font: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    }
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px;
      font-family: var(--font);
      color: #1a1f36;
      background: #f7f9fc;
      -webkit-font-smoothing: antialiased;
    }
    .scale-wrap {
      transform: scale({{.Scale}});
      transform-origin: top center;
      width: fit-content;
      margin: 0 auto;
    }
    .invoice-document {
      background: #ffffff;
      width: 794px;
      min-height: 1123px;
      margin: 0 auto;
      padding: 40px;
      box-shadow: 0 2px 5px rgba(0,0,0,0.08);
      display: flex;
      flex-direction: column;
      {{.FrameCSS}}
    }
    .header { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; margin-bottom: 40px; }
    .header-right { text-align: right; }
    .headline {
      margin: 0;
      font-size: 36px;
      font-weight: 900;
      text-transform: uppercase;
      letter-spacing: -0.5px;
      color: var(--accent);
    }
    .label {
      font-size: 11px;
      text-transform: uppercase;
      color: #8792a2;
      margin-bottom: 6px;
      font-weight: 600;
      letter-spacing: 0.3px;
    }
    .value { font-size: 14px; line-height: 1.5; color: #1a1f36; }
    .muted { font-size: 13px; color: #697386; }
    .logo { max-height: 56px; margin-bottom: 16px; }
    .parties { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; margin-bottom: 32px; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 30px; font-size: 14px; }
    th {
      text-align: left;
      border-bottom: 1px solid #e3e8ee;
      background: #f9fafb;
      padding: 10px 12px;
      font-weight: 600;
    }
    td { padding: 12px; border-bottom: 1px solid #e3e8ee; vertical-align: top; }
    .td-right { text-align: right; }
    .totals { margin-left: auto; width: 280px; font-size: 14px; margin-bottom: 40px; }
    .total-row { display: flex; justify-content: space-between; padding: 4px 0; }
    .total-final {
      border-top: 1px solid #e3e8ee;
      margin-top: 10px;
      padding-top: 10px;
      font-weight: 800;
      font-size: 22px;
      color: var(--accent);
    }
    .notes { font-size: 13px; color: #374151; white-space: pre-wrap; margin-top: 4px; }
    .footer {
      margin-top: auto;
      padding-top: 40px;
      text-align: center;
      font-size: 11px;
      color: #8792a2;
    }
  </style>
</head>
<body>
  <div class="scale-wrap">
  <article class="invoice-document">
    <div class="header">
      <section>
        {{if .Invoice.Business.Logo}}<img class="logo" src="{{.Invoice.Business.Logo}}" alt="Business logo">{{end}}
        <h1 style="margin: 0 0 8px; font-size: 24px;">{{.Invoice.Business.Name}}</h1>
        <div class="muted">{{.Invoice.Business.Address.Line1}}</div>
        {{if .Invoice.Business.Address.Line2}}<div class="muted">{{.Invoice.Business.Address.Line2}}</div>{{end}}
        <div class="muted">{{locality .Invoice.Business.Address}}</div>
        <div class="muted" style="margin-top: 8px;">{{.Invoice.Business.Email}}</div>
        <div class="muted">{{.Invoice.Business.Phone}}</div>
      </section>
      <section class="header-right">
        <h2 class="headline">Invoice</h2>
        <div class="value" style="margin-top: 16px;"><strong>Invoice #:</strong> {{.Invoice.Meta.Number}}</div>
        <div class="value"><strong>Issue Date:</strong> {{formatDate .Invoice.Meta.IssueDate}}</div>
        <div class="value"><strong>Due Date:</strong> {{formatDate .Invoice.Meta.DueDate}}</div>
      </section>
    </div>

    <div class="parties">
      <div>
        <div class="label">From</div>
        <div class="value"><strong>{{.Invoice.Business.Name}}</strong></div>
        <div class="muted">{{.Invoice.Business.Address.Line1}}</div>
        {{if .Invoice.Business.Address.Line2}}<div class="muted">{{.Invoice.Business.Address.Line2}}</div>{{end}}
        <div class="muted">{{locality .Invoice.Business.Address}}</div>
        <div class="muted">{{.Invoice.Business.Email}}</div>
      </div>
      <div>
        <div class="label">Bill To</div>
        <div class="value"><strong>{{.Invoice.Client.Name}}</strong></div>
        <div class="muted">{{.Invoice.Client.Address.Line1}}</div>
        {{if .Invoice.Client.Address.Line2}}<div class="muted">{{.Invoice.Client.Address.Line2}}</div>{{end}}
        <div class="muted">{{locality .Invoice.Client.Address}}</div>
        <div class="muted">{{.Invoice.Client.Email}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th class="td-right">Qty</th>
          <th class="td-right">Unit Price</th>
          <th class="td-right">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Invoice.Items}}
        <tr>
          <td>{{orDash .Description}}</td>
          <td class="td-right">{{formatQuantity .Qty}}</td>
          <td class="td-right">{{formatMoney .UnitPrice $.Invoice.Meta.Currency}}</td>
          <td class="td-right" style="font-weight: 600;">{{formatMoney .Amount $.Invoice.Meta.Currency}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <div class="total-row"><span>Subtotal</span><span>{{formatMoney .Totals.Subtotal .Invoice.Meta.Currency}}</span></div>
      <div class="total-row"><span>Tax</span><span>{{formatMoney .Totals.Tax .Invoice.Meta.Currency}}</span></div>
      <div class="total-row"><span>Discount</span><span>-{{formatMoney .Totals.Discount .Invoice.Meta.Currency}}</span></div>
      <div class="total-row total-final"><span>Total</span><span>{{formatMoney .Totals.Total .Invoice.Meta.Currency}}</span></div>
    </div>

    {{if .Invoice.Notes.Notes}}
    <div>
      <div class="label">Notes</div>
      <div class="notes">{{.Invoice.Notes.Notes}}</div>
    </div>
    {{end}}
    {{if .Invoice.Notes.Terms}}
    <div style="margin-top: 20px;">
      <div class="label">Terms</div>
      <div class="notes">{{.Invoice.Notes.Terms}}</div>
    </div>
    {{end}}

    <footer class="footer">{{.Invoice.Notes.Footer}}</footer>
  </article>
  </div>
</body>
</html>
`

// HTMLRenderer produces the on-screen preview document.
type HTMLRenderer struct {
	tpl *template.Template
}

type htmlInput struct {
	Invoice  domain.Invoice
	Totals   domain.Totals
	Accent   string
	Scale    float64
	FrameCSS template.CSS
}

func NewHTMLRenderer() *HTMLRenderer {
	funcs := template.FuncMap{
		"formatMoney":    func(d decimal.Decimal, cur string) string { return format.Money(d, cur) },
		"formatDate":     format.Date,
		"formatQuantity": format.Quantity,
		"locality":       joinLocality,
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
	}
	return &HTMLRenderer{
		tpl: template.Must(template.New("preview").Funcs(funcs).Parse(previewHTMLTemplate)),
	}
}

// RenderHTML renders the invoice preview at the given display scale.
func (r *HTMLRenderer) RenderHTML(inv domain.Invoice, scale float64) (string, error) {
	if scale <= 0 {
		scale = 1
	}
	accent := sanitizeColor(inv.Settings.AccentColor)

	var buf bytes.Buffer
	err := r.tpl.Execute(&buf, htmlInput{
		Invoice:  inv,
		Totals:   inv.ComputeTotals(),
		Accent:   accent,
		Scale:    scale,
		FrameCSS: frameCSS(inv.Settings.Template, accent),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// frameCSS is the HTML counterpart of variantFrame.
func frameCSS(v domain.TemplateVariant, accent string) template.CSS {
	fr := variantFrame(v)
	css := ""
	if fr.top > 0 {
		css += fmt.Sprintf("border-top: %.0fpx solid %s; ", fr.top, accent)
	}
	if fr.bottom > 0 {
		css += fmt.Sprintf("border-bottom: %.0fpx solid %s; ", fr.bottom, accent)
	}
	if fr.left > 0 {
		css += fmt.Sprintf("border-left: %.0fpx solid %s; ", fr.left, accent)
	}
	return template.CSS(css)
}
