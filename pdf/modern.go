package pdf

import (
	"github.com/billwise/billwise/internal/format"
	"github.com/billwise/billwise/internal/models"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Modern palette: blue accents on white, light gray zebra rows.
var (
	accentBlue = props.Color{Red: 37, Green: 99, Blue: 235}
	softGray   = props.Color{Red: 243, Green: 244, Blue: 246}
	midGray    = props.Color{Red: 107, Green: 114, Blue: 128}
	white      = props.Color{Red: 255, Green: 255, Blue: 255}
	paidGreen  = props.Color{Red: 22, Green: 163, Blue: 74}
	dueAmber   = props.Color{Red: 202, Green: 138, Blue: 4}
)

func buildModern(m core.Maroto, inv *models.Invoice) {
	modernHeader(m, inv)
	modernParties(m, inv)
	modernMeta(m, inv)
	modernItems(m, inv)
	modernTotals(m, inv)
	if inv.Payment.IsSet() {
		modernPayment(m, inv)
	}
	if inv.HasNotesOrTerms() {
		modernNotesTerms(m, inv)
	}
}

func modernHeader(m core.Maroto, inv *models.Invoice) {
	left := col.New(7)
	if b, ext, ok := decodeLogo(inv.Business.Logo); ok {
		left = col.New(2).Add(image.NewFromBytes(b, ext, props.Rect{Percent: 90}))
		m.AddRow(18,
			left,
			col.New(5).Add(
				text.New(inv.Business.Name, props.Text{Size: 16, Style: fontstyle.Bold, Top: 2}),
				text.New(inv.Business.Email, props.Text{Size: 9, Color: &midGray, Top: 10}),
			),
			modernTitleCol(inv),
		)
		return
	}
	m.AddRow(18,
		left.Add(
			text.New(inv.Business.Name, props.Text{Size: 16, Style: fontstyle.Bold, Top: 2}),
			text.New(inv.Business.Email, props.Text{Size: 9, Color: &midGray, Top: 10}),
		),
		modernTitleCol(inv),
	)
}

func modernTitleCol(inv *models.Invoice) core.Col {
	statusColor := dueAmber
	if inv.IsPaid() {
		statusColor = paidGreen
	}
	return col.New(5).Add(
		text.New("INVOICE", props.Text{Size: 20, Style: fontstyle.Bold, Align: align.Right, Color: &accentBlue}),
		text.New(statusLabel(inv), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 11, Color: &statusColor}),
	)
}

// modernParties renders the two-column from/to block. Optional business
// fields (website, tax number) and the client company are skipped when empty.
func modernParties(m core.Maroto, inv *models.Invoice) {
	m.AddRow(4)
	m.AddRow(6,
		text.NewCol(6, "From", props.Text{Size: 10, Style: fontstyle.Bold, Color: &accentBlue}),
		text.NewCol(6, "Bill To", props.Text{Size: 10, Style: fontstyle.Bold}),
	)

	from := partyLines(
		inv.Business.Name,
		inv.Business.Address,
		inv.Business.Phone,
		inv.Business.Email,
	)
	if inv.Business.Website != "" {
		from = append(from, inv.Business.Website)
	}
	if inv.Business.TaxNumber != "" {
		from = append(from, "GST: "+inv.Business.TaxNumber)
	}

	to := []string{inv.Client.Name}
	if inv.Client.Company != "" {
		to = append(to, inv.Client.Company)
	}
	to = append(to, partyLines(inv.Client.Address, inv.Client.Phone, inv.Client.Email)...)

	rows := max(len(from), len(to))
	for i := 0; i < rows; i++ {
		var fromLine, toLine string
		if i < len(from) {
			fromLine = from[i]
		}
		if i < len(to) {
			toLine = to[i]
		}
		style := props.Text{Size: 9}
		if i == 0 {
			style.Style = fontstyle.Bold
		}
		m.AddRow(4.5,
			text.NewCol(6, fromLine, style),
			text.NewCol(6, toLine, style),
		)
	}
}

// partyLines drops empty values and splits multi-line addresses.
func partyLines(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range splitLines(v) {
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func modernMeta(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	m.AddRow(5,
		text.NewCol(4, "Invoice Number", props.Text{Size: 8, Color: &midGray}),
		text.NewCol(4, "Invoice Date", props.Text{Size: 8, Color: &midGray}),
		text.NewCol(4, "Due Date", props.Text{Size: 8, Color: &midGray}),
	)
	m.AddRow(6,
		text.NewCol(4, inv.Number, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(4, format.Date(inv.IssueDate), props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(4, format.Date(inv.DueDate), props.Text{Size: 10, Style: fontstyle.Bold}),
	)
}

func modernItems(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	m.AddRows(row.New(8).Add(
		text.NewCol(6, "Description", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Left: 2}),
		text.NewCol(2, "Quantity", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Align: align.Center}),
		text.NewCol(2, "Unit Price", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Align: align.Center}),
		text.NewCol(2, "Amount", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Align: align.Right, Right: 2}),
	).WithStyle(&props.Cell{BackgroundColor: &accentBlue}))

	for i, it := range inv.Items {
		r := row.New(7).Add(
			text.NewCol(6, it.Description, props.Text{Size: 9, Top: 1.5, Left: 2}),
			text.NewCol(2, trimFloat(it.Quantity), props.Text{Size: 9, Top: 1.5, Align: align.Center}),
			text.NewCol(2, format.Currency(it.UnitPrice), props.Text{Size: 9, Top: 1.5, Align: align.Center}),
			text.NewCol(2, format.Currency(it.Amount), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Align: align.Right, Right: 2}),
		)
		if i%2 == 0 {
			r.WithStyle(&props.Cell{BackgroundColor: &softGray})
		}
		m.AddRows(r)
	}
}

// modernTotals renders subtotal, tax (with its percentage) and total, always
// in that order.
func modernTotals(m core.Maroto, inv *models.Invoice) {
	m.AddRow(4)
	m.AddRow(5,
		col.New(7),
		text.NewCol(3, "Subtotal", props.Text{Size: 9, Color: &midGray}),
		text.NewCol(2, format.Currency(inv.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(5,
		col.New(7),
		text.NewCol(3, "Tax ("+format.Percent(inv.TaxRate)+")", props.Text{Size: 9, Color: &midGray}),
		text.NewCol(2, format.Currency(inv.TaxAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(2, col.New(7), line.NewCol(5))
	m.AddRow(7,
		col.New(7),
		text.NewCol(3, "Total", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(2, format.Currency(inv.Total), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: &accentBlue}),
	)
}

// modernPayment renders the method-specific payload and, for UPI, a
// scannable QR code.
func modernPayment(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	m.AddRow(6, text.NewCol(12, "Payment Information", props.Text{Size: 10, Style: fontstyle.Bold}))
	m.AddRow(5,
		text.NewCol(3, inv.Payment.DisplayLabel(), props.Text{Size: 8, Color: &midGray}),
		text.NewCol(9, inv.Payment.DisplayValue(), props.Text{Size: 9}),
	)
	if qr := inv.Payment.QRPayload(); qr != "" {
		m.AddRow(5, text.NewCol(12, "Scan to Pay", props.Text{Size: 9, Style: fontstyle.Bold}))
		m.AddRow(30, code.NewQrCol(3, qr, props.Rect{Percent: 100}))
	}
}

func modernNotesTerms(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	if inv.Notes != "" {
		m.AddRow(6, text.NewCol(12, "Notes", props.Text{Size: 10, Style: fontstyle.Bold}))
		for _, l := range splitLines(inv.Notes) {
			m.AddRow(4.5, text.NewCol(12, l, props.Text{Size: 9, Color: &midGray}))
		}
	}
	if inv.Terms != "" {
		m.AddRow(6, text.NewCol(12, "Terms & Conditions", props.Text{Size: 10, Style: fontstyle.Bold}))
		for _, l := range splitLines(inv.Terms) {
			m.AddRow(4.5, text.NewCol(12, l, props.Text{Size: 9, Color: &midGray}))
		}
	}
}
