package pdf

import (
	"strings"

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

// Classic palette: near-black headers, gray zebra rows, no accent color.
var (
	ink       = props.Color{Red: 17, Green: 24, Blue: 39}
	paleGray  = props.Color{Red: 249, Green: 250, Blue: 251}
	slateGray = props.Color{Red: 75, Green: 85, Blue: 99}
)

func buildClassic(m core.Maroto, inv *models.Invoice) {
	classicHeader(m, inv)
	classicParties(m, inv)
	classicMeta(m, inv)
	classicItems(m, inv)
	classicTotals(m, inv)
	if inv.Payment.IsSet() {
		classicPayment(m, inv)
	}
	if inv.HasNotesOrTerms() {
		classicNotesTerms(m, inv)
	}
}

func classicHeader(m core.Maroto, inv *models.Invoice) {
	nameCol := col.New(7).Add(
		text.New(strings.ToUpper(inv.Business.Name), props.Text{Size: 15, Style: fontstyle.Bold, Top: 2}),
		text.New(inv.Business.Email, props.Text{Size: 9, Color: &slateGray, Top: 10}),
	)
	if b, ext, ok := decodeLogo(inv.Business.Logo); ok {
		m.AddRow(18,
			col.New(2).Add(image.NewFromBytes(b, ext, props.Rect{Percent: 90})),
			col.New(5).Add(
				text.New(strings.ToUpper(inv.Business.Name), props.Text{Size: 15, Style: fontstyle.Bold, Top: 2}),
				text.New(inv.Business.Email, props.Text{Size: 9, Color: &slateGray, Top: 10}),
			),
			classicTitleCol(inv),
		)
	} else {
		m.AddRow(18, nameCol, classicTitleCol(inv))
	}
	// Heavy rule under the header, the formal signature of this layout.
	m.AddRow(3, line.NewCol(12, props.Line{Thickness: 0.8, Color: &ink}))
}

func classicTitleCol(inv *models.Invoice) core.Col {
	return col.New(5).Add(
		text.New("INVOICE", props.Text{Size: 24, Style: fontstyle.Bold, Align: align.Right, Color: &ink}),
		text.New(statusLabel(inv), props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right, Top: 13}),
	)
}

func classicParties(m core.Maroto, inv *models.Invoice) {
	m.AddRow(4)
	m.AddRow(6,
		text.NewCol(6, "INVOICE FROM", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(6, "INVOICE TO", props.Text{Size: 9, Style: fontstyle.Bold}),
	)

	from := partyLines(inv.Business.Name, inv.Business.Address)
	if inv.Business.Phone != "" {
		from = append(from, "Phone: "+inv.Business.Phone)
	}
	if inv.Business.Email != "" {
		from = append(from, "Email: "+inv.Business.Email)
	}
	if inv.Business.Website != "" {
		from = append(from, "Website: "+inv.Business.Website)
	}
	if inv.Business.TaxNumber != "" {
		from = append(from, "GST No: "+inv.Business.TaxNumber)
	}

	to := []string{inv.Client.Name}
	if inv.Client.Company != "" {
		to = append(to, inv.Client.Company)
	}
	to = append(to, partyLines(inv.Client.Address)...)
	if inv.Client.Phone != "" {
		to = append(to, "Phone: "+inv.Client.Phone)
	}
	if inv.Client.Email != "" {
		to = append(to, "Email: "+inv.Client.Email)
	}

	rows := max(len(from), len(to))
	for i := 0; i < rows; i++ {
		var fromLine, toLine string
		if i < len(from) {
			fromLine = from[i]
		}
		if i < len(to) {
			toLine = to[i]
		}
		style := props.Text{Size: 9, Color: &slateGray}
		if i == 0 {
			style = props.Text{Size: 9, Style: fontstyle.Bold}
		}
		m.AddRow(4.5,
			text.NewCol(6, fromLine, style),
			text.NewCol(6, toLine, style),
		)
	}
}

func classicMeta(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	m.AddRow(5,
		text.NewCol(4, "INVOICE NUMBER", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: &slateGray}),
		text.NewCol(4, "INVOICE DATE", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: &slateGray}),
		text.NewCol(4, "DUE DATE", props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: &slateGray}),
	)
	m.AddRow(6,
		text.NewCol(4, inv.Number, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(4, format.Date(inv.IssueDate), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(4, format.Date(inv.DueDate), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}),
	)
}

func classicItems(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	m.AddRows(row.New(8).Add(
		text.NewCol(6, "DESCRIPTION", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Left: 2}),
		text.NewCol(2, "QTY", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Align: align.Center}),
		text.NewCol(2, "UNIT PRICE", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Align: align.Center}),
		text.NewCol(2, "AMOUNT", props.Text{Size: 9, Style: fontstyle.Bold, Color: &white, Top: 2, Align: align.Right, Right: 2}),
	).WithStyle(&props.Cell{BackgroundColor: &ink}))

	for i, it := range inv.Items {
		r := row.New(7).Add(
			text.NewCol(6, it.Description, props.Text{Size: 9, Top: 1.5, Left: 2}),
			text.NewCol(2, trimFloat(it.Quantity), props.Text{Size: 9, Top: 1.5, Align: align.Center, Color: &slateGray}),
			text.NewCol(2, format.Currency(it.UnitPrice), props.Text{Size: 9, Top: 1.5, Align: align.Center, Color: &slateGray}),
			text.NewCol(2, format.Currency(it.Amount), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1.5, Align: align.Right, Right: 2}),
		)
		if i%2 == 0 {
			r.WithStyle(&props.Cell{BackgroundColor: &paleGray})
		}
		m.AddRows(r)
	}
}

func classicTotals(m core.Maroto, inv *models.Invoice) {
	m.AddRow(4)
	m.AddRows(row.New(6).Add(
		col.New(7),
		text.NewCol(3, "Subtotal", props.Text{Size: 9, Style: fontstyle.Bold, Top: 1, Left: 2}),
		text.NewCol(2, format.Currency(inv.Subtotal), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1, Align: align.Right, Right: 2}),
	).WithStyle(&props.Cell{BackgroundColor: &paleGray}))
	m.AddRows(row.New(6).Add(
		col.New(7),
		text.NewCol(3, "Tax ("+format.Percent(inv.TaxRate)+")", props.Text{Size: 9, Style: fontstyle.Bold, Top: 1, Left: 2}),
		text.NewCol(2, format.Currency(inv.TaxAmount), props.Text{Size: 9, Style: fontstyle.Bold, Top: 1, Align: align.Right, Right: 2}),
	))
	m.AddRows(row.New(8).Add(
		col.New(7),
		text.NewCol(3, "TOTAL", props.Text{Size: 11, Style: fontstyle.Bold, Color: &white, Top: 1.5, Left: 2}),
		text.NewCol(2, format.Currency(inv.Total), props.Text{Size: 11, Style: fontstyle.Bold, Color: &white, Top: 1.5, Align: align.Right, Right: 2}),
	).WithStyle(&props.Cell{BackgroundColor: &ink}))
}

func classicPayment(m core.Maroto, inv *models.Invoice) {
	m.AddRow(5)
	m.AddRow(6, text.NewCol(12, "PAYMENT INFORMATION", props.Text{Size: 9, Style: fontstyle.Bold}))
	m.AddRow(5,
		text.NewCol(3, inv.Payment.DisplayLabel(), props.Text{Size: 8, Style: fontstyle.Bold, Color: &slateGray}),
		text.NewCol(9, inv.Payment.DisplayValue(), props.Text{Size: 9}),
	)
	if qr := inv.Payment.QRPayload(); qr != "" {
		m.AddRow(5, text.NewCol(12, "SCAN TO PAY", props.Text{Size: 9, Style: fontstyle.Bold}))
		m.AddRow(30, code.NewQrCol(3, qr, props.Rect{Percent: 100}))
	}
}

func classicNotesTerms(m core.Maroto, inv *models.Invoice) {
	m.AddRow(3, line.NewCol(12))
	m.AddRow(2)
	if inv.Notes != "" {
		m.AddRow(6, text.NewCol(12, "NOTES", props.Text{Size: 9, Style: fontstyle.Bold}))
		for _, l := range splitLines(inv.Notes) {
			m.AddRow(4.5, text.NewCol(12, l, props.Text{Size: 9, Color: &slateGray}))
		}
	}
	if inv.Terms != "" {
		m.AddRow(6, text.NewCol(12, "TERMS & CONDITIONS", props.Text{Size: 9, Style: fontstyle.Bold}))
		for _, l := range splitLines(inv.Terms) {
			m.AddRow(4.5, text.NewCol(12, l, props.Text{Size: 9, Color: &slateGray}))
		}
	}
}
