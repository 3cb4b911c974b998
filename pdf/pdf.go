// Package pdf renders invoices to downloadable PDF documents. Two layout
// variants share the same field set: a formal monochrome "classic" and an
// accent-colored "modern" (the default).
package pdf

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/billwise/billwise/internal/models"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
)

// Filename returns the download name for an invoice export.
func Filename(inv *models.Invoice) string {
	return fmt.Sprintf("invoice-%s.pdf", inv.Number)
}

// Render lays out the invoice with its selected template variant and
// returns the PDF bytes. Unknown template ids render the modern layout.
func Render(inv *models.Invoice) ([]byte, error) {
	m := newDocument()
	switch inv.TemplateKind() {
	case models.TemplateClassic:
		buildClassic(m, inv)
	default:
		buildModern(m, inv)
	}
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

// newDocument creates an A4 portrait document with the shared margins.
func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Vertical).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithBottomMargin(12).
		Build()
	return maroto.New(cfg)
}

// decodeLogo extracts the raw image bytes and type from a data URL.
// Returns ok=false for anything it cannot place on the page.
func decodeLogo(dataURL string) (b []byte, ext extension.Type, ok bool) {
	if !strings.HasPrefix(dataURL, "data:image/") {
		return nil, "", false
	}
	rest := strings.TrimPrefix(dataURL, "data:image/")
	semi := strings.Index(rest, ";base64,")
	if semi < 0 {
		return nil, "", false
	}
	switch rest[:semi] {
	case "png":
		ext = extension.Png
	case "jpeg", "jpg":
		ext = extension.Jpg
	default:
		return nil, "", false
	}
	raw, err := base64.StdEncoding.DecodeString(rest[semi+len(";base64,"):])
	if err != nil {
		return nil, "", false
	}
	return raw, ext, true
}

// statusLabel renders the status indicator text.
func statusLabel(inv *models.Invoice) string {
	if inv.IsPaid() {
		return "PAID"
	}
	return "UNPAID"
}

// splitLines breaks a free-text field on newlines, normalizing CRLF.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

// trimFloat formats a quantity without trailing zeros ("2", "1.5").
func trimFloat(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	return strings.TrimRight(s, ".")
}
