package services

import (
	"github.com/billwise/billwise/internal/models"
)

// ItemField selects which line item field an update targets.
type ItemField string

const (
	FieldDescription ItemField = "description"
	FieldQuantity    ItemField = "quantity"
	FieldUnitPrice   ItemField = "unit_price"
)

// InvoiceService encapsulates invoice computation and draft editing logic.
// It holds no state; all operations work on the caller's invoice.
type InvoiceService struct{}

func NewInvoiceService() *InvoiceService { return &InvoiceService{} }

// ComputeTotals derives subtotal, tax amount and total from line items and a
// tax rate percentage. Pure: same inputs always produce the same outputs.
func (s *InvoiceService) ComputeTotals(items []models.LineItem, taxRate float64) (subtotal, taxAmount, total float64) {
	for _, it := range items {
		subtotal += it.Quantity * it.UnitPrice
	}
	taxAmount = subtotal * taxRate / 100
	total = subtotal + taxAmount
	return subtotal, taxAmount, total
}

// Recalculate rewrites every derived field of the invoice: each item's
// amount, then subtotal, tax amount and total. It is the single place these
// fields are written, so they can never drift apart.
func (s *InvoiceService) Recalculate(inv *models.Invoice) {
	if inv == nil {
		return
	}
	for i := range inv.Items {
		inv.Items[i].Amount = inv.Items[i].Quantity * inv.Items[i].UnitPrice
		inv.Items[i].Position = i
	}
	inv.Subtotal, inv.TaxAmount, inv.Total = s.ComputeTotals(inv.Items, inv.TaxRate)
}

// AddItem appends a new empty line item with a fresh id and returns its id.
// Totals are recalculated in the same step.
func (s *InvoiceService) AddItem(inv *models.Invoice) string {
	item := models.NewLineItem()
	inv.Items = append(inv.Items, item)
	s.Recalculate(inv)
	return item.ID
}

// RemoveItem deletes the line item with the given id. Removing an unknown id
// is a no-op; the order of the remaining items is preserved.
func (s *InvoiceService) RemoveItem(inv *models.Invoice, id string) {
	for i, it := range inv.Items {
		if it.ID == id {
			inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
			break
		}
	}
	s.Recalculate(inv)
}

// UpdateItem replaces one field of the line item with the given id. Quantity
// and unit price edits recompute the item's amount and the invoice totals in
// the same call, so a stale amount is never observable.
func (s *InvoiceService) UpdateItem(inv *models.Invoice, id string, field ItemField, value any) {
	for i := range inv.Items {
		if inv.Items[i].ID != id {
			continue
		}
		switch field {
		case FieldDescription:
			if v, ok := value.(string); ok {
				inv.Items[i].Description = v
			}
		case FieldQuantity:
			if v, ok := toFloat(value); ok {
				inv.Items[i].Quantity = v
			}
		case FieldUnitPrice:
			if v, ok := toFloat(value); ok {
				inv.Items[i].UnitPrice = v
			}
		}
		break
	}
	s.Recalculate(inv)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
