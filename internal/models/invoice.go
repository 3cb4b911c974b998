package models

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPaid   InvoiceStatus = "paid"
	InvoiceStatusUnpaid InvoiceStatus = "unpaid"
)

// TemplateKind is a closed set of invoice layout variants.
type TemplateKind string

const (
	TemplateModern  TemplateKind = "modern"
	TemplateClassic TemplateKind = "classic"
)

// ParseTemplateKind maps a stored template id to a layout variant.
// Unknown ids fall back to the modern layout.
func ParseTemplateKind(id string) TemplateKind {
	switch TemplateKind(id) {
	case TemplateClassic:
		return TemplateClassic
	default:
		return TemplateModern
	}
}

// Template describes a layout variant for selection UIs.
type Template struct {
	Kind        TemplateKind
	Name        string
	Description string
}

// Templates lists the available layout variants, default first.
func Templates() []Template {
	return []Template{
		{Kind: TemplateModern, Name: "Modern", Description: "Clean and professional with accent colors"},
		{Kind: TemplateClassic, Name: "Classic", Description: "Traditional layout with formal styling"},
	}
}

// Invoice is a persisted billing invoice. Business and client details are
// embedded snapshots taken at save time, not references to shared records.
type Invoice struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Number is free text chosen by the user; uniqueness is not enforced.
	Number    string    `gorm:"size:100;not null" json:"number"`
	IssueDate time.Time `gorm:"not null" json:"issue_date"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`

	Business BusinessInfo `gorm:"embedded;embeddedPrefix:business_" json:"business"`
	Client   ClientInfo   `gorm:"embedded;embeddedPrefix:client_" json:"client"`

	Items []LineItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`

	// TaxRate is a percentage in [0,100]. Subtotal, TaxAmount and Total are
	// derived from Items and TaxRate; services.Recalculate is the only writer.
	TaxRate   float64 `gorm:"not null" json:"tax_rate"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
	TaxAmount float64 `gorm:"not null" json:"tax_amount"`
	Total     float64 `gorm:"not null" json:"total"`

	Status   InvoiceStatus `gorm:"size:20;default:'unpaid'" json:"status"`
	Notes    string        `gorm:"type:text" json:"notes,omitempty"`
	Terms    string        `gorm:"type:text" json:"terms,omitempty"`
	Template string        `gorm:"size:50;default:'modern'" json:"template"`

	Payment PaymentInfo `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
}

// TemplateKind resolves the stored template id to a layout variant.
func (i *Invoice) TemplateKind() TemplateKind {
	return ParseTemplateKind(i.Template)
}

// IsPaid returns true if the invoice has been marked paid.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// HasNotesOrTerms reports whether the notes/terms section should render.
func (i *Invoice) HasNotesOrTerms() bool {
	return i.Notes != "" || i.Terms != ""
}

// LineItem represents one billable row on an invoice.
type LineItem struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	InvoiceID string `gorm:"index;size:36" json:"-"`

	Description string  `gorm:"size:500" json:"description"`
	Quantity    float64 `gorm:"not null;default:0" json:"quantity"`
	UnitPrice   float64 `gorm:"not null;default:0" json:"unit_price"`

	// Amount is always quantity * unit price; it is stored for display but
	// recomputed together with the invoice totals on every edit.
	Amount float64 `gorm:"not null;default:0" json:"amount"`

	// Position keeps the user-chosen row order.
	Position int `gorm:"not null;default:0" json:"position"`
}

// NewLineItem returns an empty line item with a fresh id.
func NewLineItem() LineItem {
	return LineItem{ID: uuid.NewString()}
}
