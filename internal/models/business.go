package models

import "time"

// BusinessInfo holds the issuing business's details as shown on invoices.
// It is embedded by value both in the persisted settings record and in each
// invoice as a snapshot.
type BusinessInfo struct {
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"size:500" json:"address"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`

	// Optional fields, omitted from rendered invoices when empty.
	Website   string `gorm:"size:255" json:"website,omitempty"`
	TaxNumber string `gorm:"size:50" json:"tax_number,omitempty"`

	// Logo is an inline data URL (e.g. "data:image/png;base64,...").
	Logo string `gorm:"type:text" json:"logo,omitempty"`
}

// BusinessSettings is the single persisted business profile, edited via the
// settings page. Exactly one row exists.
type BusinessSettings struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Info BusinessInfo `gorm:"embedded" json:"info"`
}

// ClientInfo holds the billed client's details. Each invoice embeds its own
// copy; clients are not shared records.
type ClientInfo struct {
	Name    string `gorm:"size:255" json:"name"`
	Company string `gorm:"size:255" json:"company,omitempty"`
	Address string `gorm:"size:500" json:"address"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:50" json:"phone"`
}
