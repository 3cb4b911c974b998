package store

import (
	"errors"
	"fmt"
	"time"

	"github.com/billwise/billwise/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when an invoice id does not exist.
var ErrNotFound = errors.New("invoice not found")

// Store is the application state: the invoice collection and the single
// business profile. All mutation goes through its named operations; views
// never write records directly.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// AddInvoice persists a new invoice. The id is assigned here, once, and is
// immutable afterward. Returns the assigned id.
func (s *Store) AddInvoice(inv *models.Invoice) (string, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
		inv.Items[i].Position = i
	}
	if err := s.db.Create(inv).Error; err != nil {
		return "", fmt.Errorf("add invoice: %w", err)
	}
	return inv.ID, nil
}

// UpdateInvoice replaces the stored invoice's fields with those of inv.
// The id and creation timestamp are preserved; line items are replaced
// wholesale so their stored order matches the draft.
func (s *Store) UpdateInvoice(id string, inv *models.Invoice) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Invoice
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("update invoice: %w", err)
		}
		inv.ID = existing.ID
		inv.CreatedAt = existing.CreatedAt
		inv.UpdatedAt = time.Now()
		for i := range inv.Items {
			inv.Items[i].InvoiceID = inv.ID
			inv.Items[i].Position = i
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
			return fmt.Errorf("replace items: %w", err)
		}
		if err := tx.Omit("Items").Save(inv).Error; err != nil {
			return fmt.Errorf("update invoice: %w", err)
		}
		if len(inv.Items) > 0 {
			if err := tx.Create(&inv.Items).Error; err != nil {
				return fmt.Errorf("replace items: %w", err)
			}
		}
		return nil
	})
}

// DeleteInvoice removes the invoice and its items. Deleting an id that is
// not in the store is a no-op.
func (s *Store) DeleteInvoice(id string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.LineItem{}).Error; err != nil {
			return fmt.Errorf("delete invoice items: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&models.Invoice{}).Error; err != nil {
			return fmt.Errorf("delete invoice: %w", err)
		}
		return nil
	})
}

// InvoiceByID loads one invoice with its line items in order.
func (s *Store) InvoiceByID(id string) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&inv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load invoice: %w", err)
	}
	return &inv, nil
}

// Invoices returns the full collection, oldest first.
func (s *Store) Invoices() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("created_at ASC").Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// BusinessInfo returns the saved business profile, or nil when none has been
// configured yet.
func (s *Store) BusinessInfo() (*models.BusinessInfo, error) {
	var settings models.BusinessSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load business info: %w", err)
	}
	return &settings.Info, nil
}

// SetBusinessInfo saves the business profile, creating the singleton record
// on first use and overwriting it afterwards.
func (s *Store) SetBusinessInfo(info models.BusinessInfo) error {
	var settings models.BusinessSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.BusinessSettings{Info: info}
		if err := s.db.Create(&settings).Error; err != nil {
			return fmt.Errorf("save business info: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("save business info: %w", err)
	}
	settings.Info = info
	if err := s.db.Save(&settings).Error; err != nil {
		return fmt.Errorf("save business info: %w", err)
	}
	return nil
}
