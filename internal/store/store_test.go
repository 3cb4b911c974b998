package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/billwise/billwise/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.BusinessSettings{}, &models.Invoice{}, &models.LineItem{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return New(db)
}

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		Number:    "INV-001",
		IssueDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDate:   time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		Business: models.BusinessInfo{
			Name:    "Acme Studio",
			Address: "12 MG Road\nBengaluru",
			Email:   "billing@acme.example",
			Phone:   "+91 98765 43210",
		},
		Client: models.ClientInfo{
			Name:    "Priya Sharma",
			Company: "Sharma Traders",
			Address: "4 Park Street\nKolkata",
			Email:   "priya@example.com",
		},
		Items: []models.LineItem{
			{ID: "item-1", Description: "Design work", Quantity: 2, UnitPrice: 100, Amount: 200},
			{ID: "item-2", Description: "Hosting", Quantity: 1, UnitPrice: 50, Amount: 50},
		},
		TaxRate:   18,
		Subtotal:  250,
		TaxAmount: 45,
		Total:     295,
		Status:    models.InvoiceStatusUnpaid,
		Notes:     "Thanks for your business.",
		Terms:     "Payment due within 30 days.",
		Template:  "modern",
		Payment: models.PaymentInfo{
			Method: models.PaymentMethodUPI,
			UPIID:  "acme@upi",
		},
	}
}

func TestAddInvoiceRoundTrip(t *testing.T) {
	st := newTestStore(t)
	want := sampleInvoice()

	id, err := st.AddInvoice(want)
	if err != nil {
		t.Fatalf("AddInvoice: %v", err)
	}
	if id == "" {
		t.Fatal("AddInvoice returned empty id")
	}

	got, err := st.InvoiceByID(id)
	if err != nil {
		t.Fatalf("InvoiceByID: %v", err)
	}

	if got.Number != want.Number {
		t.Errorf("Number = %q, want %q", got.Number, want.Number)
	}
	if got.Business.Name != want.Business.Name || got.Business.Address != want.Business.Address {
		t.Errorf("Business = %+v, want %+v", got.Business, want.Business)
	}
	if got.Client.Name != want.Client.Name || got.Client.Company != want.Client.Company {
		t.Errorf("Client = %+v, want %+v", got.Client, want.Client)
	}
	if got.Subtotal != 250 || got.TaxAmount != 45 || got.Total != 295 {
		t.Errorf("totals = %v/%v/%v, want 250/45/295", got.Subtotal, got.TaxAmount, got.Total)
	}
	if got.Payment.Method != models.PaymentMethodUPI || got.Payment.UPIID != "acme@upi" {
		t.Errorf("Payment = %+v", got.Payment)
	}
	if len(got.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(got.Items))
	}
	if got.Items[0].Description != "Design work" || got.Items[1].Description != "Hosting" {
		t.Errorf("items out of order: %q, %q", got.Items[0].Description, got.Items[1].Description)
	}
}

func TestAddInvoiceKeepsProvidedID(t *testing.T) {
	st := newTestStore(t)
	inv := sampleInvoice()
	inv.ID = "fixed-id"
	id, err := st.AddInvoice(inv)
	if err != nil {
		t.Fatalf("AddInvoice: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("id = %q, want fixed-id", id)
	}
}

func TestUpdateInvoicePreservesIDAndCreatedAt(t *testing.T) {
	st := newTestStore(t)
	id, err := st.AddInvoice(sampleInvoice())
	if err != nil {
		t.Fatalf("AddInvoice: %v", err)
	}
	before, err := st.InvoiceByID(id)
	if err != nil {
		t.Fatalf("InvoiceByID: %v", err)
	}

	draft := sampleInvoice()
	draft.ID = "attacker-chosen-id"
	draft.Number = "INV-002"
	draft.Items = []models.LineItem{
		{ID: "item-3", Description: "Support retainer", Quantity: 1, UnitPrice: 500, Amount: 500},
	}

	if err := st.UpdateInvoice(id, draft); err != nil {
		t.Fatalf("UpdateInvoice: %v", err)
	}

	after, err := st.InvoiceByID(id)
	if err != nil {
		t.Fatalf("InvoiceByID after update: %v", err)
	}
	if after.ID != id {
		t.Errorf("ID = %q, want %q", after.ID, id)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Errorf("CreatedAt changed: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
	if after.Number != "INV-002" {
		t.Errorf("Number = %q, want INV-002", after.Number)
	}
	if len(after.Items) != 1 || after.Items[0].Description != "Support retainer" {
		t.Errorf("items not replaced: %+v", after.Items)
	}
}

func TestUpdateInvoiceNotFound(t *testing.T) {
	st := newTestStore(t)
	err := st.UpdateInvoice("missing", sampleInvoice())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteInvoice(t *testing.T) {
	st := newTestStore(t)
	id, err := st.AddInvoice(sampleInvoice())
	if err != nil {
		t.Fatalf("AddInvoice: %v", err)
	}

	if err := st.DeleteInvoice(id); err != nil {
		t.Fatalf("DeleteInvoice: %v", err)
	}
	if _, err := st.InvoiceByID(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: err = %v, want ErrNotFound", err)
	}
}

func TestDeleteInvoiceMissingIsNoop(t *testing.T) {
	st := newTestStore(t)
	if err := st.DeleteInvoice("missing"); err != nil {
		t.Errorf("DeleteInvoice(missing) = %v, want nil", err)
	}
}

func TestInvoicesOrderedByCreation(t *testing.T) {
	st := newTestStore(t)
	for _, n := range []string{"INV-001", "INV-002", "INV-003"} {
		inv := sampleInvoice()
		inv.ID = ""
		inv.Number = n
		if _, err := st.AddInvoice(inv); err != nil {
			t.Fatalf("AddInvoice(%s): %v", n, err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	invoices, err := st.Invoices()
	if err != nil {
		t.Fatalf("Invoices: %v", err)
	}
	if len(invoices) != 3 {
		t.Fatalf("len = %d, want 3", len(invoices))
	}
	for i, want := range []string{"INV-001", "INV-002", "INV-003"} {
		if invoices[i].Number != want {
			t.Errorf("invoices[%d].Number = %q, want %q", i, invoices[i].Number, want)
		}
	}
}

func TestBusinessInfoSingleton(t *testing.T) {
	st := newTestStore(t)

	info, err := st.BusinessInfo()
	if err != nil {
		t.Fatalf("BusinessInfo: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil before first save, got %+v", info)
	}

	first := models.BusinessInfo{Name: "Acme Studio", Email: "billing@acme.example"}
	if err := st.SetBusinessInfo(first); err != nil {
		t.Fatalf("SetBusinessInfo: %v", err)
	}
	second := models.BusinessInfo{Name: "Acme Studio Pvt Ltd", Email: "accounts@acme.example"}
	if err := st.SetBusinessInfo(second); err != nil {
		t.Fatalf("SetBusinessInfo (update): %v", err)
	}

	got, err := st.BusinessInfo()
	if err != nil {
		t.Fatalf("BusinessInfo: %v", err)
	}
	if got == nil || got.Name != second.Name || got.Email != second.Email {
		t.Errorf("got %+v, want %+v", got, second)
	}

	var count int64
	st.db.Model(&models.BusinessSettings{}).Count(&count)
	if count != 1 {
		t.Errorf("settings rows = %d, want 1", count)
	}
}
