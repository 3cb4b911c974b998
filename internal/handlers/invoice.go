package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/billwise/billwise/httpx"
	"github.com/billwise/billwise/internal/models"
	"github.com/billwise/billwise/internal/services"
	"github.com/billwise/billwise/internal/staging"
	"github.com/billwise/billwise/internal/store"
	"github.com/billwise/billwise/pdf"
	"github.com/billwise/billwise/validation"
)

type InvoiceHandler struct {
	store   *store.Store
	staging *staging.Store
	svc     *services.InvoiceService
}

func NewInvoiceHandler(st *store.Store, stg *staging.Store, svc *services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{store: st, staging: stg, svc: svc}
}

// List shows the invoice collection, narrowed by the ?q= search term
// (invoice number, client name or company) and the ?status= filter. With
// Accept: application/json it returns the filtered collection as JSON.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.store.Invoices()
	if err != nil {
		log.Printf("list invoices: %v", err)
		http.Error(w, "Failed to load invoices", http.StatusInternalServerError)
		return
	}
	query := r.URL.Query().Get("q")
	status := r.URL.Query().Get("status")
	invoices = filterInvoices(invoices, query, status)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": invoices, "total": len(invoices)})
		return
	}
	var totalUnpaid float64
	for _, inv := range invoices {
		if !inv.IsPaid() {
			totalUnpaid += inv.Total
		}
	}
	render(w, r, "invoices/index.html", map[string]any{
		"Invoices":    invoices,
		"TotalUnpaid": totalUnpaid,
		"Query":       query,
		"Status":      status,
	})
}

// filterInvoices narrows the collection by a case-insensitive search over
// invoice number, client name and client company, and by status. An empty
// or unknown status keeps both.
func filterInvoices(invoices []models.Invoice, query, status string) []models.Invoice {
	q := strings.ToLower(strings.TrimSpace(query))
	byStatus := status == string(models.InvoiceStatusPaid) || status == string(models.InvoiceStatusUnpaid)
	if q == "" && !byStatus {
		return invoices
	}
	out := make([]models.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if byStatus && string(inv.Status) != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(inv.Number), q) &&
			!strings.Contains(strings.ToLower(inv.Client.Name), q) &&
			!strings.Contains(strings.ToLower(inv.Client.Company), q) {
			continue
		}
		out = append(out, inv)
	}
	return out
}

// New shows an empty invoice form with the original defaults: issue date
// today, due date in 30 days, 18% tax, modern template, unpaid.
func (h *InvoiceHandler) New(w http.ResponseWriter, r *http.Request) {
	draft := &models.Invoice{
		IssueDate: time.Now(),
		DueDate:   time.Now().Add(30 * 24 * time.Hour),
		TaxRate:   18,
		Status:    models.InvoiceStatusUnpaid,
		Template:  string(models.TemplateModern),
	}
	if info, err := h.store.BusinessInfo(); err == nil && info != nil {
		draft.Business = *info
	}
	h.svc.Recalculate(draft)
	render(w, r, "invoices/form.html", map[string]any{
		"Invoice":   draft,
		"Templates": models.Templates(),
	})
}

// Create persists a new invoice from the form (or a JSON body).
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	draft, v := h.parseDraft(r)
	if !v.Empty() {
		if httpx.WantsJSON(r) {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		render(w, r, "invoices/form.html", map[string]any{
			"Invoice":    draft,
			"Templates":  models.Templates(),
			"Violations": v,
		})
		return
	}
	if _, err := h.store.AddInvoice(draft); err != nil {
		log.Printf("create invoice: %v", err)
		http.Error(w, "Failed to save invoice", http.StatusInternalServerError)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, draft)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Edit shows the form for an existing invoice. A nonexistent id redirects
// to the invoice list rather than erroring.
func (h *InvoiceHandler) Edit(w http.ResponseWriter, r *http.Request) {
	inv, err := h.store.InvoiceByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if httpx.WantsJSON(r) {
				httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
				return
			}
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("load invoice: %v", err)
		http.Error(w, "Failed to load invoice", http.StatusInternalServerError)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, inv)
		return
	}
	render(w, r, "invoices/form.html", map[string]any{
		"Invoice":   inv,
		"Templates": models.Templates(),
	})
}

// Update replaces an existing invoice's fields; id and creation time are
// preserved by the store.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	draft, v := h.parseDraft(r)
	if !v.Empty() {
		draft.ID = id
		w.WriteHeader(http.StatusUnprocessableEntity)
		render(w, r, "invoices/form.html", map[string]any{
			"Invoice":    draft,
			"Templates":  models.Templates(),
			"Violations": v,
		})
		return
	}
	if err := h.store.UpdateInvoice(id, draft); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("update invoice: %v", err)
		http.Error(w, "Failed to update invoice", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes an invoice. The confirmation happens on the list page;
// deleting an id that is already gone is a no-op.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteInvoice(r.PathValue("id")); err != nil {
		log.Printf("delete invoice: %v", err)
		http.Error(w, "Failed to delete invoice", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Preview renders a saved invoice with its selected template. The
// ?download=1 flag streams the PDF immediately instead.
func (h *InvoiceHandler) Preview(w http.ResponseWriter, r *http.Request) {
	inv, err := h.store.InvoiceByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("load invoice: %v", err)
		http.Error(w, "Failed to load invoice", http.StatusInternalServerError)
		return
	}
	if r.URL.Query().Get("download") == "1" {
		if !h.servePDF(w, inv) {
			http.Redirect(w, r, "/invoices/"+inv.ID+"/preview?error=export", http.StatusSeeOther)
		}
		return
	}
	renderPreview(w, r, inv, map[string]any{
		"DownloadURL": "/invoices/" + inv.ID + "/preview?download=1",
		"ExportError": r.URL.Query().Get("error") == "export",
	})
}

// PDF streams the export of a saved invoice.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	inv, err := h.store.InvoiceByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		log.Printf("load invoice: %v", err)
		http.Error(w, "Failed to load invoice", http.StatusInternalServerError)
		return
	}
	if !h.servePDF(w, inv) {
		http.Redirect(w, r, "/invoices/"+inv.ID+"/preview?error=export", http.StatusSeeOther)
	}
}

// StageDraft stages the submitted draft for the preview view and redirects
// to it. Preview is allowed even when required fields are still missing.
func (h *InvoiceHandler) StageDraft(w http.ResponseWriter, r *http.Request) {
	draft, _ := h.parseDraft(r)
	token := h.staging.Put(*draft)
	target := "/preview?token=" + token
	if r.FormValue("download") == "1" {
		target += "&download=1"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// PreviewStaged resolves a staged draft token (read-once) and renders it.
func (h *InvoiceHandler) PreviewStaged(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.staging.Take(r.URL.Query().Get("token"))
	if !ok {
		render(w, r, "preview/empty.html", nil)
		return
	}
	if r.URL.Query().Get("download") == "1" {
		if !h.servePDF(w, &inv) {
			render(w, r, "preview/empty.html", map[string]any{"ExportError": true})
		}
		return
	}
	renderPreview(w, r, &inv, nil)
}

// servePDF writes the invoice export; returns false if rendering failed so
// the caller can report it without leaving a broken page.
func (h *InvoiceHandler) servePDF(w http.ResponseWriter, inv *models.Invoice) bool {
	pdfBytes, err := pdf.Render(inv)
	if err != nil {
		log.Printf("export invoice %s: %v", inv.ID, err)
		return false
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdf.Filename(inv)))
	_, _ = w.Write(pdfBytes)
	return true
}

func renderPreview(w http.ResponseWriter, r *http.Request, inv *models.Invoice, extra map[string]any) {
	data := map[string]any{"Invoice": inv}
	for k, v := range extra {
		data[k] = v
	}
	name := "preview/modern.html"
	if inv.TemplateKind() == models.TemplateClassic {
		name = "preview/classic.html"
	}
	render(w, r, name, data)
}

// parseDraft builds an invoice from the submitted form or JSON body and
// validates the save requirements: business name, business email and client
// name. Derived fields are recalculated as the last step, never trusted
// from the client.
func (h *InvoiceHandler) parseDraft(r *http.Request) (*models.Invoice, validation.Violations) {
	v := make(validation.Violations)
	var draft *models.Invoice
	if r.Header.Get("Content-Type") == "application/json" {
		draft = h.parseJSONDraft(r, v)
	} else {
		draft = h.parseFormDraft(r)
	}

	validation.Required("business_name", draft.Business.Name, v)
	validation.Required("business_email", draft.Business.Email, v)
	validation.Required("client_name", draft.Client.Name, v)
	validation.RangeFloat("tax_rate", draft.TaxRate, 0, 100, v)

	h.svc.Recalculate(draft)
	return draft, v
}

func (h *InvoiceHandler) parseFormDraft(r *http.Request) *models.Invoice {
	_ = r.ParseForm()
	issueDate, _ := time.Parse("2006-01-02", r.FormValue("issue_date"))
	dueDate, _ := time.Parse("2006-01-02", r.FormValue("due_date"))
	taxRate, _ := strconv.ParseFloat(r.FormValue("tax_rate"), 64)

	status := models.InvoiceStatus(r.FormValue("status"))
	if status != models.InvoiceStatusPaid {
		status = models.InvoiceStatusUnpaid
	}

	draft := &models.Invoice{
		Number:    r.FormValue("number"),
		IssueDate: issueDate,
		DueDate:   dueDate,
		TaxRate:   taxRate,
		Status:    status,
		Notes:     r.FormValue("notes"),
		Terms:     r.FormValue("terms"),
		Template:  string(models.ParseTemplateKind(r.FormValue("template"))),
		Business: models.BusinessInfo{
			Name:      r.FormValue("business_name"),
			Address:   r.FormValue("business_address"),
			Email:     r.FormValue("business_email"),
			Phone:     r.FormValue("business_phone"),
			Website:   r.FormValue("business_website"),
			TaxNumber: r.FormValue("business_tax_number"),
			Logo:      r.FormValue("business_logo"),
		},
		Client: models.ClientInfo{
			Name:    r.FormValue("client_name"),
			Company: r.FormValue("client_company"),
			Address: r.FormValue("client_address"),
			Email:   r.FormValue("client_email"),
			Phone:   r.FormValue("client_phone"),
		},
	}

	if method := models.ParsePaymentMethod(r.FormValue("payment_method")); method != "" {
		draft.Payment = models.PaymentInfo{
			Method:     method,
			UPIID:      r.FormValue("payment_upi_id"),
			RazorpayID: r.FormValue("payment_razorpay_id"),
			CustomURL:  r.FormValue("payment_custom_url"),
		}
	}

	// Item rows arrive as parallel arrays; a fresh id is minted for rows
	// added client-side without one.
	ids := r.Form["item_id"]
	descriptions := r.Form["item_description"]
	quantities := r.Form["item_quantity"]
	prices := r.Form["item_unit_price"]
	for i := range descriptions {
		var item models.LineItem
		if i < len(ids) && ids[i] != "" {
			item = models.LineItem{ID: ids[i]}
		} else {
			item = models.NewLineItem()
		}
		item.Description = descriptions[i]
		if i < len(quantities) {
			item.Quantity, _ = strconv.ParseFloat(quantities[i], 64)
		}
		if i < len(prices) {
			item.UnitPrice, _ = strconv.ParseFloat(prices[i], 64)
		}
		draft.Items = append(draft.Items, item)
	}
	return draft
}

func (h *InvoiceHandler) parseJSONDraft(r *http.Request, v validation.Violations) *models.Invoice {
	var payload struct {
		models.Invoice
		IssueDate string `json:"issue_date"`
		DueDate   string `json:"due_date"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		v["body"] = "invalid_json"
		return &models.Invoice{}
	}
	draft := payload.Invoice
	draft.ID = ""
	if t, err := time.Parse("2006-01-02", payload.IssueDate); err == nil {
		draft.IssueDate = t
	}
	if t, err := time.Parse("2006-01-02", payload.DueDate); err == nil {
		draft.DueDate = t
	}
	if draft.Status != models.InvoiceStatusPaid {
		draft.Status = models.InvoiceStatusUnpaid
	}
	draft.Template = string(models.ParseTemplateKind(draft.Template))
	draft.Payment.Method = models.ParsePaymentMethod(string(draft.Payment.Method))
	if draft.Payment.Method == "" {
		draft.Payment = models.PaymentInfo{}
	}
	for i := range draft.Items {
		if draft.Items[i].ID == "" {
			draft.Items[i] = models.LineItem{
				ID:          models.NewLineItem().ID,
				Description: draft.Items[i].Description,
				Quantity:    draft.Items[i].Quantity,
				UnitPrice:   draft.Items[i].UnitPrice,
			}
		}
	}
	return &draft
}
