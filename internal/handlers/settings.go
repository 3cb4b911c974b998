package handlers

import (
	"encoding/base64"
	"io"
	"log"
	"net/http"

	"github.com/billwise/billwise/internal/models"
	"github.com/billwise/billwise/internal/store"
)

// maxLogoBytes bounds the multipart parse; the file picker's accept filter
// is the only type restriction, matching the original behavior.
const maxLogoBytes = 5 << 20

type SettingsHandler struct {
	store *store.Store
}

func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Edit shows the business profile form.
func (h *SettingsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	info, err := h.store.BusinessInfo()
	if err != nil {
		log.Printf("load business info: %v", err)
		http.Error(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}
	if info == nil {
		info = &models.BusinessInfo{}
	}
	render(w, r, "settings.html", map[string]any{
		"Info":  info,
		"Saved": r.URL.Query().Get("saved") == "1",
	})
}

// Update saves the business profile. An uploaded logo is embedded inline as
// a data URL; without a new upload the existing logo is kept.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxLogoBytes); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	info := models.BusinessInfo{
		Name:      r.FormValue("name"),
		Address:   r.FormValue("address"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Website:   r.FormValue("website"),
		TaxNumber: r.FormValue("tax_number"),
		Logo:      r.FormValue("current_logo"),
	}
	if r.FormValue("remove_logo") == "1" {
		info.Logo = ""
	}
	if logo, ok := readLogo(r); ok {
		info.Logo = logo
	}
	if err := h.store.SetBusinessInfo(info); err != nil {
		log.Printf("save business info: %v", err)
		http.Error(w, "Failed to save settings", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}

// readLogo turns an uploaded image file into an inline data URL.
func readLogo(r *http.Request) (string, bool) {
	file, header, err := r.FormFile("logo")
	if err != nil {
		return "", false
	}
	defer file.Close()
	raw, err := io.ReadAll(io.LimitReader(file, maxLogoBytes))
	if err != nil || len(raw) == 0 {
		return "", false
	}
	mime := header.Header.Get("Content-Type")
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), true
}
