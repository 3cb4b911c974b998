package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/billwise/billwise/view"
)

// render executes a template and reports failures, keeping the per-handler
// call sites short.
func render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if err := view.Render(w, r, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
