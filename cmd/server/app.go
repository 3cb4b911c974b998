package main

import (
	"net/http"

	"github.com/billwise/billwise/internal/handlers"
	"github.com/billwise/billwise/internal/services"
	"github.com/billwise/billwise/internal/staging"
	"github.com/billwise/billwise/internal/store"
	"gorm.io/gorm"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux *http.ServeMux
}

// NewApp creates a new application with all routes configured.
func NewApp(dbConn *gorm.DB) *App {
	st := store.New(dbConn)
	stg := staging.New()
	svc := services.NewInvoiceService()

	ih := handlers.NewInvoiceHandler(st, stg, svc)
	sh := handlers.NewSettingsHandler(st)

	app := &App{mux: http.NewServeMux()}

	// Invoice list doubles as the landing page.
	app.mux.HandleFunc("GET /{$}", ih.List)
	app.mux.HandleFunc("GET /invoices", ih.List)
	app.mux.HandleFunc("GET /invoices/new", ih.New)
	app.mux.HandleFunc("POST /invoices", ih.Create)
	app.mux.HandleFunc("GET /invoices/{id}/edit", ih.Edit)
	app.mux.HandleFunc("POST /invoices/{id}", ih.Update)
	app.mux.HandleFunc("POST /invoices/{id}/delete", ih.Delete)
	app.mux.HandleFunc("GET /invoices/{id}/preview", ih.Preview)
	app.mux.HandleFunc("GET /invoices/{id}/pdf", ih.PDF)

	// Draft preview handoff: the form posts the draft, the preview view
	// resolves it once by token.
	app.mux.HandleFunc("POST /preview", ih.StageDraft)
	app.mux.HandleFunc("GET /preview", ih.PreviewStaged)

	// Business profile
	app.mux.HandleFunc("GET /settings", sh.Edit)
	app.mux.HandleFunc("POST /settings", sh.Update)

	// Static files
	app.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return app
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.mux.ServeHTTP(w, r)
}
