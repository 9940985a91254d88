package handlers

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

// QuoteHandler renders and submits the public quote-request form.
type QuoteHandler struct {
	Templates TemplateProvider
	Directory core.ServiceDirectory
	Log       zerolog.Logger
}

// Show renders the quote form. The service select is populated from the
// directory; a failed fetch just leaves the select empty.
// GET /quote
func (h *QuoteHandler) Show(w http.ResponseWriter, r *http.Request) {
	records, err := h.Directory.Services(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("services fetch failed")
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/quote.html", map[string]interface{}{
		"Title":    "Request a Quote",
		"Services": records,
		"Counties": core.Counties,
		"Sent":     r.URL.Query().Get("sent") == "1",
	})
}

// Submit forwards the quote to the backend and redirects back with a flash
// flag on success.
// POST /quote
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	q := core.QuoteSubmission{
		Name:      strings.TrimSpace(r.FormValue("name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Phone:     strings.TrimSpace(r.FormValue("phone")),
		County:    r.FormValue("county"),
		ServiceID: r.FormValue("service_id"),
		Message:   strings.TrimSpace(r.FormValue("message")),
	}

	if q.Name == "" || (q.Email == "" && q.Phone == "") {
		h.renderFormError(w, r, q, "Please provide your name and a phone number or email address.")
		return
	}

	if err := h.Directory.SubmitQuote(r.Context(), q); err != nil {
		h.Log.Error().Err(err).Msg("quote submission failed")
		h.renderFormError(w, r, q, "We could not send your request right now. Please try again shortly.")
		return
	}

	http.Redirect(w, r, "/quote?sent=1", http.StatusSeeOther)
}

func (h *QuoteHandler) renderFormError(w http.ResponseWriter, r *http.Request, q core.QuoteSubmission, msg string) {
	records, err := h.Directory.Services(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("services fetch failed")
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/quote.html", map[string]interface{}{
		"Title":    "Request a Quote",
		"Services": records,
		"Counties": core.Counties,
		"Error":    msg,
		"Form":     q,
	})
}
