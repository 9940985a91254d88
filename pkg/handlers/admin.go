package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/spf13/cast"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
	"github.com/sylvie882/garbage-collection-frontend-sub000/pkg/middleware"
)

// AdminHandler is the back-office: thin forms over the backend's admin CRUD
// endpoints. All state lives on the backend; these handlers just translate
// forms to API calls and re-render lists.
type AdminHandler struct {
	Templates TemplateProvider
	Directory core.ServiceDirectory
	API       core.AdminAPI
	Log       zerolog.Logger
}

// GET /admin/login
func (h *AdminHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/admin.html", "admin/login.html", map[string]interface{}{
		"Title": "Admin Login",
	})
}

// POST /admin/login
func (h *AdminHandler) ProcessLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	token, err := h.API.Login(r.Context(), r.FormValue("identity"), r.FormValue("password"))
	if err != nil {
		msg := "Login failed. Please try again."
		if errors.Is(err, core.ErrUnauthorized) {
			msg = "Invalid email or password."
		} else {
			h.Log.Error().Err(err).Msg("login request failed")
		}
		RenderPage(h.Templates, w, r, http.StatusOK, "layouts/admin.html", "admin/login.html", map[string]interface{}{
			"Title": "Admin Login",
			"Error": msg,
		})
		return
	}

	middleware.SetAuthCookie(w, token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// GET /admin/logout
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearAuthCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// Dashboard shows collection counts and the latest quote requests.
// GET /admin
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	services, err := h.Directory.Services(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("services fetch failed")
	}

	quotes, err := h.API.QuoteRequests(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("quote requests fetch failed")
	}

	pending := 0
	for _, q := range quotes {
		if q.Status == "" || q.Status == "pending" {
			pending++
		}
	}

	recent := quotes
	if len(recent) > 5 {
		recent = recent[:5]
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/admin.html", "admin/dashboard.html", map[string]interface{}{
		"Title":         "Dashboard",
		"ServiceCount":  len(services),
		"QuoteCount":    len(quotes),
		"PendingQuotes": pending,
		"RecentQuotes":  recent,
	})
}

// GET /admin/services
func (h *AdminHandler) ServicesList(w http.ResponseWriter, r *http.Request) {
	services, err := h.Directory.Services(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("services fetch failed")
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/admin.html", "admin/services.html", map[string]interface{}{
		"Title":    "Services",
		"Services": services,
	})
}

// ServiceSave creates or updates depending on whether the form carries an id.
// POST /admin/services
func (h *AdminHandler) ServiceSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	fields := core.ServiceFields{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Slug:        strings.TrimSpace(r.FormValue("slug")),
		Category:    strings.TrimSpace(r.FormValue("category")),
		Description: r.FormValue("description"),
		Image:       r.FormValue("image"),
		Price:       cast.ToFloat64(r.FormValue("price")),
		Features:    splitLines(r.FormValue("features")),
		Benefits:    splitLines(r.FormValue("benefits")),
		IsActive:    r.FormValue("active") == "on",
	}

	var err error
	if id := r.FormValue("id"); id != "" {
		err = h.API.UpdateService(r.Context(), id, fields)
	} else {
		err = h.API.CreateService(r.Context(), fields)
	}
	if err != nil {
		h.apiError(w, r, err, "save service")
		return
	}

	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// POST /admin/services/{id}/delete
func (h *AdminHandler) ServiceDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteService(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.apiError(w, r, err, "delete service")
		return
	}
	http.Redirect(w, r, "/admin/services", http.StatusSeeOther)
}

// GET /admin/carousels
func (h *AdminHandler) CarouselsList(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Directory.Carousels(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("carousels fetch failed")
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/admin.html", "admin/carousels.html", map[string]interface{}{
		"Title":  "Carousel Slides",
		"Slides": slides,
	})
}

// POST /admin/carousels
func (h *AdminHandler) CarouselSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	fields := core.CarouselFields{
		Title:    strings.TrimSpace(r.FormValue("title")),
		Subtitle: strings.TrimSpace(r.FormValue("subtitle")),
		Image:    r.FormValue("image"),
		Link:     r.FormValue("link"),
		Order:    cast.ToInt(r.FormValue("order")),
		IsActive: r.FormValue("active") == "on",
	}

	var err error
	if id := r.FormValue("id"); id != "" {
		err = h.API.UpdateCarousel(r.Context(), id, fields)
	} else {
		err = h.API.CreateCarousel(r.Context(), fields)
	}
	if err != nil {
		h.apiError(w, r, err, "save carousel")
		return
	}

	http.Redirect(w, r, "/admin/carousels", http.StatusSeeOther)
}

// POST /admin/carousels/{id}/delete
func (h *AdminHandler) CarouselDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteCarousel(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.apiError(w, r, err, "delete carousel")
		return
	}
	http.Redirect(w, r, "/admin/carousels", http.StatusSeeOther)
}

// GET /admin/quotes
func (h *AdminHandler) QuotesList(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.API.QuoteRequests(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("quote requests fetch failed")
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/admin.html", "admin/quotes.html", map[string]interface{}{
		"Title":  "Quote Requests",
		"Quotes": quotes,
	})
}

// POST /admin/quotes/{id}/status
func (h *AdminHandler) QuoteStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	if err := h.API.UpdateQuoteStatus(r.Context(), mux.Vars(r)["id"], r.FormValue("status")); err != nil {
		h.apiError(w, r, err, "update quote status")
		return
	}
	http.Redirect(w, r, "/admin/quotes", http.StatusSeeOther)
}

// POST /admin/quotes/{id}/delete
func (h *AdminHandler) QuoteDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.API.DeleteQuoteRequest(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.apiError(w, r, err, "delete quote request")
		return
	}
	http.Redirect(w, r, "/admin/quotes", http.StatusSeeOther)
}

// apiError sends expired sessions back to login and everything else to a
// plain error response.
func (h *AdminHandler) apiError(w http.ResponseWriter, r *http.Request, err error, action string) {
	if errors.Is(err, core.ErrUnauthorized) {
		middleware.ClearAuthCookie(w)
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	h.Log.Error().Err(err).Str("action", action).Msg("admin API call failed")
	http.Error(w, "The backend rejected the request. Check the logs.", http.StatusBadGateway)
}

// splitLines turns a textarea into a list, dropping blank lines.
func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
