package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
)

// PublicHandler renders the marketing pages.
type PublicHandler struct {
	Templates TemplateProvider
	Directory core.ServiceDirectory
	Log       zerolog.Logger
}

// Index renders the homepage: carousel slides, a preview of active services,
// and the served counties. Either fetch failing degrades to its empty state.
// GET /
func (h *PublicHandler) Index(w http.ResponseWriter, r *http.Request) {
	slides, err := h.Directory.Carousels(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("carousels fetch failed")
	}
	active := make([]core.CarouselSlide, 0, len(slides))
	for _, s := range slides {
		if s.IsActive {
			active = append(active, s)
		}
	}

	records, err := h.Directory.Services(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("services fetch failed")
	}
	preview := make([]core.ServiceRecord, 0, 6)
	for _, svc := range records {
		if !svc.IsActive {
			continue
		}
		preview = append(preview, svc)
		if len(preview) == 6 {
			break
		}
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/index.html", map[string]interface{}{
		"Title":    "Reliable Waste Collection",
		"Slides":   active,
		"Services": preview,
		"Counties": core.Counties,
	})
}

// GET /about
func (h *PublicHandler) About(w http.ResponseWriter, r *http.Request) {
	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/about.html", map[string]interface{}{
		"Title": "About Us",
	})
}

// GET /contact
func (h *PublicHandler) Contact(w http.ResponseWriter, r *http.Request) {
	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/contact.html", map[string]interface{}{
		"Title":    "Contact Us",
		"Counties": core.Counties,
	})
}

// GET /privacy
func (h *PublicHandler) Privacy(w http.ResponseWriter, r *http.Request) {
	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/privacy.html", map[string]interface{}{
		"Title": "Privacy Policy",
	})
}

// GET /terms
func (h *PublicHandler) Terms(w http.ResponseWriter, r *http.Request) {
	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/terms.html", map[string]interface{}{
		"Title": "Terms of Service",
	})
}

// County renders a county landing page with the services available there.
// GET /counties/{slug}
func (h *PublicHandler) County(w http.ResponseWriter, r *http.Request) {
	county := core.CountyBySlug(mux.Vars(r)["slug"])
	if county == nil {
		h.NotFound(w, r)
		return
	}

	records, err := h.Directory.Services(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Str("county", county.Slug).Msg("services fetch failed")
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/county.html", map[string]interface{}{
		"Title":    "Waste Collection in " + county.Name,
		"County":   county,
		"Services": records,
	})
}

// NotFound is the catch-all 404 page.
func (h *PublicHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderPage(h.Templates, w, r, http.StatusNotFound, "layouts/base.html", "public/notfound.html", map[string]interface{}{
		"Title": "Page Not Found",
	})
}
