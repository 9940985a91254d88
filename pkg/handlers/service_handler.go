package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/core"
	"github.com/sylvie882/garbage-collection-frontend-sub000/internal/service"
)

// ServiceHandler renders the public service listing and detail pages.
type ServiceHandler struct {
	Templates TemplateProvider
	Directory core.ServiceDirectory
	Log       zerolog.Logger
}

// parseListingQuery maps the /services query string to a listing query.
// page defaults to 1 when absent or non-numeric; search and category pass
// through as-is (the engine owns the sentinel handling).
func parseListingQuery(values url.Values) service.ListingQuery {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil {
		page = 1
	}
	return service.ListingQuery{
		Search:   values.Get("search"),
		Category: values.Get("category"),
		Page:     page,
	}
}

// List renders the filtered, paginated service grid.
// GET /services?search=&category=&page=
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := parseListingQuery(r.URL.Query())

	records, err := h.Directory.Services(r.Context())
	if err != nil {
		// Empty result and fetch failure render the same empty state; the
		// log line is what tells them apart.
		h.Log.Error().Err(err).Msg("services fetch failed")
	}

	result := service.BuildListing(records, q)

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/services.html", map[string]interface{}{
		"Title":      "Our Services",
		"Result":     result,
		"Categories": service.Categories(records),
		"Search":     q.Search,
		"Category":   q.Category,
	})
}

// Detail resolves a URL identifier to a single service.
// GET /services/{identifier}
func (h *ServiceHandler) Detail(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["identifier"]

	records, err := h.Directory.Services(r.Context())
	if err != nil {
		// A fetch failure is not a NotFound: the record may well exist.
		h.Log.Error().Err(err).Str("identifier", identifier).Msg("services fetch failed")
		RenderPage(h.Templates, w, r, http.StatusServiceUnavailable, "layouts/base.html", "public/error.html", map[string]interface{}{
			"Title": "Temporarily Unavailable",
		})
		return
	}

	svc, err := service.ResolveService(records, identifier)
	if errors.Is(err, core.ErrNotFound) {
		RenderPage(h.Templates, w, r, http.StatusNotFound, "layouts/base.html", "public/notfound.html", map[string]interface{}{
			"Title": "Service Not Found",
		})
		return
	}

	RenderPage(h.Templates, w, r, http.StatusOK, "layouts/base.html", "public/service_detail.html", map[string]interface{}{
		"Title":   svc.Name,
		"Service": *svc,
		"Related": service.RelatedServices(records, svc, 3),
	})
}
