package app

import (
	"net/http"

	"github.com/gorilla/mux"

	internalApp "github.com/sylvie882/garbage-collection-frontend-sub000/internal/app"
	"github.com/sylvie882/garbage-collection-frontend-sub000/pkg/handlers"
	"github.com/sylvie882/garbage-collection-frontend-sub000/pkg/middleware"
)

// NewRouter configures all application routes from the container.
func NewRouter(c *internalApp.Container) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(c.Log))

	public := &handlers.PublicHandler{
		Templates: c.Templates,
		Directory: c.Directory,
		Log:       c.Log,
	}
	services := &handlers.ServiceHandler{
		Templates: c.Templates,
		Directory: c.Directory,
		Log:       c.Log,
	}
	quote := &handlers.QuoteHandler{
		Templates: c.Templates,
		Directory: c.Directory,
		Log:       c.Log,
	}
	admin := &handlers.AdminHandler{
		Templates: c.Templates,
		Directory: c.Directory,
		API:       c.Directory,
		Log:       c.Log,
	}

	// Static assets
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.Dir(c.Cfg.AssetsDir))))

	// Public pages
	r.HandleFunc("/", public.Index).Methods(http.MethodGet)
	r.HandleFunc("/about", public.About).Methods(http.MethodGet)
	r.HandleFunc("/contact", public.Contact).Methods(http.MethodGet)
	r.HandleFunc("/privacy", public.Privacy).Methods(http.MethodGet)
	r.HandleFunc("/terms", public.Terms).Methods(http.MethodGet)
	r.HandleFunc("/counties/{slug}", public.County).Methods(http.MethodGet)

	// Service directory
	r.HandleFunc("/services", services.List).Methods(http.MethodGet)
	r.HandleFunc("/services/{identifier}", services.Detail).Methods(http.MethodGet)

	// Quote requests
	r.HandleFunc("/quote", quote.Show).Methods(http.MethodGet)
	r.HandleFunc("/quote", quote.Submit).Methods(http.MethodPost)

	// Admin auth (outside the protected group)
	r.HandleFunc("/admin/login", admin.ShowLogin).Methods(http.MethodGet)
	r.HandleFunc("/admin/login", admin.ProcessLogin).Methods(http.MethodPost)
	r.HandleFunc("/admin/logout", admin.Logout).Methods(http.MethodGet)

	// Admin back-office (protected)
	adminGroup := r.PathPrefix("/admin").Subrouter()
	adminGroup.Use(middleware.RequireAdmin)

	adminGroup.HandleFunc("", admin.Dashboard).Methods(http.MethodGet)
	adminGroup.HandleFunc("/", admin.Dashboard).Methods(http.MethodGet)

	adminGroup.HandleFunc("/services", admin.ServicesList).Methods(http.MethodGet)
	adminGroup.HandleFunc("/services", admin.ServiceSave).Methods(http.MethodPost)
	adminGroup.HandleFunc("/services/{id}/delete", admin.ServiceDelete).Methods(http.MethodPost)

	adminGroup.HandleFunc("/carousels", admin.CarouselsList).Methods(http.MethodGet)
	adminGroup.HandleFunc("/carousels", admin.CarouselSave).Methods(http.MethodPost)
	adminGroup.HandleFunc("/carousels/{id}/delete", admin.CarouselDelete).Methods(http.MethodPost)

	adminGroup.HandleFunc("/quotes", admin.QuotesList).Methods(http.MethodGet)
	adminGroup.HandleFunc("/quotes/{id}/status", admin.QuoteStatus).Methods(http.MethodPost)
	adminGroup.HandleFunc("/quotes/{id}/delete", admin.QuoteDelete).Methods(http.MethodPost)

	r.NotFoundHandler = middleware.RequestLogger(c.Log)(http.HandlerFunc(public.NotFound))

	return r
}
