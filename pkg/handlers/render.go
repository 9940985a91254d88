package handlers

import (
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

// TemplateProvider hands out the parsed layout/component set and resolves
// page names to files. Implemented by internal/app.Templates.
type TemplateProvider interface {
	Base() *template.Template
	PagePath(page string) string
}

// RenderPage renders a page inside a layout. Page files are parsed on top of
// a clone of the base set so pages can freely redefine the "content" block.
//
// HTMX navigation (HX-Request with HX-Target: main-content) gets the content
// block only, skipping the layout.
func RenderPage(t TemplateProvider, w http.ResponseWriter, r *http.Request, status int, layout, page string, data map[string]interface{}) {
	tmpl, err := t.Base().Clone()
	if err != nil {
		log.Error().Err(err).Msg("template clone failed")
		http.Error(w, "Template error", http.StatusInternalServerError)
		return
	}

	if _, err = tmpl.ParseFiles(t.PagePath(page)); err != nil {
		log.Error().Err(err).Str("page", page).Msg("page template parse failed")
		http.Error(w, "Page not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	isHtmxNav := r.Header.Get("HX-Request") == "true" && r.Header.Get("HX-Target") == "main-content"
	name := layout
	if isHtmxNav {
		name = "content"
	}

	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		// Status is already on the wire; all that's left is the log line.
		log.Error().Err(err).Str("template", name).Str("page", page).Msg("render failed")
	}
}
