// Package view renders the application's HTML pages from templates
// embedded in the binary.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page carries the fields every template expects: the page title and
// the signed-in user, if any. Handlers embed it in their page data.
type Page struct {
	Title    string
	Username string
}

// Renderer executes named page templates.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into a buffer first, so a
// template error can still produce a 500 instead of a torn page.
func (r *Renderer) Render(w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Default().Error("template execution failed",
			slog.String("template", name),
			slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter) {
	r.Render(w, http.StatusNotFound, "not_found.html", Page{Title: "Not found"})
}
