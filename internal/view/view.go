package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"bandbook/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the envelope every template receives: an optional flash-style
// notice and the page's view-model.
type Page struct {
	Notice     string
	Error      string
	SearchTerm string
	Data       any
}

// Renderer turns view-models into HTML pages.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"medium": utils.FormatMedium,
		"full":   utils.FormatFull,
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the named template into a buffer first so a template
// fault never produces a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, page); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// RenderNotFound writes the dedicated 404 page.
func (r *Renderer) RenderNotFound(w http.ResponseWriter) {
	_ = r.Render(w, http.StatusNotFound, "404.html", Page{})
}

// RenderServerError writes the dedicated 500 page.
func (r *Renderer) RenderServerError(w http.ResponseWriter) {
	_ = r.Render(w, http.StatusInternalServerError, "500.html", Page{})
}
