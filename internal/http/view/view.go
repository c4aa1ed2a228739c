package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Data is the bag of values handed to a template.
type Data map[string]any

// HTMLRenderer renders the server-side views. Templates are embedded at
// build time and parsed once.
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &HTMLRenderer{
		tmpl: tmpl,
	}, nil
}

// Render writes the named view. The template executes into a buffer first
// so a template error never leaves a half-written page behind.
func (hr *HTMLRenderer) Render(w http.ResponseWriter, name string, data Data) error {
	var buf bytes.Buffer
	if err := hr.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("execute template %q: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}
