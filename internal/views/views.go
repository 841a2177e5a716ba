package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates
var templatesFS embed.FS

var pageTemplates = []string{
	"home.html",
	"list.html",
	"detail.html",
}

// Renderer holds one parsed template set per page, each combined with the
// shared partials.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageTemplates)),
	}

	for _, name := range pageTemplates {
		tmpl, err := template.ParseFS(
			templatesFS,
			"templates/"+name,
			"templates/partials/layout.html",
			"templates/partials/styles.html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}

	return r, nil
}

func (r *Renderer) Home(w io.Writer, page HomePage) error {
	return r.render(w, "home.html", page)
}

func (r *Renderer) List(w io.Writer, page ListPage) error {
	return r.render(w, "list.html", page)
}

func (r *Renderer) Detail(w io.Writer, page DetailPage) error {
	return r.render(w, "detail.html", page)
}

// render executes into a buffer first so a failing template never leaves a
// half written page behind.
func (r *Renderer) render(w io.Writer, name string, data any) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}

	_, err := buf.WriteTo(w)
	return err
}
