// Package view turns a rendered page into HTML.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/iyhunko/product-showcase/internal/presenter"
	"github.com/iyhunko/product-showcase/internal/service"
)

// PageTemplate is the name of the full-page template.
const PageTemplate = "page"

// ErrNotReady is returned when rendering is attempted without a usable target.
var ErrNotReady = errors.New("render target not ready")

//go:embed templates/*.tmpl
var templateFS embed.FS

var badgeClasses = map[presenter.BadgeStyle]string{
	presenter.BadgeSuccess: "bg-green-500",
	presenter.BadgeDanger:  "bg-red-500",
}

// Funcs are the template helpers used by the page templates.
var Funcs = template.FuncMap{
	"badgeClass": func(b presenter.BadgeStyle) string {
		return badgeClasses[b]
	},
	"starClass": func(filled bool) string {
		if filled {
			return "text-yellow-400 fill-yellow-400"
		}
		return "text-gray-300"
	},
	"buttonClass": func(b presenter.ButtonState) string {
		if b.Enabled {
			return "bg-indigo-600 text-white hover:bg-indigo-700 active:bg-indigo-800"
		}
		return "bg-gray-100 text-gray-400 cursor-not-allowed"
	},
	"fallbackImage": func() string {
		return presenter.FallbackImageURL
	},
}

// Renderer writes pages as HTML.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("showcase").Funcs(Funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Template exposes the parsed templates, e.g. for gin's HTML renderer.
func (r *Renderer) Template() *template.Template {
	return r.tmpl
}

// Ready reports whether a page can be rendered to w: the target must exist
// and the templates must be parsed.
func (r *Renderer) Ready(w io.Writer) bool {
	return r != nil && r.tmpl != nil && r.tmpl.Lookup(PageTemplate) != nil && w != nil
}

// Render writes page to w as a complete HTML document.
func (r *Renderer) Render(w io.Writer, page service.PageView) error {
	if !r.Ready(w) {
		return ErrNotReady
	}
	if err := r.tmpl.ExecuteTemplate(w, PageTemplate, page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
