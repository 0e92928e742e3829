// Package renderer implements echo.Renderer over html/template. Every
// display string goes through the template engine, so escaping is
// enforced structurally rather than at each call site.
package renderer

import (
	"html/template"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer implements echo.Renderer
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// New creates a new TemplateRenderer with pre-parsed templates
func New() *TemplateRenderer {
	return &TemplateRenderer{
		Templates: map[string]*template.Template{
			"browse": template.Must(template.New("browse").Parse(browsePage)),
			"error":  template.Must(template.New("error").Parse(errorPage)),
		},
	}
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}
	return tmpl.Execute(w, data)
}
