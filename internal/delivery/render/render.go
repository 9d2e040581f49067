// Package render is the shared html/template renderer both web apps plug
// into echo.
package render

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/nauteik/soa-project-sub001/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Renderer implements echo.Renderer over a parsed template set.
type Renderer struct {
	templates *template.Template
}

// Funcs are the helpers available inside every view.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"vnd":      util.FormatVND,
		"date":     util.FormatDate,
		"discount": util.FormatDiscount,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
	}
}

// New parses every template matching glob inside fsys.
func New(fsys fs.FS, glob string) (*Renderer, error) {
	t, err := template.New("").Funcs(Funcs()).ParseFS(fsys, glob)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	return &Renderer{templates: t}, nil
}

// Render writes the named template. Each page template defines its own name
// and pulls in the shared layout blocks.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return errors.Wrapf(r.templates.ExecuteTemplate(w, name, data), "failed to render %s", name)
}
