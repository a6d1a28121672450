// Package view renders the console's HTML pages from embedded templates.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-rental-admin/internal/form"
)

//go:embed templates/*.html
var files embed.FS

// Renderer implements echo.Renderer.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses the embedded templates; a parse error is a programming
// error and panics.
func NewRenderer() *Renderer {
	t := template.Must(template.New("").Funcs(template.FuncMap{
		"selected": func(fv form.FieldView, o form.Option) bool { return fv.Value == o.Value },
	}).ParseFS(files, "templates/*.html"))
	return &Renderer{t: t}
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}

// Row is one line of a list table.
type Row struct {
	ID    string
	Cells []string
}

// ListPage is the parent page of an entity: its table and, when open, the
// modal editing one of its rows.
type ListPage struct {
	Title    string
	Resource string // URL segment, e.g. "feedbacks"
	Columns  []string
	Rows     []Row
	Alert    string // page-level failure, e.g. the list could not be fetched
	Modal    form.View
	Action   string // form action of the modal
}

// LoginPage backs the sign-in form.
type LoginPage struct {
	Email string
	Alert string
}

// ErrorPage is rendered by the HTTP error handler.
type ErrorPage struct {
	Code    int
	Message string
}
