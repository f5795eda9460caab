// Package web holds the planning page and its static assets.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Page is the data of the planning page.
type Page struct {
	StylePath  string
	ActionPath string
	UserInput  string
	Days       string
	Demo       bool
	Results    template.HTML
}

func RenderPage(w io.Writer, p Page) error {
	return pageTmpl.Execute(w, p)
}

// Static returns the asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
