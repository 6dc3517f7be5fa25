// Package web holds the embedded HTML templates and stylesheet.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/farellandr/showbook/internal/aggregate"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// TemplatePatterns lists every template file. Each file is registered under
// its base name, e.g. "venues.html".
var TemplatePatterns = []string{
	"templates/partials/*.html",
	"templates/pages/*.html",
	"templates/forms/*.html",
	"templates/errors/*.html",
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime": func(t time.Time, format string) string {
			return aggregate.FormatDateTime(t, format)
		},
		"join": func(items []string, sep string) string {
			return strings.Join(items, sep)
		},
		"contains": func(items []string, item string) bool {
			return slices.Contains(items, item)
		},
	}
}

// Templates parses the embedded template set.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templatesFS, TemplatePatterns...)
}

// Static serves the embedded stylesheet.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
