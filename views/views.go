// Package views holds the embedded HTML templates. Presentation only;
// all data comes ready-made from the controllers.
package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.tmpl
var files embed.FS

func Load() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.tmpl"))
}
