package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses the embedded page templates into a single template set for
// gin's HTML renderer.
func Load() *template.Template {
	return template.Must(template.ParseFS(files, "*.html"))
}
