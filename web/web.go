// Package web holds the server-rendered page templates.
package web

import (
	"embed"
	"html/template"
)

//go:embed template/*.html
var templateFS embed.FS

// Templates parses the embedded page templates; names are the file names.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "template/*.html"))
}
