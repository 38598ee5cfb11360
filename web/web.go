// Package web embeds the single-page UI.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() (*template.Template, error) {
	return template.ParseFS(files, "templates/*.html")
}
