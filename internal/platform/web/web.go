// Package web bundles the HTML templates and static assets into the binary.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

const (
	// DashboardTemplate is the name of the market table page.
	DashboardTemplate = "dashboard.tmpl"
	// ErrorTemplate is the name of the fetch failure page.
	ErrorTemplate = "error.tmpl"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every embedded template.
func Templates() (*template.Template, error) {
	tmpl, err := template.New("").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// MustTemplates is like Templates but panics on error.
func MustTemplates() *template.Template {
	tmpl, err := Templates()
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Static returns the static asset tree rooted at "static".
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
