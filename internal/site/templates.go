package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed assets/*
var assetFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// assetFiles maps embedded assets to their output paths.
var assetFiles = map[string]string{
	"assets/style.css":     "css/style.css",
	"assets/livereload.js": "js/livereload.js",
}

type conceptPage struct {
	Title      string
	SiteTitle  string
	Version    string
	SchemePath string
	JSONLD     template.JS
	Main       template.HTML
	Aside      template.HTML
}

type schemePage struct {
	SiteTitle   string
	Version     string
	JSONLD      template.JS
	TopConcepts template.HTML
}

func renderTemplate(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("site: render %s: %w", name, err)
	}
	return buf.String(), nil
}
