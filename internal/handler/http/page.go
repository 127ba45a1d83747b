package http

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var registerPageTemplate = template.Must(template.ParseFS(templateFS, "templates/register.html"))

// pageData feeds templates/register.html.
type pageData struct {
	Version          string
	Username         string
	UsernameValidity string
}
