// Package view renders the embedded HTML templates. Rendering is a
// pure function of view name + data; no template touches the stores.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/quicknote/quicknote-go/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds the parsed template set.
type Renderer struct {
	templates *template.Template
}

// New parses all embedded templates. Parse failures are programmer
// errors and surface at startup, not per request.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named template with the given status. The template
// executes into a buffer first so a mid-render failure never leaks a
// half-written page to the client.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name+".html", data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		http.Error(w, "Something went wrong. Please try again later.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// RegisterData feeds the registration form.
type RegisterData struct {
	Error string
}

// LoginData feeds the login form.
type LoginData struct {
	Error   string
	Success string
}

// DashboardData feeds the notes dashboard.
type DashboardData struct {
	UserName string
	Notes    []model.Note
	Error    string
}

// ErrorData feeds the standalone error page.
type ErrorData struct {
	Title   string
	Message string
	Code    int
}
