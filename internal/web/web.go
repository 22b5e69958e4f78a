// Package web renders the HTML pages and serves the static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/dom/gameshelf/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageIndex    = "index"
	PageRegister = "register"
	PageLogin    = "login"
	PageProfile  = "profile"
	PageAddGame  = "add_game"
	PageError    = "error"
)

var pageNames = []string{PageIndex, PageRegister, PageLogin, PageProfile, PageAddGame, PageError}

// PageData is the model shared by all pages.
type PageData struct {
	Lang         string
	T            func(key string, args ...any) string
	User         *domain.User
	GamesEnabled bool
	Error        string
	Form         map[string]string
	Games        []*domain.Game
}

type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		tmpl, err := template.New(name).
			Option("missingkey=zero").
			ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render executes page into a buffer first so a failing template never
// leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// StaticHandler serves the embedded static directory; mount it with
// http.StripPrefix("/static/", ...).
func StaticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
