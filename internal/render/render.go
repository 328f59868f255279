// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site.
// Every page template is paired with the base layout; all templates are
// embedded in the binary.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/markdown"
)

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to site templates.
type PageData struct {
	Title     string         // Page title for the <title> tag
	Section   string         // Active nav section (e.g. "home", "blog")
	CSRFToken string         // Token for the hidden form field
	Flash     *flash.Message // One-time notification, or nil
	Data      map[string]any // Page-specific data
}

// Renderer handles template parsing and execution for site pages.
type Renderer struct {
	templates map[string]*template.Template
}

// funcMap is shared across all site templates.
var funcMap = template.FuncMap{
	// formatDate renders an ISO-8601 date like "January 2, 2006".
	"formatDate": func(iso string) string {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, iso); err == nil {
				return t.Format("January 2, 2006")
			}
		}
		return iso
	},
	// articleHTML renders an article body (Markdown or raw HTML) for
	// embedding. The backend is the sole author of article content.
	"articleHTML": func(body string) template.HTML {
		out, err := markdown.ToHTML(body)
		if err != nil {
			return template.HTML(template.HTMLEscapeString(body))
		}
		return template.HTML(out)
	},
	// deref safely dereferences a string pointer for use in templates.
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	// inc is used for next-page links and slide numbering.
	"inc": func(n int) int { return n + 1 },
	// plural appends "s" for counts other than one.
	"plural": func(n int, word string) string {
		if n == 1 {
			return word
		}
		return word + "s"
	},
	"lower": strings.ToLower,
}

// New creates a Renderer by parsing all site templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	entries, err := siteFS.ReadDir("templates/site")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template)}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			siteFS, "templates/site/base.html", "templates/site/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.templates[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Render executes a page template against the base layout and returns the
// resulting HTML. Rendering to a buffer keeps a template failure from
// leaking a half-written page, and gives the page cache complete bytes.
func (rn *Renderer) Render(name string, data *PageData) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}
	if data.Data == nil {
		data.Data = map[string]any{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Page renders a full site page into the response writer, falling back to
// a plain 500 when the template fails.
func (rn *Renderer) Page(w http.ResponseWriter, status int, name string, data *PageData) {
	html, err := rn.Render(name, data)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(html)
}
