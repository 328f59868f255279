// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
)

func TestNewParsesAllPages(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	for _, name := range []string{"home", "about", "services", "blog", "blog_detail", "booking", "contact", "error"} {
		if _, ok := r.templates[name]; !ok {
			t.Errorf("template %q not parsed", name)
		}
	}
	if _, ok := r.templates["base"]; ok {
		t.Error("base layout registered as a page")
	}
}

func errorPageData() *PageData {
	return &PageData{
		Title:   "Page Not Found",
		Section: "",
		Data: map[string]any{
			"Code":      404,
			"Heading":   "Page Not Found",
			"Message":   "The page you are looking for does not exist.",
			"BackURL":   "/blog",
			"BackLabel": "Back to Blog",
		},
	}
}

func TestRenderErrorPage(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	html, err := r.Render("error", errorPageData())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := string(html)

	for _, want := range []string{"404", "Page Not Found", "Back to Blog", "<title>Page Not Found — Holistic Family Midwife</title>", "</footer>"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := r.Render("admin", &PageData{}); err == nil {
		t.Error("Render() accepted an unknown template name")
	}
}

func TestRenderFlash(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	data := errorPageData()
	data.Flash = &flash.Message{Type: "success", Message: "Booking received"}

	html, err := r.Render("error", data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(html), "Booking received") {
		t.Error("flash message not rendered")
	}

	data.Flash = nil
	html, err = r.Render("error", data)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(string(html), "data-flash") {
		t.Error("flash block rendered with no message")
	}
}

func TestPageWritesResponse(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	rr := httptest.NewRecorder()
	r.Page(rr, 404, "error", errorPageData())

	if rr.Code != 404 {
		t.Errorf("status = %d, want 404", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}

	t.Run("unknown template falls back to 500", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.Page(rr, 200, "missing", &PageData{})
		if rr.Code != 500 {
			t.Errorf("status = %d, want 500", rr.Code)
		}
	})
}

func TestFormatDate(t *testing.T) {
	format := funcMap["formatDate"].(func(string) string)

	if got := format("2026-03-15"); got != "March 15, 2026" {
		t.Errorf("formatDate(date) = %q", got)
	}
	if got := format("2026-03-15T08:30:00Z"); got != "March 15, 2026" {
		t.Errorf("formatDate(rfc3339) = %q", got)
	}
	if got := format("soon"); got != "soon" {
		t.Errorf("formatDate(garbage) = %q, want passthrough", got)
	}
}

func TestArticleHTML(t *testing.T) {
	render := funcMap["articleHTML"].(func(string) template.HTML)

	out := string(render("Some **important** advice."))
	if !strings.Contains(out, "<strong>important</strong>") {
		t.Errorf("articleHTML() = %q, want rendered markdown", out)
	}
}
