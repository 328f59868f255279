// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTMLMarkdown(t *testing.T) {
	out, err := ToHTML("## Trimester Checklist\n\nSome **important** advice.")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}

	if !strings.Contains(out, "<h2") || !strings.Contains(out, "Trimester Checklist") {
		t.Errorf("output missing heading: %s", out)
	}
	if !strings.Contains(out, "<strong>important</strong>") {
		t.Errorf("output missing emphasis: %s", out)
	}
}

// Articles authored as raw HTML must pass through unchanged.
func TestToHTMLRawHTMLPassthrough(t *testing.T) {
	src := `<div class="callout"><p>See your midwife weekly after week 36.</p></div>`
	out, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(out, `<div class="callout">`) {
		t.Errorf("raw HTML was escaped or stripped: %s", out)
	}
}

func TestToHTMLGFMTable(t *testing.T) {
	src := "| Week | Visit |\n| ---- | ----- |\n| 28 | Glucose screen |"
	out, err := ToHTML(src)
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(out, "<table>") {
		t.Errorf("GFM table not rendered: %s", out)
	}
}

func TestToHTMLHeadingAnchors(t *testing.T) {
	out, err := ToHTML("## What to Pack")
	if err != nil {
		t.Fatalf("ToHTML() error = %v", err)
	}
	if !strings.Contains(out, `id="what-to-pack"`) {
		t.Errorf("heading anchor missing: %s", out)
	}
}
