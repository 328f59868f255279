// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers wires the site pages together: rendering, the backend
// API client, full-page caching and flash notifications.
package handlers

import (
	"net/http"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/cache"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/carousel"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/middleware"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/render"
)

// Handler serves all public site pages.
type Handler struct {
	renderer *render.Renderer
	api      *api.Client
	pages    *cache.PageCache
	flash    *flash.Store
	rotator  *carousel.Rotator
}

// New creates the site handler. The page cache and flash store tolerate
// a nil Valkey client, so the site runs without it.
func New(renderer *render.Renderer, client *api.Client, pages *cache.PageCache, store *flash.Store, rotator *carousel.Rotator) *Handler {
	return &Handler{
		renderer: renderer,
		api:      client,
		pages:    pages,
		flash:    store,
		rotator:  rotator,
	}
}

// pageData builds the common template payload for a request: title, active
// nav section, CSRF token and any pending flash notification.
func (h *Handler) pageData(w http.ResponseWriter, r *http.Request, title, section string) *render.PageData {
	return &render.PageData{
		Title:     title,
		Section:   section,
		CSRFToken: middleware.GetCSRFToken(r),
		Flash:     h.flash.Take(r.Context(), w, r),
		Data:      map[string]any{},
	}
}

// errorPage renders the shared error template.
func (h *Handler) errorPage(w http.ResponseWriter, r *http.Request, status int, heading, message, backURL, backLabel string) {
	data := h.pageData(w, r, heading, "")
	data.Data["Code"] = status
	data.Data["Heading"] = heading
	data.Data["Message"] = message
	data.Data["BackURL"] = backURL
	data.Data["BackLabel"] = backLabel
	h.renderer.Page(w, status, "error", data)
}

// NotFound handles unmatched routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.errorPage(w, r, http.StatusNotFound,
		"Page Not Found",
		"The page you are looking for does not exist or has moved.",
		"/", "Go Back")
}
