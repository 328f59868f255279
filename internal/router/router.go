// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router assembles the HTTP routes and middleware chain.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/handlers"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/middleware"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/web"
)

// New builds the site router. The rate limiter guards only the form
// submission routes; browsing is never throttled.
func New(h *handlers.Handler, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.CSRF)

	r.Get("/", h.Home)
	r.Get("/about", h.About)
	r.Get("/services", h.Services)
	r.Get("/blog", h.BlogList)
	r.Get("/blog/{slug}", h.BlogDetail)
	r.Get("/booking", h.BookingPage)
	r.Get("/contact", h.ContactPage)
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/booking", h.SubmitBooking)
		r.Post("/contact", h.SubmitContact)
		r.Post("/enquiry", h.SubmitEnquiry)
	})

	r.Handle("/static/*", http.StripPrefix("/static/", web.StaticHandler()))

	r.NotFound(h.NotFound)

	return r
}
