// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/blog"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

// widgetPostLimit caps the regular cards shown in the homepage blog widget.
const widgetPostLimit = 3

// Home renders the homepage: hero carousel, services, testimonials, the
// blog summary widget and the general enquiry form.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, &models.GeneralEnquiryForm{}, nil)
}

func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, enquiry *models.GeneralEnquiryForm, inline *flash.Message) {
	data := h.pageData(w, r, "", "home")
	if inline != nil {
		data.Flash = inline
	}

	current, _ := h.rotator.Current()
	data.Data["Slides"] = h.rotator.Slides()
	data.Data["CurrentSlide"] = current
	data.Data["Services"] = services
	data.Data["Testimonials"] = testimonials
	data.Data["Enquiry"] = enquiry

	// The widget fetches one search page and shows a small window of it.
	// A backend failure leaves the widget empty; the page still renders.
	widget := blog.NewWidget(h.api)
	widget.LoadInitial(r.Context())
	featured, regular := widget.Partition()
	if len(regular) > widgetPostLimit {
		regular = regular[:widgetPostLimit]
	}
	data.Data["WidgetFeatured"] = featured
	data.Data["WidgetPosts"] = regular
	data.Data["WidgetCategories"] = widget.Categories()

	h.renderer.Page(w, http.StatusOK, "home", data)
}

// About renders the about page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r, "About Us", "about")
	data.Data["Values"] = aboutValues
	h.renderer.Page(w, http.StatusOK, "about", data)
}

// Services renders the services page.
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(w, r, "Our Services", "services")
	data.Data["Services"] = services
	h.renderer.Page(w, http.StatusOK, "services", data)
}

// Health reports liveness plus backend reachability. The site is up even
// when the backend is not, so backend status is informational.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	backend := "ok"
	if err := h.api.Health(r.Context()); err != nil {
		backend = "unreachable"
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"backend": backend,
	})
}
