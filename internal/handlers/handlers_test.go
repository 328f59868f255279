// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/cache"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/carousel"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/render"
)

// ---------- Helpers ----------

// newSiteHandler builds a Handler against the given fake backend, with
// page caching and flash notifications disabled (nil Valkey client).
func newSiteHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New() error = %v", err)
	}

	rotator := carousel.New(carousel.DefaultSlides, time.Hour, time.Hour)
	t.Cleanup(rotator.Stop)

	return New(renderer, api.New(srv.URL, 0), cache.NewPageCache(nil, 0), flash.NewStore(nil), rotator)
}

// contentBackend serves a small fixed blog corpus and accepts form posts.
func contentBackend(t *testing.T) http.HandlerFunc {
	t.Helper()
	posts := []models.Post{
		{ID: 1, Title: "Natural Birth Guide", Slug: "natural-birth-guide", Excerpt: "Preparing for delivery.",
			Category: models.Category{Name: "Birth", Slug: "birth"}, IsFeatured: true, PublishedDate: "2026-03-15"},
		{ID: 2, Title: "Pregnancy Nutrition", Slug: "pregnancy-nutrition", Excerpt: "Eating well for two.",
			Category: models.Category{Name: "Pregnancy", Slug: "pregnancy"}, PublishedDate: "2026-03-10"},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/blog/posts/" || r.URL.Path == "/blog/posts/search/":
			json.NewEncoder(w).Encode(map[string]any{"count": len(posts), "results": posts})
		case r.URL.Path == "/blog/posts/natural-birth-guide/":
			json.NewEncoder(w).Encode(posts[0])
		case r.URL.Path == "/health/":
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		case r.URL.Path == "/blog/categories/":
			json.NewEncoder(w).Encode([]models.Category{
				{Name: "Birth", Slug: "birth"}, {Name: "Pregnancy", Slug: "pregnancy"},
			})
		case r.Method == http.MethodPost:
			json.NewEncoder(w).Encode(map[string]string{"message": "Received"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

// postForm builds an urlencoded POST request for a handler under test.
func postForm(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func withSlug(req *http.Request, slug string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("slug", slug)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func validBookingForm() url.Values {
	return url.Values{
		"first_name":              {"Jane"},
		"last_name":               {"Kimani"},
		"email":                   {"jane@example.com"},
		"phone":                   {"0700123456"},
		"address":                 {"Riverside Drive, Nairobi"},
		"service_type":            {"Consultations"},
		"preferred_date":          {"2026-09-10"},
		"preferred_time":          {"10:00 AM"},
		"emergency_contact_name":  {"John Kimani"},
		"emergency_contact_phone": {"0700654321"},
	}
}

// =====================================================================
// Page Handlers
// =====================================================================

func TestHome(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	rr := httptest.NewRecorder()
	h.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"Empowering Motherhood,",    // hero slide
		"Our Services",              // services grid
		"Natural Birth Guide",       // widget featured card
		`action="/enquiry"`,         // enquiry form
		`name="csrf_token"`,         // hidden token field
	} {
		if !strings.Contains(body, want) {
			t.Errorf("homepage missing %q", want)
		}
	}
}

func TestHomeBackendDownStillRenders(t *testing.T) {
	h := newSiteHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rr := httptest.NewRecorder()
	h.Home(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want the page despite a dead backend", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "No articles are available") {
		t.Error("widget empty state not shown")
	}
}

func TestBlogList(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	rr := httptest.NewRecorder()
	h.BlogList(rr, httptest.NewRequest(http.MethodGet, "/blog", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Natural Birth Guide") || !strings.Contains(body, "Pregnancy Nutrition") {
		t.Error("post cards missing")
	}
	if !strings.Contains(body, "Featured") {
		t.Error("featured card missing")
	}
}

func TestBlogListFiltered(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	rr := httptest.NewRecorder()
	h.BlogList(rr, httptest.NewRequest(http.MethodGet, "/blog?search=nutrition", nil))

	body := rr.Body.String()
	if !strings.Contains(body, "Pregnancy Nutrition") {
		t.Error("matching post missing")
	}
	if strings.Contains(body, "Natural Birth Guide") {
		t.Error("non-matching post shown")
	}
}

func TestBlogListFilteredEmptyState(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	rr := httptest.NewRecorder()
	h.BlogList(rr, httptest.NewRequest(http.MethodGet, "/blog?search=epidural", nil))

	body := rr.Body.String()
	if !strings.Contains(body, "No articles found") {
		t.Error("filtered empty state missing")
	}
	if !strings.Contains(body, "Clear Filters") {
		t.Error("clear-filters action missing")
	}
}

func TestBlogListNoPostsEmptyState(t *testing.T) {
	h := newSiteHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"count": 0, "results": []models.Post{}})
	})

	rr := httptest.NewRecorder()
	h.BlogList(rr, httptest.NewRequest(http.MethodGet, "/blog", nil))

	body := rr.Body.String()
	if !strings.Contains(body, "No articles yet") {
		t.Error("no-posts empty state missing")
	}
	if strings.Contains(body, "Clear Filters") {
		t.Error("clear-filters offered with no filters active")
	}
}

func TestBlogDetail(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	req := withSlug(httptest.NewRequest(http.MethodGet, "/blog/natural-birth-guide", nil), "natural-birth-guide")
	rr := httptest.NewRecorder()
	h.BlogDetail(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Natural Birth Guide") {
		t.Error("article title missing")
	}
	if !strings.Contains(body, "Back to Blog") {
		t.Error("back link missing")
	}
}

func TestBlogDetailNotFound(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	req := withSlug(httptest.NewRequest(http.MethodGet, "/blog/missing", nil), "missing")
	rr := httptest.NewRecorder()
	h.BlogDetail(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Article Not Found") {
		t.Error("error heading missing")
	}
	if !strings.Contains(body, `href="/blog"`) {
		t.Error("way back to the listing missing")
	}
}

// =====================================================================
// Form Handlers
// =====================================================================

func TestSubmitBookingSuccess(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	rr := httptest.NewRecorder()
	h.SubmitBooking(rr, postForm("/booking", validBookingForm()))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 redirect", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/booking" {
		t.Errorf("Location = %q, want /booking", got)
	}
}

func TestSubmitBookingValidationError(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	form := validBookingForm()
	form.Set("email", "")
	form.Set("additional_notes", "Twins expected")

	rr := httptest.NewRecorder()
	h.SubmitBooking(rr, postForm("/booking", form))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Email is required.") {
		t.Error("validation message missing")
	}
	// Every entered value survives the round trip.
	for _, want := range []string{`value="Jane"`, `value="0700123456"`, "Twins expected"} {
		if !strings.Contains(body, want) {
			t.Errorf("form lost entered value %q", want)
		}
	}
}

func TestSubmitBookingBackendError(t *testing.T) {
	h := newSiteHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Preferred date is fully booked"}`))
	})

	rr := httptest.NewRecorder()
	h.SubmitBooking(rr, postForm("/booking", validBookingForm()))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want re-rendered form", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Preferred date is fully booked") {
		t.Error("backend error message not surfaced")
	}
}

func TestSubmitEnquiry(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	form := url.Values{
		"name": {"Jane"}, "phone": {"0700123456"},
		"email": {"jane@example.com"}, "message": {"When are you open?"},
	}
	rr := httptest.NewRecorder()
	h.SubmitEnquiry(rr, postForm("/enquiry", form))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/" {
		t.Errorf("Location = %q, want /", got)
	}

	t.Run("invalid re-renders homepage with values", func(t *testing.T) {
		form.Set("message", "")
		rr := httptest.NewRecorder()
		h.SubmitEnquiry(rr, postForm("/enquiry", form))

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rr.Code)
		}
		body := rr.Body.String()
		if !strings.Contains(body, "Message is required.") {
			t.Error("validation message missing")
		}
		if !strings.Contains(body, `value="Jane"`) {
			t.Error("entered name lost")
		}
	})
}

func TestSubmitContact(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	form := url.Values{
		"name": {"Jane"}, "email": {"jane@example.com"}, "phone": {"0700123456"},
		"reason": {"General Question"}, "message": {"Do you offer home visits?"},
	}
	rr := httptest.NewRecorder()
	h.SubmitContact(rr, postForm("/contact", form))

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rr.Code)
	}
	if got := rr.Header().Get("Location"); got != "/contact" {
		t.Errorf("Location = %q, want /contact", got)
	}
}

// =====================================================================
// Health
// =====================================================================

func TestHealth(t *testing.T) {
	h := newSiteHandler(t, contentBackend(t))

	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status = %q, want ok", resp["status"])
	}

	t.Run("backend down is informational", func(t *testing.T) {
		down := newSiteHandler(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		rr := httptest.NewRecorder()
		down.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		var resp map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if resp["status"] != "ok" || resp["backend"] != "unreachable" {
			t.Errorf("resp = %v", resp)
		}
	})
}
