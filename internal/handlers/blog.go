// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/blog"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/cache"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/flash"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/render"
)

// categoryLink is one filter chip on the blog page.
type categoryLink struct {
	Name   string
	URL    string
	Active bool
}

// BlogList renders the blog index. Filters and the accumulated page count
// live in the URL, so every view is shareable and reloadable.
func (h *Handler) BlogList(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	list := blog.NewList(h.api)
	list.SeedFromParams(r.URL.Query())

	page := 1
	if n, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && n > 1 {
		page = n
	}
	list.LoadThrough(r.Context(), page)
	list.LoadCategories(r.Context())

	data := h.pageData(w, r, "Blog", "blog")
	featured, regular := list.Partition()
	filter := list.Filter()
	empty := list.Empty()

	data.Data["Filter"] = filter
	data.Data["Featured"] = featured
	data.Data["Posts"] = regular
	data.Data["CategoryLinks"] = h.categoryLinks(list)
	data.Data["EmptyFiltered"] = empty == blog.EmptyFiltered
	data.Data["EmptyNoPosts"] = empty == blog.EmptyNoPosts

	// Load-more is a plain link to the same view with one more page. It
	// disappears while filters are active; filtering works over the
	// already loaded window only.
	if list.HasMore() && !filter.Active() {
		params := list.Params()
		params.Set("page", strconv.Itoa(list.Page()+1))
		data.Data["LoadMoreURL"] = "/blog?" + params.Encode()
	}

	h.renderPage(w, r, "blog", data)
}

// BlogDetail renders a single article with up to three related posts.
func (h *Handler) BlogDetail(w http.ResponseWriter, r *http.Request) {
	if h.serveCached(w, r) {
		return
	}

	slug := chi.URLParam(r, "slug")
	detail, err := blog.LoadDetail(r.Context(), h.api, slug)
	if err != nil {
		if api.IsNotFound(err) {
			h.errorPage(w, r, http.StatusNotFound,
				"Article Not Found",
				"This article does not exist or has been removed.",
				"/blog", "Back to Blog")
			return
		}
		h.errorPage(w, r, http.StatusBadGateway,
			"Article Unavailable",
			"We could not load this article right now. Please try again shortly.",
			"/blog", "Back to Blog")
		return
	}

	data := h.pageData(w, r, detail.Post.Title, "blog")
	data.Data["Post"] = detail.Post
	data.Data["Related"] = detail.Related
	h.renderPage(w, r, "blog_detail", data)
}

// categoryLinks builds the chip row: "All" plus one chip per category,
// each preserving the current search term.
func (h *Handler) categoryLinks(list *blog.List) []categoryLink {
	filter := list.Filter()

	build := func(slug, name string) categoryLink {
		params := url.Values{}
		if filter.Query != "" {
			params.Set("search", filter.Query)
		}
		if slug != models.CategoryAll {
			params.Set("category", slug)
		}
		u := "/blog"
		if enc := params.Encode(); enc != "" {
			u += "?" + enc
		}
		return categoryLink{Name: name, URL: u, Active: filter.Category == slug}
	}

	links := []categoryLink{build(models.CategoryAll, "All")}
	for _, c := range list.Categories() {
		links = append(links, build(c.Slug, c.Name))
	}
	return links
}

// serveCached writes a cached copy of the page when one exists. Pages are
// only served from cache when no flash notification is pending, so a
// visitor never loses a toast to a cache hit.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request) bool {
	if _, err := r.Cookie(flash.CookieName); err == nil {
		return false
	}
	key := cache.RouteKey(r.URL.Path, r.URL.RawQuery)
	html, ok := h.pages.Get(r.Context(), key)
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Cache", "HIT")
	w.Write(html)
	return true
}

// renderPage renders a page and stores the result in the page cache.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, name string, data *render.PageData) {
	html, err := h.renderer.Render(name, data)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if data.Flash == nil {
		h.pages.Set(r.Context(), cache.RouteKey(r.URL.Path, r.URL.RawQuery), html)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
