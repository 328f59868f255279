// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blog holds the listing and filtering engine behind the blog pages.
// A List owns the fetched post window, the active search/category filter,
// and the pagination cursor; all derivation (filtering, featured/regular
// partition, empty-state classification) is synchronous and in-memory.
//
// Two variants exist, mirroring the two places the site shows articles:
// NewList paginates server-side twelve posts at a time and lets filters
// narrow the already-loaded window; NewWidget fetches one large page up
// front for the homepage summary and never paginates.
package blog

import (
	"context"
	"log/slog"
	"net/url"
	"sync"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

const (
	// listPageSize is the page size of the paginated full listing.
	listPageSize = 12

	// widgetPageSize is the single up-front fetch size of the summary widget.
	widgetPageSize = 100

	// listOrdering sorts newest first.
	listOrdering = "-published_date"
)

// Filter is the visitor's active search/category selection.
type Filter struct {
	Query    string
	Category string // a category slug, or models.CategoryAll
}

// Active reports whether any filter deviates from its default.
func (f Filter) Active() bool {
	return f.Query != "" || (f.Category != "" && f.Category != models.CategoryAll)
}

// EmptyState classifies why nothing is visible, driving distinct messaging.
type EmptyState int

const (
	// EmptyNone means the visible set is non-empty.
	EmptyNone EmptyState = iota
	// EmptyFiltered means posts were fetched but the filters match none of
	// them; the UI offers a clear-filters action.
	EmptyFiltered
	// EmptyNoPosts means the backend returned nothing (or failed softly);
	// no clear-filters action is offered.
	EmptyNoPosts
)

// List is the blog listing state container. All methods are safe for
// concurrent use; filtering and derivation never block on I/O.
type List struct {
	client *api.Client
	widget bool

	mu         sync.Mutex
	loading    bool // in-flight guard: one fetch per List at a time
	generation uint64
	posts      []models.Post
	categories []models.Category
	filter     Filter
	page       int
	hasMore    bool
}

// NewList creates the paginated full-page listing engine.
func NewList(client *api.Client) *List {
	return &List{client: client, filter: Filter{Category: models.CategoryAll}}
}

// NewWidget creates the homepage summary variant: a single large fetch,
// a fixed category chip set, and no pagination.
func NewWidget(client *api.Client) *List {
	return &List{
		client: client,
		widget: true,
		filter: Filter{Category: models.CategoryAll},
		categories: []models.Category{
			{Name: "Pregnancy", Slug: "pregnancy"},
			{Name: "Birth", Slug: "birth"},
			{Name: "Postpartum", Slug: "postpartum"},
		},
	}
}

// LoadInitial fetches the first page of posts, replacing any previously
// fetched window. Failures degrade to an empty collection (the page shows
// "no articles" rather than an error) and are logged.
func (l *List) LoadInitial(ctx context.Context) {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		return
	}
	l.loading = true
	l.generation++
	gen := l.generation
	l.mu.Unlock()

	var (
		list *api.PostList
		err  error
	)
	if l.widget {
		list, err = l.client.SearchPosts(ctx, api.SearchOptions{PageSize: widgetPageSize})
	} else {
		list, err = l.client.ListPosts(ctx, api.ListOptions{
			Page:     1,
			PageSize: listPageSize,
			Ordering: listOrdering,
		})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if gen != l.generation {
		return // superseded by a newer load
	}
	if err != nil {
		slog.Error("blog: initial fetch failed", "error", err)
		l.posts = nil
		l.page = 1
		l.hasMore = false
		return
	}
	l.posts = list.Results
	l.page = 1
	l.hasMore = !l.widget && list.HasMore()
}

// LoadMore fetches the next page and appends it to the fetched window.
// It is a no-op while another load is in flight, when no further page
// exists, and always in the widget variant. A failed page load keeps the
// window and cursor unchanged so the visitor can try again.
func (l *List) LoadMore(ctx context.Context) {
	l.mu.Lock()
	if l.widget || l.loading || !l.hasMore {
		l.mu.Unlock()
		return
	}
	l.loading = true
	gen := l.generation
	next := l.page + 1
	l.mu.Unlock()

	list, err := l.client.ListPosts(ctx, api.ListOptions{
		Page:     next,
		PageSize: listPageSize,
		Ordering: listOrdering,
	})

	l.mu.Lock()
	defer l.mu.Unlock()
	l.loading = false
	if gen != l.generation {
		return // a fresh LoadInitial superseded this page
	}
	if err != nil {
		slog.Error("blog: page fetch failed", "page", next, "error", err)
		return
	}

	seen := make(map[int]bool, len(l.posts))
	for _, p := range l.posts {
		seen[p.ID] = true
	}
	for _, p := range list.Results {
		if !seen[p.ID] {
			l.posts = append(l.posts, p)
		}
	}
	l.page = next
	l.hasMore = list.HasMore()
}

// LoadThrough accumulates pages 1..n, stopping early when the backend has
// no further pages. It lets a stateless request rebuild a load-more session
// from a page number in the URL.
func (l *List) LoadThrough(ctx context.Context, n int) {
	l.LoadInitial(ctx)
	for l.Page() < n && l.HasMore() {
		before := l.Page()
		l.LoadMore(ctx)
		if l.Page() == before {
			return // fetch failed; don't spin
		}
	}
}

// LoadCategories fetches the category chips. Failure is non-fatal and
// leaves the chip list empty. The widget variant keeps its fixed set.
func (l *List) LoadCategories(ctx context.Context) {
	if l.widget {
		return
	}
	categories, err := l.client.ListCategories(ctx)
	if err != nil {
		slog.Warn("blog: category fetch failed", "error", err)
		return
	}
	l.mu.Lock()
	l.categories = categories
	l.mu.Unlock()
}

// SetQuery updates the free-text search filter.
func (l *List) SetQuery(q string) {
	l.mu.Lock()
	l.filter.Query = q
	l.mu.Unlock()
}

// SetCategory updates the category filter to a slug or models.CategoryAll.
func (l *List) SetCategory(slug string) {
	l.mu.Lock()
	if slug == "" {
		slug = models.CategoryAll
	}
	l.filter.Category = slug
	l.mu.Unlock()
}

// ClearFilters resets both filters in one step so no observer ever sees a
// half-cleared state.
func (l *List) ClearFilters() {
	l.mu.Lock()
	l.filter = Filter{Category: models.CategoryAll}
	l.mu.Unlock()
}

// SeedFromParams applies URL query parameters to the filter state. Called
// before the first render so a shared link reproduces the same view.
func (l *List) SeedFromParams(params url.Values) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.filter.Query = params.Get("search")
	if c := params.Get("category"); c != "" {
		l.filter.Category = c
	} else {
		l.filter.Category = models.CategoryAll
	}
}

// Params renders the filter state as shareable URL query parameters,
// omitting keys at their default values.
func (l *List) Params() url.Values {
	l.mu.Lock()
	defer l.mu.Unlock()
	params := url.Values{}
	if l.filter.Query != "" {
		params.Set("search", l.filter.Query)
	}
	if l.filter.Category != "" && l.filter.Category != models.CategoryAll {
		params.Set("category", l.filter.Category)
	}
	return params
}

// Visible returns the filtered post set: category equality AND'd with the
// case-insensitive substring search over title, excerpt, and tag names.
// Source order (newest first) is preserved; there is no ranking.
func (l *List) Visible() []models.Post {
	l.mu.Lock()
	defer l.mu.Unlock()
	return filterPosts(l.posts, l.filter)
}

// Partition splits the visible set into the first featured post and the
// remaining posts in original order. Any additional featured posts stay in
// the regular slice. Recomputed from scratch on every call.
func (l *List) Partition() (featured *models.Post, regular []models.Post) {
	visible := l.Visible()
	for i := range visible {
		if visible[i].IsFeatured {
			featured = &visible[i]
			break
		}
	}
	if featured == nil {
		return nil, visible
	}
	regular = make([]models.Post, 0, len(visible)-1)
	for _, p := range visible {
		if p.ID != featured.ID {
			regular = append(regular, p)
		}
	}
	return featured, regular
}

// Empty classifies the current view for empty-state messaging. The
// distinction rests on whether any posts were fetched at all.
func (l *List) Empty() EmptyState {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(filterPosts(l.posts, l.filter)) > 0 {
		return EmptyNone
	}
	if len(l.posts) > 0 {
		return EmptyFiltered
	}
	return EmptyNoPosts
}

// Filter returns the active filter selection.
func (l *List) Filter() Filter {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filter
}

// Categories returns the filter chips (fetched, or fixed for the widget).
func (l *List) Categories() []models.Category {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.categories
}

// Posts returns the full fetched window, unfiltered.
func (l *List) Posts() []models.Post {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.posts
}

// Page returns the highest page accumulated so far (1-based).
func (l *List) Page() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.page
}

// HasMore reports whether the backend signalled a further page.
func (l *List) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

// filterPosts applies the filter predicate, preserving source order.
func filterPosts(posts []models.Post, f Filter) []models.Post {
	if !f.Active() {
		return posts
	}
	filtered := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.MatchesCategory(f.Category) && p.MatchesQuery(f.Query) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
