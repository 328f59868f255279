// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

// ListOptions selects a page of the post listing.
type ListOptions struct {
	Page     int    // 1-based; 0 means the backend default
	PageSize int    // 0 means the backend default
	Ordering string // e.g. "-published_date"
}

// ListPosts fetches a page of published posts.
func (c *Client) ListPosts(ctx context.Context, opts ListOptions) (*PostList, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(opts.PageSize))
	}
	if opts.Ordering != "" {
		q.Set("ordering", opts.Ordering)
	}

	var list PostList
	if err := c.get(ctx, "/blog/posts/", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetPost fetches a single post by its slug.
func (c *Client) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	if err := c.get(ctx, "/blog/posts/"+url.PathEscape(slug)+"/", nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// FeaturedPosts fetches the non-paginated featured posts list.
func (c *Client) FeaturedPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.get(ctx, "/blog/posts/featured/", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// SearchOptions narrows a post search. Zero values are omitted from the query.
type SearchOptions struct {
	Query    string
	Category string
	Page     int
	PageSize int
}

// SearchPosts fetches posts matching a free-text query and/or category slug.
func (c *Client) SearchPosts(ctx context.Context, opts SearchOptions) (*PostList, error) {
	q := url.Values{}
	if opts.Query != "" {
		q.Set("q", opts.Query)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(opts.PageSize))
	}

	var list PostList
	if err := c.get(ctx, "/blog/posts/search/", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PostsByCategory fetches a page of posts in one category.
func (c *Client) PostsByCategory(ctx context.Context, category string, page int) (*PostList, error) {
	q := url.Values{}
	q.Set("category", category)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var list PostList
	if err := c.get(ctx, "/blog/posts/by_category/", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// PostsByTag fetches a page of posts carrying one tag.
func (c *Client) PostsByTag(ctx context.Context, tag string, page int) (*PostList, error) {
	q := url.Values{}
	q.Set("tag", tag)
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var list PostList
	if err := c.get(ctx, "/blog/posts/by_tag/", q, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListCategories fetches the non-paginated category list.
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.get(ctx, "/blog/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory fetches a single category by slug.
func (c *Client) GetCategory(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := c.get(ctx, "/blog/categories/"+url.PathEscape(slug)+"/", nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListTags fetches the non-paginated tag list.
func (c *Client) ListTags(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag
	if err := c.get(ctx, "/blog/tags/", nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetTag fetches a single tag by slug.
func (c *Client) GetTag(ctx context.Context, slug string) (*models.Tag, error) {
	var tag models.Tag
	if err := c.get(ctx, "/blog/tags/"+url.PathEscape(slug)+"/", nil, &tag); err != nil {
		return nil, err
	}
	return &tag, nil
}
