// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the wire types exchanged with the maternal-health
// backend API. The backend owns all data; the site only reads snapshots of
// published content and submits lead forms.
package models

import (
	"strings"
	"time"
)

// Post represents one published article as returned by the blog endpoints.
type Post struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	FeaturedImage string    `json:"featured_image"`
	Author        Author    `json:"author"`
	Category      Category  `json:"category"`
	Tags          []Tag     `json:"tags"`
	PublishedDate string    `json:"published_date"`
	ReadingTime   int       `json:"reading_time"`
	IsFeatured    bool      `json:"is_featured"`
	ViewsCount    int       `json:"views_count"`
}

// Author references the post author. Avatar and bio may be absent.
type Author struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Avatar *string `json:"avatar,omitempty"`
	Bio    *string `json:"bio,omitempty"`
}

// Category partitions posts. Each post has exactly one.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Tag labels posts, many-to-many. Unique by ID.
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PublishedAt parses the ISO-8601 published date. The zero time is returned
// for unparseable values so callers can still render the post.
func (p *Post) PublishedAt() time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, p.PublishedDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// MatchesQuery reports whether the post matches a free-text search query.
// The match is a case-insensitive substring test against the title, the
// excerpt, and each tag name (OR across tags). A blank query matches all.
func (p *Post) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Excerpt), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag.Name), q) {
			return true
		}
	}
	return false
}

// MatchesCategory reports whether the post belongs to the given category
// slug. The sentinel "all" (or empty) matches every post.
func (p *Post) MatchesCategory(slug string) bool {
	return slug == "" || slug == CategoryAll || p.Category.Slug == slug
}

// CategoryAll is the sentinel category selection meaning "no category filter".
const CategoryAll = "all"
