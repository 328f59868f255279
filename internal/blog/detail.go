// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"log/slog"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/api"
	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

const (
	// relatedFetchSize over-fetches so the primary post can be excluded.
	relatedFetchSize = 4

	// relatedLimit caps the related posts shown under an article.
	relatedLimit = 3
)

// Detail is a single post plus up to three related posts from its category.
type Detail struct {
	Post    *models.Post
	Related []models.Post
}

// LoadDetail fetches a post by slug and its related posts. A failure on the
// primary fetch is returned to the caller so the page can show an explicit
// error view with a way back to the listing. A failure on the related fetch
// is non-fatal: the article still renders, with zero related posts.
func LoadDetail(ctx context.Context, client *api.Client, slug string) (*Detail, error) {
	post, err := client.GetPost(ctx, slug)
	if err != nil {
		return nil, err
	}

	detail := &Detail{Post: post}
	if post.Category.Slug == "" {
		return detail, nil
	}

	list, err := client.SearchPosts(ctx, api.SearchOptions{
		Category: post.Category.Slug,
		PageSize: relatedFetchSize,
	})
	if err != nil {
		slog.Warn("blog: related posts fetch failed", "slug", slug, "error", err)
		return detail, nil
	}

	for _, p := range list.Results {
		if p.ID == post.ID {
			continue
		}
		detail.Related = append(detail.Related, p)
		if len(detail.Related) == relatedLimit {
			break
		}
	}
	return detail, nil
}
