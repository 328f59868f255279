// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the typed client for the maternal-health backend REST API.
// One method per endpoint; each builds the request, performs the call, and
// normalizes success and error shapes. The backend itself is an external
// collaborator; this package never retries and never caches.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CodeConjurer09/holistic-family-midwife-frontend/internal/models"
)

// Client talks to the backend API. Safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the backend rooted at baseURL
// (e.g. "http://localhost:8000/api"). A zero timeout defaults to 15s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is a non-2xx backend response. Message carries the backend's
// JSON "message" field when present, or a caller-supplied default.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error (status %d): %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// PostList is the pagination envelope returned by every list endpoint.
// Next and Previous are absolute URLs to the adjacent pages, or null.
type PostList struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []models.Post `json:"results"`
}

// HasMore reports whether the backend signalled a next page.
func (l *PostList) HasMore() bool {
	return l.Next != nil && *l.Next != ""
}

// get performs a GET against path (with optional query values) and decodes
// the JSON response body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, out, "request failed")
}

// post marshals body as JSON, POSTs it to path, and decodes the response
// into out. defaultMsg is the user-facing message used when an error
// response carries no parseable "message" field.
func (c *Client) post(ctx context.Context, path string, body any, out any, defaultMsg string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("api marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, out, defaultMsg)
}

// do executes the request and normalizes the response. Non-2xx statuses
// become an *APIError with the message extracted from the body on a
// best-effort basis.
func (c *Client) do(req *http.Request, out any, defaultMsg string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{
			Status:  resp.StatusCode,
			Message: extractMessage(respBody, defaultMsg),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("api unmarshal: %w", err)
	}
	return nil
}

// extractMessage pulls the "message" field out of an error response body,
// falling back to the given default when the body is absent or unparseable.
func extractMessage(body []byte, fallback string) string {
	var parsed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	return fallback
}

// Health calls the backend liveness probe.
func (c *Client) Health(ctx context.Context) error {
	return c.get(ctx, "/health/", nil, nil)
}
