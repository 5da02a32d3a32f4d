package firefly

import (
	"context"
	"net/http"
	"net/url"
)

// Object is one JSON:API record: a string ID plus typed attributes.
type Object[A any] struct {
	Type       string `json:"type"`
	ID         string `json:"id"`
	Attributes A      `json:"attributes"`
}

// Single wraps a one-record response.
type Single[A any] struct {
	Data Object[A] `json:"data"`
}

// Many wraps a list response with pagination metadata.
type Many[A any] struct {
	Data []Object[A] `json:"data"`
	Meta Meta        `json:"meta"`
}

// Meta carries response metadata.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Pagination describes the backend's page window. Only the first page is
// surfaced unless a page parameter is threaded through explicitly.
type Pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// List fetches a collection endpoint.
func List[A any](ctx context.Context, c *Client, path string, query url.Values) (Many[A], error) {
	var out Many[A]
	err := c.Do(ctx, http.MethodGet, path, query, nil, &out)
	return out, err
}

// Get fetches a single-record endpoint.
func Get[A any](ctx context.Context, c *Client, path string) (Single[A], error) {
	var out Single[A]
	err := c.Do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}

// Post creates a record and returns the backend's stored representation.
func Post[A any](ctx context.Context, c *Client, path string, body any) (Single[A], error) {
	var out Single[A]
	err := c.Do(ctx, http.MethodPost, path, nil, body, &out)
	return out, err
}

// Put updates a record and returns the backend's stored representation.
func Put[A any](ctx context.Context, c *Client, path string, body any) (Single[A], error) {
	var out Single[A]
	err := c.Do(ctx, http.MethodPut, path, nil, body, &out)
	return out, err
}

// Delete removes a record. The backend responds 204 with no body.
func Delete(ctx context.Context, c *Client, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}
