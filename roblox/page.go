package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// SortOrder selects the direction of a paginated listing.
type SortOrder string

const (
	// SortAsc lists oldest entries first.
	SortAsc SortOrder = "Asc"
	// SortDesc lists newest entries first.
	SortDesc SortOrder = "Desc"
)

// Page is one slice of a cursor-paginated endpoint. Cursors are opaque
// server-issued tokens; nil means there is no page in that direction.
// Data preserves server order.
type Page[T any] struct {
	PreviousPageCursor *string `json:"previousPageCursor"`
	NextPageCursor     *string `json:"nextPageCursor"`
	Data               []T     `json:"data"`
}

// HasNextPage reports whether the server issued a cursor for a
// following page.
func (p *Page[T]) HasNextPage() bool {
	return p.NextPageCursor != nil && *p.NextPageCursor != ""
}

// PageQuery carries the optional pagination parameters shared by the
// list endpoints. Zero values mean the server default.
type PageQuery struct {
	Limit     int
	Cursor    string
	SortOrder SortOrder
}

var pageLimits = map[int]bool{10: true, 25: true, 50: true, 100: true}

// Validate checks Limit and SortOrder. It runs before any request is
// built, so an invalid value performs no network call. Cursors are
// never validated.
func (q PageQuery) Validate() error {
	if err := validateLimit(q.Limit); err != nil {
		return err
	}
	switch q.SortOrder {
	case "", SortAsc, SortDesc:
	default:
		return fmt.Errorf("%w: sort order must be %q or %q, got %q", ErrBadRequest, SortAsc, SortDesc, q.SortOrder)
	}
	return nil
}

func (q PageQuery) values() url.Values {
	v := url.Values{}
	if q.Limit != 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != "" {
		v.Set("cursor", q.Cursor)
	}
	if q.SortOrder != "" {
		v.Set("sortOrder", string(q.SortOrder))
	}
	return v
}

func validateLimit(limit int) error {
	if limit != 0 && !pageLimits[limit] {
		return fmt.Errorf("%w: limit must be one of 10, 25, 50 or 100, got %d", ErrBadRequest, limit)
	}
	return nil
}

// SearchQuery carries the parameters accepted by the search endpoints.
// Search listings take no sort order.
type SearchQuery struct {
	Limit  int
	Cursor string
}

// Validate checks Limit before any request is built.
func (q SearchQuery) Validate() error {
	return validateLimit(q.Limit)
}

// GetPage fetches one page of a list endpoint. extra holds endpoint
// specific query parameters and may be nil. An empty or absent data
// array yields an empty page, not an error.
func GetPage[T any](ctx context.Context, c *Client, endpoint string, q PageQuery, extra url.Values) (*Page[T], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return getPage[T](ctx, c, endpoint, q.values(), extra, statusError)
}

// SearchPage fetches one page of a search endpoint. Search responses
// report rejected terms through a sub-code in the 400 body, so they go
// through their own error mapping.
func SearchPage[T any](ctx context.Context, c *Client, endpoint, keyword string, q SearchQuery, extra url.Values) (*Page[T], error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("keyword", keyword)
	if q.Limit != 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != "" {
		params.Set("cursor", q.Cursor)
	}

	return getPage[T](ctx, c, endpoint, params, extra, searchError)
}

func getPage[T any](ctx context.Context, c *Client, endpoint string, params, extra url.Values, mapErr func(int, []byte) error) (*Page[T], error) {
	for key, vals := range extra {
		for _, val := range vals {
			params.Add(key, val)
		}
	}

	rawURL := endpoint
	if encoded := params.Encode(); encoded != "" {
		rawURL += "?" + encoded
	}

	body, err := c.get(ctx, rawURL, mapErr)
	if err != nil {
		return nil, err
	}

	var page Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, transportError(fmt.Errorf("failed to parse response: %w", err))
	}

	return &page, nil
}
