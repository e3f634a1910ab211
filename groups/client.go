// Package groups provides a client for the Roblox Groups API
// (groups.roblox.com): group details, rank listings and keyword search
// over groups.
package groups

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

const defaultBaseURL = "https://groups.roblox.com"

// Client talks to the Groups API.
type Client struct {
	rb      *roblox.Client
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// NewClient creates a Groups API client on top of the shared transport.
func NewClient(rb *roblox.Client, opts ...Option) *Client {
	c := &Client{rb: rb, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns detailed group information by ID.
func (c *Client) Get(ctx context.Context, groupID int64) (*Group, error) {
	return roblox.Get[Group](ctx, c.rb, fmt.Sprintf("%s/v1/groups/%d", c.baseURL, groupID))
}

// Roles lists every rank of a group, lowest first. The roles endpoint
// is not paginated.
func (c *Client) Roles(ctx context.Context, groupID int64) ([]Role, error) {
	resp, err := roblox.Get[rolesResponse](ctx, c.rb, fmt.Sprintf("%s/v1/groups/%d/roles", c.baseURL, groupID))
	if err != nil {
		return nil, err
	}
	return resp.Roles, nil
}

// SearchOptions controls the group search listing.
type SearchOptions struct {
	// PrioritizeExactMatch ranks exact keyword matches first.
	PrioritizeExactMatch bool
	Limit                int
	Cursor               string
}

// Search searches for groups by keyword.
func (c *Client) Search(ctx context.Context, keyword string, opts SearchOptions) (*roblox.Page[SearchResult], error) {
	var extra url.Values
	if opts.PrioritizeExactMatch {
		extra = url.Values{"prioritizeExactMatch": {"true"}}
	}

	q := roblox.SearchQuery{Limit: opts.Limit, Cursor: opts.Cursor}
	return roblox.SearchPage[SearchResult](ctx, c.rb, c.baseURL+"/v1/groups/search", keyword, q, extra)
}
