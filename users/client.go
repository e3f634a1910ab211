package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

const defaultBaseURL = "https://users.roblox.com"

// Client talks to the Users API.
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

// NewClient creates a Users API client on top of the shared transport.
func NewClient(rb *roblox.Client, opts ...Option) *Client {
	c := &Client{rb: rb, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns detailed user information by ID.
func (c *Client) Get(ctx context.Context, userID int64) (*User, error) {
	return roblox.Get[User](ctx, c.rb, fmt.Sprintf("%s/v1/users/%d", c.baseURL, userID))
}

// Search searches for accounts by keyword. The cursor is forwarded to
// the server verbatim.
func (c *Client) Search(ctx context.Context, keyword string, q roblox.SearchQuery) (*roblox.Page[SearchResult], error) {
	return roblox.SearchPage[SearchResult](ctx, c.rb, c.baseURL+"/v1/users/search", keyword, q, nil)
}
