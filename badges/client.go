// Package badges provides a client for the Roblox Badges API
// (badges.roblox.com): badge details and the badges a user has earned.
package badges

import (
	"context"
	"fmt"
	"strings"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

const defaultBaseURL = "https://badges.roblox.com"

// Client talks to the Badges API.
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

// NewClient creates a Badges API client on top of the shared transport.
func NewClient(rb *roblox.Client, opts ...Option) *Client {
	c := &Client{rb: rb, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns detailed badge information by ID.
func (c *Client) Get(ctx context.Context, badgeID int64) (*Badge, error) {
	return roblox.Get[Badge](ctx, c.rb, fmt.Sprintf("%s/v1/badges/%d", c.baseURL, badgeID))
}

// UserBadges lists the badges a user has earned, one page at a time.
func (c *Client) UserBadges(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Badge], error) {
	endpoint := fmt.Sprintf("%s/v1/users/%d/badges", c.baseURL, userID)
	return roblox.GetPage[Badge](ctx, c.rb, endpoint, q, nil)
}
