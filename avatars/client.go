// Package avatars provides a client for the Roblox Avatar API
// (avatar.roblox.com): the currently worn avatar of a user.
package avatars

import (
	"context"
	"fmt"
	"strings"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

const defaultBaseURL = "https://avatar.roblox.com"

// Client talks to the Avatar API.
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

// NewClient creates an Avatar API client on top of the shared transport.
func NewClient(rb *roblox.Client, opts ...Option) *Client {
	c := &Client{rb: rb, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the avatar a user is currently wearing.
func (c *Client) Get(ctx context.Context, userID int64) (*Avatar, error) {
	return roblox.Get[Avatar](ctx, c.rb, fmt.Sprintf("%s/v1/users/%d/avatar", c.baseURL, userID))
}
