// Package games provides a client for the Roblox Games API
// (games.roblox.com): the experiences published by a user or a group.
package games

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

const defaultBaseURL = "https://games.roblox.com"

// accessFilter=2 restricts both v2 listings to public experiences.
var publicOnly = url.Values{"accessFilter": {"2"}}

// Client talks to the Games API.
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

// NewClient creates a Games API client on top of the shared transport.
func NewClient(rb *roblox.Client, opts ...Option) *Client {
	c := &Client{rb: rb, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UserGames lists the public experiences published by a user, one page
// at a time.
func (c *Client) UserGames(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Game], error) {
	endpoint := fmt.Sprintf("%s/v2/users/%d/games", c.baseURL, userID)
	return roblox.GetPage[Game](ctx, c.rb, endpoint, q, publicOnly)
}

// GroupGames lists the public experiences published by a group, one
// page at a time.
func (c *Client) GroupGames(ctx context.Context, groupID int64, q roblox.PageQuery) (*roblox.Page[Game], error) {
	endpoint := fmt.Sprintf("%s/v2/groups/%d/games", c.baseURL, groupID)
	return roblox.GetPage[Game](ctx, c.rb, endpoint, q, publicOnly)
}
