// Package friends provides a client for the Roblox Friends API
// (friends.roblox.com): a user's friends, followers and followings.
package friends

import (
	"context"
	"fmt"
	"strings"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

const defaultBaseURL = "https://friends.roblox.com"

// Client talks to the Friends API.
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

// NewClient creates a Friends API client on top of the shared transport.
func NewClient(rb *roblox.Client, opts ...Option) *Client {
	c := &Client{rb: rb, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Followers lists the users following userID, one page at a time.
func (c *Client) Followers(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Friend], error) {
	endpoint := fmt.Sprintf("%s/v1/users/%d/followers", c.baseURL, userID)
	return roblox.GetPage[Friend](ctx, c.rb, endpoint, q, nil)
}

// Followings lists the users userID follows, one page at a time.
func (c *Client) Followings(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Friend], error) {
	endpoint := fmt.Sprintf("%s/v1/users/%d/followings", c.baseURL, userID)
	return roblox.GetPage[Friend](ctx, c.rb, endpoint, q, nil)
}

// Friends returns a user's complete friend list. The endpoint takes no
// pagination parameters; the whole collection arrives in one call and
// carries no defined order.
func (c *Client) Friends(ctx context.Context, userID int64) ([]Friend, error) {
	resp, err := roblox.Get[friendsResponse](ctx, c.rb, fmt.Sprintf("%s/v1/users/%d/friends", c.baseURL, userID))
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
