package users

import (
	"context"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

// API defines the interface for Users API operations.
type API interface {
	// Get returns detailed user information by ID.
	Get(ctx context.Context, userID int64) (*User, error)

	// Search searches for accounts by keyword.
	Search(ctx context.Context, keyword string, q roblox.SearchQuery) (*roblox.Page[SearchResult], error)
}

var _ API = (*Client)(nil)
