package groups

import (
	"context"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

// API defines the interface for Groups API operations.
type API interface {
	// Get returns detailed group information by ID.
	Get(ctx context.Context, groupID int64) (*Group, error)

	// Roles lists every rank of a group.
	Roles(ctx context.Context, groupID int64) ([]Role, error)

	// Search searches for groups by keyword.
	Search(ctx context.Context, keyword string, opts SearchOptions) (*roblox.Page[SearchResult], error)
}

var _ API = (*Client)(nil)
