package badges

import (
	"context"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

// API defines the interface for Badges API operations.
type API interface {
	// Get returns detailed badge information by ID.
	Get(ctx context.Context, badgeID int64) (*Badge, error)

	// UserBadges lists the badges a user has earned.
	UserBadges(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Badge], error)
}

var _ API = (*Client)(nil)
