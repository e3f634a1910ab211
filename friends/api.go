package friends

import (
	"context"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

// API defines the interface for Friends API operations.
type API interface {
	// Followers lists the users following userID.
	Followers(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Friend], error)

	// Followings lists the users userID follows.
	Followings(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Friend], error)

	// Friends returns a user's complete friend list.
	Friends(ctx context.Context, userID int64) ([]Friend, error)
}

var _ API = (*Client)(nil)
