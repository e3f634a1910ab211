package games

import (
	"context"

	"github.com/Developer-X-0001/bloxgo/roblox"
)

// API defines the interface for Games API operations.
type API interface {
	// UserGames lists the public experiences published by a user.
	UserGames(ctx context.Context, userID int64, q roblox.PageQuery) (*roblox.Page[Game], error)

	// GroupGames lists the public experiences published by a group.
	GroupGames(ctx context.Context, groupID int64, q roblox.PageQuery) (*roblox.Page[Game], error)
}

var _ API = (*Client)(nil)
