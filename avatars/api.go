package avatars

import "context"

// API defines the interface for Avatar API operations.
type API interface {
	// Get returns the avatar a user is currently wearing.
	Get(ctx context.Context, userID int64) (*Avatar, error)
}

var _ API = (*Client)(nil)
