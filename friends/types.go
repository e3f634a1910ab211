package friends

import "time"

// Friend is one edge of the social graph: a friend, follower or
// followed user. The shape is shared by all three listings.
type Friend struct {
	IsOnline               bool      `json:"isOnline"`
	IsDeleted              bool      `json:"isDeleted"`
	FriendFrequentScore    int       `json:"friendFrequentScore"`
	FriendFrequentRank     int       `json:"friendFrequentRank"`
	HasVerifiedBadge       bool      `json:"hasVerifiedBadge"`
	Description            string    `json:"description"`
	Created                time.Time `json:"created"`
	IsBanned               bool      `json:"isBanned"`
	ExternalAppDisplayName *string   `json:"externalAppDisplayName"`
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	DisplayName            string    `json:"displayName"`
}

// friendsResponse is the envelope of the unpaginated friends endpoint.
type friendsResponse struct {
	Data []Friend `json:"data"`
}
