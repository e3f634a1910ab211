package groups

import "time"

// Group is the public description of a Roblox group.
// Owner and Shout are nil when the group has none.
type Group struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Owner              *Member `json:"owner"`
	Shout              *Shout  `json:"shout"`
	MemberCount        int     `json:"memberCount"`
	IsBuildersClubOnly bool    `json:"isBuildersClubOnly"`
	PublicEntryAllowed bool    `json:"publicEntryAllowed"`
	IsLocked           bool    `json:"isLocked"`
	HasVerifiedBadge   bool    `json:"hasVerifiedBadge"`
}

// Member identifies a user in a group context, such as the group owner
// or a shout poster.
type Member struct {
	BuildersClubMembershipType int    `json:"buildersClubMembershipType"`
	HasVerifiedBadge           bool   `json:"hasVerifiedBadge"`
	UserID                     int64  `json:"userId"`
	Username                   string `json:"username"`
	DisplayName                string `json:"displayName"`
}

// Shout is a group's pinned status message.
type Shout struct {
	Body    string    `json:"body"`
	Poster  *Member   `json:"poster"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}

// Role is one rank within a group.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rank        int    `json:"rank"`
	MemberCount int    `json:"memberCount"`
}

// rolesResponse is the envelope of the roles endpoint.
type rolesResponse struct {
	GroupID int64  `json:"groupId"`
	Roles   []Role `json:"roles"`
}

// SearchResult is one group returned by the group search endpoint.
type SearchResult struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	MemberCount        int       `json:"memberCount"`
	PreviousName       string    `json:"previousName"`
	PublicEntryAllowed bool      `json:"publicEntryAllowed"`
	Created            time.Time `json:"created"`
	Updated            time.Time `json:"updated"`
	HasVerifiedBadge   bool      `json:"hasVerifiedBadge"`
}

// FilterEnv exposes the result's fields to filter expressions.
func (r SearchResult) FilterEnv() map[string]any {
	return map[string]any{
		"ID":                 r.ID,
		"Name":               r.Name,
		"Description":        r.Description,
		"MemberCount":        r.MemberCount,
		"PreviousName":       r.PreviousName,
		"PublicEntryAllowed": r.PublicEntryAllowed,
		"Created":            r.Created,
		"Updated":            r.Updated,
		"HasVerifiedBadge":   r.HasVerifiedBadge,
	}
}
