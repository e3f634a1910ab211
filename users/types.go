package users

import "time"

// User is the public profile of a Roblox account.
type User struct {
	Description            string    `json:"description"`
	Created                time.Time `json:"created"`
	IsBanned               bool      `json:"isBanned"`
	ExternalAppDisplayName *string   `json:"externalAppDisplayName"`
	HasVerifiedBadge       bool      `json:"hasVerifiedBadge"`
	ID                     int64     `json:"id"`
	Name                   string    `json:"name"`
	DisplayName            string    `json:"displayName"`
}

// SearchResult is one account returned by the user search endpoint.
type SearchResult struct {
	PreviousUsernames []string `json:"previousUsernames"`
	HasVerifiedBadge  bool     `json:"hasVerifiedBadge"`
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	DisplayName       string   `json:"displayName"`
}

// FilterEnv exposes the result's fields to filter expressions.
func (r SearchResult) FilterEnv() map[string]any {
	return map[string]any{
		"ID":                r.ID,
		"Name":              r.Name,
		"DisplayName":       r.DisplayName,
		"HasVerifiedBadge":  r.HasVerifiedBadge,
		"PreviousUsernames": r.PreviousUsernames,
	}
}
