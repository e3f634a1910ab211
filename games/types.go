package games

import "time"

// Game is one published experience. Creator and RootPlace are nil when
// the response omits them.
type Game struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Creator     *Creator   `json:"creator"`
	RootPlace   *PlaceInfo `json:"rootPlace"`
	Created     time.Time  `json:"created"`
	Updated     time.Time  `json:"updated"`
	PlaceVisits int64      `json:"placeVisits"`
}

// Creator identifies who published an experience; Type is "User" or
// "Group".
type Creator struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// PlaceInfo is a reference to a place asset.
type PlaceInfo struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}
