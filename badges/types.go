package badges

import "time"

// Badge is an awardable badge. Statistics and AwardingUniverse are nil
// when the response omits them.
type Badge struct {
	ID                 int64             `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	DisplayName        string            `json:"displayName"`
	DisplayDescription string            `json:"displayDescription"`
	Enabled            bool              `json:"enabled"`
	IconImageID        int64             `json:"iconImageId"`
	DisplayIconImageID int64             `json:"displayIconImageId"`
	Created            time.Time         `json:"created"`
	Updated            time.Time         `json:"updated"`
	Statistics         *Statistics       `json:"statistics"`
	AwardingUniverse   *AwardingUniverse `json:"awardingUniverse"`
}

// Statistics aggregates how often a badge has been awarded.
type Statistics struct {
	PastDayAwardedCount int64   `json:"pastDayAwardedCount"`
	AwardedCount        int64   `json:"awardedCount"`
	WinRatePercentage   float64 `json:"winRatePercentage"`
}

// AwardingUniverse is the experience that awards a badge.
type AwardingUniverse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RootPlaceID int64  `json:"rootPlaceId"`
}
