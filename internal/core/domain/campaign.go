package domain

import (
	"fmt"
	"time"
)

// Device classes a campaign may target.
const (
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceAll     = "all"
)

// Campaign lifecycle states.
const (
	StatusActive  = "active"
	StatusPaused  = "paused"
	StatusExpired = "expired"
)

// CountryAll is the wildcard country code matching any viewer location.
const CountryAll = "ALL"

// Campaign represents one ad placement fetched from the ad network. Records
// are immutable once fetched; a refresh replaces the whole snapshot.
type Campaign struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	CPM         float64   `json:"cpm"` // revenue per thousand impressions
	Country     string    `json:"country"`
	Device      string    `json:"device"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	Revenue     float64   `json:"revenue"`
	Selected    bool      `json:"selected"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Active reports whether the campaign participates in ad selection.
func (c Campaign) Active() bool {
	return c.Status == StatusActive
}

// CTR returns the click-through rate as a percentage string with two decimal
// places. It is always derived from clicks and impressions, never stored.
// Campaigns without impressions report "0.00".
func (c Campaign) CTR() string {
	if c.Impressions <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(c.Clicks)/float64(c.Impressions)*100)
}
