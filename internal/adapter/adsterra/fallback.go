package adsterra

import (
	"math"
	"math/rand"
	"sort"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"popforge/internal/core/domain"
)

// idAlphabet matches the ad network's short alphanumeric identifiers.
const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

var (
	fallbackCategories = []string{"Gaming", "Finance", "Technology", "Health", "Education", "Entertainment", "Shopping"}
	fallbackCountries  = []string{"US", "CA", "UK", "DE", "FR", "AU", "BR", domain.CountryAll}
	fallbackDevices    = []string{domain.DeviceMobile, domain.DeviceDesktop, domain.DeviceAll}

	// weighted toward active so a fresh snapshot is usable
	fallbackStatuses = []string{
		domain.StatusActive, domain.StatusActive, domain.StatusActive,
		domain.StatusPaused, domain.StatusExpired,
	}
)

// SyntheticCampaigns produces 8-12 plausible campaign records sorted by CPM
// descending. The shape is deterministic while the content comes from r, so
// tests can pin a seed. It is the fallback for an unreachable listing API
// and must never fail.
func SyntheticCampaigns(r *rand.Rand) []domain.Campaign {
	count := 8 + r.Intn(5)
	campaigns := make([]domain.Campaign, 0, count)

	for i := 0; i < count; i++ {
		category := fallbackCategories[r.Intn(len(fallbackCategories))]
		device := fallbackDevices[r.Intn(len(fallbackDevices))]
		status := fallbackStatuses[r.Intn(len(fallbackStatuses))]
		impressions := int64(1000 + r.Intn(49001))
		maxClicks := int(impressions / 10)
		clicks := int64(50 + r.Intn(maxClicks-50+1))
		cpm := round2(0.5 + r.Float64()*4.5)

		campaigns = append(campaigns, domain.Campaign{
			ID:          gonanoid.MustGenerate(idAlphabet, 8),
			Name:        category + " " + deviceLabel(device),
			URL:         "https://adsterra.com/click/" + gonanoid.MustGenerate(idAlphabet, 12),
			CPM:         cpm,
			Country:     fallbackCountries[r.Intn(len(fallbackCountries))],
			Device:      device,
			Category:    category,
			Status:      status,
			Impressions: impressions,
			Clicks:      clicks,
			Revenue:     round2(float64(clicks) * cpm / 1000),
			CreatedAt:   time.Now().Add(-time.Duration(r.Intn(30*24)) * time.Hour),
		})
	}

	sort.SliceStable(campaigns, func(i, j int) bool { return campaigns[i].CPM > campaigns[j].CPM })
	return campaigns
}

func deviceLabel(device string) string {
	switch device {
	case domain.DeviceMobile:
		return "Mobile"
	case domain.DeviceDesktop:
		return "Desktop"
	default:
		return "Universal"
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
