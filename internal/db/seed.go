package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"popforge/internal/adapter/adsterra"
	"popforge/internal/core/domain"
)

// DemoOwnerID is the owner all demo data is seeded under.
const DemoOwnerID = "demo"

// Seed inserts demo data for the demo owner: a profile, an active
// credential set, a synthetic campaign snapshot and one saved script
// artifact. Existing demo rows are left in place.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	_, err := pool.Exec(ctx, `INSERT INTO profiles (id, email, full_name)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		DemoOwnerID, "demo@popforge.dev", "Demo Publisher")
	if err != nil {
		return err
	}

	var active int
	err = pool.QueryRow(ctx, `SELECT count(*) FROM api_credentials WHERE owner_id = $1 AND is_active`, DemoOwnerID).Scan(&active)
	if err != nil {
		return err
	}
	if active == 0 {
		_, err = pool.Exec(ctx, `INSERT INTO api_credentials (owner_id, api_key_encoded, publisher_id, endpoint)
VALUES ($1, $2, $3, $4)`,
			DemoOwnerID, domain.EncodeKey("demo-"+uuid.NewString()), fmt.Sprintf("pub-%d", r.Intn(90000)+10000), "")
		if err != nil {
			return err
		}
	}

	for _, c := range adsterra.SyntheticCampaigns(r) {
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
(id, owner_id, name, url, cpm, country, device, category, status, impressions, clicks, revenue, is_selected, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14) ON CONFLICT DO NOTHING`,
			c.ID, DemoOwnerID, c.Name, c.URL, c.CPM, c.Country, c.Device, c.Category, c.Status,
			c.Impressions, c.Clicks, c.Revenue, c.Active(), c.CreatedAt)
		if err != nil {
			return err
		}
	}

	cfg := domain.PopunderConfig{
		TriggerType:     domain.TriggerClick,
		Delay:           5,
		Frequency:       domain.FrequencySession,
		GeoTargeting:    []string{domain.CountryAll},
		DeviceTargeting: []string{domain.DeviceAll},
		MinCPM:          0,
	}
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO generated_scripts
(id, owner_id, name, script_code, config, campaign_ids, variant, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,now()) ON CONFLICT DO NOTHING`,
		uuid.NewString(), DemoOwnerID, "Demo snippet", "// regenerate from the dashboard\n", cfgJSON,
		[]string{}, domain.VariantProduction)
	return err
}
