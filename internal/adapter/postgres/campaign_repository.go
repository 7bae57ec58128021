package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"popforge/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool. The
// stored rows are a snapshot of the last fetch, replaced wholesale on every
// refresh.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// ReplaceAll deletes the owner's snapshot and inserts the new campaigns in
// one transaction.
func (r *CampaignRepository) ReplaceAll(ctx context.Context, ownerID string, campaigns []domain.Campaign) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `DELETE FROM campaigns WHERE owner_id = $1`, ownerID)
	if err != nil {
		return err
	}
	for _, c := range campaigns {
		_, err = tx.Exec(ctx, `INSERT INTO campaigns
(id, owner_id, name, url, cpm, country, device, category, status, impressions, clicks, revenue, is_selected, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
			c.ID, ownerID, c.Name, c.URL, c.CPM, c.Country, c.Device, c.Category, c.Status,
			c.Impressions, c.Clicks, c.Revenue, c.Selected, c.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListByOwner returns the snapshot ordered by CPM descending.
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, url, cpm, country, device, category, status, impressions, clicks, revenue, is_selected, created_at
FROM campaigns WHERE owner_id = $1 ORDER BY cpm DESC, id`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		var c domain.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.URL, &c.CPM, &c.Country, &c.Device, &c.Category,
			&c.Status, &c.Impressions, &c.Clicks, &c.Revenue, &c.Selected, &c.CreatedAt)
		return c, err
	})
}

// UpdateSelection clears the selection flag on all of the owner's campaigns
// and sets it for exactly the given ids.
func (r *CampaignRepository) UpdateSelection(ctx context.Context, ownerID string, ids []string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `UPDATE campaigns SET is_selected = false WHERE owner_id = $1`, ownerID)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		_, err = tx.Exec(ctx, `UPDATE campaigns SET is_selected = true WHERE owner_id = $1 AND id = ANY($2)`, ownerID, ids)
	}
	return err
}
