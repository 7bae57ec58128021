package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"popforge/internal/core/domain"
	"popforge/internal/core/port"
)

// ScriptRepository implements port.ScriptRepository using pgxpool. The
// config column is stored as jsonb, campaign ids as a text array.
type ScriptRepository struct {
	pool *pgxpool.Pool
}

// NewScriptRepository returns a new repository instance.
func NewScriptRepository(pool *pgxpool.Pool) *ScriptRepository {
	return &ScriptRepository{pool: pool}
}

// Create stores a new script artifact. ID and CreatedAt must be set.
func (r *ScriptRepository) Create(ctx context.Context, script *domain.GeneratedScript) error {
	cfg, err := json.Marshal(script.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = r.pool.Exec(ctx, `INSERT INTO generated_scripts
(id, owner_id, name, script_code, config, campaign_ids, variant, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		script.ID, script.OwnerID, script.Name, script.Code, cfg, script.CampaignIDs,
		script.Variant, script.CreatedAt)
	return err
}

// ListByOwner returns the owner's script artifacts newest first.
func (r *ScriptRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.GeneratedScript, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, owner_id, name, script_code, config, campaign_ids, variant, created_at
FROM generated_scripts WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanScript)
}

// Get returns one script by id, or nil when the owner has no such script.
func (r *ScriptRepository) Get(ctx context.Context, ownerID, id string) (*domain.GeneratedScript, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, owner_id, name, script_code, config, campaign_ids, variant, created_at
FROM generated_scripts WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return nil, err
	}
	script, err := pgx.CollectOneRow(rows, scanScript)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &script, nil
}

// Delete removes one script, reporting port.ErrNotFound when no row matched.
func (r *ScriptRepository) Delete(ctx context.Context, ownerID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM generated_scripts WHERE owner_id = $1 AND id = $2`, ownerID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

func scanScript(row pgx.CollectableRow) (domain.GeneratedScript, error) {
	var s domain.GeneratedScript
	var cfg []byte
	err := row.Scan(&s.ID, &s.OwnerID, &s.Name, &s.Code, &cfg, &s.CampaignIDs, &s.Variant, &s.CreatedAt)
	if err != nil {
		return s, err
	}
	if err = json.Unmarshal(cfg, &s.Config); err != nil {
		return s, fmt.Errorf("unmarshal config for script %s: %w", s.ID, err)
	}
	return s, nil
}
