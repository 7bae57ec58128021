package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"popforge/internal/core/domain"
)

// ProfileRepository implements port.ProfileRepository using pgxpool.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a new repository instance.
func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

// Upsert inserts the profile or refreshes its display fields.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO profiles (id, email, full_name, avatar_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
ON CONFLICT (id) DO UPDATE SET email = $2, full_name = $3, avatar_url = $4, updated_at = now()`,
		profile.ID, profile.Email, profile.FullName, profile.AvatarURL)
	return err
}

// Get returns a profile by id, or nil when unknown.
func (r *ProfileRepository) Get(ctx context.Context, id string) (*domain.Profile, error) {
	var p domain.Profile
	err := r.pool.QueryRow(ctx, `SELECT id, email, full_name, avatar_url, created_at, updated_at FROM profiles WHERE id = $1`, id).
		Scan(&p.ID, &p.Email, &p.FullName, &p.AvatarURL, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
