package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"popforge/internal/core/domain"
)

// CredentialRepository implements port.CredentialRepository using pgxpool.
// API keys are stored with the reversible encoding; rows never leave the
// repository with the encoded form.
type CredentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository returns a new repository instance.
func NewCredentialRepository(pool *pgxpool.Pool) *CredentialRepository {
	return &CredentialRepository{pool: pool}
}

// Save deactivates every prior credential set of the owner and inserts the
// new one as active, in a single transaction. A dependent campaign fetch
// can therefore never observe two active sets or none mid-rotation.
func (r *CredentialRepository) Save(ctx context.Context, ownerID string, creds domain.APICredentials) error {
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

	_, err = tx.Exec(ctx, `UPDATE api_credentials SET is_active = false, updated_at = now() WHERE owner_id = $1 AND is_active`, ownerID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `INSERT INTO api_credentials (owner_id, api_key_encoded, publisher_id, endpoint, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, true, now(), now())`,
		ownerID, domain.EncodeKey(creds.APIKey), creds.PublisherID, creds.Endpoint)
	return err
}

// LoadActive returns the newest active credential set with the key decoded,
// or nil when the owner has none.
func (r *CredentialRepository) LoadActive(ctx context.Context, ownerID string) (*domain.APICredentials, error) {
	var encoded string
	var creds domain.APICredentials
	err := r.pool.QueryRow(ctx, `SELECT api_key_encoded, publisher_id, endpoint FROM api_credentials
WHERE owner_id = $1 AND is_active ORDER BY created_at DESC LIMIT 1`, ownerID).
		Scan(&encoded, &creds.PublisherID, &creds.Endpoint)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	creds.APIKey = domain.DecodeKey(encoded)
	return &creds, nil
}
