package port

import (
	"context"
	"errors"

	"popforge/internal/core/domain"
)

// ErrNotFound is returned by repositories when a requested row does not
// exist for the given owner.
var ErrNotFound = errors.New("not found")

// CredentialRepository persists ad-network API credentials. Every operation
// is scoped by owner id; rows of other owners are never visible. It is an
// outbound port in hexagonal architecture.
type CredentialRepository interface {
	// Save stores a new credential set for the owner and deactivates all
	// previously saved sets. Deactivation and insert happen in a single
	// transaction so a dependent fetch can never observe two active sets.
	Save(ctx context.Context, ownerID string, creds domain.APICredentials) error

	// LoadActive returns the most recently saved active credential set with
	// the API key decoded, or nil when the owner has none.
	LoadActive(ctx context.Context, ownerID string) (*domain.APICredentials, error)
}

// CampaignRepository persists the owner's campaign snapshot. The snapshot is
// replaced wholesale on every refresh rather than diffed.
type CampaignRepository interface {
	// ReplaceAll deletes the owner's previous snapshot and inserts the given
	// campaigns in one transaction.
	ReplaceAll(ctx context.Context, ownerID string, campaigns []domain.Campaign) error

	// ListByOwner returns the stored snapshot ordered by CPM descending.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error)

	// UpdateSelection marks exactly the given campaign ids as selected and
	// clears the flag on every other campaign of the owner.
	UpdateSelection(ctx context.Context, ownerID string, ids []string) error
}

// ScriptRepository persists generated snippet artifacts. Scripts are
// immutable: there is no update operation.
type ScriptRepository interface {
	// Create stores a new script. ID and CreatedAt must be set by the caller.
	Create(ctx context.Context, script *domain.GeneratedScript) error

	// ListByOwner returns the owner's scripts newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.GeneratedScript, error)

	// Get returns one script by id, or nil when the owner has no such script.
	Get(ctx context.Context, ownerID, id string) (*domain.GeneratedScript, error)

	// Delete removes one script. It returns ErrNotFound when nothing was
	// deleted.
	Delete(ctx context.Context, ownerID, id string) error
}

// ProfileRepository mirrors user display data from the auth provider.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	Get(ctx context.Context, id string) (*domain.Profile, error)
}
