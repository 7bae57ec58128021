package port

import (
	"context"

	"popforge/internal/core/domain"
)

// Dashboard defines the business operations exposed to the HTTP layer. This
// interface represents the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type Dashboard interface {
	// SaveCredentials encodes and stores a credential set, rotating out all
	// previously active sets of the owner.
	SaveCredentials(ctx context.Context, ownerID string, creds domain.APICredentials) error

	// LoadCredentials returns the owner's active credential set with the key
	// decoded, or nil when none is stored.
	LoadCredentials(ctx context.Context, ownerID string) (*domain.APICredentials, error)

	// ValidateKey checks an API key via the campaign source.
	ValidateKey(ctx context.Context, apiKey string) bool

	// RefreshCampaigns fetches the campaign list with the owner's stored
	// credentials, replaces the persisted snapshot, auto-selects active
	// campaigns and returns the new list. Concurrent refreshes for the same
	// owner are serialized.
	RefreshCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error)

	// ListCampaigns returns the stored snapshot, CPM descending.
	ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error)

	// UpdateSelection replaces the set of selected campaign ids.
	UpdateSelection(ctx context.Context, ownerID string, ids []string) error

	// Summary aggregates metrics over the currently selected campaigns.
	Summary(ctx context.Context, ownerID string) (*Summary, error)

	// GenerateScripts renders production and preview snippets for the
	// currently selected campaigns. Nothing is persisted.
	GenerateScripts(ctx context.Context, ownerID string, cfg domain.PopunderConfig) (*ScriptPair, error)

	// SaveScript generates and persists a named script artifact.
	SaveScript(ctx context.Context, ownerID string, req SaveScriptReq) (*domain.GeneratedScript, error)

	// ListScripts returns saved scripts newest first.
	ListScripts(ctx context.Context, ownerID string) ([]domain.GeneratedScript, error)

	// GetScript returns one saved script, or nil when unknown.
	GetScript(ctx context.Context, ownerID, id string) (*domain.GeneratedScript, error)

	// DeleteScript removes one saved script. Returns ErrNotFound when the
	// owner has no such script.
	DeleteScript(ctx context.Context, ownerID, id string) error

	// SaveProfile mirrors the owner's display data.
	SaveProfile(ctx context.Context, ownerID string, profile domain.Profile) error

	// GetProfile returns the owner's profile, or nil when none is stored.
	GetProfile(ctx context.Context, ownerID string) (*domain.Profile, error)
}

// Summary aggregates display metrics over the selected campaign subset. CTR
// is derived from the click and impression totals, never stored.
type Summary struct {
	Selected         int     `json:"selected"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalRevenue     float64 `json:"totalRevenue"`
	AvgCPM           float64 `json:"avgCpm"`
	CTR              string  `json:"ctr"`
}

// ScriptPair carries both rendered variants of one generation request.
type ScriptPair struct {
	Production  string   `json:"production"`
	Preview     string   `json:"preview"`
	CampaignIDs []string `json:"campaignIds"`
}

// SaveScriptReq describes a script save request. Variant selects which of
// the two rendered forms is persisted.
type SaveScriptReq struct {
	Name    string                `json:"name"`
	Config  domain.PopunderConfig `json:"config"`
	Variant string                `json:"variant"`
}
