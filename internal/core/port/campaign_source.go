package port

import (
	"context"

	"popforge/internal/core/domain"
)

// CampaignSource resolves the list of campaigns available to a publisher.
// Implementations talk to the ad network's listing API and degrade to
// locally generated data when the network is unreachable, so callers can
// rely on always receiving a usable list.
type CampaignSource interface {
	// FetchCampaigns returns the publisher's campaigns sorted by CPM
	// descending. Network failures are recovered internally by a synthetic
	// fallback; the error is reserved for context cancellation.
	FetchCampaigns(ctx context.Context, creds domain.APICredentials) ([]domain.Campaign, error)

	// ValidateKey checks an API key against the network's validation
	// endpoint. When the endpoint is unreachable it falls back to a
	// permissive length heuristic; see the implementation notes.
	ValidateKey(ctx context.Context, apiKey string) bool
}

// SnippetGenerator produces self-contained popunder scripts from a campaign
// subset and a behaviour config.
type SnippetGenerator interface {
	// Generate renders the production script.
	Generate(campaigns []domain.Campaign, cfg domain.PopunderConfig) (string, error)

	// GeneratePreview renders the same script with test mode forced on, so
	// preview snippets never open real windows.
	GeneratePreview(campaigns []domain.Campaign, cfg domain.PopunderConfig) (string, error)
}
