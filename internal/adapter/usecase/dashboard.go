package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"popforge/internal/core/domain"
	"popforge/internal/core/port"
)

// Operation errors surfaced to the HTTP layer.
var (
	// ErrNoCredentials is returned when an operation needs stored API
	// credentials and the owner has none.
	ErrNoCredentials = errors.New("no active api credentials")

	// ErrRefreshInFlight is returned when a campaign refresh is requested
	// while another refresh for the same owner is still running.
	ErrRefreshInFlight = errors.New("campaign refresh already in progress")

	// ErrNoCampaignsSelected is returned when script generation is requested
	// with an empty selection.
	ErrNoCampaignsSelected = errors.New("no campaigns selected")

	// ErrInvalidRequest wraps caller-input validation failures so the HTTP
	// layer can map them to a client error.
	ErrInvalidRequest = errors.New("invalid request")
)

// DashboardService provides the business logic behind the publisher
// dashboard. It orchestrates the campaign source, the snippet generator and
// the repositories to implement the port.Dashboard interface.
type DashboardService struct {
	creds     port.CredentialRepository
	campaigns port.CampaignRepository
	scripts   port.ScriptRepository
	profiles  port.ProfileRepository
	source    port.CampaignSource
	generator port.SnippetGenerator

	// refreshing gates re-entry of RefreshCampaigns per owner; there is no
	// cancellation API, a second request simply fails fast.
	mu         sync.Mutex
	refreshing map[string]struct{}
}

// NewDashboardService creates a new usecase wired to the given ports.
func NewDashboardService(
	creds port.CredentialRepository,
	campaigns port.CampaignRepository,
	scripts port.ScriptRepository,
	profiles port.ProfileRepository,
	source port.CampaignSource,
	generator port.SnippetGenerator,
) *DashboardService {
	return &DashboardService{
		creds:      creds,
		campaigns:  campaigns,
		scripts:    scripts,
		profiles:   profiles,
		source:     source,
		generator:  generator,
		refreshing: make(map[string]struct{}),
	}
}

// SaveCredentials stores a credential set for the owner, rotating out all
// previously active sets. The repository performs deactivation and insert
// in one transaction, so a campaign fetch that follows a completed save
// always reads the new credentials.
func (s *DashboardService) SaveCredentials(ctx context.Context, ownerID string, creds domain.APICredentials) error {
	if creds.APIKey == "" {
		return fmt.Errorf("%w: api key is required", ErrInvalidRequest)
	}
	if creds.PublisherID == "" {
		return fmt.Errorf("%w: publisher id is required", ErrInvalidRequest)
	}
	return s.creds.Save(ctx, ownerID, creds)
}

// LoadCredentials returns the owner's active credential set or nil.
func (s *DashboardService) LoadCredentials(ctx context.Context, ownerID string) (*domain.APICredentials, error) {
	return s.creds.LoadActive(ctx, ownerID)
}

// ValidateKey checks an API key via the campaign source.
func (s *DashboardService) ValidateKey(ctx context.Context, apiKey string) bool {
	return s.source.ValidateKey(ctx, apiKey)
}

// RefreshCampaigns fetches the campaign list with the stored credentials,
// replaces the persisted snapshot and auto-selects every active campaign.
// The previous snapshot stays intact when fetch or persistence fails.
func (s *DashboardService) RefreshCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	s.mu.Lock()
	if _, busy := s.refreshing[ownerID]; busy {
		s.mu.Unlock()
		return nil, ErrRefreshInFlight
	}
	s.refreshing[ownerID] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.refreshing, ownerID)
		s.mu.Unlock()
	}()

	creds, err := s.creds.LoadActive(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, ErrNoCredentials
	}

	fetched, err := s.source.FetchCampaigns(ctx, *creds)
	if err != nil {
		return nil, err
	}
	for i := range fetched {
		fetched[i].Selected = fetched[i].Active()
	}
	if err = s.campaigns.ReplaceAll(ctx, ownerID, fetched); err != nil {
		return nil, err
	}
	return fetched, nil
}

// ListCampaigns returns the stored snapshot, CPM descending.
func (s *DashboardService) ListCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return s.campaigns.ListByOwner(ctx, ownerID)
}

// UpdateSelection replaces the selected subset.
func (s *DashboardService) UpdateSelection(ctx context.Context, ownerID string, ids []string) error {
	return s.campaigns.UpdateSelection(ctx, ownerID, ids)
}

// Summary aggregates metrics over the currently selected campaigns. CTR is
// derived from the click and impression totals.
func (s *DashboardService) Summary(ctx context.Context, ownerID string) (*port.Summary, error) {
	list, err := s.campaigns.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	sum := &port.Summary{CTR: "0.00"}
	var cpmTotal float64
	for _, c := range list {
		if !c.Selected {
			continue
		}
		sum.Selected++
		sum.TotalImpressions += c.Impressions
		sum.TotalClicks += c.Clicks
		sum.TotalRevenue += c.Revenue
		cpmTotal += c.CPM
	}
	if sum.Selected > 0 {
		sum.AvgCPM = cpmTotal / float64(sum.Selected)
	}
	if sum.TotalImpressions > 0 {
		sum.CTR = fmt.Sprintf("%.2f", float64(sum.TotalClicks)/float64(sum.TotalImpressions)*100)
	}
	return sum, nil
}

// GenerateScripts renders production and preview snippets for the selected
// campaigns without persisting anything.
func (s *DashboardService) GenerateScripts(ctx context.Context, ownerID string, cfg domain.PopunderConfig) (*port.ScriptPair, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	selected, err := s.selectedCampaigns(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	production, err := s.generator.Generate(selected, cfg)
	if err != nil {
		return nil, err
	}
	preview, err := s.generator.GeneratePreview(selected, cfg)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.ID
	}
	return &port.ScriptPair{Production: production, Preview: preview, CampaignIDs: ids}, nil
}

// SaveScript generates the requested variant for the current selection and
// persists it as an immutable artifact.
func (s *DashboardService) SaveScript(ctx context.Context, ownerID string, req port.SaveScriptReq) (*domain.GeneratedScript, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: script name is required", ErrInvalidRequest)
	}
	if err := req.Config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if req.Variant != domain.VariantProduction && req.Variant != domain.VariantPreview {
		return nil, fmt.Errorf("%w: unknown script variant %q", ErrInvalidRequest, req.Variant)
	}

	selected, err := s.selectedCampaigns(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	var code string
	if req.Variant == domain.VariantPreview {
		code, err = s.generator.GeneratePreview(selected, req.Config)
	} else {
		code, err = s.generator.Generate(selected, req.Config)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(selected))
	for i, c := range selected {
		ids[i] = c.ID
	}
	script := &domain.GeneratedScript{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Name:        req.Name,
		Code:        code,
		Config:      req.Config,
		CampaignIDs: ids,
		Variant:     req.Variant,
		CreatedAt:   time.Now().UTC(),
	}
	if err = s.scripts.Create(ctx, script); err != nil {
		return nil, err
	}
	return script, nil
}

// ListScripts returns saved scripts newest first.
func (s *DashboardService) ListScripts(ctx context.Context, ownerID string) ([]domain.GeneratedScript, error) {
	return s.scripts.ListByOwner(ctx, ownerID)
}

// GetScript returns one saved script, or nil when unknown.
func (s *DashboardService) GetScript(ctx context.Context, ownerID, id string) (*domain.GeneratedScript, error) {
	return s.scripts.Get(ctx, ownerID, id)
}

// DeleteScript removes one saved script.
func (s *DashboardService) DeleteScript(ctx context.Context, ownerID, id string) error {
	return s.scripts.Delete(ctx, ownerID, id)
}

// SaveProfile mirrors the owner's display data. The profile id always
// follows the owner id, whatever the caller sent.
func (s *DashboardService) SaveProfile(ctx context.Context, ownerID string, profile domain.Profile) error {
	if profile.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidRequest)
	}
	profile.ID = ownerID
	return s.profiles.Upsert(ctx, &profile)
}

// GetProfile returns the owner's profile, or nil when none is stored.
func (s *DashboardService) GetProfile(ctx context.Context, ownerID string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, ownerID)
}

func (s *DashboardService) selectedCampaigns(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	list, err := s.campaigns.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	selected := make([]domain.Campaign, 0, len(list))
	for _, c := range list {
		if c.Selected {
			selected = append(selected, c)
		}
	}
	if len(selected) == 0 {
		return nil, ErrNoCampaignsSelected
	}
	return selected, nil
}
