package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"popforge/internal/core/domain"
	"popforge/internal/core/port"
	"popforge/internal/core/port/mocks"
)

func newService(
	creds *mocks.MockCredentialRepository,
	campaigns *mocks.MockCampaignRepository,
	scripts *mocks.MockScriptRepository,
	source *mocks.MockCampaignSource,
	gen *mocks.MockSnippetGenerator,
) *DashboardService {
	return NewDashboardService(creds, campaigns, scripts, &mocks.MockProfileRepository{}, source, gen)
}

func validConfig() domain.PopunderConfig {
	return domain.PopunderConfig{
		TriggerType:     domain.TriggerTime,
		Delay:           10,
		Frequency:       domain.FrequencyOnce,
		GeoTargeting:    []string{},
		DeviceTargeting: []string{},
		MinCPM:          1,
	}
}

// TestCredentialRotation ensures that after two saves exactly one credential
// set is loadable and it is the most recent one. The repository contract is
// emulated inside the mock, as the real rotation happens in SQL.
func TestCredentialRotation(t *testing.T) {
	creds := mocks.NewMockCredentialRepository(t)

	var (
		mu     sync.Mutex
		active *domain.APICredentials
	)

	creds.EXPECT().
		Save(mock.Anything, "owner-1", mock.AnythingOfType("domain.APICredentials")).
		Run(func(ctx context.Context, ownerID string, c domain.APICredentials) {
			mu.Lock()
			defer mu.Unlock()
			// a save deactivates everything before it
			active = &c
		}).
		Return(nil).
		Twice()

	creds.EXPECT().
		LoadActive(mock.Anything, "owner-1").
		RunAndReturn(func(ctx context.Context, ownerID string) (*domain.APICredentials, error) {
			mu.Lock()
			defer mu.Unlock()
			return active, nil
		})

	svc := newService(creds, mocks.NewMockCampaignRepository(t), mocks.NewMockScriptRepository(t),
		mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	first := domain.APICredentials{APIKey: "first-key", PublisherID: "pub-1"}
	second := domain.APICredentials{APIKey: "second-key", PublisherID: "pub-1"}

	if err := svc.SaveCredentials(context.Background(), "owner-1", first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := svc.SaveCredentials(context.Background(), "owner-1", second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := svc.LoadCredentials(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil || got.APIKey != "second-key" {
		t.Fatalf("expected the most recent credentials, got %+v", got)
	}
}

func TestSaveCredentialsRejectsEmptyKey(t *testing.T) {
	svc := newService(mocks.NewMockCredentialRepository(t), mocks.NewMockCampaignRepository(t),
		mocks.NewMockScriptRepository(t), mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	if err := svc.SaveCredentials(context.Background(), "o", domain.APICredentials{PublisherID: "p"}); err == nil {
		t.Fatal("expected error for empty api key")
	}
	if err := svc.SaveCredentials(context.Background(), "o", domain.APICredentials{APIKey: "k"}); err == nil {
		t.Fatal("expected error for empty publisher id")
	}
}

// TestRefreshCampaigns ensures a refresh replaces the snapshot with active
// campaigns pre-selected.
func TestRefreshCampaigns(t *testing.T) {
	creds := mocks.NewMockCredentialRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	source := mocks.NewMockCampaignSource(t)

	stored := domain.APICredentials{APIKey: "key-123456", PublisherID: "pub-1"}
	creds.EXPECT().LoadActive(mock.Anything, "owner-1").Return(&stored, nil)

	fetched := []domain.Campaign{
		{ID: "a", Status: domain.StatusActive, CPM: 3},
		{ID: "b", Status: domain.StatusPaused, CPM: 2},
		{ID: "c", Status: domain.StatusActive, CPM: 1},
	}
	source.EXPECT().FetchCampaigns(mock.Anything, stored).Return(fetched, nil)

	campaigns.EXPECT().
		ReplaceAll(mock.Anything, "owner-1", mock.AnythingOfType("[]domain.Campaign")).
		Run(func(ctx context.Context, ownerID string, list []domain.Campaign) {
			for _, c := range list {
				if c.Selected != (c.Status == domain.StatusActive) {
					t.Errorf("campaign %s: selection flag %v does not follow status %s", c.ID, c.Selected, c.Status)
				}
			}
		}).
		Return(nil)

	svc := newService(creds, campaigns, mocks.NewMockScriptRepository(t), source, mocks.NewMockSnippetGenerator(t))

	list, err := svc.RefreshCampaigns(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 campaigns, got %d", len(list))
	}
}

func TestRefreshWithoutCredentials(t *testing.T) {
	creds := mocks.NewMockCredentialRepository(t)
	creds.EXPECT().LoadActive(mock.Anything, "owner-1").Return(nil, nil)

	svc := newService(creds, mocks.NewMockCampaignRepository(t), mocks.NewMockScriptRepository(t),
		mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	if _, err := svc.RefreshCampaigns(context.Background(), "owner-1"); !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}

// TestRefreshInFlight ensures a second refresh for the same owner fails fast
// while the first one is still running.
func TestRefreshInFlight(t *testing.T) {
	creds := mocks.NewMockCredentialRepository(t)
	campaigns := mocks.NewMockCampaignRepository(t)
	source := mocks.NewMockCampaignSource(t)

	stored := domain.APICredentials{APIKey: "key-123456", PublisherID: "pub-1"}
	creds.EXPECT().LoadActive(mock.Anything, "owner-1").Return(&stored, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	source.EXPECT().
		FetchCampaigns(mock.Anything, stored).
		RunAndReturn(func(ctx context.Context, c domain.APICredentials) ([]domain.Campaign, error) {
			close(started)
			<-release
			return []domain.Campaign{{ID: "a", Status: domain.StatusActive}}, nil
		})
	campaigns.EXPECT().ReplaceAll(mock.Anything, "owner-1", mock.Anything).Return(nil)

	svc := newService(creds, campaigns, mocks.NewMockScriptRepository(t), source, mocks.NewMockSnippetGenerator(t))

	done := make(chan error, 1)
	go func() {
		_, err := svc.RefreshCampaigns(context.Background(), "owner-1")
		done <- err
	}()

	<-started
	if _, err := svc.RefreshCampaigns(context.Background(), "owner-1"); !errors.Is(err, ErrRefreshInFlight) {
		t.Fatalf("expected ErrRefreshInFlight, got %v", err)
	}
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first refresh: %v", err)
	}
}

func TestSummaryAggregatesSelected(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().ListByOwner(mock.Anything, "owner-1").Return([]domain.Campaign{
		{ID: "a", Selected: true, Impressions: 1000, Clicks: 25, Revenue: 1.5, CPM: 2},
		{ID: "b", Selected: true, Impressions: 3000, Clicks: 75, Revenue: 4.5, CPM: 4},
		{ID: "c", Selected: false, Impressions: 9999, Clicks: 999, Revenue: 99, CPM: 9},
	}, nil)

	svc := newService(mocks.NewMockCredentialRepository(t), campaigns, mocks.NewMockScriptRepository(t),
		mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	sum, err := svc.Summary(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Selected != 2 {
		t.Fatalf("expected 2 selected, got %d", sum.Selected)
	}
	if sum.TotalImpressions != 4000 || sum.TotalClicks != 100 {
		t.Fatalf("unexpected totals: %+v", sum)
	}
	if sum.TotalRevenue != 6.0 || sum.AvgCPM != 3.0 {
		t.Fatalf("unexpected revenue/cpm: %+v", sum)
	}
	if sum.CTR != "2.50" {
		t.Fatalf("expected CTR 2.50, got %s", sum.CTR)
	}
}

func TestSummaryEmptySelection(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().ListByOwner(mock.Anything, "owner-1").Return(nil, nil)

	svc := newService(mocks.NewMockCredentialRepository(t), campaigns, mocks.NewMockScriptRepository(t),
		mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	sum, err := svc.Summary(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Selected != 0 || sum.CTR != "0.00" || sum.AvgCPM != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestGenerateScripts(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	gen := mocks.NewMockSnippetGenerator(t)

	selected := []domain.Campaign{
		{ID: "a", Selected: true, Status: domain.StatusActive, CPM: 3},
		{ID: "b", Selected: true, Status: domain.StatusActive, CPM: 1},
	}
	all := append(selected, domain.Campaign{ID: "x", Selected: false})
	campaigns.EXPECT().ListByOwner(mock.Anything, "owner-1").Return(all, nil)

	cfg := validConfig()
	gen.EXPECT().Generate(selected, cfg).Return("PROD", nil)
	gen.EXPECT().GeneratePreview(selected, cfg).Return("PREVIEW", nil)

	svc := newService(mocks.NewMockCredentialRepository(t), campaigns, mocks.NewMockScriptRepository(t),
		mocks.NewMockCampaignSource(t), gen)

	pair, err := svc.GenerateScripts(context.Background(), "owner-1", cfg)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if pair.Production != "PROD" || pair.Preview != "PREVIEW" {
		t.Fatalf("unexpected pair: %+v", pair)
	}
	if len(pair.CampaignIDs) != 2 || pair.CampaignIDs[0] != "a" || pair.CampaignIDs[1] != "b" {
		t.Fatalf("unexpected campaign ids: %v", pair.CampaignIDs)
	}
}

func TestGenerateScriptsNoSelection(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	campaigns.EXPECT().ListByOwner(mock.Anything, "owner-1").Return([]domain.Campaign{
		{ID: "x", Selected: false},
	}, nil)

	svc := newService(mocks.NewMockCredentialRepository(t), campaigns, mocks.NewMockScriptRepository(t),
		mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	if _, err := svc.GenerateScripts(context.Background(), "owner-1", validConfig()); !errors.Is(err, ErrNoCampaignsSelected) {
		t.Fatalf("expected ErrNoCampaignsSelected, got %v", err)
	}
}

func TestGenerateScriptsRejectsBadConfig(t *testing.T) {
	svc := newService(mocks.NewMockCredentialRepository(t), mocks.NewMockCampaignRepository(t),
		mocks.NewMockScriptRepository(t), mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	cfg := validConfig()
	cfg.TriggerType = "hover"
	if _, err := svc.GenerateScripts(context.Background(), "owner-1", cfg); err == nil {
		t.Fatal("expected error for unknown trigger type")
	}
}

func TestSaveScriptPreviewVariant(t *testing.T) {
	campaigns := mocks.NewMockCampaignRepository(t)
	scripts := mocks.NewMockScriptRepository(t)
	gen := mocks.NewMockSnippetGenerator(t)

	selected := []domain.Campaign{{ID: "a", Selected: true, Status: domain.StatusActive}}
	campaigns.EXPECT().ListByOwner(mock.Anything, "owner-1").Return(selected, nil)

	cfg := validConfig()
	gen.EXPECT().GeneratePreview(selected, cfg).Return("PREVIEW", nil)

	var saved *domain.GeneratedScript
	scripts.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.GeneratedScript")).
		Run(func(ctx context.Context, s *domain.GeneratedScript) { saved = s }).
		Return(nil)

	svc := newService(mocks.NewMockCredentialRepository(t), campaigns, scripts,
		mocks.NewMockCampaignSource(t), gen)

	script, err := svc.SaveScript(context.Background(), "owner-1", port.SaveScriptReq{
		Name:    "My Preview",
		Config:  cfg,
		Variant: domain.VariantPreview,
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved == nil || saved != script {
		t.Fatal("expected the saved script back")
	}
	if script.ID == "" || script.Code != "PREVIEW" || script.Variant != domain.VariantPreview {
		t.Fatalf("unexpected script: %+v", script)
	}
	if script.OwnerID != "owner-1" || script.CreatedAt.IsZero() {
		t.Fatalf("owner or timestamp not set: %+v", script)
	}
}

func TestSaveScriptRejectsUnknownVariant(t *testing.T) {
	svc := newService(mocks.NewMockCredentialRepository(t), mocks.NewMockCampaignRepository(t),
		mocks.NewMockScriptRepository(t), mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	_, err := svc.SaveScript(context.Background(), "owner-1", port.SaveScriptReq{
		Name:    "x",
		Config:  validConfig(),
		Variant: "draft",
	})
	if err == nil {
		t.Fatal("expected error for unknown variant")
	}
}

func TestSaveProfileOverridesID(t *testing.T) {
	profiles := mocks.NewMockProfileRepository(t)

	var stored *domain.Profile
	profiles.EXPECT().
		Upsert(mock.Anything, mock.AnythingOfType("*domain.Profile")).
		Run(func(ctx context.Context, p *domain.Profile) { stored = p }).
		Return(nil)

	svc := NewDashboardService(mocks.NewMockCredentialRepository(t), mocks.NewMockCampaignRepository(t),
		mocks.NewMockScriptRepository(t), profiles, mocks.NewMockCampaignSource(t), mocks.NewMockSnippetGenerator(t))

	err := svc.SaveProfile(context.Background(), "owner-1", domain.Profile{
		ID:    "spoofed",
		Email: "pub@example.com",
	})
	if err != nil {
		t.Fatalf("save profile: %v", err)
	}
	if stored == nil || stored.ID != "owner-1" {
		t.Fatalf("profile id should follow the owner, got %+v", stored)
	}
}

func TestSaveProfileRequiresEmail(t *testing.T) {
	svc := NewDashboardService(mocks.NewMockCredentialRepository(t), mocks.NewMockCampaignRepository(t),
		mocks.NewMockScriptRepository(t), &mocks.MockProfileRepository{}, mocks.NewMockCampaignSource(t),
		mocks.NewMockSnippetGenerator(t))

	err := svc.SaveProfile(context.Background(), "owner-1", domain.Profile{FullName: "No Mail"})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
