// Package adsterra is the outbound adapter for the ad network's publisher
// API. It implements port.CampaignSource with graceful degradation: when
// the network is unreachable the caller still gets a usable campaign list
// from a synthetic generator.
package adsterra

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"popforge/internal/config/configs"
	"popforge/internal/core/domain"
)

// minKeyLength is the permissive validation floor used when the validation
// endpoint cannot be reached. Keys longer than this are accepted. This is a
// usability shortcut, not a security boundary.
const minKeyLength = 5

// Client talks to the ad network's listing and validation endpoints.
type Client struct {
	httpClient *http.Client
	cfg        configs.Adsterra
	logger     *slog.Logger

	// rng feeds the synthetic fallback; injectable for tests
	rng *rand.Rand
}

// NewClient builds a client from configuration. A nil logger defaults to
// slog.Default.
func NewClient(cfg configs.Adsterra, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// listingBody accepts both response shapes the network is known to send: a
// wrapped {"campaigns": [...]} object or a bare array.
type listingBody struct {
	Campaigns []domain.Campaign `json:"campaigns"`
}

// FetchCampaigns requests {endpoint}/campaigns with bearer and publisher-id
// headers. Any failure along the way (timeout, non-2xx, malformed body)
// falls back to SyntheticCampaigns; the caller always receives a non-empty
// list. The error return is reserved for context cancellation.
func (c *Client) FetchCampaigns(ctx context.Context, creds domain.APICredentials) ([]domain.Campaign, error) {
	campaigns, err := c.fetchRemote(ctx, creds)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.logger.Warn("campaign listing unreachable, using synthetic data", slog.Any("error", err))
		return SyntheticCampaigns(c.rng), nil
	}
	return campaigns, nil
}

func (c *Client) fetchRemote(ctx context.Context, creds domain.APICredentials) ([]domain.Campaign, error) {
	url := c.endpoint(creds) + "/campaigns"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Publisher-ID", creds.PublisherID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("campaign listing returned %d", resp.StatusCode)
	}

	var raw json.RawMessage
	if err = json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode listing body: %w", err)
	}
	var wrapped listingBody
	if err = json.Unmarshal(raw, &wrapped); err == nil && wrapped.Campaigns != nil {
		return wrapped.Campaigns, nil
	}
	var bare []domain.Campaign
	if err = json.Unmarshal(raw, &bare); err != nil {
		return nil, fmt.Errorf("unexpected listing body: %w", err)
	}
	return bare, nil
}

// ValidateKey checks the key against {endpoint}/validate. HTTP 200 means
// valid. When the endpoint is unreachable or errors, any trimmed key longer
// than minKeyLength is accepted.
func (c *Client) ValidateKey(ctx context.Context, apiKey string) bool {
	url := c.cfg.Endpoint + "/validate"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return permissiveKeyCheck(apiKey)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("validation endpoint unreachable, using permissive check", slog.Any("error", err))
		return permissiveKeyCheck(apiKey)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode == http.StatusOK
	}
	c.logger.Warn("validation endpoint failed, using permissive check", slog.Int("status", resp.StatusCode))
	return permissiveKeyCheck(apiKey)
}

func permissiveKeyCheck(apiKey string) bool {
	return len(strings.TrimSpace(apiKey)) > minKeyLength
}

// endpoint prefers the credential's endpoint and falls back to the
// configured default.
func (c *Client) endpoint(creds domain.APICredentials) string {
	if creds.Endpoint != "" {
		return strings.TrimSuffix(creds.Endpoint, "/")
	}
	return strings.TrimSuffix(c.cfg.Endpoint, "/")
}
