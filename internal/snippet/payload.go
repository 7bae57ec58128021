// Package snippet renders self-contained popunder scripts. A script embeds
// an opaque campaign payload plus a behaviour config and later runs inside
// an arbitrary third-party page with no connection back to the dashboard.
//
// The package also carries a Go model of the embedded runtime semantics
// (device classification, country inference, campaign selection, trigger
// gating) so the generated behaviour is unit-testable without a browser.
package snippet

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"popforge/internal/core/domain"
)

// EncodePayload serializes campaigns into the opaque string literal embedded
// in generated scripts. Each destination URL is base64-encoded first, then
// the whole list is JSON-marshalled and base64-encoded again. This is
// obfuscation against casual inspection, not security.
func EncodePayload(campaigns []domain.Campaign) (string, error) {
	encoded := make([]domain.Campaign, len(campaigns))
	for i, c := range campaigns {
		encoded[i] = c
		encoded[i].URL = base64.StdEncoding.EncodeToString([]byte(c.URL))
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return "", fmt.Errorf("marshal campaigns: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodePayload inverts EncodePayload exactly: outer base64, JSON parse,
// then per-record URL base64. The embedded runtime performs the same two
// steps with atob.
func DecodePayload(payload string) ([]domain.Campaign, error) {
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	var campaigns []domain.Campaign
	if err = json.Unmarshal(raw, &campaigns); err != nil {
		return nil, fmt.Errorf("unmarshal campaigns: %w", err)
	}
	for i := range campaigns {
		u, err := base64.StdEncoding.DecodeString(campaigns[i].URL)
		if err != nil {
			return nil, fmt.Errorf("decode campaign %s url: %w", campaigns[i].ID, err)
		}
		campaigns[i].URL = string(u)
	}
	return campaigns, nil
}
