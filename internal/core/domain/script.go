package domain

import (
	"strings"
	"time"
	"unicode"
)

// Script variants. Preview scripts are generated with test mode forced on
// and never open real windows.
const (
	VariantProduction = "production"
	VariantPreview    = "preview"
)

// GeneratedScript is one saved snippet artifact. Scripts are immutable:
// created on explicit save, deleted on explicit delete, never updated.
type GeneratedScript struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"ownerId"`
	Name        string         `json:"name"`
	Code        string         `json:"code"`
	Config      PopunderConfig `json:"config"`
	CampaignIDs []string       `json:"campaignIds"`
	Variant     string         `json:"variant"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// DownloadFilename derives the attachment name for the script's code:
// whitespace runs become single underscores and the ".js" extension is
// appended. An empty name falls back to "script.js".
func (s GeneratedScript) DownloadFilename() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return "script.js"
	}
	var b strings.Builder
	space := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte('_')
			space = false
		}
		b.WriteRune(r)
	}
	return b.String() + ".js"
}
