package snippet

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"popforge/internal/core/domain"
)

//go:embed runtime.js.tmpl
var runtimeTemplate string

// Default generation options, used for any Options field left zero.
const (
	DefaultSessionKey   = "popforge_triggered"
	DefaultAnalyticsURL = "https://analytics.popforge.dev/track"
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
)

// Options tune the environment-facing parts of generated scripts. The
// selection and trigger semantics are fixed.
type Options struct {
	// AnalyticsURL receives the fire-and-forget open beacon.
	AnalyticsURL string
	// SessionKey names the session storage flag gating the "session"
	// frequency policy.
	SessionKey string
	// WindowWidth and WindowHeight size the opened window.
	WindowWidth  int
	WindowHeight int
}

func (o Options) withDefaults() Options {
	if o.AnalyticsURL == "" {
		o.AnalyticsURL = DefaultAnalyticsURL
	}
	if o.SessionKey == "" {
		o.SessionKey = DefaultSessionKey
	}
	if o.WindowWidth <= 0 {
		o.WindowWidth = DefaultWindowWidth
	}
	if o.WindowHeight <= 0 {
		o.WindowHeight = DefaultWindowHeight
	}
	return o
}

// Generator renders popunder scripts from campaigns and a config. It
// implements port.SnippetGenerator.
type Generator struct {
	tmpl *template.Template
	opts Options
}

// NewGenerator builds a generator with the given options. Zero option
// fields fall back to package defaults.
func NewGenerator(opts Options) *Generator {
	return &Generator{
		tmpl: template.Must(template.New("runtime").Parse(runtimeTemplate)),
		opts: opts.withDefaults(),
	}
}

// templateData carries everything the runtime template substitutes.
type templateData struct {
	ConfigJSON     string
	Payload        string
	SessionKey     string
	AnalyticsURL   string
	WindowFeatures string
	Timezones      []timezoneEntry
}

// Generate renders the production script: a dependency-free IIFE embedding
// the encoded campaign payload and the config as a plain literal. The
// config carries no secrets, so only campaign URLs are encoded.
func (g *Generator) Generate(campaigns []domain.Campaign, cfg domain.PopunderConfig) (string, error) {
	payload, err := EncodePayload(campaigns)
	if err != nil {
		return "", err
	}
	configJSON, err := json.MarshalIndent(cfg, "    ", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}

	features := fmt.Sprintf(
		"toolbar=no,location=no,status=no,menubar=no,scrollbars=yes,resizable=yes,width=%d,height=%d",
		g.opts.WindowWidth, g.opts.WindowHeight,
	)
	var b strings.Builder
	err = g.tmpl.Execute(&b, templateData{
		ConfigJSON:     string(configJSON),
		Payload:        payload,
		SessionKey:     g.opts.SessionKey,
		AnalyticsURL:   g.opts.AnalyticsURL,
		WindowFeatures: features,
		Timezones:      timezoneTable(),
	})
	if err != nil {
		return "", fmt.Errorf("render runtime: %w", err)
	}
	return b.String(), nil
}

// GeneratePreview renders the same script with test mode forced on,
// regardless of the input config. Preview output never opens windows and
// never touches session storage.
func (g *Generator) GeneratePreview(campaigns []domain.Campaign, cfg domain.PopunderConfig) (string, error) {
	cfg.TestMode = true
	return g.Generate(campaigns, cfg)
}
