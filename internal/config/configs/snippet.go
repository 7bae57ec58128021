package configs

// Snippet configures the environment-facing parts of generated scripts.
// The selection and trigger semantics themselves are fixed in the snippet
// package. AnalyticsURL receives the fire-and-forget open beacon;
// SessionKey names the session storage flag; the window dimensions size
// the opened popunder.
type Snippet struct {
	AnalyticsURL string `env:"ANALYTICS_URL" envDefault:"https://analytics.popforge.dev/track"`
	SessionKey   string `env:"SESSION_KEY" envDefault:"popforge_triggered"`
	WindowWidth  int    `env:"WINDOW_WIDTH" envDefault:"800"`
	WindowHeight int    `env:"WINDOW_HEIGHT" envDefault:"600"`
}
