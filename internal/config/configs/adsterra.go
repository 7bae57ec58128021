package configs

import "time"

// Adsterra configures the ad network API client. Endpoint is the default
// base URL used when a credential set does not carry its own. Timeout
// bounds every listing and validation call; failures inside the timeout
// degrade to synthetic data rather than surfacing to the user.
type Adsterra struct {
	Endpoint string        `env:"ENDPOINT" envDefault:"https://api.adsterra.com/v2"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"5s"`
}
