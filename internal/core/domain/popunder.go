package domain

import "fmt"

// Trigger types deciding when the generated snippet fires.
const (
	TriggerClick  = "click"
	TriggerTime   = "time"
	TriggerScroll = "scroll"
)

// Frequency policies deciding how often the snippet may fire.
const (
	FrequencyOnce    = "once"    // once per page load
	FrequencySession = "session" // once per browser session
	FrequencyAlways  = "always"  // on every qualifying trigger
)

// PopunderConfig describes how a generated snippet behaves inside a host
// page. All fields are required; the config is embedded into generated
// scripts verbatim, so there is no optionality to drift on.
//
// Delay is interpreted per trigger type: seconds for "time", scroll-depth
// percentage for "scroll", ignored for "click". The dashboard clamps it to
// sane ranges, but the embedded runtime never assumes a valid value.
type PopunderConfig struct {
	TriggerType     string   `json:"triggerType"`
	Delay           int      `json:"delay"`
	Frequency       string   `json:"frequency"`
	GeoTargeting    []string `json:"geoTargeting"`    // advisory, unused by the runtime
	DeviceTargeting []string `json:"deviceTargeting"` // advisory, unused by the runtime
	MinCPM          float64  `json:"minCpm"`
	TestMode        bool     `json:"testMode"`
}

// Validate rejects configs with unknown trigger or frequency values. Delay
// range is not validated here: the runtime handles out-of-range delays
// defensively.
func (c PopunderConfig) Validate() error {
	switch c.TriggerType {
	case TriggerClick, TriggerTime, TriggerScroll:
	default:
		return fmt.Errorf("unknown trigger type %q", c.TriggerType)
	}
	switch c.Frequency {
	case FrequencyOnce, FrequencySession, FrequencyAlways:
	default:
		return fmt.Errorf("unknown frequency %q", c.Frequency)
	}
	if c.MinCPM < 0 {
		return fmt.Errorf("negative min CPM %v", c.MinCPM)
	}
	return nil
}
