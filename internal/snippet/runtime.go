package snippet

import (
	"regexp"
	"sort"

	"popforge/internal/core/domain"
)

// Device classes inferred from a user agent. DeviceTablet has no campaign
// counterpart: campaign targeting only knows mobile/desktop/all, and because
// matching is plain string equality a tablet viewer matches only campaigns
// targeting "all". That asymmetry is intentional and kept.
const (
	DeviceTablet  = "tablet"
	DeviceMobile  = domain.DeviceMobile
	DeviceDesktop = domain.DeviceDesktop
)

// User-agent patterns, checked tablet first. These are duplicated as
// literals in runtime.js.tmpl; runtime_test.go guards the two in sync.
var (
	tabletUA = regexp.MustCompile(`(?i)tablet|ipad|playbook|silk`)
	mobileUA = regexp.MustCompile(`(?i)mobile|iphone|ipod|android|blackberry|opera|mini|windows\sce|palm|smartphone|iemobile`)
)

// ClassifyDevice maps a user-agent string to a device class, defaulting to
// desktop.
func ClassifyDevice(userAgent string) string {
	switch {
	case tabletUA.MatchString(userAgent):
		return DeviceTablet
	case mobileUA.MatchString(userAgent):
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// timezoneCountries approximates a viewer country from the host timezone.
// Unresolvable timezones map to the ALL wildcard.
var timezoneCountries = map[string]string{
	"America/New_York":    "US",
	"America/Chicago":     "US",
	"America/Denver":      "US",
	"America/Los_Angeles": "US",
	"America/Toronto":     "CA",
	"America/Vancouver":   "CA",
	"America/Sao_Paulo":   "BR",
	"Europe/London":       "UK",
	"Europe/Paris":        "FR",
	"Europe/Berlin":       "DE",
	"Australia/Sydney":    "AU",
	"Asia/Tokyo":          "JP",
}

// CountryForTimezone returns the approximate country code for a timezone,
// or the ALL wildcard when the timezone is unknown.
func CountryForTimezone(tz string) string {
	if code, ok := timezoneCountries[tz]; ok {
		return code
	}
	return domain.CountryAll
}

// timezoneEntry is one row of the runtime's timezone lookup table.
type timezoneEntry struct {
	TZ, Code string
}

// timezoneTable returns the lookup rows in deterministic order for the
// template emitter.
func timezoneTable() []timezoneEntry {
	entries := make([]timezoneEntry, 0, len(timezoneCountries))
	for tz, code := range timezoneCountries {
		entries = append(entries, timezoneEntry{TZ: tz, Code: code})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].TZ < entries[j].TZ })
	return entries
}

// SelectBest picks the campaign the runtime will display for the given
// viewer, or nil when no active campaign exists. It is a pure function of
// its inputs.
//
// Strict pass: device matches (all or equal), country matches (ALL or
// equal), CPM at or above minCPM, status active. When the strict pass is
// empty it relaxes to every active campaign so a candidate is produced
// whenever one exists at all. Candidates are ordered by CPM descending with
// the original list order as a stable tie-break.
func SelectBest(campaigns []domain.Campaign, device, country string, minCPM float64) *domain.Campaign {
	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		deviceMatch := c.Device == domain.DeviceAll || c.Device == device
		countryMatch := c.Country == domain.CountryAll || c.Country == country
		if deviceMatch && countryMatch && c.CPM >= minCPM && c.Active() {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) == 0 {
		for _, c := range campaigns {
			if c.Active() {
				filtered = append(filtered, c)
			}
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].CPM > filtered[j].CPM })
	best := filtered[0]
	return &best
}

// TriggerState is the runtime's firing state machine. The host environment
// is single-threaded cooperative, so the flags need no locking there; this
// Go model is likewise not safe for concurrent use.
type TriggerState struct {
	Frequency string

	fired        bool // this page load
	sessionFired bool // session-scope flag, survives page loads
}

// CanTrigger reports whether a display may fire under the frequency policy.
func (s *TriggerState) CanTrigger() bool {
	if s.fired && s.Frequency == domain.FrequencyOnce {
		return false
	}
	if s.sessionFired && s.Frequency == domain.FrequencySession {
		return false
	}
	return true
}

// Fire records a display. The in-page flag is always set; the session flag
// is only persisted for real opens, never in test mode. Setting an already
// set flag is a no-op.
func (s *TriggerState) Fire(testMode bool) {
	s.fired = true
	if !testMode {
		s.sessionFired = true
	}
}

// SetSessionFired seeds the session flag, as a returning page load would
// read it from session storage.
func (s *TriggerState) SetSessionFired() { s.sessionFired = true }

// SessionFired reports the session-scope flag.
func (s *TriggerState) SessionFired() bool { return s.sessionFired }

// ScrollPercent computes the scroll depth percentage the scroll trigger
// compares against its threshold. A page too short to scroll reports 100 so
// the trigger fires on the first scroll event instead of dividing by zero.
func ScrollPercent(scrollY, scrollHeight, viewportHeight float64) float64 {
	span := scrollHeight - viewportHeight
	if span <= 0 {
		return 100
	}
	return scrollY / span * 100
}
