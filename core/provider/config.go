package provider

import (
	"sort"
	"strings"
	"time"
)

// ModeAll is the mode whose stats live at the top level of a profile as an array.
const ModeAll = "all"

// Config holds configuration for the stats provider API.
type Config struct {
	// BaseURL is the root of the provider API.
	BaseURL string `mapstructure:"base_url" default:"https://api.fortnitetracker.com/v1"`
	// APIKey is sent in the TRN-Api-Key header.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds a single provider call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// Modes maps request modes to provider section keys (mode=key, comma separated).
	Modes string `mapstructure:"modes" default:"all=lifeTimeStats,solo=p2,duo=p10,squad=p9"`
	// BreakerThreshold is the number of consecutive failures that opens the breaker.
	BreakerThreshold int `mapstructure:"breaker_threshold" default:"5"`
	// BreakerTimeoutSeconds is how long the breaker stays open before probing again.
	BreakerTimeoutSeconds int `mapstructure:"breaker_timeout_seconds" default:"30"`
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// BreakerTimeout returns the open-state duration of the breaker.
func (c Config) BreakerTimeout() time.Duration {
	if c.BreakerTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.BreakerTimeoutSeconds) * time.Second
}

// ModeTable parses Modes. Malformed pairs are skipped.
func (c Config) ModeTable() Modes {
	return ParseModes(c.Modes)
}

// Modes maps a request mode (all, solo, duo, squad) to the provider section key.
type Modes map[string]string

// DefaultModes returns the built-in mode table.
func DefaultModes() Modes {
	return Modes{
		ModeAll: "lifeTimeStats",
		"solo":  "p2",
		"duo":   "p10",
		"squad": "p9",
	}
}

// ParseModes parses "mode=key,mode=key". An empty string yields DefaultModes.
func ParseModes(s string) Modes {
	if strings.TrimSpace(s) == "" {
		return DefaultModes()
	}

	modes := make(Modes)
	for _, pair := range strings.Split(s, ",") {
		mode, key, ok := strings.Cut(pair, "=")
		mode = strings.ToLower(strings.TrimSpace(mode))
		key = strings.TrimSpace(key)
		if !ok || mode == "" || key == "" {
			continue
		}
		modes[mode] = key
	}
	return modes
}

// Key returns the provider section key for mode.
func (m Modes) Key(mode string) (string, bool) {
	key, ok := m[strings.ToLower(mode)]
	return key, ok
}

// Names returns the configured modes, sorted.
func (m Modes) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
