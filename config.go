package policyprism

import (
	"context"
	"time"
)

// Config controls whether and where automated analysis runs.
type Config struct {
	Enabled   bool      `json:"enabled"`
	Carriers  []string  `json:"carriers"`
	AutoRun   bool      `json:"autoRun"`
	UpdatedAt time.Time `json:"lastUpdated"`
}

// DefaultConfig returns the enabled-everywhere configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:  true,
		Carriers: CarrierIDs(),
		AutoRun:  true,
	}
}

// AllowsCarrier reports whether the allow-list admits the carrier ID.
// An empty allow-list or an unknown carrier is never blocked; only a
// non-empty list that omits a known carrier blocks analysis.
func (c *Config) AllowsCarrier(id string) bool {
	if len(c.Carriers) == 0 || id == "" || id == CarrierUnknown {
		return true
	}
	for _, allowed := range c.Carriers {
		if allowed == id {
			return true
		}
	}
	return false
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if normalized := NormalizeCarrierIDs(c.Carriers); len(normalized) != len(c.Carriers) {
		return Errorf(EINVALID, "config carriers contain unregistered IDs")
	}
	return nil
}

// ConfigUpdate represents fields that can be patched on the config.
type ConfigUpdate struct {
	Enabled  *bool     `json:"enabled"`
	Carriers *[]string `json:"carriers"`
	AutoRun  *bool     `json:"autoRun"`
}

// ConfigService persists the analysis configuration.
type ConfigService interface {
	// LoadConfig retrieves the stored configuration.
	// Returns ENOTFOUND if none has been saved yet.
	LoadConfig(ctx context.Context) (*Config, error)

	// SaveConfig stores the configuration, replacing any previous one.
	SaveConfig(ctx context.Context, config *Config) error

	// UpdateConfig patches the stored configuration, starting from the
	// default when none exists, and returns the result.
	UpdateConfig(ctx context.Context, upd ConfigUpdate) (*Config, error)
}
