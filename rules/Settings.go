package rules

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings tune the built-in rules. The defaults reproduce the issuers
// scorecard semantics: 2-letter country codes and a zero revenue floor.
type Settings struct {
	CountryCodeLength int      `toml:"country_code_length"`
	MinAnnualRevenue  float64  `toml:"min_annual_revenue"`
	DisabledRules     []string `toml:"disabled_rules"`
}

func DefaultSettings() Settings {
	return Settings{
		CountryCodeLength: 2,
		MinAnnualRevenue:  0,
	}
}

// LoadSettings reads rule settings from a TOML file. An empty path returns
// the defaults.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	if _, err := toml.DecodeFile(path, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse rule settings '%s': %w", path, err)
	}

	if settings.CountryCodeLength <= 0 {
		settings.CountryCodeLength = 2
	}

	return settings, nil
}
