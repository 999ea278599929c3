package config

// Default configuration values.
const (
	DefaultRoot    = "src"
	DefaultBaseURL = "https://adventofcode.com"
)

// Environment variables read by Load.
const (
	EnvSession = "SESSION"
	EnvMaxYear = "YEAR"
	EnvYear    = "AOC_YEAR"
	EnvRoot    = "AOC_ROOT"
	EnvBaseURL = "AOC_BASE_URL"
	EnvDebug   = "AOC_DEBUG"
)

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config, currentYear int) {
	if cfg.Root == "" {
		cfg.Root = DefaultRoot
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Year == 0 {
		cfg.Year = currentYear
	}
	if cfg.MaxYear == 0 {
		cfg.MaxYear = currentYear
	}
}
