// Package config assembles runtime settings for the CampusPocket CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DatabasePath: location of the on-device SQLite file.
//   - Debug: enables debug-level logging.
type Config struct {
	DatabasePath string `env:"CAMPUSPOCKET_DB"`
	Debug        bool   `env:"CAMPUSPOCKET_DEBUG"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "auth.db"
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
