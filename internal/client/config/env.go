package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays cfg with values taken from the environment, using the
// env tags declared on Config. Unset variables leave fields untouched.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
