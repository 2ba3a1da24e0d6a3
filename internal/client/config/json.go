package config

import (
	"encoding/json"
	"os"

	"campuspocket/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value so partial files only
// override what they mention.
type JsonConfig struct {
	DatabasePath *string `json:"database_path"`
	Debug        *bool   `json:"debug"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag means no JSON is loaded. Read or unmarshal errors
// panic; the caller treats a broken config file as a startup failure.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
}
