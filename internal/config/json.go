package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dvergara2005/shopkeeper/internal/flagx"
	"github.com/dvergara2005/shopkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "5s" or as integer nanoseconds.
type JsonConfig struct {
	StorePath    string         `json:"store_path"`
	PeopleURL    string         `json:"people_url"`
	PeopleToken  string         `json:"people_token"`
	FetchTimeout timex.Duration `json:"fetch_timeout"`
	LogLevel     string         `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. Empty JSON fields leave the current value in place.
// Panics on read or unmarshal errors (caller should recover if desired).
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

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.PeopleURL != "" {
		cfg.PeopleURL = jc.PeopleURL
	}
	if jc.PeopleToken != "" {
		cfg.PeopleToken = jc.PeopleToken
	}
	if jc.FetchTimeout.Duration != 0 {
		cfg.FetchTimeout = time.Duration(jc.FetchTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
