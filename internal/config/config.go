package config

import "time"

// Config holds runtime settings for the shopkeeper CLI.
//
// Fields:
//   - StorePath: path of the sqlite file backing the local store.
//   - PeopleURL: endpoint of the remote people-list JSON document.
//   - PeopleToken: bearer token sent on people-list overwrites.
//   - FetchTimeout: HTTP timeout for people-list calls.
//   - LogLevel: console log level (debug, info, warn, error).
type Config struct {
	StorePath    string
	PeopleURL    string
	PeopleToken  string
	FetchTimeout time.Duration
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults. The people endpoint and
// token default to the demo document the original app talked to.
func (c *Config) LoadDefaults() {
	c.StorePath = "shop.db"
	c.PeopleURL = "https://firebasestorage.googleapis.com/v0/b/json-20921.appspot.com/o/personas.json?alt=media&token=b29f5449-8053-4749-9cd0-3ca7ca04309a"
	c.PeopleToken = "b29f5449-8053-4749-9cd0-3ca7ca04309a"
	c.FetchTimeout = 5 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment (including a .env file, if
// present), and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
