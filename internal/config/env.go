package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables. A .env file in the
// working directory is loaded first, if present; real environment variables
// win over .env entries (godotenv does not override existing values).
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SHOP_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("SHOP_PEOPLE_URL"); v != "" {
		cfg.PeopleURL = v
	}
	if v := os.Getenv("SHOP_PEOPLE_TOKEN"); v != "" {
		cfg.PeopleToken = v
	}
	if v := os.Getenv("SHOP_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FetchTimeout = d
		}
	}
	if v := os.Getenv("SHOP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
