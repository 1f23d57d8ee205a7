// Package config loads runtime configuration for the shopkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, with an optional .env file (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   path of the sqlite store file
//	-u string   people-list endpoint URL
//	-k string   people-list bearer token
//	-i int      people-list fetch timeout (seconds)
//	-l string   log level
//
// Environment variables
//
//	SHOP_STORE_PATH, SHOP_PEOPLE_URL, SHOP_PEOPLE_TOKEN,
//	SHOP_FETCH_TIMEOUT (duration string), SHOP_LOG_LEVEL
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "store_path": "shop.db",
//	  "people_url": "https://example.com/personas.json",
//	  "people_token": "secreto",
//	  "fetch_timeout": "5s",
//	  "log_level": "info"
//	}
package config
