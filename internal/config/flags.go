package config

import (
	"flag"
	"os"
	"time"

	"github.com/dvergara2005/shopkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   path of the sqlite store file
//	-u string   people-list endpoint URL
//	-k string   people-list bearer token
//	-i int      people-list fetch timeout in seconds
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-u", "-k", "-i", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the sqlite store file")
	fs.StringVar(&cfg.PeopleURL, "u", cfg.PeopleURL, "people-list endpoint URL")
	fs.StringVar(&cfg.PeopleToken, "k", cfg.PeopleToken, "people-list bearer token")
	fetchTimeout := fs.Int("i", int(cfg.FetchTimeout.Seconds()), "people-list fetch timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.FetchTimeout = time.Duration(*fetchTimeout) * time.Second
}
