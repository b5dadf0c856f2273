package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/infowise/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   user API base URL
//	-n string   news API base URL
//	-d string   local database path
//	-i int      online check interval in seconds
//	-t int      request timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs so flags meant for other
// components do not break parsing. -i and -t only overwrite cfg when they
// are passed, so sub-second values from JSON or env survive.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n", "-d", "-i", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.UserAPIURL, "a", cfg.UserAPIURL, "user API base URL")
	fs.StringVar(&cfg.NewsAPIURL, "n", cfg.NewsAPIURL, "news API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		}
	})
}
