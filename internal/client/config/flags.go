package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fittrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-t int      request timeout in seconds; when absent the earlier value stays
//	-s string   path of the session storage file
//	-l string   log level
//
// Args are filtered with flagx.FilterArgs so other flags are ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-s", "-l"})

	fs := flag.NewFlagSet("fittrack", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "backend base URL")
	timeout := fs.Int("t", 0, "request timeout (in seconds)")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "session storage file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	var timeoutSet bool
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			timeoutSet = true
		}
	})
	if !timeoutSet {
		return nil
	}
	if *timeout < 0 {
		return fmt.Errorf("invalid flags: negative timeout %d", *timeout)
	}
	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
	return nil
}
