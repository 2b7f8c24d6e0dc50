package config

import (
	"flag"
	"os"
	"time"

	"github.com/visitdesk/visitdesk/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-l int      simulated remote latency in milliseconds (default from Config)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database file")
	mockLatency := fs.Int("l", int(cfg.MockLatency.Milliseconds()), "simulated remote latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MockLatency = time.Duration(*mockLatency) * time.Millisecond
}
