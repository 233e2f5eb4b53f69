// Package config loads the run parameters a pipeline invocation needs,
// following the teacher's env-first convention (os.Getenv, defaults,
// and a .env file loaded via godotenv) for secrets and deployment
// knobs. The statistical parameters are not loaded here: the cmd
// entrypoint reads them itself.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every ambient knob a run reads from the environment.
// Statistical parameters (rtng_at_76pct, draw_rate_eq, white_adv, ...)
// are not here: cmd/ordorate reads them from their own environment
// variables (POOL_AVERAGE, RTNG_AT_76PCT, DRAW_RATE_EQ, ...).
type Config struct {
	ArchiveDSN string // empty disables internal/archive
	ServeAddr  string // empty disables internal/serve
	UseColor   bool
	Debug      bool
	DemoSeed   int64
}

// Load reads .env (if present, silently ignored if missing) and then
// the process environment, mirroring the teacher's bootstrap: `_ =
// godotenv.Load()` followed by plain os.Getenv reads.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ArchiveDSN: strings.TrimSpace(os.Getenv("ARCHIVE_DSN")),
		ServeAddr:  strings.TrimSpace(os.Getenv("SERVE_ADDR")),
		UseColor:   os.Getenv("NO_COLOR") == "" && strings.TrimSpace(os.Getenv("USE_COLOR")) != "0",
		Debug:      asBool(os.Getenv("DEBUG")),
		DemoSeed:   atoi64Def(os.Getenv("DEMO_SEED"), 1),
	}
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func atoi64Def(s string, def int64) int64 {
	if s == "" {
		return def
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return def
	}
	return n
}
