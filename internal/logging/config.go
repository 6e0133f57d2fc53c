// Package logging configures the process-wide zerolog logger, adapted
// from the teacher's env-override pattern (there layered over a local
// logging shim; here layered directly over zerolog since this tool has
// no reason to abstract the logger away).
package logging

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "DPLLCTL_LOG_LEVEL"
	EnvLogTimestamp = "DPLLCTL_LOG_TIMESTAMP"
	EnvLogNoColor   = "DPLLCTL_LOG_NOCOLOR"
)

// Profile selects the default level/format pair Configure starts from
// before env overrides are applied.
type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var configureOnce sync.Once

// ConfigureRuntime initializes the global logger for normal CLI
// invocations. Safe to call more than once; only the first call takes
// effect.
func ConfigureRuntime() {
	Configure(ProfileRuntime)
}

// ConfigureTests initializes the global logger at debug level without
// timestamps, the shape test output wants.
func ConfigureTests() {
	Configure(ProfileTest)
}

func Configure(profile Profile) {
	configureOnce.Do(func() {
		level, timestamp, noColor := defaults(profile)
		applyEnvOverrides(&level, &timestamp, &noColor)

		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339, NoColor: noColor}
		ctx := zerolog.New(out).Level(level).With().Str("app", "dpllctl")
		if timestamp {
			ctx = ctx.Timestamp()
		}
		log.Logger = ctx.Logger()
	})
}

func defaults(profile Profile) (level zerolog.Level, timestamp, noColor bool) {
	switch profile {
	case ProfileTest:
		return zerolog.DebugLevel, false, true
	default:
		return zerolog.InfoLevel, true, false
	}
}

func applyEnvOverrides(level *zerolog.Level, timestamp, noColor *bool) {
	if lvl, ok := parseLevel(os.Getenv(EnvLogLevel)); ok {
		*level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogTimestamp)); ok {
		*timestamp = v
	}
	if v, ok := parseBool(os.Getenv(EnvLogNoColor)); ok {
		*noColor = v
	}
}

func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}

func parseBool(raw string) (bool, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}
