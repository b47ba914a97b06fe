// Package logging owns the process-wide zerolog root used by refkit.
//
// The root starts disabled so that importing the library never writes
// anything. Binaries call Configure once at startup; tests call
// ConfigureTests to get debug output routed through the test binary.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel  = "REFKIT_LOG_LEVEL"
	EnvLogPretty = "REFKIT_LOG_PRETTY"
)

// Config selects the level and output format of the root logger.
type Config struct {
	Level     zerolog.Level
	Pretty    bool
	Timestamp bool
	Out       io.Writer
}

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

var root atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	root.Store(&nop)
}

// DefaultConfig returns the defaults for a profile, before env overrides.
func DefaultConfig(profile Profile) Config {
	switch profile {
	case ProfileTest:
		return Config{Level: zerolog.DebugLevel, Pretty: true}
	default:
		return Config{Level: zerolog.InfoLevel, Timestamp: true}
	}
}

func ConfigureRuntime() {
	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnv(&cfg)
	Configure(cfg)
}

func ConfigureTests() {
	cfg := DefaultConfig(ProfileTest)
	ApplyEnv(&cfg)
	Configure(cfg)
}

// Configure replaces the root logger.
func Configure(cfg Config) {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}
	ctx := zerolog.New(out).Level(cfg.Level).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	l := ctx.Logger()
	root.Store(&l)
}

// L returns the current root logger.
func L() *zerolog.Logger {
	return root.Load()
}

// Enabled reports whether the root logger would write an event at lvl.
// Hot paths check it before building a component logger.
func Enabled(lvl zerolog.Level) bool {
	return lvl >= root.Load().GetLevel() && lvl >= zerolog.GlobalLevel()
}

// For returns a child of the current root tagged with a component name.
func For(component string) zerolog.Logger {
	return root.Load().With().Str("component", component).Logger()
}

// ApplyEnv overrides cfg from REFKIT_LOG_* variables when they parse.
func ApplyEnv(cfg *Config) {
	if lvl, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	if v, ok := parseBool(os.Getenv(EnvLogPretty)); ok {
		cfg.Pretty = v
	}
}

// ParseLevel accepts zerolog level names plus a few aliases for "off".
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "":
		return zerolog.InfoLevel, false
	case "warning":
		return zerolog.WarnLevel, true
	case "off", "none", "disable":
		return zerolog.Disabled, true
	default:
		lvl, err := zerolog.ParseLevel(s)
		if err != nil {
			return zerolog.InfoLevel, false
		}
		return lvl, true
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
