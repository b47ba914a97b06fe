// Package config loads refkit's TOML configuration.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"refkit/infra/logging"
)

// Config is the root of a refkit TOML file.
type Config struct {
	Log     Log     `toml:"log"`
	Reclaim Reclaim `toml:"reclaim"`
}

type Log struct {
	Level     string `toml:"level"`
	Pretty    bool   `toml:"pretty"`
	Timestamp bool   `toml:"timestamp"`
}

// Reclaim sizes the deferred-finalization ring.
type Reclaim struct {
	RingSize uint64 `toml:"ring_size"`
}

const defaultRingSize = 1024

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path, fills in defaults and validates the result.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "load config %q", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "load config %q", path)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Reclaim.RingSize == 0 {
		c.Reclaim.RingSize = defaultRingSize
	}
}

func (c Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return errors.Newf("unknown log level %q", c.Log.Level)
	}
	if n := c.Reclaim.RingSize; n&(n-1) != 0 {
		return errors.Newf("reclaim.ring_size %d is not a power of two", n)
	}
	return nil
}

// Logging converts the [log] table into a logging.Config.
func (c Config) Logging() logging.Config {
	lvl, ok := logging.ParseLevel(c.Log.Level)
	if !ok {
		lvl = zerolog.InfoLevel
	}
	return logging.Config{
		Level:     lvl,
		Pretty:    c.Log.Pretty,
		Timestamp: c.Log.Timestamp,
	}
}
