// Package config loads the gossip.toml file shared by the CLI commands.
//
// Every field has a deterministic default, so a missing file is the same as
// an empty one. Unknown keys are rejected rather than silently ignored.
//
//	[fingerprint]
//	sentinel = "frontier"   # or "off"
//	counter  = "hear"       # or "degree"
//	workers  = 1            # 0 = GOMAXPROCS
//
//	[bench]
//	oracle_timeout = "30s"
//	seed     = 42
//	workers  = 1
//	families = ["srg", "circulant"]
//	output   = "report.json"
//
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gossip/bench"
	"github.com/katalvlaran/gossip/gossip"
)

// ErrInvalid is returned for unknown keys and out-of-range values.
var ErrInvalid = errors.New("config: invalid")

// Config is the decoded configuration file.
type Config struct {
	Fingerprint Fingerprint `toml:"fingerprint"`
	Bench       Bench       `toml:"bench"`
	Log         Log         `toml:"log"`
}

// Fingerprint selects the gossip variant.
type Fingerprint struct {
	Sentinel string `toml:"sentinel"`
	Counter  string `toml:"counter"`
	Workers  int    `toml:"workers"`
}

// Bench configures the bench command.
type Bench struct {
	OracleTimeout Duration `toml:"oracle_timeout"`
	Seed          int64    `toml:"seed"`
	Workers       int      `toml:"workers"`
	Families      []string `toml:"families"`
	Output        string   `toml:"output"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a Go duration string ("1m30s").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: duration %q: %w", ErrInvalid, text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Fingerprint: Fingerprint{
			Sentinel: gossip.SentinelFrontierShape.String(),
			Counter:  gossip.CounterHear.String(),
			Workers:  1,
		},
		Bench: Bench{
			OracleTimeout: Duration{30 * time.Second},
			Seed:          42,
			Workers:       1,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := gossip.ParseSentinelMode(c.Fingerprint.Sentinel); err != nil {
		return fmt.Errorf("%w: fingerprint.sentinel: %w", ErrInvalid, err)
	}
	if _, err := gossip.ParseCounterMode(c.Fingerprint.Counter); err != nil {
		return fmt.Errorf("%w: fingerprint.counter: %w", ErrInvalid, err)
	}
	if c.Fingerprint.Workers < 0 {
		return fmt.Errorf("%w: fingerprint.workers must be ≥ 0, got %d", ErrInvalid, c.Fingerprint.Workers)
	}
	if c.Bench.OracleTimeout.Duration < 0 {
		return fmt.Errorf("%w: bench.oracle_timeout must be ≥ 0, got %s", ErrInvalid, c.Bench.OracleTimeout)
	}
	if c.Bench.Workers < 0 {
		return fmt.Errorf("%w: bench.workers must be ≥ 0, got %d", ErrInvalid, c.Bench.Workers)
	}
	for _, name := range c.Bench.Families {
		if _, err := bench.Lookup(name); err != nil {
			return fmt.Errorf("%w: bench.families: %w", ErrInvalid, err)
		}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// GossipOptions converts the [fingerprint] section into gossip options.
func (c Config) GossipOptions() ([]gossip.Option, error) {
	sentinel, err := gossip.ParseSentinelMode(c.Fingerprint.Sentinel)
	if err != nil {
		return nil, fmt.Errorf("%w: fingerprint.sentinel: %w", ErrInvalid, err)
	}
	counter, err := gossip.ParseCounterMode(c.Fingerprint.Counter)
	if err != nil {
		return nil, fmt.Errorf("%w: fingerprint.counter: %w", ErrInvalid, err)
	}
	return []gossip.Option{
		gossip.WithSentinel(sentinel),
		gossip.WithCounter(counter),
		gossip.WithWorkers(c.Fingerprint.Workers),
	}, nil
}

// LogLevel parses the [log] level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return lvl, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
