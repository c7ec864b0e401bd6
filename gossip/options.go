package gossip

import (
	"context"
	"fmt"
	"runtime"
	"strings"
)

// SentinelMode selects whether the frontier shape is folded into events.
type SentinelMode int

const (
	// SentinelFrontierShape appends the frontier component count to every event.
	SentinelFrontierShape SentinelMode = iota
	// SentinelOff emits 4-field events (Groups == 0).
	SentinelOff
)

// String returns the textual mode name used by flags and config files.
func (m SentinelMode) String() string {
	switch m {
	case SentinelOff:
		return "off"
	case SentinelFrontierShape:
		return "frontier"
	default:
		return fmt.Sprintf("SentinelMode(%d)", int(m))
	}
}

// ParseSentinelMode parses "off" or "frontier" (case-insensitive).
func ParseSentinelMode(s string) (SentinelMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none":
		return SentinelOff, nil
	case "frontier", "frontier-shape", "":
		return SentinelFrontierShape, nil
	}

	return 0, fmt.Errorf("%w: unknown sentinel mode %q", ErrOptionViolation, s)
}

// CounterMode selects the per-vertex counter recorded in events.
type CounterMode int

const (
	// CounterHear records cumulative hear counts.
	CounterHear CounterMode = iota
	// CounterDegree records static vertex degrees.
	CounterDegree
)

// String returns the textual mode name used by flags and config files.
func (m CounterMode) String() string {
	switch m {
	case CounterHear:
		return "hear"
	case CounterDegree:
		return "degree"
	default:
		return fmt.Sprintf("CounterMode(%d)", int(m))
	}
}

// ParseCounterMode parses "hear" or "degree" (case-insensitive).
func ParseCounterMode(s string) (CounterMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hear", "":
		return CounterHear, nil
	case "degree":
		return CounterDegree, nil
	}

	return 0, fmt.Errorf("%w: unknown counter mode %q", ErrOptionViolation, s)
}

// Option configures fingerprinting via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the operation is invoked.
type Option func(*Options)

// Options holds the parameters of a fingerprinting call.
type Options struct {
	// Ctx allows cancellation between per-vertex runs.
	Ctx context.Context

	// Sentinel selects the frontier shape sentinel.
	Sentinel SentinelMode

	// Counter selects hear counts or static degrees.
	Counter CounterMode

	// Workers bounds parallel per-vertex runs; 1 means sequential.
	Workers int

	// OnRound, if set, observes every round of every run. It must be safe for
	// concurrent use when Workers > 1.
	OnRound func(RoundStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - SentinelFrontierShape, CounterHear
//   - sequential execution (Workers == 1)
//   - no round hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Sentinel: SentinelFrontierShape,
		Counter:  CounterHear,
		Workers:  1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSentinel selects the sentinel mode.
func WithSentinel(m SentinelMode) Option {
	return func(o *Options) {
		switch m {
		case SentinelOff, SentinelFrontierShape:
			o.Sentinel = m
		default:
			o.err = fmt.Errorf("%w: unknown sentinel mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithCounter selects the counter mode.
func WithCounter(m CounterMode) Option {
	return func(o *Options) {
		switch m {
		case CounterHear, CounterDegree:
			o.Counter = m
		default:
			o.err = fmt.Errorf("%w: unknown counter mode %d", ErrOptionViolation, int(m))
		}
	}
}

// WithWorkers bounds the number of concurrent per-vertex runs.
//
//	n == 1: sequential (default)
//	n > 1:  at most n runs in flight
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithOnRound registers a per-round observation hook.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// buildOptions applies opts over the defaults and surfaces any recorded violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
