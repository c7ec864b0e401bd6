package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gossip/core"
	"github.com/katalvlaran/gossip/gossip"
	"github.com/katalvlaran/gossip/graphstats"
	"github.com/katalvlaran/gossip/oracle"
)

// ErrNilGraph is returned for a case with a missing graph.
var ErrNilGraph = errors.New("bench: case graph is nil")

// Case is one comparison: two graphs and, when known, whether they are isomorphic.
type Case struct {
	Category string
	Name     string
	G1, G2   *core.Graph
	Expected *bool
}

// Result records one Case run.
type Result struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Nodes    int    `json:"nodes"`
	Edges    int    `json:"edges"`

	Gossip   bool  `json:"gossip"`
	Oracle   *bool `json:"oracle"` // nil: timed out or skipped
	Expected *bool `json:"expected,omitempty"`
	Correct  bool  `json:"correct"`

	GossipTime time.Duration `json:"gossip_ns"`
	OracleTime time.Duration `json:"oracle_ns"`

	// Stats describes G1 when Runner.Stats is set.
	Stats *graphstats.Stats `json:"stats,omitempty"`
}

// Speedup is OracleTime / GossipTime, or 0 when either side has no timing.
func (r Result) Speedup() float64 {
	if r.Oracle == nil || r.GossipTime <= 0 || r.OracleTime <= 0 {
		return 0
	}
	return float64(r.OracleTime) / float64(r.GossipTime)
}

// Runner executes cases.
type Runner struct {
	// Options are passed to every gossip comparison.
	Options []gossip.Option

	// OracleTimeout bounds each oracle call; 0 means no bound.
	OracleTimeout time.Duration

	// SkipOracle disables the oracle; Expected becomes the reference.
	SkipOracle bool

	// Workers is the number of cases run concurrently; ≤ 1 is sequential.
	// Concurrent cases skew timings, so published numbers use 1.
	Workers int

	// Stats attaches graphstats for G1 to every result.
	Stats bool

	// Logger receives per-case debug lines; nil discards them.
	Logger *log.Logger
}

// Run executes all cases and returns results in case order. It stops at the
// first error; cancellation of ctx surfaces as ctx.Err().
func (r *Runner) Run(ctx context.Context, cases []Case) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	results := make([]Result, len(cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, r.Workers))
	for i := range cases {
		i := i
		g.Go(func() error {
			res, err := r.runCase(gctx, cases[i])
			if err != nil {
				return fmt.Errorf("bench: case %q: %w", cases[i].Name, err)
			}
			logger.Debug("case done",
				"category", res.Category,
				"name", res.Name,
				"n", res.Nodes,
				"gossip", res.Gossip,
				"oracle", verdict(res.Oracle),
				"tg", res.GossipTime,
				"to", res.OracleTime,
			)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// runCase times both deciders on c.
func (r *Runner) runCase(ctx context.Context, c Case) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if c.G1 == nil || c.G2 == nil {
		return Result{}, ErrNilGraph
	}
	res := Result{
		Category: c.Category,
		Name:     c.Name,
		Nodes:    c.G1.VertexCount(),
		Edges:    c.G1.EdgeCount(),
		Expected: c.Expected,
	}
	if r.Stats {
		st, err := graphstats.Compute(ctx, c.G1)
		if err != nil {
			return Result{}, err
		}
		res.Stats = st
	}

	opts := append(append([]gossip.Option(nil), r.Options...), gossip.WithContext(ctx))
	start := time.Now()
	iso, err := gossip.MatchGraphs(c.G1, c.G2, opts...)
	res.GossipTime = time.Since(start)
	if err != nil {
		return Result{}, err
	}
	res.Gossip = iso

	if r.SkipOracle {
		res.Correct = c.Expected == nil || *c.Expected == iso
		return res, nil
	}

	octx, cancel := ctx, context.CancelFunc(func() {})
	if r.OracleTimeout > 0 {
		octx, cancel = context.WithTimeout(ctx, r.OracleTimeout)
	}
	start = time.Now()
	ok, err := oracle.IsomorphicGraphs(octx, c.G1, c.G2)
	res.OracleTime = time.Since(start)
	cancel()
	switch {
	case err == nil:
		res.Oracle = &ok
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		// timed out: neutral
	default:
		return Result{}, err
	}
	res.Correct = res.Oracle == nil || *res.Oracle == res.Gossip

	return res, nil
}

// verdict renders an optional answer.
func verdict(v *bool) string {
	switch {
	case v == nil:
		return "timeout"
	case *v:
		return "iso"
	default:
		return "non-iso"
	}
}
