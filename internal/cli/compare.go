package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gossip/adjacency"
	"github.com/katalvlaran/gossip/core"
	"github.com/katalvlaran/gossip/gossip"
	"github.com/katalvlaran/gossip/graphstats"
	"github.com/katalvlaran/gossip/oracle"
)

// oracleFlags are shared by compare and test.
type oracleFlags struct {
	skip    bool
	timeout time.Duration
}

func (o *oracleFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.skip, "no-oracle", false, "skip the exact isomorphism check")
	cmd.Flags().DurationVar(&o.timeout, "oracle-timeout", 0, "bound on the exact check (0 = [bench] oracle_timeout)")
}

func (c *CLI) compareCommand() *cobra.Command {
	var (
		format string
		of     oracleFlags
	)
	cmd := &cobra.Command{
		Use:   "compare <graph1> <graph2>",
		Short: "Compare two graph files",
		Long:  `Fingerprint two graph files and report whether they match. Unless --no-oracle is set the verdict is checked against the exact oracle and the command fails when they disagree.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, err := readGraph(args[0], format)
			if err != nil {
				return err
			}
			g2, err := readGraph(args[1], format)
			if err != nil {
				return err
			}
			return c.runComparison(cmd, g1, g2, of)
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", "graph file format: auto, edgelist, pajek, dot, chain")
	of.register(cmd)

	return cmd
}

// runComparison prints both verdicts and returns ErrDisagree on a mismatch.
func (c *CLI) runComparison(cmd *cobra.Command, g1, g2 *core.Graph, of oracleFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	w := cmd.OutOrStdout()

	for i, g := range []*core.Graph{g1, g2} {
		st, err := graphstats.Compute(ctx, g)
		if err != nil {
			return err
		}
		printKeyValue(w, fmt.Sprintf("graph %d", i+1), describe(st))
	}

	opts, err := c.options()
	if err != nil {
		return err
	}
	start := time.Now()
	match, err := gossip.MatchGraphs(g1, g2, append(opts, gossip.WithContext(ctx))...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	printKeyValue(w, "gossip match", fmt.Sprint(match))
	printKeyValue(w, "gossip time", elapsed.Round(time.Microsecond).String())

	if of.skip {
		return nil
	}
	timeout := of.timeout
	if timeout == 0 {
		timeout = c.cfg.Bench.OracleTimeout.Duration
	}
	octx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		octx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	start = time.Now()
	iso, err := oracle.IsomorphicGraphs(octx, g1, g2)
	logger.Debug("oracle finished", "elapsed", time.Since(start))
	switch {
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		printKeyValue(w, "oracle", "TIMEOUT")
		printWarning(w, "oracle gave up after %s", timeout)
		return nil
	case err != nil:
		return err
	}
	printKeyValue(w, "oracle", fmt.Sprint(iso))

	if iso != match {
		printError(w, "gossip result differs from the oracle")
		if err := c.dumpFingerprints(w, "graph 1", g1); err != nil {
			return err
		}
		if err := c.dumpFingerprints(w, "graph 2", g2); err != nil {
			return err
		}
		return ErrDisagree
	}
	printSuccess(w, "results match")

	return nil
}

// dumpFingerprints prints the fingerprint of every vertex of g.
func (c *CLI) dumpFingerprints(w io.Writer, title string, g *core.Graph) error {
	opts, err := c.options()
	if err != nil {
		return err
	}
	adj := adjacency.FromCore(g)
	fmt.Fprintln(w, StyleTitle.Render(title))
	for _, v := range g.Vertices() {
		fp, err := gossip.Run(adj, v, opts...)
		if err != nil {
			return err
		}
		printDetail(w, "%s: %s", v, fp)
	}

	return nil
}

// describe renders the one-line summary printed per graph.
func describe(st *graphstats.Stats) string {
	s := fmt.Sprintf("%d vertices, %d edges, density %.3f", st.Vertices, st.Edges, st.Density)
	if st.Vertices > 0 {
		s += fmt.Sprintf(", degree %d-%d", st.MinDegree, st.MaxDegree)
	}
	if st.Regular {
		s += fmt.Sprintf(", %d-regular", st.Regularity)
	}
	if !st.Connected {
		s += fmt.Sprintf(", %d components", st.Components)
	}
	return s
}
