package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// pairFlags are shared by test and generate.
type pairFlags struct {
	params pairParams
}

func (p *pairFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&p.params.kind, "type", "random", "graph type: "+strings.Join(pairKinds, ", "))
	f.IntVar(&p.params.size, "size", 10, "size parameter of the generated graphs")
	f.IntVar(&p.params.degree, "degree", 3, "degree for regular graphs")
	f.Float64Var(&p.params.probability, "probability", 0.3, "edge probability for random and cfi base graphs")
	f.Int64Var(&p.params.seed, "seed", 42, "random seed")
}

func (c *CLI) testCommand() *cobra.Command {
	var (
		pf pairFlags
		of oracleFlags
	)
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Compare a generated pair of graphs",
		Example: `  gossip test --type cfi --size 10
  gossip test --type rook_shrikhande --sentinel off`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g1, g2, err := generatePair(pf.params)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), "Testing %s graphs with size %d", pf.params.kind, pf.params.size)
			return c.runComparison(cmd, g1, g2, of)
		},
	}
	pf.register(cmd)
	of.register(cmd)

	return cmd
}

func (c *CLI) generateCommand() *cobra.Command {
	var (
		pf     pairFlags
		output []string
		format string
	)
	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write a generated pair of graphs to files",
		Example: `  gossip generate --type srg --output a.net,b.net`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(output) != 2 {
				return fmt.Errorf("--output needs exactly two paths, got %d", len(output))
			}
			g1, g2, err := generatePair(pf.params)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "Generated %s graphs", pf.params.kind)
			for i, g := range []*graphFile{{output[0], g1}, {output[1], g2}} {
				if err := writeGraph(g.path, g.graph, format); err != nil {
					return fmt.Errorf("graph %d: %w", i+1, err)
				}
				printFile(w, g.path, fmt.Sprintf("(%d nodes, %d edges)", g.graph.VertexCount(), g.graph.EdgeCount()))
			}
			return nil
		},
	}
	pf.register(cmd)
	cmd.Flags().StringSliceVarP(&output, "output", "o", []string{"graph1.edgelist", "graph2.edgelist"}, "output files for the two graphs")
	cmd.Flags().StringVar(&format, "format", "auto", "output format: auto, edgelist, pajek, dot, chain")

	return cmd
}
