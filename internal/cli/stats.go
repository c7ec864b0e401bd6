package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gossip/graphstats"
)

func (c *CLI) statsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "stats <graph>",
		Short: "Print structural statistics of a graph file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0], format)
			if err != nil {
				return err
			}
			st, err := graphstats.Compute(cmd.Context(), g)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printKeyValue(w, "vertices", strconv.Itoa(st.Vertices))
			printKeyValue(w, "edges", strconv.Itoa(st.Edges))
			printKeyValue(w, "density", fmt.Sprintf("%.4f", st.Density))
			printKeyValue(w, "connected", fmt.Sprintf("%v (%d components)", st.Connected, st.Components))
			if st.Connected && st.Vertices > 0 {
				printKeyValue(w, "diameter", strconv.Itoa(st.Diameter))
				printKeyValue(w, "radius", strconv.Itoa(st.Radius))
			}
			printKeyValue(w, "degree", fmt.Sprintf("min %d, max %d, avg %.2f, sd %.2f",
				st.MinDegree, st.MaxDegree, st.AvgDegree, st.DegreeStdDev))
			if st.Regular {
				printKeyValue(w, "regular", strconv.Itoa(st.Regularity))
			}
			if srg, ok := graphstats.StronglyRegular(g); ok {
				printKeyValue(w, "strongly regular", srg.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", "graph file format: auto, edgelist, pajek, dot, chain")

	return cmd
}

func (c *CLI) convertCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:     "convert <in> <out>",
		Short:   "Rewrite a graph file in another format",
		Example: `  gossip convert petersen.chain petersen.dot`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0], from)
			if err != nil {
				return err
			}
			if err := writeGraph(args[1], g, to); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Converted %s", args[0])
			printFile(cmd.OutOrStdout(), args[1], fmt.Sprintf("(%d nodes, %d edges)", g.VertexCount(), g.EdgeCount()))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "auto", "input format")
	cmd.Flags().StringVar(&to, "to", "auto", "output format")

	return cmd
}
