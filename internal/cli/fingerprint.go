package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gossip/adjacency"
	"github.com/katalvlaran/gossip/gossip"
)

func (c *CLI) fingerprintCommand() *cobra.Command {
	var (
		format  string
		vertex  string
		classes bool
	)
	cmd := &cobra.Command{
		Use:   "fingerprint <graph>",
		Short: "Print gossip fingerprints of a graph file",
		Long: `Print the fingerprint of every vertex. With --vertex, print one run round by round;
with --classes, group vertices that share a fingerprint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGraph(args[0], format)
			if err != nil {
				return err
			}
			opts, err := c.options()
			if err != nil {
				return err
			}
			opts = append(opts, gossip.WithContext(cmd.Context()))
			adj := adjacency.FromCore(g)
			w := cmd.OutOrStdout()

			switch {
			case vertex != "":
				tr, err := gossip.Trace(adj, vertex, opts...)
				if err != nil {
					return err
				}
				printKeyValue(w, "vertex", vertex)
				printKeyValue(w, "fingerprint", tr.Fingerprint.String())
				return renderRounds(w, tr.Rounds)
			case classes:
				cls, err := gossip.Classes(adj, opts...)
				if err != nil {
					return err
				}
				printKeyValue(w, "classes", strconv.Itoa(len(cls)))
				for _, cl := range cls {
					fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("[%d] degree %d", len(cl.Vertices), cl.Fingerprint.Degree)))
					printDetail(w, "%s", strings.Join(sortedStrings(cl.Vertices), " "))
				}
				return nil
			default:
				for _, v := range g.Vertices() {
					fp, err := gossip.Run(adj, v, opts...)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s: %s\n", v, fp)
				}
				return nil
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "auto", "graph file format: auto, edgelist, pajek, dot, chain")
	cmd.Flags().StringVar(&vertex, "vertex", "", "trace a single start vertex")
	cmd.Flags().BoolVar(&classes, "classes", false, "group vertices by fingerprint")

	return cmd
}

// renderRounds prints one table row per gossip round.
func renderRounds(w io.Writer, rounds []gossip.RoundStats) error {
	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		shape := "-"
		if r.Shape != nil {
			parts := make([]string, len(r.Shape))
			for i, s := range r.Shape {
				parts[i] = strconv.Itoa(s)
			}
			shape = strings.Join(parts, ",")
		}
		rows = append(rows, []string{
			strconv.Itoa(r.Round),
			strconv.Itoa(r.Frontier),
			strconv.Itoa(r.Contacts),
			strconv.Itoa(r.Receivers),
			shape,
		})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Round", "Frontier", "Contacts", "Receivers", "Shape").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func sortedStrings(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}
