// Package bench measures the gossip fingerprint against the exact oracle on
// families of graph pairs.
//
// A Case pairs two graphs, optionally with a known answer. Runner.Run times
// gossip.MatchGraphs and oracle.IsomorphicGraphs on each case, bounding the
// oracle with OracleTimeout. A Result is Correct when gossip agrees with the
// oracle; an oracle timeout counts as correct, and when the oracle is
// skipped the known answer (if any) is the reference instead.
//
// Families() lists deterministic case generators (classic, circulant,
// regular, relabel, srg, cfi, miyazaki, kneser, products, trees, transforms,
// gpetersen). Summarize aggregates timings with go-moremath and gonum;
// ScalingExponent fits t ~ n^a on a log-log scale. RenderTable prints a
// lipgloss table per category and Report serializes a run to JSON.
package bench
