package gossip

import (
	"fmt"

	"github.com/katalvlaran/gossip/adjacency"
	"github.com/katalvlaran/gossip/core"
)

// Matches reports whether g1 and g2 have equal fingerprints, i.e. whether
// they are possibly isomorphic. Graphs with different vertex or edge counts
// short-circuit to false without running the engine.
// Matches(g1, g2) == Matches(g2, g1).
func Matches[V comparable](g1, g2 adjacency.Adjacency[V], opts ...Option) (bool, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return false, err
	}
	idx1, err := compile(g1, "Matches")
	if err != nil {
		return false, err
	}
	idx2, err := compile(g2, "Matches")
	if err != nil {
		return false, err
	}

	if idx1.NumNodes() != idx2.NumNodes() || idx1.EdgeCount() != idx2.EdgeCount() {
		return false, nil
	}

	per1, err := fingerprintAll(idx1, &o)
	if err != nil {
		return false, err
	}
	per2, err := fingerprintAll(idx2, &o)
	if err != nil {
		return false, err
	}

	return sortFingerprints(per1).Equal(sortFingerprints(per2)), nil
}

// MatchGraphs adapts two core graphs and compares them with Matches.
func MatchGraphs(g1, g2 *core.Graph, opts ...Option) (bool, error) {
	if g1 == nil || g2 == nil {
		return false, fmt.Errorf("MatchGraphs: %w", ErrGraphNil)
	}

	return Matches(adjacency.FromCore(g1), adjacency.FromCore(g2), opts...)
}

// FingerprintGraph adapts a core graph and fingerprints it.
func FingerprintGraph(g *core.Graph, opts ...Option) (GraphFingerprint, error) {
	if g == nil {
		return nil, fmt.Errorf("FingerprintGraph: %w", ErrGraphNil)
	}

	return Fingerprint(adjacency.FromCore(g), opts...)
}
