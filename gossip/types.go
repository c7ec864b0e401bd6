// Package gossip provides tunable options, error definitions and result types
// for gossip fingerprinting over an adjacency.Adjacency.
package gossip

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for fingerprinting.
var (
	// ErrStartNotFound is returned when the start vertex is not in the adjacency.
	ErrStartNotFound = errors.New("gossip: start vertex not found")

	// ErrMalformedAdjacency is returned when a neighbor list references a missing vertex.
	ErrMalformedAdjacency = errors.New("gossip: malformed adjacency")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gossip: invalid option supplied")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("gossip: graph is nil")
)

// Event categories.
const (
	// TagSymmetric marks a contact between two vertices in the same spreader state.
	TagSymmetric = 0

	// TagPush marks a contact where a spreader told a vertex that did not yet know.
	TagPush = 1
)

// Event is one structural record, emitted once per examined edge.
//
// For TagPush, A is the count of the spreading side and B the count of the
// receiving side. For TagSymmetric, A <= B. Groups is the number of connected
// components of the round's frontier, or 0 when the sentinel is disabled.
type Event struct {
	Round  int
	Tag    int
	A, B   int
	Groups int
}

// Compare orders events lexicographically by (Round, Tag, A, B, Groups).
func (e Event) Compare(o Event) int {
	switch {
	case e.Round != o.Round:
		return cmpInt(e.Round, o.Round)
	case e.Tag != o.Tag:
		return cmpInt(e.Tag, o.Tag)
	case e.A != o.A:
		return cmpInt(e.A, o.A)
	case e.B != o.B:
		return cmpInt(e.B, o.B)
	default:
		return cmpInt(e.Groups, o.Groups)
	}
}

// String renders the event as a 4-tuple, or a 5-tuple when Groups is set.
func (e Event) String() string {
	if e.Groups == 0 {
		return fmt.Sprintf("(%d,%d,%d,%d)", e.Round, e.Tag, e.A, e.B)
	}
	return fmt.Sprintf("(%d,%d,%d,%d,%d)", e.Round, e.Tag, e.A, e.B, e.Groups)
}

// Timeline is the sorted event log of one per-vertex run.
type Timeline []Event

// Compare orders timelines element-wise, shorter prefix first.
func (t Timeline) Compare(o Timeline) int {
	n := min(len(t), len(o))
	for i := 0; i < n; i++ {
		if c := t[i].Compare(o[i]); c != 0 {
			return c
		}
	}

	return cmpInt(len(t), len(o))
}

// VertexFingerprint is the local invariant of one start vertex: its degree
// (distinct non-loop neighbors) followed by its timeline.
type VertexFingerprint struct {
	Degree   int
	Timeline Timeline
}

// Compare orders fingerprints by Degree, then Timeline.
func (f VertexFingerprint) Compare(o VertexFingerprint) int {
	if f.Degree != o.Degree {
		return cmpInt(f.Degree, o.Degree)
	}

	return f.Timeline.Compare(o.Timeline)
}

// Equal reports whether f and o are identical.
func (f VertexFingerprint) Equal(o VertexFingerprint) bool { return f.Compare(o) == 0 }

// String renders "deg:[events...]".
func (f VertexFingerprint) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(f.Degree))
	sb.WriteString(":[")
	for i, e := range f.Timeline {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// GraphFingerprint is the sorted multiset of all vertex fingerprints.
type GraphFingerprint []VertexFingerprint

// Compare orders graph fingerprints element-wise, shorter prefix first.
func (g GraphFingerprint) Compare(o GraphFingerprint) int {
	n := min(len(g), len(o))
	for i := 0; i < n; i++ {
		if c := g[i].Compare(o[i]); c != 0 {
			return c
		}
	}

	return cmpInt(len(g), len(o))
}

// Equal reports whether g and o are identical.
func (g GraphFingerprint) Equal(o GraphFingerprint) bool {
	return len(g) == len(o) && g.Compare(o) == 0
}

// Degrees returns the degree prefix of every vertex fingerprint, in order.
func (g GraphFingerprint) Degrees() []int {
	out := make([]int, len(g))
	for i, f := range g {
		out[i] = f.Degree
	}

	return out
}

// RoundStats describes one round of a per-vertex run.
type RoundStats struct {
	Round     int   // zero-based round index
	Frontier  int   // vertices that learned the gossip in the previous round
	Contacts  int   // edges examined this round
	Receivers int   // vertices that learn the gossip this round
	Shape     []int // sorted frontier component sizes; nil when the sentinel is off
}

// RunTrace is the outcome of Trace: the fingerprint plus per-round statistics.
type RunTrace struct {
	Fingerprint VertexFingerprint
	Rounds      []RoundStats
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
