package gossip

import "sort"

// indexedGraph is the dense, simple, symmetric view the engine walks.
// adjacency.Indexed satisfies it.
type indexedGraph interface {
	NumNodes() int
	Out(node int) []int
}

// walker encapsulates the mutable state of one per-vertex run.
// Nothing in it outlives the run.
type walker struct {
	graph indexedGraph
	opts  *Options

	spreader   []bool
	inFrontier []bool
	received   []bool
	count      []int // hear counts, or static degrees under CounterDegree
	seen       map[uint64]struct{}
	sets       *disjointSet // nil unless the sentinel is on

	frontier []int
	contacts []contact
	events   Timeline
	rounds   []RoundStats // only filled when tracing
	trace    bool
}

// newWalker allocates per-run state for a graph of n vertices.
func newWalker(g indexedGraph, opts *Options, trace bool) *walker {
	n := g.NumNodes()
	w := &walker{
		graph:      g,
		opts:       opts,
		spreader:   make([]bool, n),
		inFrontier: make([]bool, n),
		received:   make([]bool, n),
		count:      make([]int, n),
		seen:       make(map[uint64]struct{}),
		trace:      trace,
	}
	if opts.Sentinel == SentinelFrontierShape {
		w.sets = newDisjointSet(n)
	}
	if opts.Counter == CounterDegree {
		for v := 0; v < n; v++ {
			w.count[v] = len(g.Out(v))
		}
	}

	return w
}

// run spreads the gossip from start until the reachable component is
// exhausted and returns the sorted timeline.
func (w *walker) run(start int) VertexFingerprint {
	w.spreader[start] = true
	w.frontier = append(w.frontier, start)

	for round := 0; len(w.frontier) > 0; round++ {
		w.collect()
		if w.opts.Counter == CounterHear {
			w.hear()
		}
		w.frontier = w.classify(round)
	}

	sort.Slice(w.events, func(i, j int) bool { return w.events[i].Compare(w.events[j]) < 0 })

	return VertexFingerprint{Degree: len(w.graph.Out(start)), Timeline: w.events}
}

// collect records every unseen edge leaving the frontier as a contact.
// Each undirected edge is examined at most once per run.
func (w *walker) collect() {
	w.contacts = w.contacts[:0]
	for _, u := range w.frontier {
		w.inFrontier[u] = true
	}
	for _, u := range w.frontier {
		for _, x := range w.graph.Out(u) {
			if x == u {
				continue
			}
			key := edgeKey(u, x)
			if _, ok := w.seen[key]; ok {
				continue
			}
			w.seen[key] = struct{}{}
			w.contacts = append(w.contacts, contact{u: u, w: x})
		}
	}
}

// hear bumps the receiving side of every contact, and the initiating side too
// when the receiving side already spreads.
func (w *walker) hear() {
	for _, c := range w.contacts {
		w.count[c.w]++
		if w.spreader[c.w] {
			w.count[c.u]++
		}
	}
}

// classify emits one event per contact, promotes receivers and returns the
// next frontier.
func (w *walker) classify(round int) []int {
	groups := 0
	var sizes []int
	if w.opts.Sentinel == SentinelFrontierShape {
		s := w.sets.frontierShape(w.frontier, w.contacts, w.inFrontier)
		groups, sizes = s.groups, s.sizes
	}

	var receivers []int
	for _, c := range w.contacts {
		su, sw := w.spreader[c.u], w.spreader[c.w]
		ev := Event{Round: round, Groups: groups}
		switch {
		case su && !sw:
			ev.Tag, ev.A, ev.B = TagPush, w.count[c.u], w.count[c.w]
			receivers = w.receive(receivers, c.w)
		case sw && !su:
			ev.Tag, ev.A, ev.B = TagPush, w.count[c.w], w.count[c.u]
			receivers = w.receive(receivers, c.u)
		default:
			a, b := w.count[c.u], w.count[c.w]
			if a > b {
				a, b = b, a
			}
			ev.Tag, ev.A, ev.B = TagSymmetric, a, b
		}
		w.events = append(w.events, ev)
	}

	if w.trace || w.opts.OnRound != nil {
		st := RoundStats{
			Round:     round,
			Frontier:  len(w.frontier),
			Contacts:  len(w.contacts),
			Receivers: len(receivers),
			Shape:     sizes,
		}
		if w.trace {
			w.rounds = append(w.rounds, st)
		}
		if w.opts.OnRound != nil {
			w.opts.OnRound(st)
		}
	}

	for _, u := range w.frontier {
		w.inFrontier[u] = false
	}
	for _, v := range receivers {
		w.spreader[v] = true
	}

	return receivers
}

// receive adds v to the receivers of this round once.
func (w *walker) receive(receivers []int, v int) []int {
	if w.received[v] {
		return receivers
	}
	w.received[v] = true

	return append(receivers, v)
}

// edgeKey packs an unordered pair into one map key.
func edgeKey(a, b int) uint64 {
	if a > b {
		a, b = b, a
	}

	return uint64(a)<<32 | uint64(uint32(b))
}
