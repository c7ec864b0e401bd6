package bench

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gossip/builder"
	"github.com/katalvlaran/gossip/core"
)

// ErrUnknownFamily is returned by Lookup and Select for an unregistered name.
var ErrUnknownFamily = errors.New("bench: unknown family")

// Family is a named, seeded generator of cases.
type Family struct {
	Name        string
	Description string
	Build       func(seed int64) ([]Case, error)
}

var families = []Family{
	{"classic", "relabels of textbook families plus same-order non-isomorphic pairs", classicCases},
	{"circulant", "circulant relabels, an isomorphic offset reversal and hard same-degree pairs", circulantCases},
	{"regular", "random d-regular relabels and independent pairs", regularCases},
	{"relabel", "Erdős–Rényi relabels and independent pairs across n and p", relabelCases},
	{"srg", "strongly regular graphs: Paley, rook, Shrikhande", srgCases},
	{"cfi", "CFI pairs over small bases", cfiCases},
	{"miyazaki", "Miyazaki graphs against relabels and circular ladders", miyazakiCases},
	{"kneser", "Kneser and Johnson graphs", kneserCases},
	{"products", "Cartesian products, tori, hypercubes, complete bipartite", productCases},
	{"trees", "random labelled trees", treeCases},
	{"transforms", "line graphs and complements", transformCases},
	{"gpetersen", "generalized Petersen graphs", gpetersenCases},
}

// Families returns every registered family sorted by name.
func Families() []Family {
	out := append([]Family(nil), families...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds a family by name.
func Lookup(name string) (Family, error) {
	for _, f := range families {
		if f.Name == name {
			return f, nil
		}
	}
	return Family{}, fmt.Errorf("%w: %q", ErrUnknownFamily, name)
}

// Select builds the cases of the named families (all when names is empty),
// in the order given. Each family gets its own RNG derived from seed.
func Select(names []string, seed int64) ([]Case, error) {
	if len(names) == 0 {
		for _, f := range Families() {
			names = append(names, f.Name)
		}
	}
	var out []Case
	for _, name := range names {
		f, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		cs, err := f.Build(seed)
		if err != nil {
			return nil, fmt.Errorf("bench: family %s: %w", name, err)
		}
		out = append(out, cs...)
	}
	return out, nil
}

// caseSet accumulates cases for one category and keeps the first error.
type caseSet struct {
	category string
	rng      *rand.Rand
	cases    []Case
	err      error
}

func newCaseSet(category string, seed int64) *caseSet {
	return &caseSet{category: category, rng: rand.New(rand.NewSource(seed))}
}

func (s *caseSet) graph(con builder.Constructor) *core.Graph {
	if s.err != nil {
		return nil
	}
	g, err := builder.Build(con, builder.WithRand(s.rng))
	if err != nil {
		s.err = err
	}
	return g
}

// derived records the error of a derive-style call.
func (s *caseSet) derived(g *core.Graph, err error) *core.Graph {
	if s.err == nil && err != nil {
		s.err = err
	}
	return g
}

func (s *caseSet) pair(name string, g1, g2 *core.Graph, expected *bool) {
	if s.err != nil {
		return
	}
	s.cases = append(s.cases, Case{Category: s.category, Name: name, G1: g1, G2: g2, Expected: expected})
}

// relabel pairs g with a random relabelling of itself.
func (s *caseSet) relabel(name string, g *core.Graph) {
	if s.err != nil {
		return
	}
	h, _, err := builder.Relabel(g, s.rng)
	if err != nil {
		s.err = err
		return
	}
	s.pair(name, g, h, yes)
}

func (s *caseSet) done() ([]Case, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.cases, nil
}

var (
	yes = boolPtr(true)
	no  = boolPtr(false)
)

func boolPtr(b bool) *bool { return &b }

func classicCases(seed int64) ([]Case, error) {
	s := newCaseSet("classic", seed)
	for _, n := range []int{5, 7, 9, 11, 13} {
		s.relabel(fmt.Sprintf("K%d", n), s.graph(builder.Complete(n)))
	}
	for _, n := range []int{8, 12, 16, 20, 24} {
		s.relabel(fmt.Sprintf("C%d", n), s.graph(builder.Cycle(n)))
		s.relabel(fmt.Sprintf("P%d", n), s.graph(builder.Path(n)))
	}
	s.relabel("Star(17)", s.graph(builder.Star(17)))
	s.relabel("Wheel(12)", s.graph(builder.Wheel(12)))
	s.relabel("Grid 4x5", s.graph(builder.Grid(4, 5)))
	s.relabel("Ladder 8", s.graph(builder.Ladder(8)))
	s.relabel("Prism 10", s.graph(builder.CircularLadder(10)))
	s.relabel("Friendship 5", s.graph(builder.Friendship(5)))
	s.relabel("Barbell 5,3", s.graph(builder.Barbell(5, 3)))
	s.relabel("Lollipop 6,4", s.graph(builder.Lollipop(6, 4)))

	s.pair("C12 vs P12", s.graph(builder.Cycle(12)), s.graph(builder.Path(12)), no)
	s.pair("Star(17) vs P17", s.graph(builder.Star(17)), s.graph(builder.Path(17)), no)
	s.pair("Wheel(12) vs C12", s.graph(builder.Wheel(12)), s.graph(builder.Cycle(12)), no)
	s.pair("Grid 4x4 vs Ladder 8", s.graph(builder.Grid(4, 4)), s.graph(builder.Ladder(8)), no)

	return s.done()
}

func circulantCases(seed int64) ([]Case, error) {
	s := newCaseSet("circulant", seed)
	for _, c := range []struct {
		n       int
		offsets []int
	}{
		{13, []int{1, 5}},
		{16, []int{1, 3, 7}},
		{20, []int{1, 4, 9}},
		{24, []int{2, 5, 7, 11}},
	} {
		s.relabel(fmt.Sprintf("C%d%v", c.n, c.offsets), s.graph(builder.Circulant(c.n, c.offsets)))
	}
	s.pair("C20[1,3,7] vs C20[7,3,1]",
		s.graph(builder.Circulant(20, []int{1, 3, 7})), s.graph(builder.Circulant(20, []int{7, 3, 1})), yes)
	s.pair("C13[1,3,4] vs C13[1,3,6]",
		s.graph(builder.Circulant(13, []int{1, 3, 4})), s.graph(builder.Circulant(13, []int{1, 3, 6})), nil)
	s.pair("C12[1,2,4] vs C12[1,4,5]",
		s.graph(builder.Circulant(12, []int{1, 2, 4})), s.graph(builder.Circulant(12, []int{1, 4, 5})), nil)
	// multiplier 5 is a unit mod 16, so these are isomorphic.
	s.pair("C16[1,2] vs C16[5,10]",
		s.graph(builder.Circulant(16, []int{1, 2})), s.graph(builder.Circulant(16, []int{5, 10})), yes)

	return s.done()
}

func regularCases(seed int64) ([]Case, error) {
	s := newCaseSet("regular", seed)
	for _, d := range []int{3, 4} {
		for _, n := range []int{20, 40, 60, 80} {
			g := s.graph(builder.RandomRegular(n, d))
			s.relabel(fmt.Sprintf("R(%d,%d) relabel", n, d), g)
			s.pair(fmt.Sprintf("R(%d,%d) independent", n, d), g, s.graph(builder.RandomRegular(n, d)), nil)
		}
	}
	return s.done()
}

func relabelCases(seed int64) ([]Case, error) {
	s := newCaseSet("relabel", seed)
	for _, n := range []int{40, 80, 120, 160} {
		for _, p := range []float64{0.1, 0.3, 0.5, 0.7} {
			g := s.graph(builder.RandomSparse(n, p))
			s.relabel(fmt.Sprintf("G(%d,%.1f) relabel", n, p), g)
		}
		s.pair(fmt.Sprintf("G(%d,0.3) independent", n),
			s.graph(builder.RandomSparse(n, 0.3)), s.graph(builder.RandomSparse(n, 0.3)), nil)
	}
	return s.done()
}

func srgCases(seed int64) ([]Case, error) {
	s := newCaseSet("srg", seed)
	for _, q := range []int{5, 13, 17, 29} {
		s.relabel(fmt.Sprintf("Paley(%d)", q), s.graph(builder.Paley(q)))
	}
	s.relabel("Rook 4x4", s.graph(builder.Rook(4)))
	s.relabel("Shrikhande", s.graph(builder.Shrikhande()))
	s.pair("Rook 4x4 vs Shrikhande", s.graph(builder.Rook(4)), s.graph(builder.Shrikhande()), no)
	// the quadratic residues mod 13 are ±1, ±3, ±4.
	s.pair("Paley(13) vs C13[1,3,4]", s.graph(builder.Paley(13)), s.graph(builder.Circulant(13, []int{1, 3, 4})), yes)
	return s.done()
}

func cfiCases(seed int64) ([]Case, error) {
	s := newCaseSet("cfi", seed)
	bases := []struct {
		name string
		con  builder.Constructor
	}{
		{"K4", builder.Complete(4)},
		{"K3,3", builder.CompleteBipartite(3, 3)},
		{"Q3", builder.Hypercube(3)},
		{"Petersen", builder.Kneser(5, 2)},
	}
	for _, b := range bases {
		base := s.graph(b.con)
		if s.err != nil {
			break
		}
		flips, err := builder.RandomFlips(base, s.rng)
		if err != nil {
			s.err = err
			break
		}
		g1, g2, err := builder.CFIPair(base, flips)
		if err != nil {
			s.err = err
			break
		}
		s.pair("CFI("+b.name+")", g1, g2, nil)
		s.relabel("CFI("+b.name+") relabel", g1)
	}
	return s.done()
}

func miyazakiCases(seed int64) ([]Case, error) {
	s := newCaseSet("miyazaki", seed)
	for n := 4; n <= 20; n += 4 {
		s.relabel(fmt.Sprintf("Miyazaki(%d)", n), s.graph(builder.Miyazaki(n)))
	}
	s.pair("Miyazaki(8) vs Prism 8", s.graph(builder.Miyazaki(8)), s.graph(builder.CircularLadder(8)), no)
	return s.done()
}

func kneserCases(seed int64) ([]Case, error) {
	s := newCaseSet("kneser", seed)
	for _, nk := range [][2]int{{5, 2}, {7, 2}, {7, 3}, {9, 3}} {
		s.relabel(fmt.Sprintf("Kneser(%d,%d)", nk[0], nk[1]), s.graph(builder.Kneser(nk[0], nk[1])))
	}
	for _, nk := range [][2]int{{6, 2}, {7, 3}, {8, 2}} {
		s.relabel(fmt.Sprintf("Johnson(%d,%d)", nk[0], nk[1]), s.graph(builder.Johnson(nk[0], nk[1])))
	}
	s.pair("Kneser(5,2) vs GP(5,2)", s.graph(builder.Kneser(5, 2)), s.graph(builder.GeneralizedPetersen(5, 2)), yes)
	s.pair("Johnson(6,2) vs co-Kneser(6,2)",
		s.graph(builder.Johnson(6, 2)), s.derived(builder.Complement(s.graph(builder.Kneser(6, 2)))), yes)
	s.pair("Kneser(7,2) vs Johnson(7,2)", s.graph(builder.Kneser(7, 2)), s.graph(builder.Johnson(7, 2)), no)
	return s.done()
}

func productCases(seed int64) ([]Case, error) {
	s := newCaseSet("products", seed)
	c4, c5 := s.graph(builder.Cycle(4)), s.graph(builder.Cycle(5))
	p4, p5 := s.graph(builder.Path(4)), s.graph(builder.Path(5))
	k4 := s.graph(builder.Complete(4))
	if s.err != nil {
		return nil, s.err
	}

	s.pair("C4xC5 vs C5xC4",
		s.derived(builder.CartesianProduct(c4, c5)), s.derived(builder.CartesianProduct(c5, c4)), yes)
	s.pair("Torus 4x5 vs C4xC5", s.graph(builder.Torus(4, 5)), s.derived(builder.CartesianProduct(c4, c5)), yes)
	s.pair("Q4 vs C4xC4", s.graph(builder.Hypercube(4)), s.derived(builder.CartesianProduct(c4, c4)), yes)
	s.pair("Rook 4x4 vs K4xK4", s.graph(builder.Rook(4)), s.derived(builder.CartesianProduct(k4, k4)), yes)
	s.pair("C4xP4 vs C4xP5",
		s.derived(builder.CartesianProduct(c4, p4)), s.derived(builder.CartesianProduct(c4, p5)), no)
	for _, d := range []int{3, 4, 5, 6} {
		s.relabel(fmt.Sprintf("Q%d", d), s.graph(builder.Hypercube(d)))
	}
	s.relabel("K3,3", s.graph(builder.CompleteBipartite(3, 3)))
	s.relabel("K4,5", s.graph(builder.CompleteBipartite(4, 5)))
	s.pair("K3,4 vs K4,4", s.graph(builder.CompleteBipartite(3, 4)), s.graph(builder.CompleteBipartite(4, 4)), no)
	return s.done()
}

func treeCases(seed int64) ([]Case, error) {
	s := newCaseSet("trees", seed)
	for n := 8; n <= 20; n += 4 {
		s.relabel(fmt.Sprintf("Tree(%d) relabel", n), s.graph(builder.RandomTree(n)))
		s.pair(fmt.Sprintf("Tree(%d) independent", n),
			s.graph(builder.RandomTree(n)), s.graph(builder.RandomTree(n)), nil)
	}
	return s.done()
}

func transformCases(seed int64) ([]Case, error) {
	s := newCaseSet("transforms", seed)
	line := func(con builder.Constructor) *core.Graph {
		g := s.graph(con)
		if s.err != nil {
			return nil
		}
		return s.derived(builder.LineGraph(g))
	}
	co := func(con builder.Constructor) *core.Graph {
		g := s.graph(con)
		if s.err != nil {
			return nil
		}
		return s.derived(builder.Complement(g))
	}

	s.pair("L(K3) vs L(K1,3)", line(builder.Complete(3)), line(builder.Star(4)), yes)
	s.pair("L(P4) vs L(C4)", line(builder.Path(4)), line(builder.Cycle(4)), no)
	s.pair("L(P5) vs L(P6)", line(builder.Path(5)), line(builder.Path(6)), no)
	s.relabel("L(P6)", line(builder.Path(6)))
	s.relabel("L(C8)", line(builder.Cycle(8)))
	s.relabel("L(K5)", line(builder.Complete(5)))
	// C5 and P4 are self-complementary; C4's complement is 2K2.
	s.pair("C5 vs co-C5", s.graph(builder.Cycle(5)), co(builder.Cycle(5)), yes)
	s.pair("P4 vs co-P4", s.graph(builder.Path(4)), co(builder.Path(4)), yes)
	s.pair("C4 vs co-C4", s.graph(builder.Cycle(4)), co(builder.Cycle(4)), no)
	s.relabel("co-Petersen", co(builder.Kneser(5, 2)))

	// Vertex-deleted cards agree on vertex-transitive graphs only.
	card := func(g *core.Graph, pick func(vs []string) string) *core.Graph {
		if s.err != nil {
			return nil
		}
		return s.derived(builder.DeleteVertex(g, pick(g.Vertices())))
	}
	first := func(vs []string) string { return vs[0] }
	last := func(vs []string) string { return vs[len(vs)-1] }
	petersen := s.graph(builder.Kneser(5, 2))
	s.pair("Petersen-v vs Petersen-w", card(petersen, first), card(petersen, last), yes)
	path := s.graph(builder.Path(6))
	s.pair("P6-end vs P6-inner", card(path, first), card(path, func([]string) string { return "2" }), no)

	// A 2-switch keeps every degree.
	c6 := s.graph(builder.Cycle(6))
	if s.err == nil {
		s.pair("C6 vs 2C3", c6, s.derived(builder.SwitchEdges(c6, "0", "1", "3", "4")), no)
	}
	return s.done()
}

func gpetersenCases(seed int64) ([]Case, error) {
	s := newCaseSet("gpetersen", seed)
	for _, nk := range [][2]int{{8, 3}, {10, 2}, {12, 5}, {14, 3}, {15, 4}} {
		s.relabel(fmt.Sprintf("GP(%d,%d)", nk[0], nk[1]), s.graph(builder.GeneralizedPetersen(nk[0], nk[1])))
	}
	s.pair("GP(10,2) vs GP(10,3)",
		s.graph(builder.GeneralizedPetersen(10, 2)), s.graph(builder.GeneralizedPetersen(10, 3)), no)
	s.pair("GP(12,5) vs GP(12,1)",
		s.graph(builder.GeneralizedPetersen(12, 5)), s.graph(builder.GeneralizedPetersen(12, 1)), nil)
	return s.done()
}
