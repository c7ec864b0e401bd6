package bench

import (
	"math"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a group of results.
type Summary struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`

	// Timeouts counts cases whose oracle gave no answer.
	Timeouts int `json:"timeouts"`

	// FalsePositives: gossip matched, oracle said non-isomorphic.
	FalsePositives int `json:"false_positives"`

	// FalseNegatives: gossip rejected an isomorphic pair. Always a bug.
	FalseNegatives int `json:"false_negatives"`

	MeanGossip   time.Duration `json:"mean_gossip_ns"`
	MeanOracle   time.Duration `json:"mean_oracle_ns"`
	MedianGossip time.Duration `json:"median_gossip_ns"`
	MedianOracle time.Duration `json:"median_oracle_ns"`

	// GeoMeanSpeedup is the geometric mean of OracleTime/GossipTime over
	// cases where both ran; 0 when there are none.
	GeoMeanSpeedup float64 `json:"geomean_speedup"`

	// MannWhitneyP is the two-tailed p-value that gossip and oracle timings
	// come from the same distribution; nil when not computable.
	MannWhitneyP *float64 `json:"mann_whitney_p,omitempty"`
}

// AgreementRate is Correct/Total (1 for an empty group).
func (s Summary) AgreementRate() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	var tg, to, speedups []float64
	for _, r := range results {
		if r.Correct {
			s.Correct++
		}
		tg = append(tg, float64(r.GossipTime))
		switch {
		case r.Oracle == nil:
			if r.OracleTime > 0 {
				s.Timeouts++
			}
			continue
		case r.Gossip && !*r.Oracle:
			s.FalsePositives++
		case !r.Gossip && *r.Oracle:
			s.FalseNegatives++
		}
		to = append(to, float64(r.OracleTime))
		if sp := r.Speedup(); sp > 0 {
			speedups = append(speedups, sp)
		}
	}

	s.MeanGossip, s.MedianGossip = center(tg)
	s.MeanOracle, s.MedianOracle = center(to)
	if len(speedups) > 0 {
		s.GeoMeanSpeedup = stat.GeometricMean(speedups, nil)
	}
	if len(tg) > 0 && len(to) > 0 {
		if mw, err := stats.MannWhitneyUTest(tg, to, stats.LocationDiffers); err == nil && !math.IsNaN(mw.P) {
			p := mw.P
			s.MannWhitneyP = &p
		}
	}

	return s
}

// center returns the mean and median of xs as durations.
func center(xs []float64) (mean, median time.Duration) {
	if len(xs) == 0 {
		return 0, 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return time.Duration(stat.Mean(xs, nil)), time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil))
}

// ScalingExponent fits ys ≈ c·xs^a by least squares on log-log data and
// returns a. Non-positive points are dropped; fewer than two usable points
// or a constant x yields ok == false.
func ScalingExponent(xs, ys []float64) (a float64, ok bool) {
	var lx, ly []float64
	for i := range xs {
		if i < len(ys) && xs[i] > 0 && ys[i] > 0 {
			lx = append(lx, math.Log(xs[i]))
			ly = append(ly, math.Log(ys[i]))
		}
	}
	if len(lx) < 2 {
		return 0, false
	}
	_, beta := stat.LinearRegression(lx, ly, nil, false)
	if math.IsNaN(beta) || math.IsInf(beta, 0) {
		return 0, false
	}
	return beta, true
}

// GossipScaling fits gossip time against vertex count.
func GossipScaling(results []Result) (float64, bool) {
	xs := make([]float64, len(results))
	ys := make([]float64, len(results))
	for i, r := range results {
		xs[i] = float64(r.Nodes)
		ys[i] = float64(r.GossipTime)
	}
	return ScalingExponent(xs, ys)
}

// Group splits results by category, keeping first-seen category order.
func Group(results []Result) (order []string, groups map[string][]Result) {
	groups = make(map[string][]Result)
	for _, r := range results {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}
	return order, groups
}

// Failures returns incorrect results sorted by category then name.
func Failures(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if !r.Correct {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}
