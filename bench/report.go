package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Report is a serializable record of one bench run.
type Report struct {
	ID       string             `json:"id"`
	Created  time.Time          `json:"created"`
	Seed     int64              `json:"seed"`
	Sentinel string             `json:"sentinel"`
	Counter  string             `json:"counter"`
	Families []string           `json:"families"`
	Total    Summary            `json:"total"`
	Groups   map[string]Summary `json:"groups"`
	Scaling  *float64           `json:"scaling_exponent,omitempty"`
	Results  []Result           `json:"results"`
}

// NewReport summarizes results into a Report with a fresh ID.
func NewReport(results []Result, seed int64, sentinel, counter string, families []string) *Report {
	order, groups := Group(results)
	r := &Report{
		ID:       uuid.NewString(),
		Created:  time.Now().UTC(),
		Seed:     seed,
		Sentinel: sentinel,
		Counter:  counter,
		Families: families,
		Total:    Summarize(results),
		Groups:   make(map[string]Summary, len(order)),
		Results:  results,
	}
	for _, cat := range order {
		r.Groups[cat] = Summarize(groups[cat])
	}
	if a, ok := GossipScaling(results); ok {
		r.Scaling = &a
	}
	return r
}

// WriteJSON encodes r as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("bench: encode report: %w", err)
	}
	return nil
}

// ReadReport decodes a Report written by WriteJSON.
func ReadReport(rd io.Reader) (*Report, error) {
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, fmt.Errorf("bench: decode report: %w", err)
	}
	return &r, nil
}
