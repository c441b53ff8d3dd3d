// Package rank scores chart candidates with an offline-trained classifier
// table and selects a non-overlapping subset maximizing total score, per
// spec §4.8.
package rank

import (
	"math"
	"os"

	json "github.com/goccy/go-json"
)

// RuleCounts is one rule name's training tally, as written by
// cmd/train_classifiers (spec §6's classifier file format).
type RuleCounts struct {
	PositiveCount int `json:"positive_count"`
	NegativeCount int `json:"negative_count"`
	Total         int `json:"total"`
}

// Table is a per-(language, dimensions) bucket of rule-name -> log-odds
// scores, loaded from a classifier JSON file. A missing rule name
// receives the neutral prior (spec §4.8's failure semantics).
type Table struct {
	scores map[string]float64
}

// NeutralPrior is returned by Score for any rule name absent from the
// loaded table.
const NeutralPrior = 0.0

// LoadTable reads a classifier file. A missing file is not fatal — Table
// falls back to an empty table whose Score always returns NeutralPrior,
// which in turn makes the ranker fall back to the longest-span,
// earliest-start deterministic choice (spec §4.8).
func LoadTable(path string) (*Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Table{scores: map[string]float64{}}, nil
		}
		return nil, err
	}
	var raw map[string]RuleCounts
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	t := &Table{scores: make(map[string]float64, len(raw))}
	for name, c := range raw {
		t.scores[name] = logOdds(c)
	}
	return t, nil
}

// NewTable builds a Table directly from in-memory counts, scoring each rule
// with the same log-odds as a table loaded from a file.
func NewTable(counts map[string]RuleCounts) *Table {
	t := &Table{scores: make(map[string]float64, len(counts))}
	for name, c := range counts {
		t.scores[name] = logOdds(c)
	}
	return t
}

func logOdds(c RuleCounts) float64 {
	// Laplace-smoothed log-odds: log((pos+1)/(total+2)) - log((neg+1)/(total+2))
	// simplifies to log((pos+1)/(neg+1)).
	return math.Log(float64(c.PositiveCount)+1) - math.Log(float64(c.NegativeCount)+1)
}

// Score returns the rule's log-odds, or NeutralPrior if unseen.
func (t *Table) Score(ruleName string) float64 {
	if t == nil {
		return NeutralPrior
	}
	if s, ok := t.scores[ruleName]; ok {
		return s
	}
	return NeutralPrior
}
