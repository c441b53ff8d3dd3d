package rank

import "testing"

func emptyTable() *Table { return NewTable(nil) }

func TestSelectKeepsNonOverlappingCandidates(t *testing.T) {
	cands := []Candidate{
		{Start: 0, End: 3, RuleName: "a"},
		{Start: 3, End: 6, RuleName: "b"},
	}
	got := Select(cands, emptyTable(), false)
	if len(got) != 2 {
		t.Fatalf("got %d candidates, want 2: %+v", len(got), got)
	}
}

func TestSelectPrefersHigherScoringOverlap(t *testing.T) {
	table := NewTable(map[string]RuleCounts{
		"strong": {PositiveCount: 20, NegativeCount: 0, Total: 20},
		"weak":   {PositiveCount: 0, NegativeCount: 20, Total: 20},
	})
	cands := []Candidate{
		{Start: 0, End: 5, RuleName: "strong"},
		{Start: 1, End: 4, RuleName: "weak"},
	}
	got := Select(cands, table, false)
	if len(got) != 1 || got[0].RuleName != "strong" {
		t.Fatalf("got %+v, want only the strong candidate", got)
	}
}

func TestSelectTieBreaksByLongerSpan(t *testing.T) {
	cands := []Candidate{
		{Start: 0, End: 5, RuleName: "r"},
		{Start: 0, End: 3, RuleName: "r"},
	}
	got := Select(cands, emptyTable(), false)
	if len(got) != 1 || got[0].End != 5 {
		t.Fatalf("got %+v, want the longer [0,5) span", got)
	}
}

func TestSelectTieBreaksByEarlierStart(t *testing.T) {
	cands := []Candidate{
		{Start: 0, End: 5, RuleName: "r"},
		{Start: 2, End: 7, RuleName: "r"},
	}
	got := Select(cands, emptyTable(), false)
	if len(got) != 1 || got[0].Start != 0 {
		t.Fatalf("got %+v, want the earlier-starting span", got)
	}
}

func TestSelectDropsUnconsumedLatentWhenLatentNotRequested(t *testing.T) {
	cands := []Candidate{
		{Start: 0, End: 3, RuleName: "latent-only", Latent: true},
	}
	got := Select(cands, emptyTable(), false)
	if len(got) != 0 {
		t.Fatalf("got %+v, want the latent candidate dropped", got)
	}
}

func TestSelectKeepsLatentConsumedByNonLatent(t *testing.T) {
	cands := []Candidate{
		{Start: 0, End: 10, RuleName: "outer"},
		{Start: 2, End: 4, RuleName: "inner-latent", Latent: true},
	}
	got := Select(cands, emptyTable(), false)
	// The latent candidate overlaps the outer one, so only one survives the
	// scheduling pass, but it must not have been dropped by the latent
	// filter before scoring ever ran.
	if len(got) != 1 {
		t.Fatalf("got %+v, want exactly one surviving candidate", got)
	}
}

func TestSelectReturnsNilForEmptyInput(t *testing.T) {
	got := Select(nil, emptyTable(), false)
	if got != nil {
		t.Fatalf("got %+v, want nil", got)
	}
}
