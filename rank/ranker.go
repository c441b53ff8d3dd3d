package rank

import "sort"

// Candidate is the minimal shape the ranker needs from a chart node: its
// span, the rule that produced it, and whether it is latent. Select works
// out for itself whether a larger non-latent candidate fully consumes it.
type Candidate struct {
	Start, End int
	RuleName   string
	Latent     bool
	// Opaque lets the caller round-trip its own node/token reference
	// through Select without the ranker needing to know its shape.
	Opaque interface{}
}

// Select discards unwanted latent candidates and returns a maximal-score
// non-overlapping subset via weighted interval scheduling (spec §4.8).
// Ties are broken first by longer span, then by earlier start offset: this
// is implemented as an infinitesimal score nudge so the same DP that
// maximizes total score also respects the tie-break rule without a second
// comparison pass.
func Select(candidates []Candidate, t *Table, withLatent bool) []Candidate {
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Latent && !withLatent && !consumedByNonLatent(c, candidates) {
			continue
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return nil
	}

	type scored struct {
		c     Candidate
		score float64
	}
	maxSpan := 1.0
	for _, c := range kept {
		if l := float64(c.End - c.Start); l > maxSpan {
			maxSpan = l
		}
	}
	ss := make([]scored, len(kept))
	for i, c := range kept {
		base := t.Score(c.RuleName)
		spanBonus := (float64(c.End-c.Start) / maxSpan) * 1e-6
		startPenalty := float64(c.Start) * 1e-9
		ss[i] = scored{c: c, score: base + spanBonus - startPenalty}
	}
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].c.End != ss[j].c.End {
			return ss[i].c.End < ss[j].c.End
		}
		return ss[i].c.Start < ss[j].c.Start
	})

	n := len(ss)
	dp := make([]float64, n+1)
	take := make([]bool, n+1)
	prevCompat := make([]int, n)
	for i := 0; i < n; i++ {
		prevCompat[i] = -1
		for j := i - 1; j >= 0; j-- {
			if ss[j].c.End <= ss[i].c.Start {
				prevCompat[i] = j
				break
			}
		}
	}
	for i := 1; i <= n; i++ {
		withIt := ss[i-1].score
		if prevCompat[i-1] >= 0 {
			withIt += dp[prevCompat[i-1]+1]
		}
		without := dp[i-1]
		if withIt >= without {
			dp[i] = withIt
			take[i] = true
		} else {
			dp[i] = without
			take[i] = false
		}
	}

	var result []Candidate
	i := n
	for i > 0 {
		if take[i] {
			result = append([]Candidate{ss[i-1].c}, result...)
			if prevCompat[i-1] >= 0 {
				i = prevCompat[i-1] + 1
			} else {
				i = 0
			}
		} else {
			i--
		}
	}
	return result
}

func consumedByNonLatent(c Candidate, all []Candidate) bool {
	for _, o := range all {
		if o.Latent {
			continue
		}
		if o.Start <= c.Start && o.End >= c.End && (o.Start != c.Start || o.End != c.End) {
			return true
		}
	}
	return false
}
