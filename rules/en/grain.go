package en

import (
	"sort"
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/temporal"
)

var grainWords = map[string]temporal.Grain{
	"second": temporal.Second, "seconds": temporal.Second, "sec": temporal.Second, "secs": temporal.Second,
	"minute": temporal.Minute, "minutes": temporal.Minute, "min": temporal.Minute, "mins": temporal.Minute,
	"hour": temporal.Hour, "hours": temporal.Hour, "hr": temporal.Hour, "hrs": temporal.Hour,
	"day": temporal.Day, "days": temporal.Day,
	"week": temporal.Week, "weeks": temporal.Week,
	"month": temporal.Month, "months": temporal.Month,
	"quarter": temporal.Quarter, "quarters": temporal.Quarter,
	"year": temporal.Year, "years": temporal.Year, "yr": temporal.Year, "yrs": temporal.Year,
}

// TimeGrainRules returns the bare time-grain literal rule set ("day",
// "week", ...), used both as a standalone TimeGrain entity and as a
// building block consumed by duration and time rules.
func TimeGrainRules() []chart.Rule {
	return []chart.Rule{
		{
			Name:    "grain word",
			Kind:    chart.KindTimeGrain,
			Pattern: []chart.PatternItem{chart.Rx(grainAlt())},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				g, ok := grainWords[normalizeWordKey(nodes[0].Token.Regex.Text)]
				if !ok {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindTimeGrain, Grain: &chart.GrainToken{Grain: g}}, true
			},
		},
	}
}

// grainAlt joins grainWords into a regex alternation, longest key first. The
// anchored regex layer reports the longest match at an offset, so "hours"
// matches whole rather than stopping at "hour".
func grainAlt() string {
	keys := make([]string, 0, len(grainWords))
	for w := range grainWords {
		keys = append(keys, w)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}
