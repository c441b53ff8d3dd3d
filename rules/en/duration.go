package en

import "github.com/gravwell/entitygrinder/chart"

// DurationRules returns English duration rules: "<number> <grain>" and the
// composite residual form "<number> <grain> <number> <grain>" ("1 hour 30
// minutes"), per spec §3's Duration{value,grain} with optional residual.
func DurationRules() []chart.Rule {
	return []chart.Rule{
		{
			Name: "number grain duration",
			Kind: chart.KindDuration,
			Pattern: []chart.PatternItem{
				chart.Dim(chart.KindNumeral),
				chart.Dim(chart.KindTimeGrain),
			},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				n := nodes[0].Token.Numeral
				g := nodes[1].Token.Grain
				if n == nil || g == nil {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindDuration, Duration: &chart.DurationToken{
					Value: int(n.Value), Grain: g.Grain,
				}}, true
			},
		},
		{
			Name: "composite duration with residual",
			Kind: chart.KindDuration,
			Pattern: []chart.PatternItem{
				chart.Dim(chart.KindDuration),
				chart.Dim(chart.KindDuration),
			},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				left, right := nodes[0].Token.Duration, nodes[1].Token.Duration
				if left == nil || right == nil || left.Grain <= right.Grain {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindDuration, Duration: &chart.DurationToken{
					Value: left.Value, Grain: left.Grain, Residual: right,
				}}, true
			},
		},
		{
			Name:    "a/an grain (latent singular duration)",
			Kind:    chart.KindDuration,
			Latent:  true,
			Pattern: []chart.PatternItem{chart.Rx(`an?\s+`), chart.Dim(chart.KindTimeGrain)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				g := nodes[1].Token.Grain
				if g == nil {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindDuration, Duration: &chart.DurationToken{Value: 1, Grain: g.Grain}}, true
			},
		},
	}
}
