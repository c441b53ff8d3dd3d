package en

import (
	"github.com/gravwell/entitygrinder/chart"
)

// TemperatureRules returns the English temperature rule set: a bare number
// of degrees (latent unit), and degrees qualified by C/F/K.
func TemperatureRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "<number> degrees (latent)",
		Kind:    chart.KindTemperature,
		Latent:  true,
		Pattern: []chart.PatternItem{chart.Dim(chart.KindNumeral), chart.Rx(`\s*(°|degrees?)`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			n := nodes[0].Token.Numeral
			if n == nil {
				return chart.Token{}, false
			}
			t := chart.Token{Kind: chart.KindTemperature, Temperature: &chart.TemperatureToken{Value: n.Value, Unit: chart.UnitDegree}}
			t.Latent = true
			return t, true
		},
	})

	unitRules := []struct {
		name string
		rx   string
		unit chart.TemperatureUnit
	}{
		{"celsius", `\s*(°\s*c\b|c\b|celsius|centigrade)`, chart.UnitCelsius},
		{"fahrenheit", `\s*(°\s*f\b|f\b|fahrenheit)`, chart.UnitFahrenheit},
		{"kelvin", `\s*(°\s*k\b|k\b|kelvin)`, chart.UnitKelvin},
	}
	for _, u := range unitRules {
		u := u
		rules = append(rules, chart.Rule{
			Name:    "<number> " + u.name,
			Kind:    chart.KindTemperature,
			Pattern: []chart.PatternItem{chart.Dim(chart.KindNumeral), chart.Rx(u.rx)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				n := nodes[0].Token.Numeral
				if n == nil {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindTemperature, Temperature: &chart.TemperatureToken{Value: n.Value, Unit: u.unit}}, true
			},
		})
	}

	rules = append(rules, chart.Rule{
		Name: "between <temp> and <temp>",
		Kind: chart.KindTemperatureInterval,
		Pattern: []chart.PatternItem{
			chart.Rx(`between\s+`),
			chart.Dim(chart.KindTemperature),
			chart.Rx(`\s+and\s+`),
			chart.Dim(chart.KindTemperature),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			a, b := nodes[1].Token.Temperature, nodes[3].Token.Temperature
			if a == nil || b == nil || a.Unit != b.Unit {
				return chart.Token{}, false
			}
			from, to := a.Value, b.Value
			return chart.Token{Kind: chart.KindTemperatureInterval, TemperatureInterval: &chart.TemperatureIntervalToken{
				From: &from, To: &to, Unit: a.Unit, Inclusive: true,
			}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "below/under <temp>",
		Kind:    chart.KindTemperatureInterval,
		Pattern: []chart.PatternItem{chart.Rx(`(below|under)\s+`), chart.Dim(chart.KindTemperature)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			t := nodes[1].Token.Temperature
			if t == nil {
				return chart.Token{}, false
			}
			to := t.Value
			return chart.Token{Kind: chart.KindTemperatureInterval, TemperatureInterval: &chart.TemperatureIntervalToken{
				To: &to, Unit: t.Unit,
			}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "above/over <temp>",
		Kind:    chart.KindTemperatureInterval,
		Pattern: []chart.PatternItem{chart.Rx(`(above|over)\s+`), chart.Dim(chart.KindTemperature)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			t := nodes[1].Token.Temperature
			if t == nil {
				return chart.Token{}, false
			}
			from := t.Value
			return chart.Token{Kind: chart.KindTemperatureInterval, TemperatureInterval: &chart.TemperatureIntervalToken{
				From: &from, Unit: t.Unit,
			}}, true
		},
	})

	return rules
}
