package en

import (
	"sort"
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/measure"
)

var unitWords = map[string]string{
	"mm": "millimetre", "millimetre": "millimetre", "millimeter": "millimetre", "millimetres": "millimetre", "millimeters": "millimetre",
	"cm": "centimetre", "centimetre": "centimetre", "centimeter": "centimetre", "centimetres": "centimetre", "centimeters": "centimetre",
	"m": "metre", "metre": "metre", "meter": "metre", "metres": "metre", "meters": "metre",
	"km": "kilometre", "kilometre": "kilometre", "kilometer": "kilometre", "kilometres": "kilometre", "kilometers": "kilometre",
	"in": "inch", "inch": "inch", "inches": "inch",
	"ft": "foot", "foot": "foot", "feet": "foot",
	"yd": "yard", "yard": "yard", "yards": "yard",
	"mi": "mile", "mile": "mile", "miles": "mile",
	"ml": "millilitre", "millilitre": "millilitre", "milliliter": "millilitre", "millilitres": "millilitre", "milliliters": "millilitre",
	"l": "litre", "litre": "litre", "liter": "litre", "litres": "litre", "liters": "litre",
	"tsp": "teaspoon", "teaspoon": "teaspoon", "teaspoons": "teaspoon",
	"tbsp": "tablespoon", "tablespoon": "tablespoon", "tablespoons": "tablespoon",
	"cup": "cup", "cups": "cup",
	"pint": "pint", "pints": "pint", "pt": "pint",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"gallon": "gallon", "gallons": "gallon", "gal": "gallon",
	"fl oz": "fl-ounce", "fluid ounce": "fl-ounce", "fluid ounces": "fl-ounce",
	"dozen": "dozen", "dozens": "dozen",
	"item": "item", "items": "item",
}

// MeasurementRules returns the English distance/volume/quantity rule set,
// including the composite residual form ("7 feet 10 inches") built on
// measure.ComposeMeasurement's finer-unit invariant.
func MeasurementRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "<number> <unit>",
		Kind:    chart.KindMeasurement,
		Pattern: []chart.PatternItem{chart.Dim(chart.KindNumeral), chart.Rx(altUnitPattern())},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			n := nodes[0].Token.Numeral
			if n == nil {
				return chart.Token{}, false
			}
			canon, ok := unitWords[normalizeWordKey(nodes[1].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindMeasurement, Measurement: &chart.MeasurementToken{Value: n.Value, Unit: chart.MeasurementUnit(canon)}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "composite measurement (7 feet 10 inches)",
		Kind: chart.KindMeasurement,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindMeasurement),
			chart.Dim(chart.KindMeasurement),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			left, right := nodes[0].Token.Measurement, nodes[1].Token.Measurement
			if left == nil || right == nil {
				return chart.Token{}, false
			}
			v, unit, ok := measure.ComposeMeasurement(left.Value, string(left.Unit), right.Value, string(right.Unit))
			if !ok {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindMeasurement, Measurement: &chart.MeasurementToken{Value: v, Unit: chart.MeasurementUnit(unit)}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "between <measurement> and <measurement>",
		Kind: chart.KindMeasurementInterval,
		Pattern: []chart.PatternItem{
			chart.Rx(`between\s+`),
			chart.Dim(chart.KindMeasurement),
			chart.Rx(`\s+and\s+`),
			chart.Dim(chart.KindMeasurement),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			a, b := nodes[1].Token.Measurement, nodes[3].Token.Measurement
			if a == nil || b == nil || a.Unit != b.Unit {
				return chart.Token{}, false
			}
			from, to := a.Value, b.Value
			return chart.Token{Kind: chart.KindMeasurementInterval, MeasurementInterval: &chart.MeasurementIntervalToken{
				From: &from, To: &to, Unit: a.Unit, Inclusive: true,
			}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "at least <measurement>",
		Kind:    chart.KindMeasurementInterval,
		Pattern: []chart.PatternItem{chart.Rx(`(at\s+least|over|more\s+than)\s+`), chart.Dim(chart.KindMeasurement)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m := nodes[1].Token.Measurement
			if m == nil {
				return chart.Token{}, false
			}
			from := m.Value
			return chart.Token{Kind: chart.KindMeasurementInterval, MeasurementInterval: &chart.MeasurementIntervalToken{From: &from, Unit: m.Unit}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "at most <measurement>",
		Kind:    chart.KindMeasurementInterval,
		Pattern: []chart.PatternItem{chart.Rx(`(at\s+most|under|less\s+than)\s+`), chart.Dim(chart.KindMeasurement)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m := nodes[1].Token.Measurement
			if m == nil {
				return chart.Token{}, false
			}
			to := m.Value
			return chart.Token{Kind: chart.KindMeasurementInterval, MeasurementInterval: &chart.MeasurementIntervalToken{To: &to, Unit: m.Unit}}, true
		},
	})

	return rules
}

// altUnitPattern joins unitWords into a regex alternation, longest key first
// (e.g. "meters" before "m", "gallons" before "gal"). The anchored regex
// layer reports the longest match at an offset, so an abbreviation never
// cuts short the full word it prefixes.
func altUnitPattern() string {
	keys := make([]string, 0, len(unitWords))
	for w := range unitWords {
		keys = append(keys, strings.ReplaceAll(w, " ", `\s+`))
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}
