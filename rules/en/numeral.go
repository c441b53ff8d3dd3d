// Package en is the English rule corpus: regex literals, predicates, and
// productions consumed by the chart engine through the uniform
// chart.Rule interface (spec §4.3's "rule corpus per language/dimension").
// Other languages (see rules/es) inherit this package's numeral and
// ordinal baseline per spec §4.3.
package en

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/measure"
)

var onesWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"a couple": 2, "a couple of": 2, "a few": 3, "several": 4, "a dozen": 12,
}

var tensWords = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var multiplierWords = map[string]struct {
	value     float64
	magnitude int
}{
	"hundred":  {100, 2},
	"thousand": {1000, 3},
	"million":  {1e6, 6},
	"billion":  {1e9, 9},
}

// altPattern joins words into a regex alternation, longest key first (e.g.
// "a couple of" before "a couple"). The anchored regex layer reports the
// longest match at an offset, so a shorter prefix word never cuts short the
// longer phrase it's a prefix of.
func altPattern(words map[string]float64) string {
	keys := make([]string, 0, len(words))
	for w := range words {
		keys = append(keys, strings.ReplaceAll(w, " ", `\s+`))
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}

// NumeralRules returns the English numeral rule set.
func NumeralRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "integer (digits)",
		Kind:    chart.KindNumeral,
		Pattern: []chart.PatternItem{chart.Rx(`-?\d+(,\d{3})*`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			s := strings.ReplaceAll(nodes[0].Token.Regex.Text, ",", "")
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return chart.Token{}, false
			}
			return numeralToken(v, magnitudeFor(v)), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "decimal number",
		Kind:    chart.KindNumeral,
		Pattern: []chart.PatternItem{chart.Rx(`-?\d+\.\d+`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			v, err := strconv.ParseFloat(nodes[0].Token.Regex.Text, 64)
			if err != nil {
				return chart.Token{}, false
			}
			return numeralToken(v, 0), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "ones word",
		Kind:    chart.KindNumeral,
		Pattern: []chart.PatternItem{chart.Rx(altPattern(onesWords))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			key := normalizeWordKey(nodes[0].Token.Regex.Text)
			v, ok := onesWords[key]
			if !ok {
				return chart.Token{}, false
			}
			return numeralToken(v, 0), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "tens word",
		Kind:    chart.KindNumeral,
		Pattern: []chart.PatternItem{chart.Rx(altPattern(tensWords))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			key := normalizeWordKey(nodes[0].Token.Regex.Text)
			v, ok := tensWords[key]
			if !ok {
				return chart.Token{}, false
			}
			return numeralToken(v, 1), true
		},
	})

	for word, m := range multiplierWords {
		word, m := word, m
		rules = append(rules, chart.Rule{
			Name:    "multiplier word: " + word,
			Kind:    chart.KindNumeral,
			Pattern: []chart.PatternItem{chart.Rx(word)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				return numeralToken(m.value, m.magnitude), true
			},
		})
	}

	rules = append(rules, chart.Rule{
		Name: "composed additive numeral (twenty one)",
		Kind: chart.KindNumeral,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindNumeral),
			chart.Dim(chart.KindNumeral),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			left, right := nodes[0].Token.Numeral, nodes[1].Token.Numeral
			out, ok := measure.ComposeAdditive(
				measure.NumeralComponent{Value: left.Value, Magnitude: left.Magnitude},
				measure.NumeralComponent{Value: right.Value, Magnitude: right.Magnitude},
			)
			if !ok {
				return chart.Token{}, false
			}
			return numeralToken(out.Value, out.Magnitude), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "composed multiplicative numeral (three thousand)",
		Kind: chart.KindNumeral,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindNumeral),
			chart.Dim(chart.KindNumeral),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			left, right := nodes[0].Token.Numeral, nodes[1].Token.Numeral
			out, ok := measure.ComposeMultiplicative(
				measure.NumeralComponent{Value: left.Value, Magnitude: left.Magnitude},
				measure.NumeralComponent{Value: right.Value, Magnitude: right.Magnitude},
			)
			if !ok {
				return chart.Token{}, false
			}
			return numeralToken(out.Value, out.Magnitude), true
		},
	})

	return rules
}

func numeralToken(v float64, magnitude int) chart.Token {
	return chart.Token{Kind: chart.KindNumeral, Numeral: &chart.Numeral{Value: v, Magnitude: magnitude}}
}

func magnitudeFor(v float64) int {
	switch {
	case v >= 1e9:
		return 9
	case v >= 1e6:
		return 6
	case v >= 1000:
		return 3
	case v >= 100:
		return 2
	case v >= 20:
		return 1
	default:
		return 0
	}
}

func normalizeWordKey(s string) string {
	fields := strings.Fields(chart.Normalize(s))
	return strings.Join(fields, " ")
}
