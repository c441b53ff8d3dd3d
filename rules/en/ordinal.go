package en

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gravwell/entitygrinder/chart"
)

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20, "thirtieth": 30, "fortieth": 40,
	"fiftieth": 50, "last": -1,
}

// OrdinalRules returns the English ordinal rule set: digit-suffix ordinals
// ("3rd", "21st") and spelled-out ordinal words.
func OrdinalRules() []chart.Rule {
	return []chart.Rule{
		{
			Name:    "digit ordinal suffix",
			Kind:    chart.KindOrdinal,
			Pattern: []chart.PatternItem{chart.Rx(`\d+\s*(st|nd|rd|th)`)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				digits := strings.TrimRight(nodes[0].Token.Regex.Text, "stndrhSTNDRH ")
				n, err := strconv.Atoi(digits)
				if err != nil {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindOrdinal, Ordinal: &chart.Ordinal{Value: n}}, true
			},
		},
		{
			Name:    "ordinal word",
			Kind:    chart.KindOrdinal,
			Pattern: []chart.PatternItem{chart.Rx(altPatternInt(ordinalWords))},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				key := normalizeWordKey(nodes[0].Token.Regex.Text)
				n, ok := ordinalWords[key]
				if !ok {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindOrdinal, Ordinal: &chart.Ordinal{Value: n}}, true
			},
		},
	}
}

// altPatternInt joins words into a regex alternation, longest key first: see
// altPattern's comment in numeral.go for why order matters here.
func altPatternInt(words map[string]int) string {
	keys := make([]string, 0, len(words))
	for w := range words {
		keys = append(keys, strings.ReplaceAll(w, " ", `\s+`))
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}
