// Package es is the Spanish rule corpus. It inherits rules/en's numeral,
// duration, temperature, money, measurement, and text baselines and
// overrides only the locale-specific literals (month/weekday/ordinal
// names, and a handful of relative-time phrasings) per spec §4.3's
// inherited-baseline mechanism.
package es

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/temporal"
)

var dowWords = map[string]int{
	"lunes": 0, "martes": 1, "miércoles": 2, "miercoles": 2,
	"jueves": 3, "viernes": 4, "sábado": 5, "sabado": 5, "domingo": 6,
}

var monthWords = map[string]int{
	"enero": 1, "febrero": 2, "marzo": 3, "abril": 4, "mayo": 5, "junio": 6,
	"julio": 7, "agosto": 8, "septiembre": 9, "setiembre": 9, "octubre": 10,
	"noviembre": 11, "diciembre": 12,
}

var ordinalWords = map[string]int{
	"primero": 1, "primer": 1, "segundo": 2, "tercero": 3, "tercer": 3,
	"cuarto": 4, "quinto": 5, "sexto": 6, "séptimo": 7, "septimo": 7,
	"octavo": 8, "noveno": 9, "décimo": 10, "decimo": 10, "último": -1, "ultimo": -1,
}

// altPattern joins words into a regex alternation, longest key first (e.g.
// "primero" before "primer", "tercero" before "tercer"). The anchored regex
// layer reports the longest match at an offset, so a shorter form never cuts
// short the longer one it's a prefix of.
func altPattern(words map[string]int) string {
	keys := make([]string, 0, len(words))
	for w := range words {
		keys = append(keys, strings.ReplaceAll(w, " ", `\s+`))
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}

func overrideRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "día de la semana",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(altPattern(dowWords))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			dow, ok := dowWords[chart.Normalize(nodes[0].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: temporal.TimeData{
				Form: temporal.TimeForm{Kind: temporal.FormDayOfWeek, DayOfWeek: dow},
			}}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "nombre del mes",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(altPattern(monthWords))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m, ok := monthWords[chart.Normalize(nodes[0].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: temporal.TimeData{
				Form: temporal.TimeForm{Kind: temporal.FormMonth, Month: m},
			}}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "ordinal (palabra)",
		Kind:    chart.KindOrdinal,
		Pattern: []chart.PatternItem{chart.Rx(altPattern(ordinalWords))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			n, ok := ordinalWords[chart.Normalize(nodes[0].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindOrdinal, Ordinal: &chart.Ordinal{Value: n}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "hoy",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`hoy`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: temporal.TimeData{
				Form: temporal.TimeForm{Kind: temporal.FormToday},
			}}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "mañana (tomorrow)",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`mañana`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: temporal.TimeData{
				Form: temporal.TimeForm{Kind: temporal.FormTomorrow},
			}}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "ayer (yesterday)",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`ayer`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: temporal.TimeData{
				Form: temporal.TimeForm{Kind: temporal.FormYesterday},
			}}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "número decimal (coma decimal)",
		Kind:    chart.KindNumeral,
		Pattern: []chart.PatternItem{chart.Rx(`-?\d+,\d+`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			v, err := strconv.ParseFloat(strings.Replace(nodes[0].Token.Regex.Text, ",", ".", 1), 64)
			if err != nil {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindNumeral, Numeral: &chart.Numeral{Value: v}}, true
		},
	})

	return rules
}

// Pack returns the Spanish LanguagePack, inheriting rules/en's baseline and
// layering the Spanish-specific overrides above it.
func Pack() chart.LanguagePack {
	return chart.LanguagePack{Inherits: "en", Rules: overrideRules()}
}
