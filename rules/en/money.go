package en

import (
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/measure"
)

// MoneyRules returns the English amount-of-money rule set: symbol-prefixed
// amounts ("$42.50"), code-suffixed amounts ("42.50 USD"), hedged amounts
// ("about $20"), and intervals ("between $10 and $20", "under $5").
func MoneyRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "symbol <amount>",
		Kind:    chart.KindAmountOfMoney,
		Pattern: []chart.PatternItem{chart.Rx(`[$€£¥]`), chart.Dim(chart.KindNumeral)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			n := nodes[1].Token.Numeral
			if n == nil {
				return chart.Token{}, false
			}
			cur, ok := measure.CurrencySymbols[nodes[0].Token.Regex.Text]
			if !ok {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindAmountOfMoney, Money: &chart.MoneyToken{Value: n.Value, Currency: cur, Precision: chart.PrecisionExact}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "<amount> code (42.50 USD)",
		Kind:    chart.KindAmountOfMoney,
		Pattern: []chart.PatternItem{chart.Dim(chart.KindNumeral), chart.Rx(`\s*(usd|eur|gbp|jpy|cad|dollars?|euros?|pounds?|yen)`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			n := nodes[0].Token.Numeral
			if n == nil {
				return chart.Token{}, false
			}
			word := strings.ToLower(nodes[1].Token.Regex.Groups[1])
			cur, ok := measure.CurrencySymbols[word]
			if !ok {
				cur = englishCurrencyWord(word)
			}
			if cur == "" {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindAmountOfMoney, Money: &chart.MoneyToken{Value: n.Value, Currency: cur, Precision: chart.PrecisionExact}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "about/approximately <amount of money>",
		Kind: chart.KindAmountOfMoney,
		Pattern: []chart.PatternItem{
			chart.Rx(`(about|approximately|around|roughly)\s+`),
			chart.Dim(chart.KindAmountOfMoney),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m := nodes[1].Token.Money
			if m == nil {
				return chart.Token{}, false
			}
			return chart.Token{Kind: chart.KindAmountOfMoney, Money: &chart.MoneyToken{Value: m.Value, Currency: m.Currency, Precision: chart.PrecisionApproximate}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "between <money> and <money>",
		Kind: chart.KindAmountOfMoneyInterval,
		Pattern: []chart.PatternItem{
			chart.Rx(`between\s+`),
			chart.Dim(chart.KindAmountOfMoney),
			chart.Rx(`\s+and\s+`),
			chart.Dim(chart.KindAmountOfMoney),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			a, b := nodes[1].Token.Money, nodes[3].Token.Money
			if a == nil || b == nil || a.Currency != b.Currency {
				return chart.Token{}, false
			}
			from, to := a.Value, b.Value
			return chart.Token{Kind: chart.KindAmountOfMoneyInterval, MoneyInterval: &chart.MoneyIntervalToken{
				From: &from, To: &to, Currency: a.Currency, Inclusive: true,
			}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "under/less than <money>",
		Kind:    chart.KindAmountOfMoneyInterval,
		Pattern: []chart.PatternItem{chart.Rx(`(under|less\s+than|at\s+most)\s+`), chart.Dim(chart.KindAmountOfMoney)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m := nodes[1].Token.Money
			if m == nil {
				return chart.Token{}, false
			}
			to := m.Value
			return chart.Token{Kind: chart.KindAmountOfMoneyInterval, MoneyInterval: &chart.MoneyIntervalToken{To: &to, Currency: m.Currency}}, true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "over/more than <money>",
		Kind:    chart.KindAmountOfMoneyInterval,
		Pattern: []chart.PatternItem{chart.Rx(`(over|more\s+than|at\s+least)\s+`), chart.Dim(chart.KindAmountOfMoney)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m := nodes[1].Token.Money
			if m == nil {
				return chart.Token{}, false
			}
			from := m.Value
			return chart.Token{Kind: chart.KindAmountOfMoneyInterval, MoneyInterval: &chart.MoneyIntervalToken{From: &from, Currency: m.Currency}}, true
		},
	})

	return rules
}

func englishCurrencyWord(w string) string {
	switch {
	case strings.HasPrefix(w, "dollar"):
		return "USD"
	case strings.HasPrefix(w, "euro"):
		return "EUR"
	case strings.HasPrefix(w, "pound"):
		return "GBP"
	case strings.HasPrefix(w, "yen"):
		return "JPY"
	default:
		return ""
	}
}
