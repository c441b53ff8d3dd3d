package en

import (
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/textentity"
)

// TextRules returns the string-typed rule set: email, URL, phone number,
// and credit-card number, built on the textentity validators (spec §4.7).
func TextRules() []chart.Rule {
	var rules []chart.Rule
	rules = append(rules, emailRules()...)
	rules = append(rules, urlRules()...)
	rules = append(rules, phoneRules()...)
	rules = append(rules, creditCardRules()...)
	return rules
}

func emailRules() []chart.Rule {
	return []chart.Rule{
		{
			Name:    "email (symbolic @)",
			Kind:    chart.KindEmail,
			Pattern: []chart.PatternItem{chart.Rx(`([\w.+-]+)@([\w-]+(\.[\w-]+)+)`)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				g := nodes[0].Token.Regex.Groups
				if len(g) < 3 {
					return chart.Token{}, false
				}
				addr, ok := textentity.NormalizeEmail(g[1], g[2])
				if !ok {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindEmail, Email: addr}, true
			},
		},
		{
			Name:    "email (spelled out, local at domain dot tld)",
			Kind:    chart.KindEmail,
			Pattern: []chart.PatternItem{chart.Rx(`([\w.+-]+)\s+at\s+([\w-]+(\s+dot\s+[\w-]+)+)`)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				g := nodes[0].Token.Regex.Groups
				if len(g) < 3 {
					return chart.Token{}, false
				}
				domain := textentity.SpelledToSymbolic(g[2])
				addr, ok := textentity.NormalizeEmail(g[1], domain)
				if !ok {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindEmail, Email: addr}, true
			},
		},
	}
}

func urlRules() []chart.Rule {
	return []chart.Rule{
		{
			Name: "url with scheme",
			Kind: chart.KindURL,
			Pattern: []chart.PatternItem{
				chart.Rx(`(https?)://([\w.-]+)(:(\d+))?(/[^\s?#]*)?(\?[^\s#]*)?(#\S*)?`),
			},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				g := nodes[0].Token.Regex.Groups
				if len(g) < 8 {
					return chart.Token{}, false
				}
				value, domain, ok := textentity.NormalizeURL(g[1], g[2], g[4],
					g[5], strings.TrimPrefix(g[6], "?"), strings.TrimPrefix(g[7], "#"))
				if !ok {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindURL, URL: &chart.URLToken{Value: value, Domain: domain}}, true
			},
		},
		{
			Name:    "bare www host",
			Kind:    chart.KindURL,
			Latent:  true,
			Pattern: []chart.PatternItem{chart.Rx(`www\.[\w.-]+\.[a-z]{2,}(/[^\s?#]*)?`)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				host := nodes[0].Token.Regex.Text
				path := ""
				if i := strings.IndexByte(host, '/'); i >= 0 {
					path = host[i:]
					host = host[:i]
				}
				value, domain, ok := textentity.NormalizeURL("", host, "", path, "", "")
				if !ok {
					return chart.Token{}, false
				}
				t := chart.Token{Kind: chart.KindURL, URL: &chart.URLToken{Value: value, Domain: domain}}
				t.Latent = true
				return t, true
			},
		},
	}
}

func phoneRules() []chart.Rule {
	return []chart.Rule{
		{
			Name: "phone number",
			Kind: chart.KindPhoneNumber,
			Pattern: []chart.PatternItem{
				chart.Rx(`(\+\d{1,3}[\s.-]*)?(\(?\d{3}\)?[\s.-]*\d{3}[\s.-]*\d{4})(\s*(ext\.?|x)\s*(\d{1,6}))?`),
			},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				g := nodes[0].Token.Regex.Groups
				if len(g) < 6 {
					return chart.Token{}, false
				}
				norm, ok := textentity.NormalizePhone(g[1], g[2], g[5])
				if !ok {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindPhoneNumber, PhoneRaw: norm}, true
			},
		},
	}
}

func creditCardRules() []chart.Rule {
	return []chart.Rule{
		{
			Name:    "credit card number",
			Kind:    chart.KindCreditCardNumber,
			Pattern: []chart.PatternItem{chart.Rx(`\d[\d -]{11,21}\d`)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				digits, ok := textentity.NormalizeDigits(nodes[0].Token.Regex.Text)
				if !ok || !textentity.Luhn(digits) {
					return chart.Token{}, false
				}
				return chart.Token{Kind: chart.KindCreditCardNumber, CreditCard: &chart.CreditCardToken{
					Value: digits, Issuer: textentity.Issuer(digits),
				}}, true
			},
		},
	}
}
