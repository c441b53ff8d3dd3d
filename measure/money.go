package measure

// Precision distinguishes an exact amount from one hedged by a word like
// "about" or "approximately" (spec §4.6).
type Precision int

const (
	Exact Precision = iota
	Approximate
)

func (p Precision) String() string {
	if p == Approximate {
		return "approximate"
	}
	return "exact"
}

// Money is the resolved value of an AmountOfMoney entity.
type Money struct {
	Value     float64
	Currency  string
	Precision Precision
}

// CurrencySymbols maps a surface symbol or code to its ISO currency code.
var CurrencySymbols = map[string]string{
	"$":   "USD",
	"usd": "USD",
	"€":   "EUR",
	"eur": "EUR",
	"£":   "GBP",
	"gbp": "GBP",
	"¥":   "JPY",
	"jpy": "JPY",
	"c$":  "CAD",
	"cad": "CAD",
}

// Interval is a generic {from?, to?} numeric interval with implicit
// inclusivity on the lower bound, per spec §4.6.
type Interval struct {
	From, To  *float64
	Inclusive bool
}
