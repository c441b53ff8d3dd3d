package measure

import "testing"

func TestCurrencySymbolLookup(t *testing.T) {
	cases := map[string]string{
		"$": "USD",
		"€": "EUR",
		"£": "GBP",
		"¥": "JPY",
	}
	for symbol, want := range cases {
		got, ok := CurrencySymbols[symbol]
		if !ok {
			t.Errorf("%q: expected a currency mapping", symbol)
			continue
		}
		if got != want {
			t.Errorf("%q: got %q, want %q", symbol, got, want)
		}
	}
}

func TestPrecisionString(t *testing.T) {
	if Exact.String() != "exact" {
		t.Errorf("got %q, want exact", Exact.String())
	}
	if Approximate.String() != "approximate" {
		t.Errorf("got %q, want approximate", Approximate.String())
	}
}
