package textentity

import "testing"

func TestLuhnValid(t *testing.T) {
	if !Luhn("4111111111111111") {
		t.Error("expected a known-valid Visa test number to pass Luhn")
	}
}

func TestLuhnInvalid(t *testing.T) {
	if Luhn("4111111111111112") {
		t.Error("expected a corrupted test number to fail Luhn")
	}
}

func TestIssuerClassification(t *testing.T) {
	cases := map[string]string{
		"4111111111111111":   "visa",
		"340000000000009":    "amex",
		"5500000000000004":   "mastercard",
		"6011000000000004":   "discover",
		"30000000000004":     "diners",
		"3528000000000007":   "jcb",
		"9999999999999999":   "",
	}
	for digits, want := range cases {
		got := Issuer(digits)
		if got != want {
			t.Errorf("Issuer(%q) = %q, want %q", digits, got, want)
		}
	}
}

func TestNormalizeDigitsStandardGrouping(t *testing.T) {
	got, ok := NormalizeDigits("4111 1111 1111 1111")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "4111111111111111" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeDigitsRejectsNonStandardGrouping(t *testing.T) {
	_, ok := NormalizeDigits("41111111-1111-1111")
	if ok {
		t.Fatal("expected non-standard grouping to be rejected")
	}
}

func TestNormalizeDigitsRejectsWrongLength(t *testing.T) {
	_, ok := NormalizeDigits("123456789012")
	if ok {
		t.Fatal("expected a too-short digit string to be rejected")
	}
}
