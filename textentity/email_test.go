package textentity

import "testing"

func TestNormalizeEmailBasic(t *testing.T) {
	got, ok := NormalizeEmail("jane.doe", "Example.COM")
	if !ok {
		t.Fatal("expected ok")
	}
	if got != "jane.doe@example.com" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeEmailRejectsNumericLocal(t *testing.T) {
	// "class at 12.00" should never resolve as an email: the local part
	// is purely numeric.
	_, ok := NormalizeEmail("12", "00.5")
	if ok {
		t.Fatal("expected a numeric-looking local part to be rejected")
	}
}

func TestNormalizeEmailRejectsMissingDot(t *testing.T) {
	_, ok := NormalizeEmail("jane", "localhost")
	if ok {
		t.Fatal("expected a domain without a dot to be rejected")
	}
}

func TestSpelledToSymbolic(t *testing.T) {
	got := SpelledToSymbolic("Jane at example dot com")
	if got != "jane@example.com" {
		t.Errorf("got %q", got)
	}
}
