package entity

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func testContext() Context {
	return Context{
		ReferenceTime: time.Date(2013, time.February, 13, 4, 30, 0, 0, time.UTC),
		Locale:        Locale{Lang: language.English},
	}
}

func TestParseRelativeGrainDuration(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("in 3 days", nil, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("got %d entities, want 1: %+v", len(ents), ents)
	}
	if ents[0].Dim != DimTime {
		t.Errorf("got dim %v, want Time", ents[0].Dim)
	}
	tv, ok := ents[0].Value.(TimeValueJSON)
	if !ok {
		t.Fatalf("got value type %T, want TimeValueJSON", ents[0].Value)
	}
	want := "2013-02-16T04:30:00.000+00:00"
	if tv.Value != want {
		t.Errorf("got %q, want %q", tv.Value, want)
	}
}

func TestParseAmountOfMoney(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("$42.50", nil, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("got %d entities, want 1: %+v", len(ents), ents)
	}
	if ents[0].Dim != DimAmountOfMoney {
		t.Errorf("got dim %v, want AmountOfMoney", ents[0].Dim)
	}
	m, ok := ents[0].Value.(MoneyValueJSON)
	if !ok {
		t.Fatalf("got value type %T, want MoneyValueJSON", ents[0].Value)
	}
	if m.Value != 42.5 || m.Unit != "USD" || m.Precision != "exact" {
		t.Errorf("got %+v", m)
	}
}

func TestParseCreditCardNumber(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("4111 1111 1111 1111", nil, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("got %d entities, want 1: %+v", len(ents), ents)
	}
	if ents[0].Dim != DimCreditCardNumber {
		t.Errorf("got dim %v, want CreditCardNumber", ents[0].Dim)
	}
	cc, ok := ents[0].Value.(CreditCardValueJSON)
	if !ok {
		t.Fatalf("got value type %T, want CreditCardValueJSON", ents[0].Value)
	}
	if cc.Value != "4111111111111111" || cc.Issuer != "visa" {
		t.Errorf("got %+v", cc)
	}
}

func TestParseInvalidCreditCardNumberIsRejected(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("4111 1111 1111 1112", nil, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range ents {
		if e.Dim == DimCreditCardNumber {
			t.Fatalf("expected a Luhn-invalid number to never surface as a CreditCardNumber entity, got %+v", e)
		}
	}
}

func TestParseEmail(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("contact me at jane.doe@example.com", nil, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	var found bool
	for _, e := range ents {
		if e.Dim == DimEmail {
			found = true
			if e.Value != "jane.doe@example.com" {
				t.Errorf("got %q", e.Value)
			}
		}
	}
	if !found {
		t.Fatalf("expected an Email entity, got %+v", ents)
	}
}

func TestParseTimeWithTimezoneLiteralShiftsOffset(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("3pm PST", nil, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("got %d entities, want 1: %+v", len(ents), ents)
	}
	if ents[0].Dim != DimTime {
		t.Errorf("got dim %v, want Time", ents[0].Dim)
	}
	tv, ok := ents[0].Value.(TimeValueJSON)
	if !ok {
		t.Fatalf("got value type %T, want TimeValueJSON", ents[0].Value)
	}
	if !strings.HasSuffix(tv.Value, "-08:00") {
		t.Errorf("expected the PST literal to resolve with a -08:00 offset, got %q", tv.Value)
	}
}

func TestParseRespectsRequestedDimensions(t *testing.T) {
	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	ents, err := eng.Parse("$42.50", []DimensionKind{DimEmail}, testContext(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 0 {
		t.Fatalf("expected no entities when AmountOfMoney was not requested, got %+v", ents)
	}
}
