package chart

import (
	"testing"

	"golang.org/x/text/language"
)

func numberRule() Rule {
	return Rule{
		Name:    "digits",
		Kind:    KindNumeral,
		Pattern: []PatternItem{Rx(`\d+`)},
		Produce: func(nodes []MatchedNode) (Token, bool) {
			return Token{Kind: KindNumeral, Numeral: &Numeral{Value: 0}}, true
		},
	}
}

func composeRule() Rule {
	return Rule{
		Name: "compose",
		Kind: KindDuration,
		Pattern: []PatternItem{
			Dim(KindNumeral),
			Dim(KindNumeral),
		},
		Produce: func(nodes []MatchedNode) (Token, bool) {
			return Token{Kind: KindDuration, Duration: &DurationToken{Value: 1}}, true
		},
	}
}

func TestRunFindsDirectMatch(t *testing.T) {
	nodes := Run("42", []Rule{numberRule()}, language.English)
	// Run seeds every offset, so "42" yields [0,2) and the suffix match [1,2).
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2: %+v", len(nodes), nodes)
	}
	if nodes[0].Start != 0 || nodes[0].End != 2 {
		t.Errorf("got span [%d,%d), want [0,2)", nodes[0].Start, nodes[0].End)
	}
}

func TestRunDedupesIdenticalSpans(t *testing.T) {
	rules := []Rule{numberRule(), numberRule()}
	nodes := Run("7", rules, language.English)
	if len(nodes) != 1 {
		t.Fatalf("expected dedup to collapse to 1 node, got %d", len(nodes))
	}
}

func TestRunComposesAcrossFixpointPasses(t *testing.T) {
	nodes := Run("1 2", []Rule{numberRule(), composeRule()}, language.English)
	var sawDuration bool
	for _, n := range nodes {
		if n.Token.Kind == KindDuration {
			sawDuration = true
		}
	}
	if !sawDuration {
		t.Fatalf("expected a composed duration node, got %+v", nodes)
	}
}

func TestRegistryInheritance(t *testing.T) {
	base := LanguagePack{Rules: []Rule{numberRule()}}
	child := LanguagePack{Inherits: "base", Rules: nil}
	r, err := NewRegistry(map[string]LanguagePack{"base": base, "child": child})
	if err != nil {
		t.Fatal(err)
	}
	rules, err := r.RulesFor("child", []Kind{KindNumeral})
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 1 {
		t.Fatalf("expected child to inherit 1 rule, got %d", len(rules))
	}
}

func TestRegistryCycleIsRejected(t *testing.T) {
	a := LanguagePack{Inherits: "b"}
	b := LanguagePack{Inherits: "a"}
	_, err := NewRegistry(map[string]LanguagePack{"a": a, "b": b})
	if err == nil {
		t.Fatal("expected a cycle error")
	}
}
