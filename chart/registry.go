package chart

import "fmt"

// LanguagePack is one language's contribution to the registry: its own
// rules plus the name of a language it inherits a baseline from (spec
// §4.3: "many languages layer on top of the English baseline for
// numerals"). Inherits is "" for a baseline language.
type LanguagePack struct {
	Inherits string
	Rules    []Rule
}

// Registry maps (language, Kind) to an ordered rule list, with inheritance
// already flattened at construction time. Once built it is immutable and
// safe for concurrent use across goroutines (spec §5).
type Registry struct {
	byLang map[string]map[Kind][]Rule
}

// NewRegistry flattens each language's inheritance chain and returns an
// immutable Registry. A cyclic or missing Inherits reference is a
// configuration error, fatal at construction (spec §7).
func NewRegistry(langs map[string]LanguagePack) (*Registry, error) {
	r := &Registry{byLang: make(map[string]map[Kind][]Rule, len(langs))}
	for name := range langs {
		rules, err := flatten(langs, name, map[string]bool{})
		if err != nil {
			return nil, err
		}
		byKind := make(map[Kind][]Rule)
		for _, rule := range rules {
			byKind[rule.Kind] = append(byKind[rule.Kind], rule)
		}
		r.byLang[name] = byKind
	}
	return r, nil
}

func flatten(langs map[string]LanguagePack, name string, visiting map[string]bool) ([]Rule, error) {
	pack, ok := langs[name]
	if !ok {
		return nil, fmt.Errorf("chart: unknown language %q", name)
	}
	if visiting[name] {
		return nil, fmt.Errorf("chart: cyclic language inheritance at %q", name)
	}
	visiting[name] = true

	var out []Rule
	if pack.Inherits != "" {
		base, err := flatten(langs, pack.Inherits, visiting)
		if err != nil {
			return nil, err
		}
		out = append(out, base...)
	}
	out = append(out, pack.Rules...)
	return out, nil
}

// RulesFor returns the union of rule sets for the requested Kinds in the
// given language. An empty kinds set (len==0) is the caller's signal to
// request every supported kind (spec §6); RulesFor itself always takes an
// explicit set — the Parse entry point expands "all kinds" before calling in.
func (r *Registry) RulesFor(lang string, kinds []Kind) ([]Rule, error) {
	byKind, ok := r.byLang[lang]
	if !ok {
		return nil, fmt.Errorf("chart: unknown language %q", lang)
	}
	var out []Rule
	for _, k := range kinds {
		out = append(out, byKind[k]...)
	}
	return out, nil
}

// Languages lists the registered language identifiers.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.byLang))
	for l := range r.byLang {
		out = append(out, l)
	}
	return out
}
