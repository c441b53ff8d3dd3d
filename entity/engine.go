package entity

import (
	"fmt"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/rank"
	"github.com/gravwell/entitygrinder/rules/en"
	"github.com/gravwell/entitygrinder/rules/es"
)

// Engine is the immutable, concurrency-safe parsing engine: a flattened
// rule registry plus one classifier Table per language bucket (spec §5's
// "safe for concurrent use across goroutines" applies equally here since
// neither the registry nor a loaded Table is ever mutated after construction).
type Engine struct {
	registry *chart.Registry
	tables   map[string]*rank.Table
}

// NewEngine builds the registry from every language pack this repository
// ships. A cyclic or unknown Inherits reference is a configuration error,
// fatal at construction (spec §7).
func NewEngine() (*Engine, error) {
	registry, err := chart.NewRegistry(map[string]chart.LanguagePack{
		"en": en.Pack(),
		"es": es.Pack(),
	})
	if err != nil {
		return nil, fmt.Errorf("entity: building registry: %w", err)
	}
	return &Engine{registry: registry, tables: make(map[string]*rank.Table)}, nil
}

// LoadClassifier attaches a trained classifier Table to a language bucket.
// An absent file is not an error (rank.LoadTable falls back to the neutral
// prior); an unreadable or malformed file is (spec §7's configuration error).
func (e *Engine) LoadClassifier(lang, path string) error {
	t, err := rank.LoadTable(path)
	if err != nil {
		return fmt.Errorf("entity: loading classifier for %q: %w", lang, err)
	}
	e.tables[lang] = t
	return nil
}

// Languages lists the languages this Engine can parse.
func (e *Engine) Languages() []string {
	return e.registry.Languages()
}

func dimsOrAll(dims []DimensionKind) []DimensionKind {
	if len(dims) == 0 {
		return AllDimensions
	}
	return dims
}

func baseLang(l Locale) string {
	base, conf := l.Lang.Base()
	if conf == 0 { // confidence.No
		return "en"
	}
	return base.String()
}
