// Package entity is the public entry point: Parse takes input text plus a
// Context and Options and returns the winning, non-overlapping Entity list
// (spec §6's external interface), wiring together the chart engine, the
// per-language rule registry, the temporal/measure resolvers, and the rank
// selector.
package entity

import (
	"time"

	"golang.org/x/text/language"
)

// Locale names the language (and optional region) a Parse call runs
// against; it selects both the rule corpus and the locale passed to the
// chart engine's whitespace handling.
type Locale struct {
	Lang   language.Tag
	Region string
}

// Context carries the caller's reference instant and timezone, per spec
// §6's Parse signature.
type Context struct {
	ReferenceTime         time.Time
	Locale                Locale
	TimezoneOffsetMinutes int
}

// Options controls post-selection filtering.
type Options struct {
	WithLatent bool
}
