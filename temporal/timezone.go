package temporal

import (
	"fmt"
	"time"
)

// namedOffsets is a small fixed table of timezone abbreviations recognized
// as literals in rule text (e.g. "3pm PST"). Per SPEC_FULL.md's recorded
// open-question decision, a recognized abbreviation DOES shift the
// resolved instant, it is not metadata-only.
var namedOffsets = map[string]int{
	"UTC": 0, "GMT": 0,
	"EST": -5 * 60, "EDT": -4 * 60,
	"CST": -6 * 60, "CDT": -5 * 60,
	"MST": -7 * 60, "MDT": -6 * 60,
	"PST": -8 * 60, "PDT": -7 * 60,
}

// ResolveOffsetMinutes combines an explicit caller-supplied offset with an
// optional recognized timezone literal carried on TimeData, the literal
// taking precedence when present and known.
func ResolveOffsetMinutes(tz string, callerOffsetMinutes int) int {
	if tz != "" {
		if off, ok := namedOffsets[tz]; ok {
			return off
		}
	}
	return callerOffsetMinutes
}

// FixedLocation builds a *time.Location for a caller-supplied or
// literal-resolved minute offset.
func FixedLocation(offsetMinutes int) *time.Location {
	sign := "+"
	m := offsetMinutes
	if m < 0 {
		sign = "-"
		m = -m
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60)
	return time.FixedZone(name, offsetMinutes*60)
}

// FormatISO8601 renders t in its own location with millisecond precision,
// matching spec §4.5's output shape ("2013-02-13T15:00:00.000-02:00").
func FormatISO8601(t time.Time) string {
	return t.Format("2006-01-02T15:04:05.000-07:00")
}
