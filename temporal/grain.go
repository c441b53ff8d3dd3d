// Package temporal implements the symbolic time algebra: Grain, TimeForm,
// TimeData, series generation around a reference instant, and resolution to
// absolute TimeValue instants/intervals. TimeForm values are pure, owned
// recursive trees — there are no back-references, matching spec §9's
// "owned recursion replaces reference graphs."
package temporal

import "time"

// Grain is the ordered temporal resolution of a value and the unit of
// relative offsets. Ordering is total: Second < Minute < ... < Year.
type Grain int

const (
	Second Grain = iota
	Minute
	Hour
	Day
	Week
	Month
	Quarter
	Year
)

func (g Grain) String() string {
	switch g {
	case Second:
		return "second"
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Quarter:
		return "quarter"
	case Year:
		return "year"
	default:
		return "unknown"
	}
}

// ParseGrain maps a grain name, as produced by String, back to a Grain.
func ParseGrain(s string) (Grain, bool) {
	for g := Second; g <= Year; g++ {
		if g.String() == s {
			return g, true
		}
	}
	return 0, false
}

// startOfGrain truncates t to the start of its Grain-g window, in t's own
// location. Week starts on Monday, matching DayOfWeek's Monday=0 convention.
func startOfGrain(t time.Time, g Grain) time.Time {
	switch g {
	case Second:
		return t.Truncate(time.Second)
	case Minute:
		return t.Truncate(time.Minute)
	case Hour:
		return t.Truncate(time.Hour)
	case Day:
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	case Week:
		y, m, d := t.Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
		wd := int(start.Weekday())
		// time.Weekday: Sunday=0 ... convert to Monday=0
		mondayOffset := (wd + 6) % 7
		return start.AddDate(0, 0, -mondayOffset)
	case Month:
		y, m, _ := t.Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	case Quarter:
		y, m, _ := t.Date()
		qStartMonth := time.Month(((int(m)-1)/3)*3 + 1)
		return time.Date(y, qStartMonth, 1, 0, 0, 0, 0, t.Location())
	case Year:
		y, _, _ := t.Date()
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// addGrain adds n grain-g units to t using checked-arithmetic friendly
// calendar operations (time.Time's own AddDate/Add never overflow silently
// within the representable range we enforce in resolve.go).
func addGrain(t time.Time, g Grain, n int) time.Time {
	switch g {
	case Second:
		return t.Add(time.Duration(n) * time.Second)
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return t.AddDate(0, n, 0)
	case Quarter:
		return t.AddDate(0, 3*n, 0)
	case Year:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

func oneGrain(g Grain) time.Duration {
	switch g {
	case Second:
		return time.Second
	case Minute:
		return time.Minute
	case Hour:
		return time.Hour
	case Day:
		return 24 * time.Hour
	case Week:
		return 7 * 24 * time.Hour
	default:
		return 0 // Month/Quarter/Year are calendar-variable; use addGrain instead
	}
}
