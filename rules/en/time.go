package en

import (
	"sort"
	"strconv"
	"strings"

	"github.com/gravwell/entitygrinder/chart"
	"github.com/gravwell/entitygrinder/temporal"
)

var dowWords = map[string]int{
	"monday": 0, "mon": 0,
	"tuesday": 1, "tue": 1, "tues": 1,
	"wednesday": 2, "wed": 2, "weds": 2,
	"thursday": 3, "thu": 3, "thurs": 3,
	"friday": 4, "fri": 4,
	"saturday": 5, "sat": 5,
	"sunday": 6, "sun": 6,
}

var monthWords = map[string]int{
	"january": 1, "jan": 1,
	"february": 2, "feb": 2,
	"march": 3, "mar": 3,
	"april": 4, "apr": 4,
	"may": 5,
	"june": 6, "jun": 6,
	"july": 7, "jul": 7,
	"august": 8, "aug": 8,
	"september": 9, "sep": 9, "sept": 9,
	"october": 10, "oct": 10,
	"november": 11, "nov": 11,
	"december": 12, "dec": 12,
}

var partOfDayWords = map[string]temporal.PartOfDay{
	"morning":   temporal.Morning,
	"noon":      temporal.Lunch,
	"lunch":     temporal.Lunch,
	"afternoon": temporal.Afternoon,
	"evening":   temporal.Evening,
	"night":     temporal.Night,
	"midnight":  temporal.Night,
}

func timeToken(f temporal.TimeForm) chart.Token {
	return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: temporal.TimeData{Form: f}}}
}

func withLatent(t chart.Token) chart.Token {
	t.Latent = true
	return t
}

func withDirection(t chart.Token, dir temporal.Direction) chart.Token {
	t.Time.Data.Direction = dir
	return t
}

// TimeRules returns the English time rule set: named instants, calendar
// literals, clock times, relative grain offsets, nth-cycle and interval
// composition, and holiday references (spec §3's TimeForm variants).
func TimeRules() []chart.Rule {
	var rules []chart.Rule
	rules = append(rules, namedInstantRules()...)
	rules = append(rules, calendarLiteralRules()...)
	rules = append(rules, clockRules()...)
	rules = append(rules, relativeGrainRules()...)
	rules = append(rules, nthCycleRules()...)
	rules = append(rules, intervalRules()...)
	rules = append(rules, holidayRules()...)
	return rules
}

func namedInstantRules() []chart.Rule {
	named := []struct {
		name    string
		rx      string
		kind    temporal.FormKind
	}{
		{"now", `now`, temporal.FormNow},
		{"today", `today`, temporal.FormToday},
		{"tomorrow", `tomorrow`, temporal.FormTomorrow},
		{"yesterday", `yesterday`, temporal.FormYesterday},
		{"day after tomorrow", `day\s+after\s+tomorrow`, temporal.FormDayAfterTomorrow},
		{"day before yesterday", `day\s+before\s+yesterday`, temporal.FormDayBeforeYesterday},
		{"(the) weekend", `(the\s+)?weekend`, temporal.FormWeekend},
	}
	var rules []chart.Rule
	for _, n := range named {
		n := n
		rules = append(rules, chart.Rule{
			Name:    n.name,
			Kind:    chart.KindTime,
			Pattern: []chart.PatternItem{chart.Rx(n.rx)},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				return timeToken(temporal.TimeForm{Kind: n.kind}), true
			},
		})
	}
	return rules
}

func calendarLiteralRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "day of week",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(altPatternIntWords(dowKeys()))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			dow, ok := dowWords[normalizeWordKey(nodes[0].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormDayOfWeek, DayOfWeek: dow}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "month name",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(altPatternIntWords(monthKeys()))},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			m, ok := monthWords[normalizeWordKey(nodes[0].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormMonth, Month: m}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "the <ordinal> (day of month)",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`the\s+`),
			chart.Dim(chart.KindOrdinal),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			o := nodes[1].Token.Ordinal
			if o == nil || o.Value < 1 || o.Value > 31 {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormDayOfMonth, DayOfMonth: o.Value}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "four digit year",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`\d{4}`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			y, err := strconv.Atoi(nodes[0].Token.Regex.Text)
			if err != nil {
				return chart.Token{}, false
			}
			return withLatent(timeToken(temporal.TimeForm{Kind: temporal.FormYear, Year: y})), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "ISO date yyyy-mm-dd",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`(\d{4})-(\d{2})-(\d{2})`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			if len(g) < 4 {
				return chart.Token{}, false
			}
			y, e1 := strconv.Atoi(g[1])
			m, e2 := strconv.Atoi(g[2])
			d, e3 := strconv.Atoi(g[3])
			if e1 != nil || e2 != nil || e3 != nil {
				return chart.Token{}, false
			}
			yy := y
			return timeToken(temporal.TimeForm{Kind: temporal.FormDateMDY, Month: m, DayOfMonth: d, DateYear: &yy}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "slashed date m/d/yyyy",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`(\d{1,2})/(\d{1,2})/(\d{4})`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			if len(g) < 4 {
				return chart.Token{}, false
			}
			m, e1 := strconv.Atoi(g[1])
			d, e2 := strconv.Atoi(g[2])
			y, e3 := strconv.Atoi(g[3])
			if e1 != nil || e2 != nil || e3 != nil {
				return chart.Token{}, false
			}
			yy := y
			return timeToken(temporal.TimeForm{Kind: temporal.FormDateMDY, Month: m, DayOfMonth: d, DateYear: &yy}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "month <day>, <year>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Pred(func(t chart.Token) bool {
				return t.Kind == chart.KindTime && t.Time.Data.Form.Kind == temporal.FormMonth
			}),
			chart.Dim(chart.KindOrdinal),
			chart.Rx(`,?\s*`),
			chart.Pred(func(t chart.Token) bool {
				return t.Kind == chart.KindTime && t.Time.Data.Form.Kind == temporal.FormYear
			}),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			month := nodes[0].Token.Time.Data.Form.Month
			day := nodes[1].Token.Ordinal
			year := nodes[3].Token.Time.Data.Form.Year
			if day == nil {
				return chart.Token{}, false
			}
			yy := year
			return timeToken(temporal.TimeForm{Kind: temporal.FormDateMDY, Month: month, DayOfMonth: day.Value, DateYear: &yy}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "part of day",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(altPartOfDay())},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			p, ok := partOfDayWords[normalizeWordKey(nodes[0].Token.Regex.Text)]
			if !ok {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormPartOfDay, PartOfDay: p}), true
		},
	})

	return rules
}

func clockRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name:    "hour am/pm (3pm)",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`(\d{1,2})\s*([ap]\.?m\.?)`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			if len(g) < 3 {
				return chart.Token{}, false
			}
			h, err := strconv.Atoi(g[1])
			if err != nil || h < 1 || h > 12 {
				return chart.Token{}, false
			}
			if strings.HasPrefix(strings.ToLower(g[2]), "p") && h != 12 {
				h += 12
			} else if strings.HasPrefix(strings.ToLower(g[2]), "a") && h == 12 {
				h = 0
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormHour, Hour: h}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "bare hour o'clock (3 o'clock)",
		Kind:    chart.KindTime,
		Latent:  true,
		Pattern: []chart.PatternItem{chart.Rx(`(\d{1,2})\s*(o'?clock)?`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			h, err := strconv.Atoi(g[1])
			if err != nil || h < 0 || h > 23 {
				return chart.Token{}, false
			}
			return withLatent(timeToken(temporal.TimeForm{Kind: temporal.FormHour, Hour: h, Is12h: h <= 12})), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "hour:minute (15:00, 3:30)",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`([01]?\d|2[0-3]):([0-5]\d)`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			h, e1 := strconv.Atoi(g[1])
			m, e2 := strconv.Atoi(g[2])
			if e1 != nil || e2 != nil {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormHourMinute, Hour: h, Minute: m, Is12h: h <= 12}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "hour:minute am/pm (3:30pm)",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`(\d{1,2}):([0-5]\d)\s*([ap]\.?m\.?)`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			if len(g) < 4 {
				return chart.Token{}, false
			}
			h, e1 := strconv.Atoi(g[1])
			m, e2 := strconv.Atoi(g[2])
			if e1 != nil || e2 != nil || h < 1 || h > 12 {
				return chart.Token{}, false
			}
			if strings.HasPrefix(strings.ToLower(g[3]), "p") && h != 12 {
				h += 12
			} else if strings.HasPrefix(strings.ToLower(g[3]), "a") && h == 12 {
				h = 0
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormHourMinute, Hour: h, Minute: m}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "hour:minute:second",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`([01]?\d|2[0-3]):([0-5]\d):([0-5]\d)`)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[0].Token.Regex.Groups
			h, e1 := strconv.Atoi(g[1])
			m, e2 := strconv.Atoi(g[2])
			s, e3 := strconv.Atoi(g[3])
			if e1 != nil || e2 != nil || e3 != nil {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormHourMinuteSecond, Hour: h, Minute: m, Sec: s, Is12h: h <= 12}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "<time> <timezone abbreviation> (3pm PST)",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindTime),
			chart.Rx(tzAlt()),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			if nodes[0].Token.Time == nil {
				return chart.Token{}, false
			}
			data := nodes[0].Token.Time.Data
			data.Timezone = strings.ToUpper(nodes[1].Token.Regex.Text)
			return chart.Token{Kind: chart.KindTime, Time: &chart.TimeToken{Data: data}}, true
		},
	})

	return rules
}

// tzWords is the set of timezone abbreviations this rule set recognizes as
// literals; it must match temporal.ResolveOffsetMinutes's table.
var tzWords = []string{"UTC", "GMT", "EST", "EDT", "CST", "CDT", "MST", "MDT", "PST", "PDT"}

func tzAlt() string {
	keys := append([]string(nil), tzWords...)
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}

func relativeGrainRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name: "in <duration>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`in\s+`),
			chart.Dim(chart.KindDuration),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			d := nodes[1].Token.Duration
			if d == nil {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormRelativeGrain, N: d.Value, Grain: d.Grain}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "<duration> ago",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindDuration),
			chart.Rx(`\s+ago`),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			d := nodes[0].Token.Duration
			if d == nil {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormRelativeGrain, N: -d.Value, Grain: d.Grain}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "<duration> from now",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindDuration),
			chart.Rx(`\s+from\s+now`),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			d := nodes[0].Token.Duration
			if d == nil {
				return chart.Token{}, false
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormRelativeGrain, N: d.Value, Grain: d.Grain}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "next <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`next\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return withDirection(nodes[1].Token, temporal.DirectionFuture), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "last <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`last\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return withDirection(nodes[1].Token, temporal.DirectionPast), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "this <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`this\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return nodes[1].Token, true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "next next <time> (far future)",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`next\s+next\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			return withDirection(nodes[1].Token, temporal.DirectionFarFuture), true
		},
	})

	rules = append(rules, chart.Rule{
		Name:    "<grain> offset (this/next/last grain)",
		Kind:    chart.KindTime,
		Pattern: []chart.PatternItem{chart.Rx(`(this|next|last)\s+`), chart.Dim(chart.KindTimeGrain)},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[1].Token.Grain
			if g == nil {
				return chart.Token{}, false
			}
			word := normalizeWordKey(nodes[0].Token.Regex.Text)
			offset := 0
			if word == "next" {
				offset = 1
			} else if word == "last" {
				offset = -1
			}
			return timeToken(temporal.TimeForm{Kind: temporal.FormGrainOffset, Grain: g.Grain, Offset: offset}), true
		},
	})

	return rules
}

func nthCycleRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name: "the <ordinal> <grain> of <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`the\s+`),
			chart.Dim(chart.KindOrdinal),
			chart.Dim(chart.KindTimeGrain),
			chart.Rx(`\s+of\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			o := nodes[1].Token.Ordinal
			g := nodes[2].Token.Grain
			base := nodes[4].Token.Time
			if o == nil || g == nil || base == nil {
				return chart.Token{}, false
			}
			b := base.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormNthGrainOfTime, N: o.Value, Grain: g.Grain, Base: &b}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "the last <grain> of <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`the\s+last\s+`),
			chart.Dim(chart.KindTimeGrain),
			chart.Rx(`\s+of\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			g := nodes[1].Token.Grain
			base := nodes[3].Token.Time
			if g == nil || base == nil {
				return chart.Token{}, false
			}
			b := base.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormLastCycleOfTime, Grain: g.Grain, Base: &b}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "the beginning of <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`the\s+(beginning|start)\s+of\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			target := nodes[1].Token.Time
			if target == nil {
				return chart.Token{}, false
			}
			t := target.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormBeginEnd, Begin: true, Target: &t}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "the end of <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`the\s+end\s+of\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			target := nodes[1].Token.Time
			if target == nil {
				return chart.Token{}, false
			}
			t := target.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormBeginEnd, Begin: false, Target: &t}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "<duration> after <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Dim(chart.KindDuration),
			chart.Rx(`\s+after\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			d := nodes[0].Token.Duration
			base := nodes[2].Token.Time
			if d == nil || base == nil {
				return chart.Token{}, false
			}
			b := base.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormDurationAfter, N: d.Value, Grain: d.Grain, Base: &b}), true
		},
	})

	return rules
}

func intervalRules() []chart.Rule {
	var rules []chart.Rule

	rules = append(rules, chart.Rule{
		Name: "from <time> to <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`from\s+`),
			chart.Dim(chart.KindTime),
			chart.Rx(`\s+(to|until|till)\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			a, b := nodes[1].Token.Time, nodes[3].Token.Time
			if a == nil || b == nil {
				return chart.Token{}, false
			}
			fa, fb := a.Data.Form, b.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormInterval, A: &fa, B: &fb, Inclusive: true}), true
		},
	})

	rules = append(rules, chart.Rule{
		Name: "between <time> and <time>",
		Kind: chart.KindTime,
		Pattern: []chart.PatternItem{
			chart.Rx(`between\s+`),
			chart.Dim(chart.KindTime),
			chart.Rx(`\s+and\s+`),
			chart.Dim(chart.KindTime),
		},
		Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
			a, b := nodes[1].Token.Time, nodes[3].Token.Time
			if a == nil || b == nil {
				return chart.Token{}, false
			}
			fa, fb := a.Data.Form, b.Data.Form
			return timeToken(temporal.TimeForm{Kind: temporal.FormInterval, A: &fa, B: &fb, Inclusive: true}), true
		},
	})

	return rules
}

func holidayRules() []chart.Rule {
	holidayNames := []string{
		"new year's day", "new year's eve", "christmas", "christmas eve",
		"valentine's day", "halloween", "independence day", "veterans day",
		"groundhog day", "easter", "thanksgiving", "labor day", "mother's day",
		"father's day", "martin luther king day", "mlk day", "memorial day",
	}
	var rules []chart.Rule
	for _, name := range holidayNames {
		name := name
		rules = append(rules, chart.Rule{
			Name:    "holiday: " + name,
			Kind:    chart.KindTime,
			Pattern: []chart.PatternItem{chart.Rx(strings.ReplaceAll(strings.ReplaceAll(name, " ", `\s+`), "'", `'?`))},
			Produce: func(nodes []chart.MatchedNode) (chart.Token, bool) {
				return timeToken(temporal.TimeForm{Kind: temporal.FormHoliday, HolidayName: canonicalHolidayName(name)}), true
			},
		})
	}
	return rules
}

func canonicalHolidayName(s string) string {
	switch s {
	case "mlk day":
		return "martin luther king day"
	default:
		return s
	}
}

func dowKeys() map[string]int    { return dowWords }
func monthKeys() map[string]int  { return monthWords }

// altPatternIntWords joins words into a regex alternation, longest key
// first (e.g. "monday" before "mon", "september" before "sep"). The
// anchored regex layer reports the longest match at an offset, so an
// abbreviation never cuts short the full word it prefixes.
func altPatternIntWords(words map[string]int) string {
	keys := make([]string, 0, len(words))
	for w := range words {
		keys = append(keys, strings.ReplaceAll(w, " ", `\s+`))
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}

func altPartOfDay() string {
	keys := make([]string, 0, len(partOfDayWords))
	for w := range partOfDayWords {
		keys = append(keys, strings.ReplaceAll(w, " ", `\s+`))
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })
	return strings.Join(keys, "|")
}
