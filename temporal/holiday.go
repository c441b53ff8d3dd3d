package temporal

import "time"

// holidayFunc computes the date of a named holiday in a given year. A
// holiday with no entry in holidayTable, or whose computation declines to
// answer (lunisolar/Islamic, per SPEC_FULL.md's recorded decision), yields
// no occurrence rather than a guess.
type holidayFunc func(year int) (time.Month, int, bool)

var holidayTable = map[string]holidayFunc{
	"new year's day":    fixedMDY(time.January, 1),
	"new years day":     fixedMDY(time.January, 1),
	"christmas":         fixedMDY(time.December, 25),
	"christmas day":     fixedMDY(time.December, 25),
	"christmas eve":     fixedMDY(time.December, 24),
	"new year's eve":    fixedMDY(time.December, 31),
	"valentine's day":   fixedMDY(time.February, 14),
	"valentines day":    fixedMDY(time.February, 14),
	"halloween":         fixedMDY(time.October, 31),
	"independence day":  fixedMDY(time.July, 4),
	"veterans day":      fixedMDY(time.November, 11),
	"groundhog day":     fixedMDY(time.February, 2),
	"easter":            easterSunday,
	"thanksgiving":      nthWeekdayOfMonth(time.November, time.Thursday, 4),
	"labor day":         nthWeekdayOfMonth(time.September, time.Monday, 1),
	"memorial day":      lastWeekdayOfMonth(time.May, time.Monday),
	"mother's day":      nthWeekdayOfMonth(time.May, time.Sunday, 2),
	"mothers day":       nthWeekdayOfMonth(time.May, time.Sunday, 2),
	"father's day":      nthWeekdayOfMonth(time.June, time.Sunday, 3),
	"fathers day":       nthWeekdayOfMonth(time.June, time.Sunday, 3),
	"mlk day":           nthWeekdayOfMonth(time.January, time.Monday, 3),
	"martin luther king day": nthWeekdayOfMonth(time.January, time.Monday, 3),
	// Lunisolar and Islamic holidays (Eid al-Fitr, Eid al-Adha, Lunar New
	// Year, Diwali, ...) are intentionally unresolved: their computation
	// needs an external lunar/Hijri calendar table this repo does not
	// carry. Per SPEC_FULL.md they resolve to no occurrence rather than a
	// guessed Gregorian date.
}

func fixedMDY(m time.Month, d int) holidayFunc {
	return func(year int) (time.Month, int, bool) { return m, d, true }
}

func nthWeekdayOfMonth(m time.Month, wd time.Weekday, n int) holidayFunc {
	return func(year int) (time.Month, int, bool) {
		if !yearInRange(year) {
			return 0, 0, false
		}
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		offset := (int(wd) - int(first.Weekday()) + 7) % 7
		day := 1 + offset + 7*(n-1)
		if day > daysInMonth(year, m) {
			return 0, 0, false
		}
		return m, day, true
	}
}

func lastWeekdayOfMonth(m time.Month, wd time.Weekday) holidayFunc {
	return func(year int) (time.Month, int, bool) {
		if !yearInRange(year) {
			return 0, 0, false
		}
		last := daysInMonth(year, m)
		lastDate := time.Date(year, m, last, 0, 0, 0, 0, time.UTC)
		offset := (int(lastDate.Weekday()) - int(wd) + 7) % 7
		return m, last - offset, true
	}
}

// easterSunday computes the Gregorian Easter date via the anonymous
// Gregorian algorithm (Meeus/Jones/Butcher).
func easterSunday(year int) (time.Month, int, bool) {
	if !yearInRange(year) {
		return 0, 0, false
	}
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Month(month), day, true
}

func resolveHoliday(f TimeForm, ref time.Time) (series, Grain, bool) {
	fn, ok := holidayTable[f.HolidayName]
	if !ok {
		return series{}, Day, false
	}
	occAt := func(n int) (TimeObject, bool) {
		var year int
		if f.HolidayYear != nil {
			year = *f.HolidayYear
		} else {
			year = ref.Year() + n
		}
		if f.HolidayYear != nil && n != 0 {
			return TimeObject{}, false
		}
		m, d, ok := fn(year)
		if !ok {
			return TimeObject{}, false
		}
		return windowAt(time.Date(year, m, d, 0, 0, 0, 0, ref.Location()), Day), true
	}
	s, ok := cycleOccurrences(ref, occAt)
	return s, Day, ok
}
