package temporal

import "time"

// Resolve turns a TimeData into a TimeValue anchored at ref (already in the
// target location/offset — see entity.Context's timezone handling).
// Resolution is pure: it never mutates TimeData, and resolving the same
// TimeData against the same ref twice yields an identical TimeValue.
func Resolve(d TimeData, ref time.Time) (TimeValue, bool) {
	if d.Form.Kind == FormInterval || d.Form.Kind == FormBeginEnd {
		return resolveInterval(d, ref)
	}
	s, _, ok := resolveSeries(d.Form, ref)
	if !ok {
		return TimeValue{}, false
	}
	primary, ok := s.selectByDirection(d.Direction)
	if !ok {
		return TimeValue{}, false
	}
	return TimeValue{Single: *primary, Values: valuesOrSelf(s, *primary)}, true
}

func valuesOrSelf(s series, primary TimeObject) []TimeObject {
	v := s.values()
	if len(v) == 0 {
		return []TimeObject{primary}
	}
	return v
}

// resolveSeries dispatches a point-valued TimeForm to a (series, grain, ok).
func resolveSeries(f TimeForm, ref time.Time) (series, Grain, bool) {
	loc := ref.Location()

	switch f.Kind {
	case FormNow:
		return series{cur: &TimeObject{Start: ref, Grain: Second}}, Second, true

	case FormToday:
		return dailyCycle(ref, 0), Day, true
	case FormTomorrow:
		return singleOf(windowAt(addGrain(startOfGrain(ref, Day), Day, 1), Day)), Day, true
	case FormYesterday:
		return singleOf(windowAt(addGrain(startOfGrain(ref, Day), Day, -1), Day)), Day, true
	case FormDayAfterTomorrow:
		return singleOf(windowAt(addGrain(startOfGrain(ref, Day), Day, 2), Day)), Day, true
	case FormDayBeforeYesterday:
		return singleOf(windowAt(addGrain(startOfGrain(ref, Day), Day, -2), Day)), Day, true

	case FormWeekend:
		occAt := func(n int) (TimeObject, bool) {
			monday := startOfGrain(ref, Week)
			sat := monday.AddDate(0, 0, 5+7*n)
			end := sat.AddDate(0, 0, 2)
			return TimeObject{Start: sat, Grain: Day, End: &end}, true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Day, ok

	case FormDayOfWeek:
		occAt := func(n int) (TimeObject, bool) {
			monday := startOfGrain(ref, Week)
			t := monday.AddDate(0, 0, f.DayOfWeek+7*n)
			return windowAt(t, Day), true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Day, ok

	case FormDayOfMonth:
		occAt := func(n int) (TimeObject, bool) {
			y, m, _ := ref.Date()
			total := int(m) - 1 + n
			year := y + total/12
			month := total%12 + 1
			if month <= 0 {
				month += 12
				year--
			}
			if !validDate(year, time.Month(month), f.DayOfMonth) {
				return TimeObject{}, false
			}
			t := time.Date(year, time.Month(month), f.DayOfMonth, 0, 0, 0, 0, loc)
			return windowAt(t, Day), true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Day, ok

	case FormMonth:
		occAt := func(n int) (TimeObject, bool) {
			year := ref.Year() + n
			if !yearInRange(year) {
				return TimeObject{}, false
			}
			t := time.Date(year, time.Month(f.Month), 1, 0, 0, 0, 0, loc)
			return windowAt(t, Month), true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Month, ok

	case FormQuarter:
		occAt := func(n int) (TimeObject, bool) {
			year := ref.Year() + n
			if !yearInRange(year) {
				return TimeObject{}, false
			}
			startMonth := time.Month((f.Quarter-1)*3 + 1)
			t := time.Date(year, startMonth, 1, 0, 0, 0, 0, loc)
			end := t.AddDate(0, 3, 0)
			return TimeObject{Start: t, Grain: Month, End: &end}, true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Month, ok

	case FormSeason:
		occAt := func(n int) (TimeObject, bool) {
			year := ref.Year() + n
			if !yearInRange(year) {
				return TimeObject{}, false
			}
			startMonth := time.Month(((f.Season+1)*3-2+12-1)%12 + 1) // Winter(0)->Dec
			t := time.Date(year, startMonth, 1, 0, 0, 0, 0, loc)
			if f.Season == 0 {
				t = time.Date(year-1, time.December, 1, 0, 0, 0, 0, loc)
			}
			end := t.AddDate(0, 3, 0)
			return TimeObject{Start: t, Grain: Month, End: &end}, true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Month, ok

	case FormYear:
		if !yearInRange(f.Year) {
			return series{}, Year, false
		}
		t := time.Date(f.Year, time.January, 1, 0, 0, 0, 0, loc)
		return singleOf(windowAt(t, Year)), Year, true

	case FormQuarterYear:
		if !yearInRange(f.Year) {
			return series{}, Month, false
		}
		startMonth := time.Month((f.QuarterY-1)*3 + 1)
		t := time.Date(f.Year, startMonth, 1, 0, 0, 0, 0, loc)
		end := t.AddDate(0, 3, 0)
		return singleOf(TimeObject{Start: t, Grain: Month, End: &end}), Month, true

	case FormHour:
		hours := ambiguousHours(f.Hour, f.Is12h)
		s, ok := dailySlotCycle(ref, hoursToSlots(hours))
		return s, Hour, ok

	case FormHourMinute:
		hours := ambiguousHours(f.Hour, f.Is12h)
		slots := make([]hms, 0, len(hours))
		for _, h := range hours {
			slots = append(slots, hms{h, f.Minute, 0})
		}
		s, ok := dailySlotCycle(ref, slots)
		return s, Minute, ok

	case FormHourMinuteSecond:
		s, ok := dailySlotCycle(ref, []hms{{f.Hour, f.Minute, f.Sec}})
		return s, Second, ok

	case FormDateMDY:
		year := ref.Year()
		if f.DateYear != nil {
			year = *f.DateYear
		}
		if !validDate(year, time.Month(f.Month), f.DayOfMonth) {
			return series{}, Day, false
		}
		t := time.Date(year, time.Month(f.Month), f.DayOfMonth, 0, 0, 0, 0, loc)
		return singleOf(windowAt(t, Day)), Day, true

	case FormPartOfDay:
		h := partOfDayHour(f.PartOfDay)
		endH := partOfDayEndHour(f.PartOfDay)
		occAt := func(n int) (TimeObject, bool) {
			day := startOfGrain(ref, Day).AddDate(0, 0, n)
			start := day.Add(time.Duration(h) * time.Hour)
			end := day.Add(time.Duration(endH) * time.Hour)
			return TimeObject{Start: start, Grain: Hour, End: &end}, true
		}
		s, ok := cycleOccurrences(ref, occAt)
		return s, Hour, ok

	case FormGrainOffset:
		t := addGrain(startOfGrain(ref, f.Grain), f.Grain, f.Offset)
		if !yearInRange(t.Year()) {
			return series{}, f.Grain, false
		}
		return singleOf(windowAt(t, f.Grain)), f.Grain, true

	case FormRelativeGrain:
		// Anchored at T0 exactly, not snapped to the grain boundary.
		t := addGrain(ref, f.Grain, f.N)
		if !yearInRange(t.Year()) {
			return series{}, f.Grain, false
		}
		return singleOf(TimeObject{Start: t, Grain: f.Grain}), f.Grain, true

	case FormNthGrain:
		return resolveNthGrain(f, ref)

	case FormNthGrainOfTime:
		return resolveNthGrainOfTime(f, ref)

	case FormNthLastCycleOfTime:
		return resolveNthLastCycleOfTime(f, ref)

	case FormNthLastDayOfTime:
		return resolveNthLastDayOfTime(f, ref)

	case FormLastCycleOfTime:
		return resolveLastCycleOfTime(f, ref)

	case FormLastDOWOfTime:
		return resolveLastDOWOfTime(f, ref)

	case FormComposed:
		return resolveComposed(f, ref)

	case FormDurationAfter:
		return resolveDurationAfter(f, ref)

	case FormHoliday:
		return resolveHoliday(f, ref)

	case FormAllGrain:
		return singleOf(windowAt(ref, f.Grain)), f.Grain, true

	case FormRestOfGrain:
		end := addGrain(startOfGrain(ref, f.Grain), f.Grain, 1)
		return singleOf(TimeObject{Start: ref, Grain: f.Grain, End: &end}), f.Grain, true
	}
	return series{}, Second, false
}

func singleOf(o TimeObject) series {
	return series{cur: &o}
}

func dailyCycle(ref time.Time, hourOffset int) series {
	occAt := func(n int) (TimeObject, bool) {
		t := addGrain(startOfGrain(ref, Day), Day, n)
		return windowAt(t, Day), true
	}
	s, _ := cycleOccurrences(ref, occAt)
	return s
}

func windowAt(t time.Time, g Grain) TimeObject {
	return TimeObject{Start: startOfGrain(t, g), Grain: g}
}

func validDate(year int, month time.Month, day int) bool {
	if !yearInRange(year) || month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysInMonth(year, month)
}

func daysInMonth(year int, month time.Month) int {
	firstNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	firstThis := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return int(firstNext.Sub(firstThis).Hours() / 24)
}

type hms struct{ H, M, S int }

func hoursToSlots(hours []int) []hms {
	out := make([]hms, 0, len(hours))
	for _, h := range hours {
		out = append(out, hms{h, 0, 0})
	}
	return out
}

// ambiguousHours expands a 1..12 is12h-ambiguous hour into its AM/PM
// candidates; a disambiguated (is12h=false) hour is returned as-is.
func ambiguousHours(h int, is12h bool) []int {
	if !is12h {
		return []int{h % 24}
	}
	base := h % 12
	return []int{base, base + 12}
}

// dailySlotCycle generates a cyclic series over a sorted set of
// hour/minute/second slots repeating once per day.
func dailySlotCycle(ref time.Time, slots []hms) (series, bool) {
	if len(slots) == 0 {
		return series{}, false
	}
	sorted := append([]hms(nil), slots...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && less(sorted[j], sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	n := len(sorted)
	occAt := func(k int) (TimeObject, bool) {
		day := k / n
		slot := k % n
		if slot < 0 {
			slot += n
			day--
		}
		base := startOfGrain(ref, Day).AddDate(0, 0, day)
		t := base.Add(time.Duration(sorted[slot].H)*time.Hour + time.Duration(sorted[slot].M)*time.Minute + time.Duration(sorted[slot].S)*time.Second)
		return TimeObject{Start: t, Grain: Second}, true
	}
	return cycleOccurrences(ref, occAt)
}

func less(a, b hms) bool {
	if a.H != b.H {
		return a.H < b.H
	}
	if a.M != b.M {
		return a.M < b.M
	}
	return a.S < b.S
}

func partOfDayHour(p PartOfDay) int {
	switch p {
	case Morning:
		return 4
	case Lunch:
		return 12
	case Afternoon:
		return 12
	case Evening:
		return 18
	case Night:
		return 21
	}
	return 0
}

func partOfDayEndHour(p PartOfDay) int {
	switch p {
	case Morning:
		return 12
	case Lunch:
		return 14
	case Afternoon:
		return 19
	case Evening:
		return 21
	case Night:
		return 24
	}
	return 24
}
