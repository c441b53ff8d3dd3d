package temporal

import "time"

// resolveInterval handles the two interval-shaped forms: FormInterval (an
// explicit from/to pair) and FormBeginEnd (an open-ended start-of/end-of
// collapse).
func resolveInterval(d TimeData, ref time.Time) (TimeValue, bool) {
	switch d.Form.Kind {
	case FormInterval:
		return resolveExplicitInterval(d, ref)
	case FormBeginEnd:
		return resolveBeginEnd(d, ref)
	}
	return TimeValue{}, false
}

func resolveExplicitInterval(d TimeData, ref time.Time) (TimeValue, bool) {
	f := d.Form
	if f.A == nil || f.B == nil {
		return TimeValue{}, false
	}
	aSeries, _, aok := resolveSeries(*f.A, ref)
	if !aok {
		return TimeValue{}, false
	}
	aCur, aok := aSeries.selectByDirection(d.Direction)
	if !aok {
		return TimeValue{}, false
	}
	bSeries, _, bok := resolveSeries(*f.B, aCur.Start)
	if !bok {
		return TimeValue{}, false
	}
	bCur, bok := bSeries.selectByDirection(DirectionFuture)
	if !bok {
		return TimeValue{}, false
	}

	buildPair := func(from, to *TimeObject) Pair {
		if from == nil || to == nil {
			return Pair{From: from, To: to}
		}
		end := to.Start
		if f.Inclusive {
			end = to.EndTime()
		}
		fromCopy := *from
		toObj := TimeObject{Start: end, Grain: to.Grain}
		return Pair{From: &fromCopy, To: &toObj}
	}

	primary := buildPair(aCur, bCur)
	pairs := []Pair{primary}
	if aSeries.prev != nil {
		if bs, _, ok := resolveSeries(*f.B, aSeries.prev.Start); ok {
			if bc, ok := bs.selectByDirection(DirectionFuture); ok {
				pairs = append([]Pair{buildPair(aSeries.prev, bc)}, pairs...)
			}
		}
	}
	if aSeries.next != nil {
		if bs, _, ok := resolveSeries(*f.B, aSeries.next.Start); ok {
			if bc, ok := bs.selectByDirection(DirectionFuture); ok {
				pairs = append(pairs, buildPair(aSeries.next, bc))
			}
		}
	}

	return TimeValue{
		IsInterval: true,
		From:       primary.From,
		To:         primary.To,
		PairValues: pairs,
	}, true
}

func resolveBeginEnd(d TimeData, ref time.Time) (TimeValue, bool) {
	f := d.Form
	if f.Target == nil {
		return TimeValue{}, false
	}
	s, _, ok := resolveSeries(*f.Target, ref)
	if !ok {
		return TimeValue{}, false
	}
	cur, ok := s.selectByDirection(d.Direction)
	if !ok {
		return TimeValue{}, false
	}
	var point time.Time
	if f.Begin {
		point = cur.Start
	} else {
		point = cur.EndTime()
	}
	pt := TimeObject{Start: point, Grain: cur.Grain}
	if f.Begin {
		return TimeValue{IsInterval: true, From: &pt, To: nil, PairValues: []Pair{{From: &pt}}}, true
	}
	return TimeValue{IsInterval: true, From: nil, To: &pt, PairValues: []Pair{{To: &pt}}}, true
}

// resolveNthGrain implements spec §4.5's NthGrain{n,g,past,interval}.
func resolveNthGrain(f TimeForm, ref time.Time) (series, Grain, bool) {
	cur := windowAt(ref, f.Grain)
	if !f.Interval {
		offset := f.N
		if f.Past {
			offset = -f.N
		}
		t := addGrain(cur.Start, f.Grain, offset)
		if !yearInRange(t.Year()) {
			return series{}, f.Grain, false
		}
		return singleOf(TimeObject{Start: t, Grain: f.Grain}), f.Grain, true
	}
	if f.Past {
		start := addGrain(cur.Start, f.Grain, -f.N)
		end := cur.Start
		if !yearInRange(start.Year()) {
			return series{}, f.Grain, false
		}
		return singleOf(TimeObject{Start: start, Grain: f.Grain, End: &end}), f.Grain, true
	}
	start := cur.Start
	end := addGrain(cur.Start, f.Grain, f.N)
	if !yearInRange(end.Year()) {
		return series{}, f.Grain, false
	}
	return singleOf(TimeObject{Start: start, Grain: f.Grain, End: &end}), f.Grain, true
}

// resolveNthGrainOfTime implements "the n-th grain-g window inside base's
// window" (1-indexed, n<=0 is invalid and yields no occurrence).
func resolveNthGrainOfTime(f TimeForm, ref time.Time) (series, Grain, bool) {
	if f.Base == nil || f.N <= 0 {
		return series{}, f.Grain, false
	}
	baseSeries, _, ok := resolveSeries(*f.Base, ref)
	if !ok {
		return series{}, f.Grain, false
	}
	base, ok := baseSeries.selectByDirection(DirectionNone)
	if !ok {
		return series{}, f.Grain, false
	}
	idx := 0
	t := startOfGrain(base.Start, f.Grain)
	if t.Before(base.Start) {
		t = addGrain(t, f.Grain, 1)
	}
	end := base.EndTime()
	for i := 0; i < SafeMax*4 && t.Before(end); i++ {
		idx++
		if idx == f.N {
			if !yearInRange(t.Year()) {
				return series{}, f.Grain, false
			}
			return singleOf(TimeObject{Start: t, Grain: f.Grain}), f.Grain, true
		}
		t = addGrain(t, f.Grain, 1)
	}
	return series{}, f.Grain, false
}

// resolveNthLastCycleOfTime: the n-th-from-last grain-g window inside base.
func resolveNthLastCycleOfTime(f TimeForm, ref time.Time) (series, Grain, bool) {
	if f.Base == nil || f.N <= 0 {
		return series{}, f.Grain, false
	}
	baseSeries, _, ok := resolveSeries(*f.Base, ref)
	if !ok {
		return series{}, f.Grain, false
	}
	base, ok := baseSeries.selectByDirection(DirectionNone)
	if !ok {
		return series{}, f.Grain, false
	}
	t := startOfGrain(base.EndTime(), f.Grain)
	if !t.Before(base.EndTime()) {
		t = addGrain(t, f.Grain, -1)
	}
	idx := 0
	for i := 0; i < SafeMax*4 && !t.Before(base.Start); i++ {
		idx++
		if idx == f.N {
			if !yearInRange(t.Year()) {
				return series{}, f.Grain, false
			}
			return singleOf(TimeObject{Start: t, Grain: f.Grain}), f.Grain, true
		}
		t = addGrain(t, f.Grain, -1)
	}
	return series{}, f.Grain, false
}

// resolveNthLastDayOfTime: the n-th-from-last day inside base's window.
func resolveNthLastDayOfTime(f TimeForm, ref time.Time) (series, Grain, bool) {
	ff := f
	ff.Grain = Day
	return resolveNthLastCycleOfTime(ff, ref)
}

func resolveLastCycleOfTime(f TimeForm, ref time.Time) (series, Grain, bool) {
	ff := f
	ff.N = 1
	return resolveNthLastCycleOfTime(ff, ref)
}

// resolveLastDOWOfTime: the last occurrence of the given weekday inside
// base's window.
func resolveLastDOWOfTime(f TimeForm, ref time.Time) (series, Grain, bool) {
	if f.Base == nil {
		return series{}, Day, false
	}
	baseSeries, _, ok := resolveSeries(*f.Base, ref)
	if !ok {
		return series{}, Day, false
	}
	base, ok := baseSeries.selectByDirection(DirectionNone)
	if !ok {
		return series{}, Day, false
	}
	t := startOfGrain(base.EndTime(), Day)
	if !t.Before(base.EndTime()) {
		t = addGrain(t, Day, -1)
	}
	for i := 0; i < SafeMax*8 && !t.Before(base.Start); i++ {
		if mondayIndex(t.Weekday()) == f.DayOfWeek {
			if !yearInRange(t.Year()) {
				return series{}, Day, false
			}
			return singleOf(TimeObject{Start: t, Grain: Day}), Day, true
		}
		t = addGrain(t, Day, -1)
	}
	return series{}, Day, false
}

func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// resolveComposed intersects A's occurrences with B's, per spec §4.5: "for
// each occurrence window W_a, evaluate b restricted to W_a". The resulting
// grain is the finer of the two.
func resolveComposed(f TimeForm, ref time.Time) (series, Grain, bool) {
	if f.A == nil || f.B == nil {
		return series{}, Second, false
	}
	aSeries, aGrain, ok := resolveSeries(*f.A, ref)
	if !ok {
		return series{}, Second, false
	}
	finer := aGrain
	compose := func(wa *TimeObject) (TimeObject, bool) {
		if wa == nil {
			return TimeObject{}, false
		}
		bSeries, bGrain, ok := resolveSeries(*f.B, wa.Start)
		if !ok {
			return TimeObject{}, false
		}
		b, ok := bSeries.selectByDirection(DirectionFuture)
		if !ok || b.Start.Before(wa.Start) || !b.Start.Before(wa.EndTime()) {
			return TimeObject{}, false
		}
		if !yearInRange(b.Start.Year()) {
			return TimeObject{}, false
		}
		g := finer
		if bGrain < g {
			g = bGrain
		}
		return TimeObject{Start: b.Start, Grain: g, End: b.End}, true
	}

	var s series
	if o, ok := compose(aSeries.cur); ok {
		oc := o
		s.cur = &oc
	}
	if o, ok := compose(aSeries.prev); ok {
		op := o
		s.prev = &op
	}
	if o, ok := compose(aSeries.next); ok {
		on := o
		s.next = &on
	}
	if s.cur == nil {
		return series{}, Second, false
	}
	return s, finer, true
}

// resolveDurationAfter implements base.start + n*one(g), grain g.
func resolveDurationAfter(f TimeForm, ref time.Time) (series, Grain, bool) {
	if f.Base == nil {
		return series{}, f.Grain, false
	}
	baseSeries, _, ok := resolveSeries(*f.Base, ref)
	if !ok {
		return series{}, f.Grain, false
	}
	base, ok := baseSeries.selectByDirection(DirectionNone)
	if !ok {
		return series{}, f.Grain, false
	}
	t := addGrain(base.Start, f.Grain, f.N)
	if !yearInRange(t.Year()) {
		return series{}, f.Grain, false
	}
	return singleOf(TimeObject{Start: t, Grain: f.Grain}), f.Grain, true
}
