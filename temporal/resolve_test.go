package temporal

import (
	"testing"
	"time"
)

var ref = time.Date(2013, time.February, 13, 4, 30, 0, 0, time.UTC) // a Wednesday

func TestResolveTomorrow(t *testing.T) {
	tv, ok := Resolve(TimeData{Form: TimeForm{Kind: FormTomorrow}}, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	want := time.Date(2013, time.February, 14, 0, 0, 0, 0, time.UTC)
	if !tv.Single.Start.Equal(want) {
		t.Errorf("got %v, want %v", tv.Single.Start, want)
	}
	if tv.Single.Grain != Day {
		t.Errorf("got grain %v, want Day", tv.Single.Grain)
	}
}

func TestResolveDayOfWeekFuture(t *testing.T) {
	// Wednesday 2013-02-13; "Friday" should land on 2013-02-15.
	tv, ok := Resolve(TimeData{Form: TimeForm{Kind: FormDayOfWeek, DayOfWeek: 4}}, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	want := time.Date(2013, time.February, 15, 0, 0, 0, 0, time.UTC)
	if !tv.Single.Start.Equal(want) {
		t.Errorf("got %v, want %v", tv.Single.Start, want)
	}
}

func TestResolveHourPM(t *testing.T) {
	tv, ok := Resolve(TimeData{Form: TimeForm{Kind: FormHour, Hour: 15}}, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	want := time.Date(2013, time.February, 13, 15, 0, 0, 0, time.UTC)
	if !tv.Single.Start.Equal(want) {
		t.Errorf("got %v, want %v", tv.Single.Start, want)
	}
}

func TestResolveInvalidCalendarDate(t *testing.T) {
	// February 30th never occurs; resolution must report ok=false rather
	// than silently normalizing into March.
	feb := 2
	_, ok := Resolve(TimeData{Form: TimeForm{Kind: FormDateMDY, Month: feb, DayOfMonth: 30}}, ref)
	if ok {
		t.Fatal("expected Feb 30 to fail to resolve")
	}
}

func TestResolveYearOutOfRange(t *testing.T) {
	_, ok := Resolve(TimeData{Form: TimeForm{Kind: FormYear, Year: 999999}}, ref)
	if ok {
		t.Fatal("expected an out-of-range year to fail to resolve")
	}
}

func TestResolveRelativeGrainOutOfRange(t *testing.T) {
	// "in 9999999999999999 days" must yield no Time entity rather than an
	// overflowed/wrapped instant.
	_, ok := Resolve(TimeData{Form: TimeForm{Kind: FormRelativeGrain, Grain: Day, N: 9999999999999999}}, ref)
	if ok {
		t.Fatal("expected an out-of-range relative grain offset to fail to resolve")
	}
}

func TestResolveGrainOffsetOutOfRange(t *testing.T) {
	_, ok := Resolve(TimeData{Form: TimeForm{Kind: FormGrainOffset, Grain: Year, Offset: 999999999}}, ref)
	if ok {
		t.Fatal("expected an out-of-range grain offset to fail to resolve")
	}
}

func TestResolveNthGrainOutOfRange(t *testing.T) {
	_, ok := Resolve(TimeData{Form: TimeForm{Kind: FormNthGrain, Grain: Year, N: 999999999}}, ref)
	if ok {
		t.Fatal("expected an out-of-range NthGrain offset to fail to resolve")
	}
}

func TestResolveDurationAfterOutOfRange(t *testing.T) {
	base := TimeForm{Kind: FormToday}
	_, ok := Resolve(TimeData{Form: TimeForm{Kind: FormDurationAfter, Base: &base, Grain: Year, N: 999999999}}, ref)
	if ok {
		t.Fatal("expected an out-of-range duration-after offset to fail to resolve")
	}
}

func TestResolveInterval(t *testing.T) {
	a := TimeForm{Kind: FormHour, Hour: 15}
	b := TimeForm{Kind: FormHour, Hour: 17}
	tv, ok := Resolve(TimeData{Form: TimeForm{Kind: FormInterval, A: &a, B: &b, Inclusive: true}}, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	if !tv.IsInterval {
		t.Fatal("expected an interval result")
	}
	if tv.From == nil || tv.To == nil {
		t.Fatal("expected both endpoints to resolve")
	}
	if tv.From.Start.After(tv.To.Start) {
		t.Errorf("from %v is after to %v", tv.From.Start, tv.To.Start)
	}
}

func TestResolveLastWeekday(t *testing.T) {
	tv, ok := Resolve(TimeData{
		Form:      TimeForm{Kind: FormDayOfWeek, DayOfWeek: 4},
		Direction: DirectionPast,
	}, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	// Wednesday 2013-02-13, the most recent past Friday is 2013-02-08.
	want := time.Date(2013, time.February, 8, 0, 0, 0, 0, time.UTC)
	if !tv.Single.Start.Equal(want) {
		t.Errorf("got %v, want %v", tv.Single.Start, want)
	}
}

func TestResolveHoliday(t *testing.T) {
	tv, ok := Resolve(TimeData{Form: TimeForm{Kind: FormHoliday, HolidayName: "christmas"}}, ref)
	if !ok {
		t.Fatal("expected ok")
	}
	want := time.Date(2013, time.December, 25, 0, 0, 0, 0, time.UTC)
	if !tv.Single.Start.Equal(want) {
		t.Errorf("got %v, want %v", tv.Single.Start, want)
	}
}
