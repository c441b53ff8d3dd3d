package temporal

// FormKind discriminates the TimeForm tagged union (spec §3's "non-exhaustive
// contract" of TimeForm variants).
type FormKind int

const (
	FormNow FormKind = iota
	FormToday
	FormTomorrow
	FormYesterday
	FormDayAfterTomorrow
	FormDayBeforeYesterday
	FormWeekend

	FormDayOfWeek  // 0=Monday..6=Sunday
	FormDayOfMonth // 1..31
	FormMonth      // 1..12
	FormQuarter    // 1..4
	FormSeason     // 0..3
	FormYear
	FormQuarterYear

	FormHour
	FormHourMinute
	FormHourMinuteSecond

	FormDateMDY

	FormPartOfDay

	FormGrainOffset   // {Grain, Offset}
	FormRelativeGrain // {N, Grain}, anchored exactly at T0 (not grain-snapped)

	FormNthGrain         // {N, Grain, Past, Interval}
	FormNthGrainOfTime   // {N, Grain, Base}
	FormNthLastCycleOfTime
	FormNthLastDayOfTime
	FormLastCycleOfTime
	FormLastDOWOfTime

	FormComposed // intersection/refinement of A and B

	FormInterval // {From, To, Inclusive}
	FormBeginEnd // {Begin bool, Target}

	FormDurationAfter // {N, Grain, Base}

	FormHoliday // {Name, Year}

	FormAllGrain    // whole-grain window containing T0
	FormRestOfGrain // from T0 to the end of the current Grain window
)

// PartOfDay names a fixed hour interval.
type PartOfDay int

const (
	Morning PartOfDay = iota
	Lunch
	Afternoon
	Evening
	Night
)

// Direction biases series selection toward the past, the future, or further
// into the future ("far future" qualifiers like "next next week").
type Direction int

const (
	DirectionNone Direction = iota
	DirectionPast
	DirectionFuture
	DirectionFarFuture
)

// OpenDirection marks which side of a BeginEnd degenerate interval is open.
type OpenDirection int

const (
	OpenNone OpenDirection = iota
	OpenBefore
	OpenAfter
)

// TimeForm is the pure, owned-recursive symbolic time expression. Only the
// fields relevant to Kind are populated; Resolve dispatches on Kind.
type TimeForm struct {
	Kind FormKind

	DayOfWeek  int
	DayOfMonth int
	Month      int
	Quarter    int
	Season     int
	Year       int
	QuarterY   int // paired with Year for FormQuarterYear

	Hour     int
	Minute   int
	Sec      int
	Is12h    bool

	DateYear *int // nil = unspecified year for FormDateMDY

	PartOfDay PartOfDay

	Grain  Grain
	Offset int // FormGrainOffset
	N      int // FormRelativeGrain / FormNthGrain / FormNthGrainOfTime / FormDurationAfter

	Past     bool // FormNthGrain
	Interval bool // FormNthGrain

	A, B *TimeForm // FormComposed, FormInterval(From=A,To=B)
	Inclusive bool // FormInterval

	Base *TimeForm // FormNthGrainOfTime, FormLastCycleOfTime, FormLastDOWOfTime,
	                // FormNthLastCycleOfTime, FormNthLastDayOfTime, FormDurationAfter

	Begin  bool      // FormBeginEnd
	Target *TimeForm // FormBeginEnd

	HolidayName string // FormHoliday
	HolidayYear *int   // FormHoliday
}

// TimeData is the full symbolic time expression carried by a chart node,
// per spec §3.
type TimeData struct {
	Form      TimeForm
	Latent    bool
	Direction Direction
	EarlyLate bool
	OpenDir   OpenDirection
	Timezone  string // e.g. "PST"; see SPEC_FULL.md's timezone decision
}

// Digest renders a stable string for chart dedup; it must be total over the
// fields that affect resolution.
func (d TimeData) Digest() string {
	return formDigest(d.Form) + "|" + itoa(int(d.Direction)) + "|" + boolStr(d.EarlyLate) + "|" + itoa(int(d.OpenDir)) + "|" + d.Timezone
}

func formDigest(f TimeForm) string {
	s := itoa(int(f.Kind))
	s += "," + itoa(f.DayOfWeek) + "," + itoa(f.DayOfMonth) + "," + itoa(f.Month) + "," + itoa(f.Quarter) +
		"," + itoa(f.Season) + "," + itoa(f.Year) + "," + itoa(f.QuarterY) +
		"," + itoa(f.Hour) + "," + itoa(f.Minute) + "," + itoa(f.Sec) + "," + boolStr(f.Is12h) +
		"," + itoa(f.N) + "," + boolStr(f.Past) + "," + boolStr(f.Interval) +
		"," + itoa(int(f.Grain)) + "," + itoa(f.Offset) + "," + boolStr(f.Inclusive) +
		"," + boolStr(f.Begin)
	if f.DateYear != nil {
		s += ",y" + itoa(*f.DateYear)
	}
	if f.A != nil {
		s += ",A(" + formDigest(*f.A) + ")"
	}
	if f.B != nil {
		s += ",B(" + formDigest(*f.B) + ")"
	}
	if f.Base != nil {
		s += ",Base(" + formDigest(*f.Base) + ")"
	}
	if f.Target != nil {
		s += ",T(" + formDigest(*f.Target) + ")"
	}
	s += "," + f.HolidayName
	if f.HolidayYear != nil {
		s += ",hy" + itoa(*f.HolidayYear)
	}
	return s
}

func itoa(i int) string {
	// tiny local itoa to avoid importing strconv in a hot digest path twice
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	p := len(buf)
	for i > 0 {
		p--
		buf[p] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		p--
		buf[p] = '-'
	}
	return string(buf[p:])
}

func boolStr(b bool) string {
	if b {
		return "t"
	}
	return "f"
}
