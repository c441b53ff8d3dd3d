package temporal

import "time"

// TimeObject is the concrete window produced by resolving a TimeForm: a
// window of Grain resolution starting at Start. End is computed lazily by
// EndTime when absent (spec §4.5: "[start, end) ... when end is absent it
// is implied as start + one_grain(G)").
type TimeObject struct {
	Start time.Time
	Grain Grain
	End   *time.Time
}

// EndTime returns the exclusive end of the window.
func (o TimeObject) EndTime() time.Time {
	if o.End != nil {
		return *o.End
	}
	return addGrain(o.Start, o.Grain, 1)
}

// Pair is one (from, to) endpoint pair for interval series.
type Pair struct {
	From, To *TimeObject
}

// TimeValue is the final resolved shape: either a single instant window or
// an interval, each carrying up to three surrounding occurrences per spec
// §3's "values always contains up to three consecutive instances."
type TimeValue struct {
	IsInterval bool

	Single TimeObject
	Values []TimeObject // len in {1,2,3}; surrounding past/current/future

	From, To     *TimeObject // IsInterval
	PairValues   []Pair      // IsInterval; len in {1,2,3}
}

// minYear/maxYear bound the representable calendar range per spec §4.5.
const (
	minYear = -9999
	maxYear = 9999
	// SafeMax bounds series search depth for degenerate queries ("year 999,999").
	SafeMax = 10
)

func yearInRange(y int) bool {
	return y >= minYear && y <= maxYear
}
