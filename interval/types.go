// Package interval provides a closed numeric interval [lo, hi] used
// throughout tempograph to describe admissible delays between events.
//
// The domain's notion of "infinity" is HUGE, a large finite sentinel
// that Unbounded uses for both bounds — not IEEE-754 math.Inf. New does
// not check bounds against HUGE. Keeping both bounds finite means any two interval
// endpoints can be added or subtracted without producing NaN, which
// matters once the APSP kernel starts summing edge weights.
package interval

// HUGE stands in for "no bound" in either direction. It is large enough
// that no realistic schedule will reach it by summing finite edge
// weights, and small enough that HUGE+HUGE does not overflow float64.
const HUGE = 1e18

// Interval is a closed range [Lo, Hi]. The zero value is [0, 0].
type Interval struct {
	Lo float64
	Hi float64
}

// New returns the interval [lo, hi] without validating lo <= hi; callers
// that need to reject an inverted interval should call IsValid.
func New(lo, hi float64) Interval {
	return Interval{Lo: lo, Hi: hi}
}

// Unbounded returns [-HUGE, +HUGE], the widest representable interval.
func Unbounded() Interval {
	return Interval{Lo: -HUGE, Hi: HUGE}
}

// Lower returns the interval's lower bound.
func (iv Interval) Lower() float64 {
	return iv.Lo
}

// Upper returns the interval's upper bound.
func (iv Interval) Upper() float64 {
	return iv.Hi
}

// IsValid reports whether Lo <= Hi. An invalid interval signals an
// inconsistent (infeasible) constraint to callers in the schedule
// package.
func (iv Interval) IsValid() bool {
	return iv.Lo <= iv.Hi
}

// Contains reports whether x lies within [Lo, Hi], inclusive.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Union tightens iv against other, returning [max(Lo), min(Hi)]. Despite
// the name carried over from the algorithm this models (taking the
// intersection of two admissible ranges), the semantics are "tighten":
// the result is never wider than either input. See Design Notes in
// spec.md for why the name is kept.
func (iv Interval) Union(other Interval) Interval {
	lo := iv.Lo
	if other.Lo > lo {
		lo = other.Lo
	}
	hi := iv.Hi
	if other.Hi < hi {
		hi = other.Hi
	}

	return Interval{Lo: lo, Hi: hi}
}

// At returns the bound at position i: At(0) is Lo, At(1) is Hi. Any
// other index returns (0, false).
func (iv Interval) At(i int) (float64, bool) {
	switch i {
	case 0:
		return iv.Lo, true
	case 1:
		return iv.Hi, true
	default:
		return 0, false
	}
}

// ToJSON returns the interval in its two-element [lo, hi] wire form.
func (iv Interval) ToJSON() [2]float64 {
	return [2]float64{iv.Lo, iv.Hi}
}

// MarshalJSON implements json.Marshaler, encoding the interval as the
// two-element array [lo, hi] rather than the struct's field names.
func (iv Interval) MarshalJSON() ([]byte, error) {
	return marshalPair(iv.Lo, iv.Hi)
}

// UnmarshalJSON implements json.Unmarshaler, accepting the two-element
// array [lo, hi] form produced by MarshalJSON.
func (iv *Interval) UnmarshalJSON(data []byte) error {
	lo, hi, err := unmarshalPair(data)
	if err != nil {
		return err
	}
	iv.Lo, iv.Hi = lo, hi

	return nil
}
