package geometry

import (
	"fmt"
	"math"
)

// Interval is a closed range [Start, End] on the real line.
// An interval with Start >= End is degenerate and covers nothing.
type Interval struct {
	Start, End float64
}

// NewInterval creates a new interval
func NewInterval(start, end float64) Interval {
	return Interval{Start: start, End: end}
}

// UnitInterval returns [0, 1], the parameter range of a whole edge
func UnitInterval() Interval {
	return Interval{Start: 0, End: 1}
}

// IsDegenerate reports whether the interval is empty
func (i Interval) IsDegenerate() bool {
	return i.Start >= i.End
}

// Intersect returns the overlap of two intervals. The result may be degenerate.
func (i Interval) Intersect(other Interval) Interval {
	return Interval{
		Start: math.Max(i.Start, other.Start),
		End:   math.Min(i.End, other.End),
	}
}

// Subtract removes other from the interval. It always returns two pieces,
// the part before other and the part after it; either may be degenerate.
func (i Interval) Subtract(other Interval) [2]Interval {
	return [2]Interval{
		{Start: i.Start, End: math.Min(i.End, other.Start)},
		{Start: math.Max(i.Start, other.End), End: i.End},
	}
}

// Length returns End - Start, or 0 for a degenerate interval
func (i Interval) Length() float64 {
	if i.IsDegenerate() {
		return 0
	}
	return i.End - i.Start
}

// String formats the interval as [start, end]
func (i Interval) String() string {
	return fmt.Sprintf("[%g, %g]", i.Start, i.End)
}
