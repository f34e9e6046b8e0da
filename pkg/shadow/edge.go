package shadow

import (
	"github.com/philipparndt/goshade/pkg/geometry"
)

// Segment is a visible piece of an edge in 3D
type Segment struct {
	Start, End geometry.Vector3
}

// Length returns the 3D length of the segment
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Edge is a face boundary segment parameterized by t in [0, 1]. Gaps holds
// the sorted, disjoint, non-degenerate parameter ranges that are still
// visible after the shadows applied so far.
type Edge struct {
	Start, End geometry.Vector3
	Gaps       []geometry.Interval
}

// NewEdge creates an edge with a single full gap
func NewEdge(start, end geometry.Vector3) *Edge {
	e := &Edge{Start: start, End: end}
	e.Reset()
	return e
}

// Reset makes the whole edge visible again
func (e *Edge) Reset() {
	e.Gaps = []geometry.Interval{geometry.UnitInterval()}
}

// PointAt maps a parameter value back to 3D
func (e *Edge) PointAt(t float64) geometry.Vector3 {
	return e.Start.Mul(1 - t).Add(e.End.Mul(t))
}

// IsFullyVisible reports whether no face has shadowed any part of the edge
func (e *Edge) IsFullyVisible() bool {
	return len(e.Gaps) == 1 && e.Gaps[0] == geometry.UnitInterval()
}

// VisibleFraction returns the share of the edge, by parameter, that is visible
func (e *Edge) VisibleFraction() float64 {
	total := 0.0
	for _, gap := range e.Gaps {
		total += gap.Length()
	}
	return total
}

// VisibleSegments converts the gaps to 3D segments
func (e *Edge) VisibleSegments() []Segment {
	segments := make([]Segment, 0, len(e.Gaps))
	for _, gap := range e.Gaps {
		segments = append(segments, Segment{Start: e.PointAt(gap.Start), End: e.PointAt(gap.End)})
	}
	return segments
}

// clipHalfspace returns the part of the edge lying strictly inside the half
// space {p : normal·(p - anchor) < 0}. Points on the boundary count as outside.
func (e *Edge) clipHalfspace(anchor, normal geometry.Vector3) geometry.Interval {
	f0 := normal.Dot(e.Start.Sub(anchor))
	f1 := normal.Dot(e.End.Sub(anchor))

	if f0 >= 0 && f1 >= 0 {
		return geometry.NewInterval(1, 0)
	}
	if f0 < 0 && f1 < 0 {
		return geometry.UnitInterval()
	}

	x := -f0 / (f1 - f0)
	if f0 < 0 {
		return geometry.NewInterval(0, x)
	}
	return geometry.NewInterval(x, 1)
}

// shade computes the parameter range of the edge hidden by face. The second
// result is false when the face casts no shadow on the edge.
func (e *Edge) shade(face *Face) (geometry.Interval, bool) {
	if face.IsParallelToProjection() {
		return geometry.Interval{}, false
	}

	shade := geometry.UnitInterval()
	for k, vertex := range face.Vertices {
		shade = shade.Intersect(e.clipHalfspace(vertex, face.VerticalNormal(k)))
		if shade.IsDegenerate() {
			return geometry.Interval{}, false
		}
	}

	shade = shade.Intersect(e.clipHalfspace(face.Vertices[0], face.SupportingNormal()))
	if shade.IsDegenerate() {
		return geometry.Interval{}, false
	}
	return shade, true
}

// Shadow removes the part of the edge hidden by face from its gaps
func (e *Edge) Shadow(face *Face) {
	shade, ok := e.shade(face)
	if !ok {
		return
	}

	gaps := make([]geometry.Interval, 0, len(e.Gaps)+1)
	for _, gap := range e.Gaps {
		for _, piece := range gap.Subtract(shade) {
			if !piece.IsDegenerate() {
				gaps = append(gaps, piece)
			}
		}
	}
	e.Gaps = gaps
}
