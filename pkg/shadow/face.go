package shadow

import (
	"math"

	"github.com/philipparndt/goshade/pkg/geometry"
)

// collinearTolerance is the relative size below which the cross product of
// the first two face edges is treated as zero
const collinearTolerance = 1e-12

// Face is a planar convex polygon of the polyhedron. Edge k joins vertex k
// to vertex k-1, wrapping around at k = 0.
type Face struct {
	Vertices []geometry.Vector3
	Edges    []*Edge

	projection geometry.Vector3
}

// NewFace creates a face seen along the projection vector
func NewFace(vertices []geometry.Vector3, projection geometry.Vector3) *Face {
	f := &Face{
		Vertices:   vertices,
		Edges:      make([]*Edge, len(vertices)),
		projection: projection,
	}
	for i := range vertices {
		f.Edges[i] = NewEdge(vertices[i], vertices[f.prev(i)])
	}
	return f
}

func (f *Face) prev(k int) int {
	if k == 0 {
		return len(f.Vertices) - 1
	}
	return k - 1
}

// SupportingNormal returns the normal of the face plane, oriented so that
// it does not point against the projection vector
func (f *Face) SupportingNormal() geometry.Vector3 {
	n := f.Vertices[1].Sub(f.Vertices[0]).Cross(f.Vertices[2].Sub(f.Vertices[0]))
	if n.Dot(f.projection) < 0 {
		return n.Neg()
	}
	return n
}

// IsDegenerate reports whether the first three vertices are collinear, so
// the face has no usable plane
func (f *Face) IsDegenerate() bool {
	a := f.Vertices[1].Sub(f.Vertices[0])
	b := f.Vertices[2].Sub(f.Vertices[0])
	n := a.Cross(b)
	return n.IsZero() || n.Length() <= collinearTolerance*a.Length()*b.Length()
}

// IsParallelToProjection reports whether the face plane contains the
// projection direction. Such a face has no projected width and casts no
// shadow. Degenerate faces are treated the same way.
func (f *Face) IsParallelToProjection() bool {
	return f.SupportingNormal().Dot(f.projection) == 0 || f.IsDegenerate()
}

// VerticalNormal returns the outward normal of the vertical half space
// bounded by the edge from vertex k-1 to vertex k
func (f *Face) VerticalNormal(k int) geometry.Vector3 {
	prev := f.Vertices[f.prev(k)]
	n := f.Vertices[k].Sub(prev).Cross(f.projection)
	if n.Dot(prev.Sub(f.Centroid())) < 0 {
		return n.Neg()
	}
	return n
}

// Centroid returns the arithmetic mean of the vertices
func (f *Face) Centroid() geometry.Vector3 {
	var sum geometry.Vector3
	for _, v := range f.Vertices {
		sum = sum.Add(v)
	}
	return sum.Mul(1.0 / float64(len(f.Vertices)))
}

// ProjectedArea returns the area of the face projected onto the plane
// orthogonal to the projection vector, divided by scale². The polygon is
// fan triangulated from vertex 0, which requires it to be convex and planar.
func (f *Face) ProjectedArea(scale float64) float64 {
	norm := f.projection.Mul(1 / (scale * scale))
	area := 0.0
	for i := 1; i < len(f.Vertices)-1; i++ {
		s1 := f.Vertices[i].Sub(f.Vertices[0])
		s2 := f.Vertices[i+1].Sub(f.Vertices[0])
		area += math.Abs(s1.Cross(s2).Dot(norm)) / 2
	}
	return area
}

// IsFullyVisible reports whether every edge of the face is fully visible
func (f *Face) IsFullyVisible() bool {
	for _, e := range f.Edges {
		if !e.IsFullyVisible() {
			return false
		}
	}
	return true
}

// shadowBy applies the shadows of all other faces to the edges of f
func (f *Face) shadowBy(faces []*Face) {
	for _, e := range f.Edges {
		e.Reset()
		for _, caster := range faces {
			if caster == f {
				continue
			}
			e.Shadow(caster)
		}
	}
}
