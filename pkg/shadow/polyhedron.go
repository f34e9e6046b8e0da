// Package shadow computes which parts of a polyhedron's edges are hidden
// by its own faces when the solid is projected along a fixed vector, and
// the projected area of the faces that stay fully visible.
package shadow

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/philipparndt/goshade/pkg/geomfile"
)

// GeometryWarning reports a face that cannot take part in the shadow
// computation. It is not fatal: the face casts no shadow.
type GeometryWarning struct {
	Face int // zero-based face index
	Msg  string
}

func (w GeometryWarning) String() string {
	return fmt.Sprintf("face %d: %s", w.Face+1, w.Msg)
}

// Polyhedron is a solid built from a geometry description. It is immutable
// after construction except for the edge gaps, which every call to
// ComputeVisibleArea recomputes from scratch.
type Polyhedron struct {
	Name string

	vertices   []geometry.Vector3
	faces      []*Face
	scale      float64
	projection geometry.Vector3
	relevance  RelevanceFunc
	workers    int
	warnings   []GeometryWarning

	mu sync.Mutex
}

// Load parses a geometry file and builds the polyhedron
func Load(filename string, opts ...Option) (*Polyhedron, error) {
	desc, err := geomfile.Parse(filename)
	if err != nil {
		return nil, err
	}
	return New(desc, opts...)
}

// New builds a polyhedron: every raw vertex is rotated by the Euler angles
// and scaled, and faces reference the transformed vertices.
func New(desc *geomfile.Description, opts ...Option) (*Polyhedron, error) {
	if desc.Scale == 0 || math.IsNaN(desc.Scale) || math.IsInf(desc.Scale, 0) {
		return nil, fmt.Errorf("invalid scale factor %v", desc.Scale)
	}

	o := options{projection: DefaultProjection}
	for _, opt := range opts {
		opt(&o)
	}
	if o.projection.IsZero() {
		return nil, errors.New("projection vector must not be zero")
	}
	if o.relevance == nil {
		o.relevance = OutsideCube(math.Abs(desc.Scale) / 2)
	}

	p := &Polyhedron{
		Name:       desc.Name,
		vertices:   make([]geometry.Vector3, 0, len(desc.Vertices)),
		faces:      make([]*Face, 0, len(desc.Faces)),
		scale:      desc.Scale,
		projection: o.projection.Normalize(),
		relevance:  o.relevance,
		workers:    o.workers,
	}

	for _, v := range desc.Vertices {
		p.vertices = append(p.vertices, desc.Transform(v))
	}

	for i, indices := range desc.Faces {
		if len(indices) < 3 {
			return nil, fmt.Errorf("face %d has %d vertices, need at least 3", i+1, len(indices))
		}
		vertices := make([]geometry.Vector3, len(indices))
		for j, idx := range indices {
			if idx < 0 || idx >= len(p.vertices) {
				return nil, fmt.Errorf("face %d references missing vertex %d", i+1, idx+1)
			}
			vertices[j] = p.vertices[idx]
		}

		face := NewFace(vertices, p.projection)
		if face.IsDegenerate() {
			p.warnings = append(p.warnings, GeometryWarning{Face: i, Msg: "vertices are collinear, face casts no shadow"})
		}
		p.faces = append(p.faces, face)
	}

	return p, nil
}

// Faces returns the faces in file order
func (p *Polyhedron) Faces() []*Face {
	return p.faces
}

// Vertices returns the transformed vertices
func (p *Polyhedron) Vertices() []geometry.Vector3 {
	return p.vertices
}

// Scale returns the scale factor applied to the raw coordinates
func (p *Polyhedron) Scale() float64 {
	return p.scale
}

// Projection returns the unit projection vector
func (p *Polyhedron) Projection() geometry.Vector3 {
	return p.projection
}

// IsRelevant reports whether a fully visible face counts towards the area
func (p *Polyhedron) IsRelevant(f *Face) bool {
	return p.relevance(f)
}

// BoundingBox returns the bounds of the transformed vertices
func (p *Polyhedron) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(p.vertices...)
}

// Warnings returns the non-fatal problems found while building
func (p *Polyhedron) Warnings() []GeometryWarning {
	return p.warnings
}

// ComputeVisibleArea runs a drawing pass: it resets all gaps, applies the
// shadow of every face to every edge of every other face, hands the
// remaining visible segments to d (which may be nil) and returns the
// projected area of the fully visible relevant faces, in unscaled units.
func (p *Polyhedron) ComputeVisibleArea(d Drawer) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.computeShadows()

	if d != nil {
		d.Clear()
	}

	area := 0.0
	for _, f := range p.faces {
		if d != nil {
			for _, e := range f.Edges {
				for _, gap := range e.Gaps {
					d.DrawSegment(e.PointAt(gap.Start), e.PointAt(gap.End))
				}
			}
		}
		if f.IsFullyVisible() && p.relevance(f) {
			area += f.ProjectedArea(p.scale)
		}
	}
	return area
}

// VisibleSegments returns the visible segments left by the last pass
func (p *Polyhedron) VisibleSegments() []Segment {
	p.mu.Lock()
	defer p.mu.Unlock()

	var segments []Segment
	for _, f := range p.faces {
		for _, e := range f.Edges {
			segments = append(segments, e.VisibleSegments()...)
		}
	}
	return segments
}

// computeShadows recomputes the gaps of every edge. Each face's edges are
// only written by the goroutine handling that face; casting faces are read
// through their vertices only.
func (p *Polyhedron) computeShadows() {
	workers := p.workers
	if workers > len(p.faces) {
		workers = len(p.faces)
	}
	if workers < 2 {
		for _, f := range p.faces {
			f.shadowBy(p.faces)
		}
		return
	}

	jobs := make(chan *Face)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for f := range jobs {
				f.shadowBy(p.faces)
			}
		}()
	}

	for _, f := range p.faces {
		jobs <- f
	}
	close(jobs)
	wg.Wait()
}
