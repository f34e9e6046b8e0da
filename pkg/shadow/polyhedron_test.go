package shadow

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/philipparndt/goshade/pkg/geomfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, name string, opts ...Option) *Polyhedron {
	t.Helper()
	p, err := Load(filepath.Join("testdata", name+".geom"), opts...)
	require.NoError(t, err)
	return p
}

func TestComputeVisibleArea(t *testing.T) {
	tests := []struct {
		name     string
		expected float64
	}{
		{"simple", 4},
		{"simple_small", 4},
		{"simple_gone", 0},
		{"simple_tilt", 2},
		{"simple_hide", 0},
		{"simple_degenerate", 0},
		{"simple_partial", 4},
		{"simple_vertical", 4},
		{"cube_rot", 2 * (1 + math.Sqrt(3))},
		{"tetrahedron", 4.0 / 3.0 * math.Sqrt(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := load(t, tt.name)
			assert.InDelta(t, tt.expected, p.ComputeVisibleArea(nil), 1e-6)
		})
	}
}

func TestComputeVisibleAreaIsIdempotent(t *testing.T) {
	p := load(t, "cube_rot")
	rec := NewRecorder()

	first := p.ComputeVisibleArea(rec)
	firstSegments := rec.Segments()
	second := p.ComputeVisibleArea(rec)

	assert.Equal(t, first, second)
	assert.Equal(t, firstSegments, rec.Segments())
	assert.Equal(t, 2, rec.Clears())
	assert.Len(t, firstSegments, 22)
}

func TestDrawerReceivesVisibleGaps(t *testing.T) {
	p := load(t, "simple_partial")
	rec := NewRecorder()
	p.ComputeVisibleArea(rec)

	segments := rec.Segments()
	require.Len(t, segments, 8)

	// The first two edges of the lower square are half hidden by the top square.
	s := p.Scale()
	assertVectorNear(t, geometry.NewVector3(0, s, 0), segments[4].Start)
	assertVectorNear(t, geometry.NewVector3(0, 2*s, 0), segments[4].End)
	assertVectorNear(t, geometry.NewVector3(2*s, 0, 0), segments[5].Start)
	assertVectorNear(t, geometry.NewVector3(s, 0, 0), segments[5].End)

	assert.Equal(t, segments, p.VisibleSegments())
}

func TestPartialGaps(t *testing.T) {
	p := load(t, "simple_partial")
	p.ComputeVisibleArea(nil)

	top, lower := p.Faces()[0], p.Faces()[1]
	assert.True(t, top.IsFullyVisible())
	assert.False(t, lower.IsFullyVisible())

	assert.Equal(t, []geometry.Interval{{Start: 0.5, End: 1}}, lower.Edges[0].Gaps)
	assert.Equal(t, []geometry.Interval{{Start: 0, End: 0.5}}, lower.Edges[1].Gaps)
	assert.True(t, lower.Edges[2].IsFullyVisible())
	assert.True(t, lower.Edges[3].IsFullyVisible())
	assert.InDelta(t, 0.5, lower.Edges[0].VisibleFraction(), 1e-12)
}

func TestHiddenFaceLosesAllGaps(t *testing.T) {
	p := load(t, "simple_hide")
	p.ComputeVisibleArea(nil)

	rear := p.Faces()[1]
	for i, e := range rear.Edges {
		assert.Empty(t, e.Gaps, "edge %d should be fully hidden", i)
	}
	assert.True(t, p.Faces()[0].IsFullyVisible())
}

func TestVerticalFaceChangesNothing(t *testing.T) {
	withWall := load(t, "simple_vertical")
	without := load(t, "simple")

	assert.True(t, withWall.Faces()[1].IsParallelToProjection())
	assert.Equal(t, without.ComputeVisibleArea(nil), withWall.ComputeVisibleArea(nil))
	assert.True(t, withWall.Faces()[0].IsFullyVisible())
}

func TestDegenerateFaceWarns(t *testing.T) {
	p := load(t, "simple_degenerate")

	require.Len(t, p.Warnings(), 1)
	assert.Equal(t, 0, p.Warnings()[0].Face)
	assert.Contains(t, p.Warnings()[0].String(), "face 1")
	assert.True(t, p.Faces()[0].IsParallelToProjection())
	assert.Equal(t, 0.0, p.ComputeVisibleArea(nil))
}

func TestWorkersMatchSequential(t *testing.T) {
	for _, name := range []string{"cube_rot", "tetrahedron", "simple_partial", "simple_hide"} {
		t.Run(name, func(t *testing.T) {
			sequential := load(t, name)
			parallel := load(t, name, WithWorkers(4))

			seqRec, parRec := NewRecorder(), NewRecorder()
			assert.Equal(t, sequential.ComputeVisibleArea(seqRec), parallel.ComputeVisibleArea(parRec))
			assert.Equal(t, seqRec.Segments(), parRec.Segments())
		})
	}
}

func TestWithRelevance(t *testing.T) {
	p := load(t, "simple_gone", WithRelevance(AllFaces))
	assert.InDelta(t, 4, p.ComputeVisibleArea(nil), 1e-9)
}

func TestWithProjection(t *testing.T) {
	// Non-unit vectors are normalized.
	p := load(t, "simple", WithProjection(geometry.NewVector3(0, 0, 4)))
	assert.Equal(t, geometry.NewVector3(0, 0, 1), p.Projection())
	assert.InDelta(t, 4, p.ComputeVisibleArea(nil), 1e-9)

	// Seen along X the square is edge-on.
	side := load(t, "simple", WithProjection(geometry.NewVector3(1, 0, 0)))
	assert.True(t, side.Faces()[0].IsParallelToProjection())
	assert.Equal(t, 0.0, side.ComputeVisibleArea(nil))
}

func TestNewRejectsInvalidInput(t *testing.T) {
	desc := geomfile.NewDescription("bad")
	desc.AddVertex(geometry.NewVector3(0, 0, 0))

	_, err := New(desc, WithProjection(geometry.Vector3{}))
	assert.Error(t, err)

	desc.Scale = 0
	_, err = New(desc)
	assert.Error(t, err)

	desc.Scale = 1
	desc.AddFace([]int{0, 0, 3})
	_, err = New(desc)
	assert.Error(t, err)
}

func TestNewTransformsVertices(t *testing.T) {
	p := load(t, "simple_tilt")

	// Ry(60) maps (1, 1, 1) to (cos60 + sin60, 1, -sin60 + cos60).
	c, s := 0.5, math.Sqrt(3)/2
	expected := geometry.NewVector3(c+s, 1, -s+c).Mul(200)
	assertVectorNear(t, expected, p.Vertices()[2])
}

func TestLoadPropagatesParseErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.geom"))
	assert.Error(t, err)
}

func assertVectorNear(t *testing.T, expected, actual geometry.Vector3) {
	t.Helper()
	assert.InDelta(t, 0, expected.Sub(actual).Length(), 1e-9, "expected %v, got %v", expected, actual)
}
