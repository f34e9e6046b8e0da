package shadow

import (
	"math"
	"testing"

	"github.com/philipparndt/goshade/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestNewFaceBuildsWrappingEdges(t *testing.T) {
	f := square(0, 1)

	assert.Len(t, f.Edges, 4)
	assert.Equal(t, f.Vertices[0], f.Edges[0].Start)
	assert.Equal(t, f.Vertices[3], f.Edges[0].End)
	assert.Equal(t, f.Vertices[2], f.Edges[2].Start)
	assert.Equal(t, f.Vertices[1], f.Edges[2].End)
}

func TestSupportingNormalFollowsProjection(t *testing.T) {
	ccw := square(0, 1)
	cw := NewFace([]geometry.Vector3{
		ccw.Vertices[3], ccw.Vertices[2], ccw.Vertices[1], ccw.Vertices[0],
	}, up)

	assert.Greater(t, ccw.SupportingNormal().Dot(up), 0.0)
	assert.Greater(t, cw.SupportingNormal().Dot(up), 0.0)
	assert.Equal(t, ccw.SupportingNormal().Normalize(), cw.SupportingNormal().Normalize())
}

func TestVerticalNormalsPointOutward(t *testing.T) {
	f := square(3, 1)
	c := f.Centroid()

	for k := range f.Vertices {
		n := f.VerticalNormal(k)
		mid := f.Vertices[k].Add(f.Vertices[f.prev(k)]).Mul(0.5)
		assert.Greater(t, n.Dot(mid.Sub(c)), 0.0, "normal %d", k)
		assert.Equal(t, 0.0, n.Dot(up), "normal %d must be horizontal", k)
	}
}

func TestCentroid(t *testing.T) {
	f := NewFace([]geometry.Vector3{
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 0, 0),
		geometry.NewVector3(0, 3, 3),
	}, up)

	assert.Equal(t, geometry.NewVector3(1, 1, 1), f.Centroid())
}

func TestProjectedArea(t *testing.T) {
	assert.InDelta(t, 4, square(1, 1).ProjectedArea(1), 1e-12)
	assert.InDelta(t, 1, square(1, 1).ProjectedArea(2), 1e-12)

	// Tilting by 60 degrees halves the projected area.
	tilted := make([]geometry.Vector3, 4)
	for i, v := range square(0, 1).Vertices {
		tilted[i] = v.RotateY(math.Pi / 3)
	}
	assert.InDelta(t, 2, NewFace(tilted, up).ProjectedArea(1), 1e-12)
}

func TestDegenerateFace(t *testing.T) {
	f := NewFace([]geometry.Vector3{
		geometry.NewVector3(-1, -1, 1),
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(1, 1, 1),
	}, up)

	assert.True(t, f.IsDegenerate())
	assert.True(t, f.IsParallelToProjection())
	assert.Equal(t, 0.0, f.ProjectedArea(1))
	assert.False(t, square(0, 1).IsDegenerate())
}

func TestOutsideCube(t *testing.T) {
	relevant := OutsideCube(0.5)

	assert.True(t, relevant(square(1, 1)))
	assert.False(t, relevant(square(0.25, 1)))
	assert.True(t, AllFaces(square(0, 1)))
}
