package shadow

import (
	"math"

	"github.com/philipparndt/goshade/pkg/geometry"
)

// RelevanceFunc decides whether a fully visible face counts towards the
// visible area
type RelevanceFunc func(f *Face) bool

// OutsideCube returns a RelevanceFunc accepting faces whose centroid lies
// outside the axis aligned cube of the given half width centered at the
// origin. Faces of the bounding frame of the sample geometries have their
// centroid inside that cube.
func OutsideCube(halfWidth float64) RelevanceFunc {
	return func(f *Face) bool {
		c := f.Centroid()
		return math.Abs(c.X) > halfWidth || math.Abs(c.Y) > halfWidth || math.Abs(c.Z) > halfWidth
	}
}

// AllFaces is a RelevanceFunc accepting every face
func AllFaces(*Face) bool {
	return true
}

// DefaultProjection is the projection vector used when none is given
var DefaultProjection = geometry.NewVector3(0, 0, 1)

type options struct {
	projection geometry.Vector3
	relevance  RelevanceFunc
	workers    int
}

// Option configures a Polyhedron
type Option func(*options)

// WithProjection sets the projection vector. It is normalized on use.
func WithProjection(v geometry.Vector3) Option {
	return func(o *options) {
		o.projection = v
	}
}

// WithRelevance replaces the default centroid-outside-cube rule
func WithRelevance(fn RelevanceFunc) Option {
	return func(o *options) {
		o.relevance = fn
	}
}

// WithWorkers computes the shadows of different faces in parallel.
// Values below 2 keep the computation sequential.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}
