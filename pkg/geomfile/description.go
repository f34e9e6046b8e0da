package geomfile

import (
	"math"

	"github.com/philipparndt/goshade/pkg/geometry"
)

// Description is the raw content of a geometry file: the homothety
// coefficient, the Euler angles, and the untransformed vertices and faces.
type Description struct {
	Name string

	// Scale is the uniform scale factor applied after rotation
	Scale float64
	// Alpha, Beta and Gamma are the Euler angles in degrees
	Alpha, Beta, Gamma float64
	// EdgeCount is the edge count announced by the file. It is not used for
	// the computation.
	EdgeCount int

	Vertices []geometry.Vector3
	// Faces holds zero-based vertex indices, one slice per face
	Faces [][]int
}

// NewDescription creates an empty description
func NewDescription(name string) *Description {
	return &Description{
		Name:     name,
		Scale:    1,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([][]int, 0),
	}
}

// AddVertex appends a raw vertex
func (d *Description) AddVertex(v geometry.Vector3) {
	d.Vertices = append(d.Vertices, v)
}

// AddFace appends a face given by zero-based vertex indices
func (d *Description) AddFace(indices []int) {
	d.Faces = append(d.Faces, indices)
}

// VertexCount returns the number of vertices
func (d *Description) VertexCount() int {
	return len(d.Vertices)
}

// FaceCount returns the number of faces
func (d *Description) FaceCount() int {
	return len(d.Faces)
}

// Angles returns the Euler angles converted to radians
func (d *Description) Angles() (alpha, beta, gamma float64) {
	return d.Alpha * math.Pi / 180, d.Beta * math.Pi / 180, d.Gamma * math.Pi / 180
}

// Transform rotates a raw vertex by Rz(alpha), Ry(beta), Rz(gamma) and
// applies the scale factor.
func (d *Description) Transform(v geometry.Vector3) geometry.Vector3 {
	alpha, beta, gamma := d.Angles()
	return v.RotateZ(alpha).RotateY(beta).RotateZ(gamma).Mul(d.Scale)
}
