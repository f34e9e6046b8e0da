package viewer

import (
	"math"

	"github.com/philipparndt/goshade/pkg/geometry"
)

// Camera is an orthographic camera. Direction points from the target
// towards the viewer, so a camera built from the projection vector shows
// the solid the way the shadow computation sees it.
type Camera struct {
	Target    geometry.Vector3
	Direction geometry.Vector3
	Up        geometry.Vector3
	Zoom      float64 // pixels per world unit

	home geometry.Vector3
}

// NewCamera creates a camera looking at the center of a bounding box
// against the given direction
func NewCamera(bbox geometry.BoundingBox, direction geometry.Vector3) *Camera {
	if direction.IsZero() {
		direction = geometry.NewVector3(0, 0, 1)
	}
	c := &Camera{
		Target:    bbox.Center(),
		Direction: direction.Normalize(),
		Up:        geometry.NewVector3(0, 1, 0),
		Zoom:      1,
	}
	c.home = c.Direction
	return c
}

// Fit chooses the zoom so the whole bounding box fits into the viewport
func (c *Camera) Fit(bbox geometry.BoundingBox, width, height float64) {
	c.Target = bbox.Center()
	extent := bbox.Size().Length()
	if extent == 0 {
		c.Zoom = 1
		return
	}
	c.Zoom = 0.9 * math.Min(width, height) / extent
}

// basis returns the screen axes in world space
func (c *Camera) basis() (right, up geometry.Vector3) {
	hint := c.Up
	if hint.Cross(c.Direction).Length() < 1e-9 {
		hint = geometry.NewVector3(0, 0, 1)
		if hint.Cross(c.Direction).Length() < 1e-9 {
			hint = geometry.NewVector3(1, 0, 0)
		}
	}
	right = hint.Cross(c.Direction).Normalize()
	up = c.Direction.Cross(right).Normalize()
	return right, up
}

// Project maps a world point to screen coordinates. Depth grows towards
// the viewer.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	right, up := c.basis()
	relative := point.Sub(c.Target)

	screenX := width/2 + relative.Dot(right)*c.Zoom
	screenY := height/2 - relative.Dot(up)*c.Zoom
	return screenX, screenY, relative.Dot(c.Direction)
}

// Rotate turns the view around the screen's vertical axis (yaw) and then
// around its horizontal axis (pitch)
func (c *Camera) Rotate(yaw, pitch float64) {
	right, up := c.basis()

	direction := rotateAround(c.Direction, up, yaw)
	right = rotateAround(right, up, yaw)

	c.Direction = rotateAround(direction, right, pitch).Normalize()
	c.Up = rotateAround(up, right, pitch).Normalize()
}

// ZoomBy scales the zoom by (1 + delta)
func (c *Camera) ZoomBy(delta float64) {
	c.Zoom *= 1 + delta
	if c.Zoom < 1e-6 {
		c.Zoom = 1e-6
	}
}

// Reset restores the initial view direction
func (c *Camera) Reset() {
	c.Direction = c.home
	c.Up = geometry.NewVector3(0, 1, 0)
}

// rotateAround rotates v around the unit axis k (Rodrigues' formula)
func rotateAround(v, k geometry.Vector3, angle float64) geometry.Vector3 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return v.Mul(cos).
		Add(k.Cross(v).Mul(sin)).
		Add(k.Mul(k.Dot(v) * (1 - cos)))
}
