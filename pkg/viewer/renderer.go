package viewer

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/goshade/pkg/geometry"
)

// SegmentView is a fyne widget showing the visible segments of a
// polyhedron. It implements the drawer used by the shadow computation,
// so a drawing pass can target it directly.
type SegmentView struct {
	widget.BaseWidget

	camera    *Camera
	lineColor color.Color
	lineWidth float32

	mu       sync.Mutex
	segments [][2]geometry.Vector3
	lines    []*canvas.Line

	dragStart *fyne.Position
	width     float64
	height    float64
}

// NewSegmentView creates a view looking against the given direction
func NewSegmentView(bbox geometry.BoundingBox, direction geometry.Vector3) *SegmentView {
	v := &SegmentView{
		camera:    NewCamera(bbox, direction),
		lineColor: color.RGBA{220, 220, 220, 255},
		lineWidth: 1,
	}
	v.camera.Fit(bbox, 400, 400)
	v.ExtendBaseWidget(v)
	return v
}

// Camera returns the view's camera
func (v *SegmentView) Camera() *Camera {
	return v.camera
}

// SetLineStyle changes the color and width used for segments
func (v *SegmentView) SetLineStyle(col color.Color, width float32) {
	v.lineColor = col
	v.lineWidth = width
}

// Clear removes all segments
func (v *SegmentView) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.segments = v.segments[:0]
}

// DrawSegment adds a segment; call Render to show it
func (v *SegmentView) DrawSegment(p, q geometry.Vector3) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.segments = append(v.segments, [2]geometry.Vector3{p, q})
}

// SegmentCount returns the number of segments held by the view
func (v *SegmentView) SegmentCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.segments)
}

// Render projects the segments for the given viewport size
func (v *SegmentView) Render(width, height float64) {
	v.width = width
	v.height = height

	v.mu.Lock()
	lines := make([]*canvas.Line, 0, len(v.segments))
	for _, s := range v.segments {
		x1, y1, _ := v.camera.Project(s[0], width, height)
		x2, y2, _ := v.camera.Project(s[1], width, height)

		line := canvas.NewLine(v.lineColor)
		line.StrokeWidth = v.lineWidth
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		lines = append(lines, line)
	}
	v.lines = lines
	v.mu.Unlock()

	v.Refresh()
}

// ResetView restores the initial camera direction
func (v *SegmentView) ResetView() {
	v.camera.Reset()
	v.Render(v.width, v.height)
}

// CreateRenderer creates the renderer for the widget
func (v *SegmentView) CreateRenderer() fyne.WidgetRenderer {
	return &segmentViewRenderer{view: v}
}

// Dragged handles mouse drag events for rotation
func (v *SegmentView) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y

		v.camera.Rotate(float64(deltaX)*0.01, float64(-deltaY)*0.01)
		v.Render(v.width, v.height)
	}
	v.dragStart = &event.Position
}

// DragEnd handles the end of a drag event
func (v *SegmentView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *SegmentView) Scrolled(event *fyne.ScrollEvent) {
	delta := math.Max(-0.5, float64(event.Scrolled.DY)*0.001)
	v.camera.ZoomBy(delta)
	v.Render(v.width, v.height)
}

// segmentViewRenderer implements fyne.WidgetRenderer
type segmentViewRenderer struct {
	view    *SegmentView
	objects []fyne.CanvasObject
}

func (r *segmentViewRenderer) Layout(size fyne.Size) {
	if float64(size.Width) != r.view.width || float64(size.Height) != r.view.height {
		r.view.Render(float64(size.Width), float64(size.Height))
	}
}

func (r *segmentViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *segmentViewRenderer) Refresh() {
	r.view.mu.Lock()
	objects := make([]fyne.CanvasObject, 0, len(r.view.lines))
	for _, line := range r.view.lines {
		objects = append(objects, line)
	}
	r.view.mu.Unlock()

	r.objects = objects
	canvas.Refresh(r.view)
}

func (r *segmentViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *segmentViewRenderer) Destroy() {}
