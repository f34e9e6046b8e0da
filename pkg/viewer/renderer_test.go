package viewer

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/goshade/pkg/geometry"
)

func TestSegmentViewCollectsSegments(t *testing.T) {
	test.NewTempApp(t)

	v := NewSegmentView(unitCube(), geometry.NewVector3(0, 0, 1))
	v.Clear()
	v.DrawSegment(geometry.NewVector3(-1, 0, 0), geometry.NewVector3(1, 0, 0))
	v.DrawSegment(geometry.NewVector3(0, -1, 0), geometry.NewVector3(0, 1, 0))
	v.Render(200, 200)

	if v.SegmentCount() != 2 {
		t.Errorf("Expected 2 segments, got %d", v.SegmentCount())
	}
	renderer := test.WidgetRenderer(v)
	if len(renderer.Objects()) != 2 {
		t.Errorf("Expected 2 line objects, got %d", len(renderer.Objects()))
	}

	v.Clear()
	v.Render(200, 200)
	if len(renderer.Objects()) != 0 {
		t.Errorf("Expected no line objects after Clear, got %d", len(renderer.Objects()))
	}
}
