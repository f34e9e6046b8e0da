package geometry

import "testing"

func TestBoundsOf(t *testing.T) {
	bbox := BoundsOf(NewVector3(1, 2, 3), NewVector3(4, 5, 6), NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
	if bbox.MaxDimension() != 5 {
		t.Errorf("MaxDimension failed: expected 5, got %v", bbox.MaxDimension())
	}
	if bbox.Center() != NewVector3(1.5, 2.5, 4) {
		t.Errorf("Center failed: got %v", bbox.Center())
	}
}

func TestEmptyBoundingBox(t *testing.T) {
	bbox := NewBoundingBox()

	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if bbox.Size() != (Vector3{}) || bbox.Center() != (Vector3{}) {
		t.Errorf("empty box should have zero size and center, got %v and %v", bbox.Size(), bbox.Center())
	}
}
