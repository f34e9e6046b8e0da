package geometry

import "testing"

func TestIntervalIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected Interval
	}{
		{"overlap", NewInterval(0, 0.6), NewInterval(0.4, 1), NewInterval(0.4, 0.6)},
		{"contained", NewInterval(0, 1), NewInterval(0.2, 0.3), NewInterval(0.2, 0.3)},
		{"disjoint", NewInterval(0, 0.2), NewInterval(0.5, 1), NewInterval(0.5, 0.2)},
		{"identical", UnitInterval(), UnitInterval(), UnitInterval()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Intersect(tt.b)
			if result != tt.expected {
				t.Errorf("Intersect failed: expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestIntervalIntersectIsIdempotent(t *testing.T) {
	a := NewInterval(0.1, 0.9)
	b := NewInterval(0.3, 1.2)

	once := a.Intersect(b)
	twice := once.Intersect(b)
	if once != twice {
		t.Errorf("intersection not idempotent: %v then %v", once, twice)
	}
}

func TestIntervalDisjointIntersectionIsDegenerate(t *testing.T) {
	if !NewInterval(0, 0.2).Intersect(NewInterval(0.5, 1)).IsDegenerate() {
		t.Error("disjoint intervals should intersect to a degenerate interval")
	}
}

func TestIntervalSubtract(t *testing.T) {
	tests := []struct {
		name        string
		a, shade    Interval
		first, last Interval
	}{
		{"hole in the middle", UnitInterval(), NewInterval(0.25, 0.75), NewInterval(0, 0.25), NewInterval(0.75, 1)},
		{"cut the start", UnitInterval(), NewInterval(0, 0.5), NewInterval(0, 0), NewInterval(0.5, 1)},
		{"cut the end", UnitInterval(), NewInterval(0.5, 1), NewInterval(0, 0.5), NewInterval(1, 1)},
		{"shade before", NewInterval(0.5, 1), NewInterval(0, 0.2), NewInterval(0.5, 0), NewInterval(0.5, 1)},
		{"shade after", NewInterval(0, 0.5), NewInterval(0.7, 1), NewInterval(0, 0.5), NewInterval(1, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pieces := tt.a.Subtract(tt.shade)
			if pieces[0] != tt.first || pieces[1] != tt.last {
				t.Errorf("Subtract failed: expected %v %v, got %v %v", tt.first, tt.last, pieces[0], pieces[1])
			}
		})
	}
}

func TestIntervalSubtractFullShade(t *testing.T) {
	pieces := UnitInterval().Subtract(UnitInterval())
	for i, p := range pieces {
		if !p.IsDegenerate() {
			t.Errorf("piece %d should be degenerate, got %v", i, p)
		}
	}
}

func TestIntervalSubtractCoversDifference(t *testing.T) {
	// Remaining length must equal |A| - |A ∩ B| for every shade.
	a := NewInterval(0.2, 0.8)
	shades := []Interval{
		NewInterval(0, 0.1),
		NewInterval(0.1, 0.3),
		NewInterval(0.4, 0.5),
		NewInterval(0.7, 1),
		NewInterval(0, 1),
	}

	for _, shade := range shades {
		remaining := 0.0
		for _, p := range a.Subtract(shade) {
			remaining += p.Length()
		}
		expected := a.Length() - a.Intersect(shade).Length()
		if diff := remaining - expected; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("shade %v: expected remaining %v, got %v", shade, expected, remaining)
		}
	}
}

func TestIntervalLength(t *testing.T) {
	if l := NewInterval(0.25, 1).Length(); l != 0.75 {
		t.Errorf("Length failed: expected 0.75, got %v", l)
	}
	if l := NewInterval(1, 0).Length(); l != 0 {
		t.Errorf("degenerate Length should be 0, got %v", l)
	}
}
