package shadow

import (
	"sync"

	"github.com/philipparndt/goshade/pkg/geometry"
)

// Drawer receives the visible segments of a drawing pass. Clear is called
// once at the start of the pass, then DrawSegment once per visible gap in
// face, edge, gap order.
type Drawer interface {
	Clear()
	DrawSegment(p, q geometry.Vector3)
}

// Recorder is a Drawer that keeps the segments in memory
type Recorder struct {
	mu       sync.Mutex
	segments []Segment
	clears   int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Clear discards all recorded segments
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = nil
	r.clears++
}

// DrawSegment records one segment
func (r *Recorder) DrawSegment(p, q geometry.Vector3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.segments = append(r.segments, Segment{Start: p, End: q})
}

// Segments returns a copy of the recorded segments
func (r *Recorder) Segments() []Segment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Segment, len(r.segments))
	copy(out, r.segments)
	return out
}

// Clears returns how many times Clear was called
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}
