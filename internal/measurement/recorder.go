package measurement

import (
	"github.com/philipparndt/gowall/pkg/geometry"
)

// Recorder keeps the length measurements created during a session.
// Segments extend the current line until StartLine opens a new one.
//
// Recorder is not safe for concurrent use.
type Recorder struct {
	lines     []Line
	newLine   bool
	listeners []func()
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// StartLine makes the next segment begin a new line
func (r *Recorder) StartLine() {
	r.newLine = true
}

// CreateSegment records a measurement between a and b
func (r *Recorder) CreateSegment(a, b geometry.Vector3) {
	s := Segment{Start: a, End: b}
	if n := len(r.lines); n > 0 && !r.newLine {
		r.lines[n-1].Segments = append(r.lines[n-1].Segments, s)
		return
	}
	r.newLine = false
	r.lines = append(r.lines, Line{Segments: []Segment{s}})
}

// Lines returns a copy of the recorded lines
func (r *Recorder) Lines() []Line {
	lines := make([]Line, len(r.lines))
	for i, l := range r.lines {
		lines[i] = Line{Segments: append([]Segment(nil), l.Segments...)}
	}
	return lines
}

// Segments returns all recorded segments in creation order
func (r *Recorder) Segments() []Segment {
	var segments []Segment
	for _, l := range r.lines {
		segments = append(segments, l.Segments...)
	}
	return segments
}

// OnCleared registers fn to run after every Clear
func (r *Recorder) OnCleared(fn func()) {
	r.listeners = append(r.listeners, fn)
}

// Clear removes every measurement and notifies OnCleared listeners
func (r *Recorder) Clear() {
	r.lines = nil
	for _, fn := range r.listeners {
		fn()
	}
}
