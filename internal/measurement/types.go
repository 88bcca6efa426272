package measurement

import (
	"github.com/philipparndt/gowall/pkg/geometry"
)

// Segment represents a single measurement line between two points
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Length returns the measured distance
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Line represents a series of connected measurement segments
type Line struct {
	Segments []Segment
}

// Length returns the sum of all segment lengths
func (l Line) Length() float64 {
	total := 0.0
	for _, s := range l.Segments {
		total += s.Length()
	}
	return total
}
