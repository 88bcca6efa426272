package dimension

import "github.com/philipparndt/gowall/pkg/geometry"

// EmitSegments sends one segment per pair of consecutive points to sink and
// returns how many were sent.
func EmitSegments(points []geometry.Vector3, sink Sink) int {
	count := 0
	for i := 0; i+1 < len(points); i++ {
		sink.CreateSegment(points[i], points[i+1])
		count++
	}
	return count
}
