package analysis

import (
	"math"

	"github.com/philipparndt/gowall/pkg/geometry"
)

// EdgeInfo contains information about an edge of a face
type EdgeInfo struct {
	Index  int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// Describe returns one EdgeInfo per line, keeping input order
func Describe(lines []geometry.Line3) []EdgeInfo {
	edges := make([]EdgeInfo, len(lines))
	for i, l := range lines {
		edges[i] = EdgeInfo{
			Index:  i,
			Start:  l.Start,
			End:    l.End,
			Length: l.Length(),
		}
	}
	return edges
}

// LengthStats summarizes a set of lengths
type LengthStats struct {
	Count int
	Min   float64
	Max   float64
	Total float64
}

// Stats computes min, max and total of the edge lengths.
// An empty slice yields the zero value.
func Stats(edges []EdgeInfo) LengthStats {
	if len(edges) == 0 {
		return LengthStats{}
	}
	stats := LengthStats{Count: len(edges), Min: math.MaxFloat64}
	for _, e := range edges {
		stats.Total += e.Length
		stats.Min = math.Min(stats.Min, e.Length)
		stats.Max = math.Max(stats.Max, e.Length)
	}
	return stats
}
