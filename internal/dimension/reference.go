package dimension

import "github.com/philipparndt/gowall/pkg/geometry"

// SelectReference returns the midpoint of the longest edge.
// The first edge wins ties.
func SelectReference(edges []geometry.Line3) (geometry.Vector3, error) {
	if len(edges) == 0 {
		return geometry.Vector3{}, ErrNoVerticalEdges
	}

	longest := edges[0]
	for _, edge := range edges[1:] {
		if edge.Length() > longest.Length() {
			longest = edge
		}
	}
	return longest.Center(), nil
}
