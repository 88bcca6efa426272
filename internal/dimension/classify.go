package dimension

import (
	"github.com/philipparndt/gowall/pkg/face"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// IsVertical reports whether edge is aligned with up: its direction,
// rounded to whole units, has no horizontal component. Slightly slanted
// edges still count.
func IsVertical(edge geometry.Line3, up geometry.Axis) bool {
	direction := edge.Delta().Round()
	horizontal := up.Orthogonal()
	return direction.Component(horizontal[0]) == 0 && direction.Component(horizontal[1]) == 0
}

// ClassifyVertical returns the vertical edges of f in input order
func ClassifyVertical(f *face.Face, up geometry.Axis) []geometry.Line3 {
	if f.Empty() {
		return nil
	}

	var vertical []geometry.Line3
	for _, edge := range f.Edges {
		if IsVertical(edge, up) {
			vertical = append(vertical, edge)
		}
	}
	return vertical
}
