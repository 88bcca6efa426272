package dimension

import (
	"sort"

	"github.com/philipparndt/gowall/pkg/geometry"
)

type projection struct {
	point    geometry.Vector3
	distance float64
}

// ProjectAndSort projects reference onto the infinite line through each
// edge and orders the projected points by their distance from reference.
// Projections may lie beyond an edge's endpoints. Equal distances keep
// input order.
func ProjectAndSort(reference geometry.Vector3, edges []geometry.Line3) []geometry.Vector3 {
	projections := make([]projection, len(edges))
	for i, edge := range edges {
		point := edge.ClosestPoint(reference)
		projections[i] = projection{point: point, distance: reference.Distance(point)}
	}

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].distance < projections[j].distance
	})

	points := make([]geometry.Vector3, len(projections))
	for i, p := range projections {
		points[i] = p.point
	}
	return points
}
