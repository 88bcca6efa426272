package stl

import (
	"github.com/google/uuid"
	"github.com/philipparndt/gowall/pkg/geometry"
)

// Model represents a complete STL model.
// ID identifies this loaded instance; loading the same file twice yields two IDs.
type Model struct {
	ID        uuid.UUID
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model with a fresh identity
func NewModel(name string) *Model {
	return &Model{
		ID:        uuid.New(),
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, triangle := range m.Triangles {
		bbox.Extend(triangle.V1)
		bbox.Extend(triangle.V2)
		bbox.Extend(triangle.V3)
	}
	return bbox
}
