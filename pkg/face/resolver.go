package face

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/philipparndt/gowall/pkg/stl"
)

// ErrUnknownObject is returned for a model ID that was never added
var ErrUnknownObject = errors.New("unknown object")

// Locator addresses a face on a mesh instance: the triangle hit by a pick
// and the instance it belongs to.
type Locator struct {
	FaceIndex  int
	InstanceID int
}

// Resolver answers face queries for registered models.
// STL models carry a single instance, so only InstanceID 0 resolves.
type Resolver struct {
	tolerance float64
	indexes   map[uuid.UUID]*index
}

// NewResolver creates a resolver using the given vertex tolerance
func NewResolver(tolerance float64) *Resolver {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Resolver{
		tolerance: tolerance,
		indexes:   make(map[uuid.UUID]*index),
	}
}

// Add registers a model under its ID and builds its adjacency index
func (r *Resolver) Add(model *stl.Model) {
	r.indexes[model.ID] = newIndex(model, r.tolerance)
}

// Remove forgets a model
func (r *Resolver) Remove(id uuid.UUID) {
	delete(r.indexes, id)
}

// Face resolves the face at loc on the model registered as id.
// A nil face with a nil error means nothing resolvable was hit.
func (r *Resolver) Face(id uuid.UUID, loc Locator) (*Face, error) {
	idx, ok := r.indexes[id]
	if !ok {
		return nil, fmt.Errorf("failed to resolve face %d: %w %s", loc.FaceIndex, ErrUnknownObject, id)
	}
	if loc.InstanceID != 0 {
		return nil, nil
	}
	return idx.resolve(loc.FaceIndex), nil
}
