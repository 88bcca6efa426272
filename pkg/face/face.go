// Package face resolves planar faces of triangle meshes.
//
// A face is the maximal set of edge-connected, coplanar triangles around a
// seed triangle. Its boundary is every edge used by exactly one of those
// triangles.
package face

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gowall/pkg/geometry"
	"github.com/philipparndt/gowall/pkg/stl"
)

// DefaultTolerance is the vertex welding and plane distance tolerance
const DefaultTolerance = 1e-4

// normalTolerance bounds 1 - cos(angle) between coplanar triangle normals
const normalTolerance = 1e-6

// MaxToleranceRatio caps the vertex tolerance relative to the model's
// bounding box diagonal
const MaxToleranceRatio = 0.01

// ErrToleranceTooLarge is returned by CheckTolerance
var ErrToleranceTooLarge = errors.New("tolerance too large for model")

// Face is the boundary of one planar region of a mesh
type Face struct {
	Normal    geometry.Vector3
	Triangles []int
	Edges     []geometry.Line3
	Area      float64
}

// Empty reports whether the face has no boundary edges
func (f *Face) Empty() bool {
	return f == nil || len(f.Edges) == 0
}

type vertexKey [3]int64

type edgeKey [2]vertexKey

// index holds triangle adjacency for one model
type index struct {
	model     *stl.Model
	tolerance float64
	normals   []geometry.Vector3
	adjacency map[edgeKey][]int
}

func newIndex(model *stl.Model, tolerance float64) *index {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	idx := &index{
		model:     model,
		tolerance: tolerance,
		normals:   make([]geometry.Vector3, len(model.Triangles)),
		adjacency: make(map[edgeKey][]int),
	}
	for i, tri := range model.Triangles {
		idx.normals[i] = tri.CalculateNormal()
		for _, e := range tri.Edges() {
			k := idx.edgeKey(e)
			idx.adjacency[k] = append(idx.adjacency[k], i)
		}
	}
	return idx
}

// vertexKey snaps v to a grid with tolerance spacing. Vertices in the same
// cell weld; two vertices closer than tolerance but on either side of a cell
// boundary do not.
func (idx *index) vertexKey(v geometry.Vector3) vertexKey {
	return vertexKey{
		int64(math.Round(v.X / idx.tolerance)),
		int64(math.Round(v.Y / idx.tolerance)),
		int64(math.Round(v.Z / idx.tolerance)),
	}
}

// edgeKey is independent of edge direction
func (idx *index) edgeKey(l geometry.Line3) edgeKey {
	a, b := idx.vertexKey(l.Start), idx.vertexKey(l.End)
	if less(b, a) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

func less(a, b vertexKey) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (idx *index) coplanar(seed, candidate int) bool {
	n := idx.normals[seed]
	if idx.normals[candidate].Dot(n) < 1-normalTolerance {
		return false
	}
	origin := idx.model.Triangles[seed].V1
	tri := idx.model.Triangles[candidate]
	for _, v := range [3]geometry.Vector3{tri.V1, tri.V2, tri.V3} {
		if math.Abs(v.Sub(origin).Dot(n)) > idx.tolerance {
			return false
		}
	}
	return true
}

// resolve flood-fills from seed. Triangles and boundary edges come out in
// ascending triangle order; each edge keeps its triangle's winding.
func (idx *index) resolve(seed int) *Face {
	if seed < 0 || seed >= len(idx.model.Triangles) {
		return nil
	}
	if idx.normals[seed] == (geometry.Vector3{}) {
		return nil
	}

	visited := map[int]bool{seed: true}
	queue := []int{seed}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, e := range idx.model.Triangles[current].Edges() {
			for _, neighbor := range idx.adjacency[idx.edgeKey(e)] {
				if visited[neighbor] || !idx.coplanar(seed, neighbor) {
					continue
				}
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}

	triangles := make([]int, 0, len(visited))
	for i := range visited {
		triangles = append(triangles, i)
	}
	sort.Ints(triangles)

	uses := make(map[edgeKey]int)
	for _, i := range triangles {
		for _, e := range idx.model.Triangles[i].Edges() {
			uses[idx.edgeKey(e)]++
		}
	}

	f := &Face{Normal: idx.normals[seed], Triangles: triangles}
	for _, i := range triangles {
		f.Area += idx.model.Triangles[i].Area()
		for _, e := range idx.model.Triangles[i].Edges() {
			if uses[idx.edgeKey(e)] == 1 {
				f.Edges = append(f.Edges, e)
			}
		}
	}
	return f
}

// CheckTolerance rejects a tolerance above MaxToleranceRatio of the model's
// bounding box diagonal, which would weld distinct vertices. Empty models
// accept any tolerance.
func CheckTolerance(model *stl.Model, tolerance float64) error {
	bbox := model.BoundingBox()
	if bbox.Empty() {
		return nil
	}
	limit := bbox.Diagonal() * MaxToleranceRatio
	if tolerance > limit {
		return fmt.Errorf("%w: %g exceeds %g", ErrToleranceTooLarge, tolerance, limit)
	}
	return nil
}

// Resolve returns the planar face containing the triangle at triangleIndex.
// It returns nil for an out-of-range index or a degenerate seed triangle.
func Resolve(model *stl.Model, triangleIndex int, tolerance float64) *Face {
	return newIndex(model, tolerance).resolve(triangleIndex)
}

// All returns every planar face of model, each identified by its lowest
// triangle index. Degenerate triangles belong to no face.
func All(model *stl.Model, tolerance float64) []*Face {
	idx := newIndex(model, tolerance)
	covered := make([]bool, len(model.Triangles))

	var faces []*Face
	for seed := range model.Triangles {
		if covered[seed] {
			continue
		}
		f := idx.resolve(seed)
		if f == nil {
			continue
		}
		for _, i := range f.Triangles {
			covered[i] = true
		}
		faces = append(faces, f)
	}
	return faces
}
