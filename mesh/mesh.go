package mesh

import "github.com/google/uuid"

// Named topological dimensions. The cell (full) dimension of a given mesh
// equals Mesh.Dim() and is not a fixed constant.
const (
	// DimVertex is the dimension of vertices.
	DimVertex = 0
	// DimEdge is the dimension of edges.
	DimEdge = 1
	// DimFace is the dimension of faces.
	DimFace = 2
	// DimVolume is the dimension of volumetric cells.
	DimVolume = 3
)

// Mesh is a queryable discrete mesh. Implementations must keep ID stable
// and EntityCount consistent for the lifetime of any container bound to
// them; lvlmesh containers hold Mesh references without owning them.
type Mesh interface {
	// ID returns the stable identity of this mesh.
	ID() uuid.UUID

	// Dim returns the topological dimension of the mesh.
	Dim() int

	// EntityCount returns the number of entities at dimension dim,
	// or 0 for dimensions the mesh does not populate.
	EntityCount(dim int) int
}

// Entity is a handle to a single mesh entity: the owning mesh, the entity's
// topological dimension, and its index within that dimension. Entities are
// small values and are copied freely.
type Entity struct {
	mesh  Mesh
	dim   int
	index int
}

// New returns a handle to the entity of m at dimension dim with the given
// index. It does not validate the index against m; containers validate on
// access.
// Complexity: O(1).
func New(m Mesh, dim, index int) Entity {
	return Entity{mesh: m, dim: dim, index: index}
}

// Mesh returns the mesh this entity belongs to.
// Complexity: O(1).
func (e Entity) Mesh() Mesh { return e.mesh }

// Dim returns the entity's topological dimension.
// Complexity: O(1).
func (e Entity) Dim() int { return e.dim }

// Index returns the entity's index within its dimension.
// Complexity: O(1).
func (e Entity) Index() int { return e.index }

// Same reports whether a and b are the same mesh, compared by identity.
// Two nil meshes are not the same mesh.
// Complexity: O(1).
func Same(a, b Mesh) bool {
	if a == nil || b == nil {
		return false
	}
	return a.ID() == b.ID()
}
