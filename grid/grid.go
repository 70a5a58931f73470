package grid

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// New constructs a width×height cell mesh with a fresh identity.
// Returns ErrEmptyGrid if either dimension is below one cell.
// Complexity: O(1) time and memory.
func New(width, height int) (*Mesh, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	return &Mesh{id: uuid.New(), width: width, height: height}, nil
}

// ID returns the stable identity of this mesh.
// Complexity: O(1).
func (m *Mesh) ID() uuid.UUID { return m.id }

// Dim returns the topological dimension of the mesh, always 2.
// Complexity: O(1).
func (m *Mesh) Dim() int { return 2 }

// Width returns the number of cells per row.
// Complexity: O(1).
func (m *Mesh) Width() int { return m.width }

// Height returns the number of cells per column.
// Complexity: O(1).
func (m *Mesh) Height() int { return m.height }

// EntityCount returns the number of entities at the given dimension:
// vertices at 0, edges at 1, cells at 2, and 0 for any other dimension.
// Complexity: O(1).
func (m *Mesh) EntityCount(dim int) int {
	switch dim {
	case mesh.DimVertex:
		return (m.width + 1) * (m.height + 1)
	case mesh.DimEdge:
		return m.width*(m.height+1) + (m.width+1)*m.height
	case mesh.DimFace:
		return m.width * m.height
	default:
		return 0
	}
}

// InBounds reports whether cell coordinates (x,y) lie within the mesh.
// Complexity: O(1).
func (m *Mesh) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Cell returns the handle for the cell at (x,y), indexed row-major as
// y*Width + x. Returns ErrOutOfBounds for coordinates outside the mesh.
// Complexity: O(1).
func (m *Mesh) Cell(x, y int) (mesh.Entity, error) {
	if !m.InBounds(x, y) {
		return mesh.Entity{}, ErrOutOfBounds
	}
	return mesh.New(m, mesh.DimFace, y*m.width+x), nil
}

// Vertex returns the handle for the vertex at (x,y) on the (W+1)×(H+1)
// vertex lattice, indexed row-major as y*(Width+1) + x.
// Returns ErrOutOfBounds for coordinates outside the lattice.
// Complexity: O(1).
func (m *Mesh) Vertex(x, y int) (mesh.Entity, error) {
	if x < 0 || x > m.width || y < 0 || y > m.height {
		return mesh.Entity{}, ErrOutOfBounds
	}
	return mesh.New(m, mesh.DimVertex, y*(m.width+1)+x), nil
}

// HorizontalEdge returns the handle for the edge joining vertices (x,y) and
// (x+1,y). Horizontal edges occupy indices 0..W*(H+1)-1 in row-major order.
// Complexity: O(1).
func (m *Mesh) HorizontalEdge(x, y int) (mesh.Entity, error) {
	if x < 0 || x >= m.width || y < 0 || y > m.height {
		return mesh.Entity{}, ErrOutOfBounds
	}
	return mesh.New(m, mesh.DimEdge, y*m.width+x), nil
}

// VerticalEdge returns the handle for the edge joining vertices (x,y) and
// (x,y+1). Vertical edges follow the horizontal block, indexed row-major
// from W*(H+1).
// Complexity: O(1).
func (m *Mesh) VerticalEdge(x, y int) (mesh.Entity, error) {
	if x < 0 || x > m.width || y < 0 || y >= m.height {
		return mesh.Entity{}, ErrOutOfBounds
	}
	offset := m.width * (m.height + 1)
	return mesh.New(m, mesh.DimEdge, offset+y*(m.width+1)+x), nil
}

// Entity returns the handle for the index-th entity at the given dimension.
// Returns ErrUnknownEntity when the pair names nothing.
// Complexity: O(1).
func (m *Mesh) Entity(dim, index int) (mesh.Entity, error) {
	if index < 0 || index >= m.EntityCount(dim) {
		return mesh.Entity{}, ErrUnknownEntity
	}
	return mesh.New(m, dim, index), nil
}

// Entities returns handles for every entity at the given dimension, in
// index order. Unpopulated dimensions yield an empty slice.
// Complexity: O(n) time and memory for n entities.
func (m *Mesh) Entities(dim int) []mesh.Entity {
	n := m.EntityCount(dim)
	out := make([]mesh.Entity, n)
	for i := 0; i < n; i++ {
		out[i] = mesh.New(m, dim, i)
	}
	return out
}

// CellCoordinate converts a row-major cell index back to (x,y).
// Complexity: O(1).
func (m *Mesh) CellCoordinate(idx int) (x, y int) {
	return idx % m.width, idx / m.width
}
