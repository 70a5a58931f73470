// Package grid defines the concrete rectangular mesh type and sentinel
// errors for the grid subpackage of github.com/katalvlaran/lvlmesh.
package grid

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a requested mesh with no cells in some direction.
	ErrEmptyGrid = errors.New("grid: mesh must be at least one cell wide and one cell high")
	// ErrOutOfBounds indicates coordinates outside the mesh.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrUnknownEntity indicates a dimension/index pair naming no entity.
	ErrUnknownEntity = errors.New("grid: no entity at given dimension and index")
)

// Mesh is a W×H rectangular mesh of unit cells. It is immutable once built:
// entity counts never change, so containers bound to it stay valid for its
// whole lifetime.
//
// Entities per dimension, all indexed row-major:
//
//	dim 0 — (W+1)×(H+1) vertices
//	dim 1 — W×(H+1) horizontal edges followed by (W+1)×H vertical edges
//	dim 2 — W×H cells
type Mesh struct {
	id            uuid.UUID
	width, height int
}
