// Package grid implements mesh.Mesh for rectangular grids of unit cells.
//
// What:
//
//   - Mesh wraps a W×H grid and reports entity counts for vertices (dim 0),
//     edges (dim 1) and cells (dim 2).
//   - Mints mesh.Entity handles: Cell, Vertex, Edge coordinate accessors and
//     the generic Entity / Entities index accessors.
//   - InBounds and CellCoordinate convert between coordinates and row-major
//     cell indices.
//
// Why:
//
//   - meshfn.Map needs a live mesh to size itself against and to validate
//     entity access; grid.Mesh is the batteries-included implementation for
//     structured 2D problems (markers on cells, numbering on vertices).
//
// Complexity:
//
//   - New:         O(1) time and memory (the grid stores no per-cell data).
//   - EntityCount: O(1).
//   - Entities:    O(n) for n entities at the requested dimension.
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one cell.
//   - ErrOutOfBounds: coordinate accessor outside the mesh.
//   - ErrUnknownEntity: Entity called with a dimension/index naming nothing.
package grid
