// Package lvlmesh is a small toolkit for attaching per-entity data to
// discrete meshes — the bookkeeping layer under global numbering schemes,
// subdomain markers and refinement flags in mesh-based computation.
//
// 🚀 What is lvlmesh?
//
//	A compact, pure-Go library built from three pieces:
//		• mesh/   — the collaborator contracts: the Mesh interface and the
//		            Entity handle (owning mesh, dimension, index)
//		• grid/   — a concrete rectangular-grid mesh with vertex, edge and
//		            cell entities
//		• meshfn/ — Map[T], an entity-indexed value container bound to one
//		            topological dimension of one mesh
//
// ✨ Why choose lvlmesh?
//
//   - Minimal API – one container type, four init forms, O(1) access
//   - Always-validate access – every read/write through an entity handle
//     checks mesh identity, dimension and index
//   - Pure Go – no cgo; generics instead of interface{} boxing
//
// Quick ASCII example, a 2×1 grid and its entity counts:
//
//	    ●───●───●        dim 0 (vertices): 6
//	    │   │   │        dim 1 (edges):    7
//	    ●───●───●        dim 2 (cells):    2
//
// Start with grid.New to build a mesh, then meshfn.New to attach values to
// its cells, edges or vertices. See each package's doc.go for details.
//
//	go get github.com/katalvlaran/lvlmesh
package lvlmesh
