// Package mesh declares the contracts every lvlmesh container consumes:
// the Mesh interface and the Entity handle.
//
// What:
//
//   - Mesh is any discrete mesh that can report its topological dimension
//     and the number of entities it holds at each dimension.
//   - Entity is a lightweight handle naming one entity: the mesh it belongs
//     to, its topological dimension, and its index within that dimension.
//   - Same compares two meshes by identity, nil-safe.
//
// Why:
//
//   - Containers such as meshfn.Map validate every access against the
//     entity's owning mesh, dimension and index; this package is the shared
//     vocabulary for those checks.
//   - Mesh implementations live elsewhere (see package grid); nothing here
//     stores topology.
//
// Identity:
//
//   - Each Mesh carries a uuid.UUID identity. Two handles refer to entities
//     of the same mesh exactly when their meshes' IDs are equal.
//
// Entities at dimension d are indexed 0..EntityCount(d)-1; iteration order
// beyond that is whatever the implementation provides.
package mesh
