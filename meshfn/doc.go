// Package meshfn provides Map[T], a discrete, entity-indexed value container
// bound to one topological dimension of one mesh.
//
// What:
//
//   - Map[T] holds one value of T per entity of a chosen dimension, in a flat
//     owned buffer indexed by entity index.
//   - Binding is lazy: a Map is constructed empty (optionally pre-bound to a
//     mesh) and becomes usable only after one of the Init forms runs.
//   - Every access through an entity handle is validated: the entity must
//     belong to the bound mesh, match the bound dimension, and index inside
//     the buffer.
//
// Why:
//
//   - Global numbering schemes, subdomain markers and refinement flags all
//     need exactly this shape: per-entity data keyed by index, never by
//     pointer identity or hashing.
//
// Sizing:
//
//   - Every Init form sizes the buffer to the mesh's entity count for the
//     requested dimension. InitSized and InitMeshSized accept an explicit
//     size for call-site symmetry, but the mesh count supersedes it; see the
//     note on those methods.
//   - Fresh buffers are zero-valued. Re-initializing replaces the buffer
//     outright; previous values are never migrated.
//
// Error discipline:
//
//   - All contract violations are programmer errors, not runtime conditions:
//     the offending call panics with an error value wrapping one of the
//     package sentinels (ErrNoMesh, ErrUninitialized, ErrMeshMismatch,
//     ErrDimensionMismatch, ErrIndexOutOfRange). Recovery at a process
//     boundary can classify the violation with errors.Is; there is no
//     recoverable-error variant of the access path.
//
// Concurrency:
//
//   - Map performs no internal locking. Concurrent reads of an initialized,
//     unmutated Map are safe; any mutation must be serialized externally.
//
// The bound mesh is referenced, not owned: it must stay alive and keep its
// entity count for the bound dimension unchanged for as long as the Map is
// in use.
package meshfn
