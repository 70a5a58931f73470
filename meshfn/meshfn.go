package meshfn

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlmesh/mesh"
)

// Sentinel errors carried by panics on contract violations.
var (
	// ErrNoMesh indicates an operation that needs a bound mesh ran without one.
	ErrNoMesh = errors.New("meshfn: no mesh bound")
	// ErrUninitialized indicates access before any Init call.
	ErrUninitialized = errors.New("meshfn: map not initialized")
	// ErrMeshMismatch indicates an entity owned by a different mesh.
	ErrMeshMismatch = errors.New("meshfn: entity belongs to a different mesh")
	// ErrDimensionMismatch indicates an entity of a different dimension than the map's.
	ErrDimensionMismatch = errors.New("meshfn: entity dimension differs from map dimension")
	// ErrIndexOutOfRange indicates an entity or slot index outside the buffer.
	ErrIndexOutOfRange = errors.New("meshfn: index out of range")
)

// violation wraps a sentinel with Map method context before panicking.
func violation(method string, index int, err error) error {
	return fmt.Errorf("Map.%s(%d): %w", method, index, err)
}

// Map is an entity-indexed value container over one topological dimension
// of one mesh. The zero-value-equivalent state (see New) is unbound and
// uninitialized; values is nil until an Init form runs and exactly size
// long afterwards.
type Map[T any] struct {
	mesh   mesh.Mesh // bound mesh; nil until NewOn or an InitMesh form
	dim    int       // bound topological dimension
	size   int       // number of entities at dim when Init ran
	values []T       // owned flat buffer, one slot per entity index
}

// New returns an empty Map: no mesh bound, dimension and size zero.
// Any access before Init panics wrapping ErrUninitialized.
// Complexity: O(1).
func New[T any]() *Map[T] {
	return &Map[T]{}
}

// NewOn returns an empty Map pre-bound to m. The Map stays uninitialized
// (no buffer) until Init runs.
// Complexity: O(1).
func NewOn[T any](m mesh.Mesh) *Map[T] {
	return &Map[T]{mesh: m}
}

// Init binds the Map to the given topological dimension of the already
// bound mesh, allocating one zero-valued slot per entity at that dimension.
// Panics wrapping ErrNoMesh if no mesh was ever bound.
// Complexity: O(n) for n entities at dim.
func (f *Map[T]) Init(dim int) {
	if f.mesh == nil {
		panic(violation("Init", dim, ErrNoMesh))
	}
	f.InitMesh(f.mesh, dim)
}

// InitSized behaves exactly like Init: the explicit size is accepted for
// call-site symmetry but superseded by the mesh's entity count at dim.
// Panics wrapping ErrNoMesh if no mesh was ever bound.
// Complexity: O(n) for n entities at dim.
func (f *Map[T]) InitSized(dim, size int) {
	if f.mesh == nil {
		panic(violation("InitSized", dim, ErrNoMesh))
	}
	f.InitMesh(f.mesh, dim)
}

// InitMesh rebinds the Map to m at the given dimension and allocates a
// fresh zero-valued buffer sized to m.EntityCount(dim). Any previous buffer
// is discarded; values are never migrated.
// Complexity: O(n) for n entities at dim.
func (f *Map[T]) InitMesh(m mesh.Mesh, dim int) {
	f.mesh = m
	f.dim = dim
	f.size = m.EntityCount(dim)
	f.values = make([]T, f.size)
}

// InitMeshSized behaves exactly like InitMesh: the explicit size is
// accepted for call-site symmetry but superseded by m.EntityCount(dim).
// Complexity: O(n) for n entities at dim.
func (f *Map[T]) InitMeshSized(m mesh.Mesh, dim, size int) {
	f.InitMesh(m, dim)
}

// slot validates e against the Map and returns its buffer index.
// Panics wrapping the matching sentinel on any violated precondition.
func (f *Map[T]) slot(method string, e mesh.Entity) int {
	idx := e.Index()
	if f.values == nil {
		panic(violation(method, idx, ErrUninitialized))
	}
	if !mesh.Same(e.Mesh(), f.mesh) {
		panic(violation(method, idx, ErrMeshMismatch))
	}
	if e.Dim() != f.dim {
		panic(violation(method, idx, ErrDimensionMismatch))
	}
	if idx < 0 || idx >= f.size {
		panic(violation(method, idx, ErrIndexOutOfRange))
	}
	return idx
}

// Get returns a copy of the value stored for e. Panics wrapping
// ErrUninitialized, ErrMeshMismatch, ErrDimensionMismatch or
// ErrIndexOutOfRange when the corresponding precondition fails.
// Complexity: O(1).
func (f *Map[T]) Get(e mesh.Entity) T {
	return f.values[f.slot("Get", e)]
}

// At returns a pointer to the slot for e, for in-place read or mutation.
// Validation is identical to Get. The pointer stays valid until the next
// Init form replaces the buffer.
// Complexity: O(1).
func (f *Map[T]) At(e mesh.Entity) *T {
	return &f.values[f.slot("At", e)]
}

// Set overwrites the slot at index with value. Panics wrapping
// ErrUninitialized before Init and ErrIndexOutOfRange for indices outside
// the buffer.
// Complexity: O(1).
func (f *Map[T]) Set(index int, value T) {
	if f.values == nil {
		panic(violation("Set", index, ErrUninitialized))
	}
	if index < 0 || index >= f.size {
		panic(violation("Set", index, ErrIndexOutOfRange))
	}
	f.values[index] = value
}

// Fill overwrites every slot with value. Panics wrapping ErrUninitialized
// before Init.
// Complexity: O(n).
func (f *Map[T]) Fill(value T) {
	if f.values == nil {
		panic(violation("Fill", 0, ErrUninitialized))
	}
	for i := range f.values {
		f.values[i] = value
	}
}

// Dim returns the bound topological dimension, zero before Init.
// Complexity: O(1).
func (f *Map[T]) Dim() int { return f.dim }

// Size returns the number of slots, zero before Init.
// Complexity: O(1).
func (f *Map[T]) Size() int { return f.size }

// Initialized reports whether an Init form has run.
// Complexity: O(1).
func (f *Map[T]) Initialized() bool { return f.values != nil }

// Mesh returns the bound mesh. Panics wrapping ErrNoMesh when unbound.
// Complexity: O(1).
func (f *Map[T]) Mesh() mesh.Mesh {
	if f.mesh == nil {
		panic(violation("Mesh", 0, ErrNoMesh))
	}
	return f.mesh
}

// Values returns the backing buffer, nil before Init. The slice aliases the
// Map's storage: mutations through it are visible to Get and At, and it is
// invalidated by the next Init form.
// Complexity: O(1).
func (f *Map[T]) Values() []T { return f.values }
