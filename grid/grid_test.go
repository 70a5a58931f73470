package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmesh/grid"
	"github.com/katalvlaran/lvlmesh/mesh"
)

// TestNew_Errors verifies that New rejects degenerate dimensions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"NegativeWidth", -1, 3},
		{"BothZero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.width, tc.height)
			require.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

// TestEntityCount checks the count formulas across shapes and dimensions.
func TestEntityCount(t *testing.T) {
	cases := []struct {
		name                   string
		width, height          int
		vertices, edges, cells int
	}{
		{"Unit", 1, 1, 4, 4, 1},
		{"Row", 5, 1, 12, 16, 5},
		{"Rect", 3, 2, 12, 17, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := grid.New(tc.width, tc.height)
			require.NoError(t, err)
			require.Equal(t, tc.vertices, m.EntityCount(mesh.DimVertex))
			require.Equal(t, tc.edges, m.EntityCount(mesh.DimEdge))
			require.Equal(t, tc.cells, m.EntityCount(mesh.DimFace))
			require.Equal(t, 0, m.EntityCount(mesh.DimVolume))
			require.Equal(t, 0, m.EntityCount(-1))
			require.Equal(t, 2, m.Dim())
		})
	}
}

// TestIdentity verifies each mesh gets its own stable identity.
func TestIdentity(t *testing.T) {
	a, err := grid.New(2, 2)
	require.NoError(t, err)
	b, err := grid.New(2, 2)
	require.NoError(t, err)

	require.Equal(t, a.ID(), a.ID())
	require.NotEqual(t, a.ID(), b.ID())
	require.True(t, mesh.Same(a, a))
	require.False(t, mesh.Same(a, b))
}

// TestCell verifies cell handle minting and row-major indexing.
func TestCell(t *testing.T) {
	m, err := grid.New(3, 2)
	require.NoError(t, err)

	e, err := m.Cell(2, 1)
	require.NoError(t, err)
	require.Equal(t, mesh.DimFace, e.Dim())
	require.Equal(t, 1*3+2, e.Index())
	require.True(t, mesh.Same(m, e.Mesh()))

	x, y := m.CellCoordinate(e.Index())
	require.Equal(t, 2, x)
	require.Equal(t, 1, y)

	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {0, 2}} {
		_, err = m.Cell(xy[0], xy[1])
		require.ErrorIs(t, err, grid.ErrOutOfBounds)
	}
}

// TestVertex verifies vertex handles on the (W+1)×(H+1) lattice.
func TestVertex(t *testing.T) {
	m, err := grid.New(3, 2)
	require.NoError(t, err)

	e, err := m.Vertex(3, 2) // far corner of the lattice
	require.NoError(t, err)
	require.Equal(t, mesh.DimVertex, e.Dim())
	require.Equal(t, 2*4+3, e.Index())

	_, err = m.Vertex(4, 0)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = m.Vertex(0, 3)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestEdges verifies the horizontal-then-vertical edge index layout.
func TestEdges(t *testing.T) {
	m, err := grid.New(3, 2) // 3*(2+1)=9 horizontal, (3+1)*2=8 vertical
	require.NoError(t, err)

	h, err := m.HorizontalEdge(2, 2)
	require.NoError(t, err)
	require.Equal(t, mesh.DimEdge, h.Dim())
	require.Equal(t, 2*3+2, h.Index())

	v, err := m.VerticalEdge(0, 0)
	require.NoError(t, err)
	require.Equal(t, 9, v.Index()) // first vertical edge follows the horizontal block

	last, err := m.VerticalEdge(3, 1)
	require.NoError(t, err)
	require.Equal(t, m.EntityCount(mesh.DimEdge)-1, last.Index())

	_, err = m.HorizontalEdge(3, 0)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
	_, err = m.VerticalEdge(0, 2)
	require.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestEntity verifies the generic dimension/index accessor.
func TestEntity(t *testing.T) {
	m, err := grid.New(3, 2)
	require.NoError(t, err)

	e, err := m.Entity(mesh.DimFace, 5)
	require.NoError(t, err)
	require.Equal(t, 5, e.Index())

	_, err = m.Entity(mesh.DimFace, 6)
	require.ErrorIs(t, err, grid.ErrUnknownEntity)
	_, err = m.Entity(mesh.DimFace, -1)
	require.ErrorIs(t, err, grid.ErrUnknownEntity)
	_, err = m.Entity(7, 0)
	require.ErrorIs(t, err, grid.ErrUnknownEntity)
}

// TestEntities verifies handles come back complete and in index order.
func TestEntities(t *testing.T) {
	m, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, dim := range []int{mesh.DimVertex, mesh.DimEdge, mesh.DimFace} {
		all := m.Entities(dim)
		require.Len(t, all, m.EntityCount(dim))
		for i, e := range all {
			require.Equal(t, i, e.Index())
			require.Equal(t, dim, e.Dim())
		}
	}
	require.Empty(t, m.Entities(mesh.DimVolume))
}

// TestInBounds checks cell bounds on a 3×2 mesh.
func TestInBounds(t *testing.T) {
	m, err := grid.New(3, 2)
	require.NoError(t, err)

	for _, xy := range [][2]int{{0, 0}, {2, 1}, {1, 1}} {
		require.True(t, m.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
	for _, xy := range [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		require.False(t, m.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
	}
}
