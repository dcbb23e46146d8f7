package jps3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayGridDefaultPassable(t *testing.T) {
	g := NewArrayGrid(3, 3, 3)
	assert.True(t, g.Passable(0, 0, 0))
	assert.True(t, g.Passable(2, 2, 2))
	assert.False(t, g.Passable(-1, 0, 0))
	assert.False(t, g.Passable(3, 0, 0))
}

func TestArrayGridSetPassable(t *testing.T) {
	g := NewArrayGrid(2, 2, 2)
	require.True(t, g.SetPassable(1, 1, 1, false))
	assert.False(t, g.Passable(1, 1, 1))
	assert.False(t, g.SetPassable(5, 5, 5, false))
}

func TestNewArrayGridFromCellsLengthMismatch(t *testing.T) {
	_, err := NewArrayGridFromCells(2, 2, 2, []int32{1, 1, 1})
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestNewArrayGridFromCellsLayout(t *testing.T) {
	cells := make([]int32, 8)
	cells[(1*2+1)*2+1] = 1 // (x=1,y=1,z=1) passable, everything else blocked
	g, err := NewArrayGridFromCells(2, 2, 2, cells)
	require.NoError(t, err)
	assert.True(t, g.Passable(1, 1, 1))
	assert.False(t, g.Passable(0, 0, 0))
}

func TestArrayGridDims(t *testing.T) {
	g := NewArrayGrid(4, 5, 6)
	x, y, z := g.Dims()
	assert.Equal(t, int32(4), x)
	assert.Equal(t, int32(5), y)
	assert.Equal(t, int32(6), z)
}
