package jps3d

// Grid is the opaque occupancy oracle the core consumes. Implementations
// must be O(1) and side-effect free during a search: Passable is called
// millions of times per FindPath call. Out-of-bounds coordinates (including
// negative ones) must return false, never panic — the pruner and jumper
// deliberately probe off-grid cells and expect "blocked".
//
// Grid construction, file loading, and the occupancy storage representation
// are collaborators outside the core's scope (spec.md §1); ArrayGrid below
// is the minimal in-memory implementation the core ships for tests and the
// illustrative cmd/demo driver.
type Grid interface {
	// Passable reports whether (x,y,z) is in-bounds and not blocked.
	Passable(x, y, z int32) bool
	// Dims returns the grid's (X,Y,Z) dimensions.
	Dims() (x, y, z int32)
}

// ArrayGrid is a dense 3-D occupancy array: non-zero cells are passable,
// matching original_source/Grid.h's FGrid(x,y,z,cells) constructor
// semantics (cells laid out z-major, then y, then x).
type ArrayGrid struct {
	dimX, dimY, dimZ int32
	cells            []int32 // indexed by (z*dimY+y)*dimX+x
}

// NewArrayGrid builds an ArrayGrid of the given dimensions with every cell
// passable. Use SetPassable, or NewArrayGridFromCells for bulk loading.
func NewArrayGrid(dimX, dimY, dimZ int32) *ArrayGrid {
	g := &ArrayGrid{dimX: dimX, dimY: dimY, dimZ: dimZ}
	n := int64(dimX) * int64(dimY) * int64(dimZ)
	g.cells = make([]int32, n)
	for i := range g.cells {
		g.cells[i] = 1
	}
	return g
}

// NewArrayGridFromCells builds an ArrayGrid from a flat z-major cell array,
// mirroring FGrid's constructor taking a raw int* buffer. len(cells) must
// equal dimX*dimY*dimZ.
func NewArrayGridFromCells(dimX, dimY, dimZ int32, cells []int32) (*ArrayGrid, error) {
	want := int64(dimX) * int64(dimY) * int64(dimZ)
	if int64(len(cells)) != want {
		return nil, ErrInvalidGrid
	}
	buf := make([]int32, len(cells))
	copy(buf, cells)
	return &ArrayGrid{dimX: dimX, dimY: dimY, dimZ: dimZ, cells: buf}, nil
}

func (g *ArrayGrid) index(x, y, z int32) (int64, bool) {
	if x < 0 || y < 0 || z < 0 || x >= g.dimX || y >= g.dimY || z >= g.dimZ {
		return 0, false
	}
	return (int64(z)*int64(g.dimY)+int64(y))*int64(g.dimX) + int64(x), true
}

// Passable implements Grid.
func (g *ArrayGrid) Passable(x, y, z int32) bool {
	idx, ok := g.index(x, y, z)
	if !ok {
		return false
	}
	return g.cells[idx] != 0
}

// Dims implements Grid.
func (g *ArrayGrid) Dims() (int32, int32, int32) {
	return g.dimX, g.dimY, g.dimZ
}

// SetPassable marks (x,y,z) passable (v true) or blocked (v false). Returns
// false if the coordinate is out of bounds.
func (g *ArrayGrid) SetPassable(x, y, z int32, v bool) bool {
	idx, ok := g.index(x, y, z)
	if !ok {
		return false
	}
	if v {
		g.cells[idx] = 1
	} else {
		g.cells[idx] = 0
	}
	return true
}
