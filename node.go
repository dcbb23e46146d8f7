package jps3d

import "sync/atomic"

// NodeID indexes a Node inside a NodePool's arena. It replaces the raw
// Node* back-pointer original_source/Node.h uses for Node.parent: the arena
// may grow (the backing slice may reallocate) without invalidating an ID,
// whereas a pointer into a growing slice would dangle. See spec.md §9
// "Node pointer stability".
type NodeID int32

// noParent is the sentinel "no parent" NodeID, analogous to NULL in
// original_source/Node.h.
const noParent NodeID = -1

const (
	flagOpen   uint8 = 1 << 0
	flagClosed uint8 = 1 << 1
)

// Node is per-voxel search state: best known cost g, f = g + h, a parent
// back-pointer establishing the arrival direction, and open/closed flags
// packed into one byte. Mirrors original_source/Node.h field-for-field.
type Node struct {
	Pos    Position
	G, F   int32
	Parent NodeID
	flag   uint8
	// openIdx is maintained by OpenList for O(log N) Fix, mirroring the
	// teacher's openHeap.openIdx bookkeeping in pathfinding.go.
	openIdx int
}

func (n *Node) isOpen() bool   { return n.flag&flagOpen != 0 }
func (n *Node) isClosed() bool { return n.flag&flagClosed != 0 }
func (n *Node) setOpen()       { n.flag |= flagOpen }
func (n *Node) clearOpen()     { n.flag &^= flagOpen }
func (n *Node) setClosed()     { n.flag |= flagClosed }

// reset clears G/F/Parent/flags in place, matching Node::ResetState. Pos is
// left untouched by callers that reuse the slot for the same position.
func (n *Node) reset(pos Position) {
	n.Pos = pos
	n.G = 0
	n.F = 0
	n.Parent = noParent
	n.flag = 0
	n.openIdx = -1
}

// NodePool maps Position -> NodeID over a growable arena of Node values.
// OpenList entries and Node.Parent are NodeIDs, re-resolved through Get, so
// they stay valid as the arena grows; a *Node returned by Get may be left
// pointing at the old backing array once GetOrCreate appends.
//
// The arena's backing slice is recycled across searches via arenaPool, a
// channel-based free list adapted from the teacher's
// new_map/rich_range_tree_pool.go NodePoolPool: Get()/Put() trade whole
// backing arrays instead of allocating fresh ones on every FreeMemory/reuse
// cycle.
type NodePool struct {
	arena []Node
	index map[Position]NodeID
}

var arenaPool = newArenaPool(256)

type arenaFreeList struct {
	pool   chan []Node
	getCnt atomic.Uint32
	putCnt atomic.Uint32
}

func newArenaPool(size int) *arenaFreeList {
	return &arenaFreeList{pool: make(chan []Node, size)}
}

func (p *arenaFreeList) get() []Node {
	select {
	case a := <-p.pool:
		p.getCnt.Add(1)
		return a[:0]
	default:
		return make([]Node, 0, 1024)
	}
}

func (p *arenaFreeList) put(a []Node) {
	select {
	case p.pool <- a:
		p.putCnt.Add(1)
	default:
		// pool full, let it be collected
	}
}

// NewNodePool returns an empty pool, reusing a recycled backing array when
// one is available.
func NewNodePool() *NodePool {
	return &NodePool{
		arena: arenaPool.get(),
		index: make(map[Position]NodeID, 256),
	}
}

// Get resolves an existing Node by NodeID.
func (p *NodePool) Get(id NodeID) *Node {
	return &p.arena[id]
}

// Lookup returns the NodeID already bound to pos, if any.
func (p *NodePool) Lookup(pos Position) (NodeID, bool) {
	id, ok := p.index[pos]
	return id, ok
}

// GetOrCreate returns the stable NodeID for pos, creating a fresh,
// zero-state Node if pos hasn't been visited this search.
func (p *NodePool) GetOrCreate(pos Position) NodeID {
	if id, ok := p.index[pos]; ok {
		return id
	}
	id := NodeID(len(p.arena))
	p.arena = append(p.arena, Node{})
	p.arena[id].reset(pos)
	p.index[pos] = id
	return id
}

// Reset clears every pooled Node's search state in place (step 1 of
// FindPath's setup, spec.md §4.4) without discarding the position index,
// so the arena's capacity is reused across searches on the same Searcher.
func (p *NodePool) Reset() {
	for i := range p.arena {
		p.arena[i].reset(p.arena[i].Pos)
	}
}

// Free returns the pool's backing arena to the process pool and drops the
// position index, matching Searcher::FreeMemory / spec.md §5's "FreeMemory
// releases both between searches".
func (p *NodePool) Free() {
	arenaPool.put(p.arena[:0])
	p.arena = nil
	p.index = nil
}

// Len reports how many Nodes have been materialised in this pool.
func (p *NodePool) Len() int {
	return len(p.arena)
}
