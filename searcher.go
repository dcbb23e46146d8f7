package jps3d

import (
	"context"
	"log"
	"os"
)

// Stats reports per-search counters, supplementing the original's
// stepsTotal profiling counter (SPEC_FULL.md "SUPPLEMENTED FEATURES" #1).
type Stats struct {
	NodesGenerated int
	NodesExpanded  int
	JumpSteps      int
}

// Searcher runs JPS over a Grid. A Searcher owns mutable search state (the
// node pool, the open list) and is not safe for concurrent FindPath calls;
// callers needing concurrent searches should construct one Searcher per
// concurrent caller over a shared, read-only Grid (spec.md §5) — see
// RouteBatch for a ready-made fan-out helper.
type Searcher struct {
	grid   Grid
	policy DiagonalPolicy
	skip   int32
	logger *log.Logger

	pool     *NodePool
	open     *OpenList
	finishID NodeID
	finishPos Position

	neighbourBuf []Position
	stats        Stats
}

// Option configures a Searcher at construction time.
type Option func(*Searcher)

// WithLogger overrides the default "[jps] "-prefixed stdout logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Searcher) { s.logger = l }
}

// NewSearcher constructs a Searcher over grid with the given diagonal
// policy. grid must be non-nil and have positive dimensions.
func NewSearcher(grid Grid, policy DiagonalPolicy, opts ...Option) (*Searcher, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if !policy.valid() {
		return nil, ErrInvalidPolicy
	}
	dx, dy, dz := grid.Dims()
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return nil, ErrInvalidGrid
	}

	s := &Searcher{
		grid:   grid,
		policy: policy,
		skip:   1,
		logger: log.New(os.Stdout, "[jps] ", log.LstdFlags|log.Lmicroseconds),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pool = NewNodePool()
	s.open = NewOpenList(s.pool)
	return s, nil
}

// SetSkip sets the stride multiplier; values below 1 are clamped to 1,
// matching Searcher::SetSkip.
func (s *Searcher) SetSkip(skip int32) {
	if skip < 1 {
		skip = 1
	}
	s.skip = skip
}

// FreeMemory releases the node pool and open list buffers between searches,
// matching Searcher::FreeMemory / spec.md §5.
func (s *Searcher) FreeMemory() {
	s.pool.Free()
	s.pool = NewNodePool()
	s.open = NewOpenList(s.pool)
	s.stats = Stats{}
}

// Stats returns counters for the most recently completed FindPath call.
func (s *Searcher) Stats() Stats { return s.stats }

// FindPath is the main entry point (spec.md §4.4). It returns:
//   - an empty slice if start or finish is blocked, or no path exists,
//   - the single-element slice [start] if start == finish,
//   - otherwise the ordered jump-point path from the aligned start to the
//     aligned finish.
//
// ctx is checked cooperatively between open-list pops; cancellation or a
// deadline surfaces as an empty result, same as "no path".
func (s *Searcher) FindPath(ctx context.Context, start, finish Position) []Position {
	s.stats = Stats{}
	if !s.grid.Passable(start.X, start.Y, start.Z) || !s.grid.Passable(finish.X, finish.Y, finish.Z) {
		return nil
	}
	if start == finish {
		return []Position{start}
	}

	s.pool.Reset()
	s.open.Clear()

	start = start.normalize(s.skip)
	finish = finish.normalize(s.skip)

	if !s.grid.Passable(start.X, start.Y, start.Z) || !s.grid.Passable(finish.X, finish.Y, finish.Z) {
		// spec.md §9: normalization may move an endpoint onto a blocked
		// cell even though the un-aligned original was passable.
		return nil
	}
	if start == finish {
		return []Position{start}
	}

	startID := s.pool.GetOrCreate(start)
	s.finishID = s.pool.GetOrCreate(finish)
	s.finishPos = finish
	s.stats.NodesGenerated = 2

	s.logger.Printf("search start=%s finish=%s policy=%s skip=%d", start, finish, s.policy, s.skip)
	s.open.Push(startID)

	for s.open.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		curID := s.open.PopMin()
		cur := s.pool.Get(curID)
		cur.setClosed()
		s.stats.NodesExpanded++

		if curID == s.finishID {
			path := s.backtrace(curID)
			s.logger.Printf("search done expanded=%d generated=%d path_len=%d", s.stats.NodesExpanded, s.stats.NodesGenerated, len(path))
			return path
		}

		s.identifySuccessors(curID)
	}

	s.logger.Printf("search exhausted expanded=%d generated=%d: no path", s.stats.NodesExpanded, s.stats.NodesGenerated)
	return nil
}

// identifySuccessors mirrors Searcher::IdentifySuccessors: prune n's
// neighbours, jump from each, and relax the resulting jump point's g/f.
//
// curPos and curG are snapshotted by value before any call that may grow
// the node pool's arena (GetOrCreate can append and reallocate): holding a
// *Node across such a call would risk reading through a stale pointer once
// the backing slice moves, exactly the pitfall spec.md §9 calls out. Every
// other access below goes through a NodeID, resolved fresh via pool.Get.
func (s *Searcher) identifySuccessors(curID NodeID) {
	cur := s.pool.Get(curID)
	curPos, curG := cur.Pos, cur.G
	candidates := s.findNeighbours(cur)

	for _, cand := range candidates {
		jp := s.jump(cand, curPos)
		if !jp.IsValid() {
			continue
		}

		_, existed := s.pool.Lookup(jp)
		jnID := s.pool.GetOrCreate(jp)
		if jnID == curID {
			continue
		}
		if !existed {
			s.stats.NodesGenerated++
		}
		jn := s.pool.Get(jnID)
		if jn.isClosed() {
			continue
		}

		newG := curG + euclidean(curPos, jp)
		if !jn.isOpen() || newG < jn.G {
			jn.G = newG
			jn.F = newG + manhattan(jp, s.finishPos)
			jn.Parent = curID

			if !jn.isOpen() {
				s.open.Push(jnID)
			} else {
				s.open.Fix(jnID)
			}
		}
	}

	s.stats.JumpSteps += len(candidates)
}

// backtrace walks the parent chain from tailID back to a node with no
// parent, reversing the result, matching Searcher::BacktracePath.
func (s *Searcher) backtrace(tailID NodeID) []Position {
	var rev []Position
	for id := tailID; id != noParent; {
		n := s.pool.Get(id)
		rev = append(rev, n.Pos)
		next := n.Parent
		if next == id {
			// Parent cycle: an internal invariant violation (spec.md §7).
			// Release builds surface this as no path found.
			return nil
		}
		id = next
	}
	path := make([]Position, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
