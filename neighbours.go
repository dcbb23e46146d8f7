package jps3d

// findNeighbours computes the pruned successor candidates for n, per
// spec.md §4.5. It mirrors original_source/Searcher.h::FindNeighbours
// clause-for-clause, split into the no-parent regime (emit everything the
// diagonal policy allows) and the parented regime (natural + forced moves
// for the arriving direction).
//
// The returned slice never contains duplicates and never contains a
// Position that fails Passable.
func (s *Searcher) findNeighbours(n *Node) []Position {
	buf := s.neighbourBuf[:0]
	x, y, z := n.Pos.X, n.Pos.Y, n.Pos.Z
	skip := s.skip

	if n.Parent != noParent {
		parentPos := s.pool.Get(n.Parent).Pos
		dx, dy, dz := arrivalDirection(parentPos, n.Pos, skip)
		buf = s.findNeighboursParented(buf, x, y, z, dx, dy, dz)
		s.neighbourBuf = buf
		return buf
	}

	buf = s.findNeighboursNoParent(buf, x, y, z)
	s.neighbourBuf = buf
	return buf
}

// --- helpers shared by both regimes -----------------------------------

func (s *Searcher) passable(x, y, z int32) bool {
	return s.grid.Passable(x, y, z)
}

func addPos(buf []Position, x, y, z int32) []Position {
	return append(buf, Position{X: x, Y: y, Z: z})
}

// addIfPassable appends (x,y,z) iff it is a passable cell, matching
// addToBufCheck.
func (s *Searcher) addIfPassable(buf []Position, x, y, z int32) []Position {
	if s.passable(x, y, z) {
		return addPos(buf, x, y, z)
	}
	return buf
}

// diagonalAdmissible2D reports whether a 2-D diagonal step with flanking
// axis neighbours f1,f2 is allowed under policy.
func diagonalAdmissible2D(policy DiagonalPolicy, f1, f2 bool) bool {
	switch policy {
	case Always:
		return true
	case AtLeastOnePassable:
		return f1 || f2
	case AllPassable:
		return f1 && f2
	default: // Never
		return false
	}
}

// diagonalAdmissible3D reports whether a 3-D (volume-diagonal) step is
// allowed given its three face-diagonal and three axis flanking results.
func diagonalAdmissible3D(policy DiagonalPolicy, axisX, axisY, axisZ, faceXY, faceXZ, faceYZ bool) bool {
	switch policy {
	case Always:
		return true
	case AtLeastOnePassable:
		return axisX || axisY || axisZ || faceXY || faceXZ || faceYZ
	case AllPassable:
		return axisX && axisY && axisZ && faceXY && faceXZ && faceYZ
	default: // Never
		return false
	}
}

// --- no-parent regime (spec.md §4.5 "No-parent regime") --------------

func (s *Searcher) findNeighboursNoParent(buf []Position, x, y, z int32) []Position {
	skip := s.skip
	policy := s.policy

	axisXp := s.passable(x+skip, y, z)
	axisXn := s.passable(x-skip, y, z)
	axisYp := s.passable(x, y+skip, z)
	axisYn := s.passable(x, y-skip, z)
	axisZp := s.passable(x, y, z+skip)
	axisZn := s.passable(x, y, z-skip)

	if axisXp {
		buf = addPos(buf, x+skip, y, z)
	}
	if axisXn {
		buf = addPos(buf, x-skip, y, z)
	}
	if axisYp {
		buf = addPos(buf, x, y+skip, z)
	}
	if axisYn {
		buf = addPos(buf, x, y-skip, z)
	}
	if axisZp {
		buf = addPos(buf, x, y, z+skip)
	}
	if axisZn {
		buf = addPos(buf, x, y, z-skip)
	}

	if policy == Never {
		return buf
	}

	// Oxy face diagonals.
	faceXnYn := diagonalAdmissible2D(policy, axisXn, axisYn) && s.passable(x-skip, y-skip, z)
	faceXnYp := diagonalAdmissible2D(policy, axisXn, axisYp) && s.passable(x-skip, y+skip, z)
	faceXpYp := diagonalAdmissible2D(policy, axisXp, axisYp) && s.passable(x+skip, y+skip, z)
	faceXpYn := diagonalAdmissible2D(policy, axisXp, axisYn) && s.passable(x+skip, y-skip, z)
	if faceXnYn {
		buf = addPos(buf, x-skip, y-skip, z)
	}
	if faceXnYp {
		buf = addPos(buf, x-skip, y+skip, z)
	}
	if faceXpYp {
		buf = addPos(buf, x+skip, y+skip, z)
	}
	if faceXpYn {
		buf = addPos(buf, x+skip, y-skip, z)
	}

	// Oxz face diagonals.
	faceXnZn := diagonalAdmissible2D(policy, axisXn, axisZn) && s.passable(x-skip, y, z-skip)
	faceXnZp := diagonalAdmissible2D(policy, axisXn, axisZp) && s.passable(x-skip, y, z+skip)
	faceXpZp := diagonalAdmissible2D(policy, axisXp, axisZp) && s.passable(x+skip, y, z+skip)
	faceXpZn := diagonalAdmissible2D(policy, axisXp, axisZn) && s.passable(x+skip, y, z-skip)
	if faceXnZn {
		buf = addPos(buf, x-skip, y, z-skip)
	}
	if faceXnZp {
		buf = addPos(buf, x-skip, y, z+skip)
	}
	if faceXpZp {
		buf = addPos(buf, x+skip, y, z+skip)
	}
	if faceXpZn {
		buf = addPos(buf, x+skip, y, z-skip)
	}

	// Oyz face diagonals.
	faceYnZn := diagonalAdmissible2D(policy, axisYn, axisZn) && s.passable(x, y-skip, z-skip)
	faceYnZp := diagonalAdmissible2D(policy, axisYn, axisZp) && s.passable(x, y-skip, z+skip)
	faceYpZp := diagonalAdmissible2D(policy, axisYp, axisZp) && s.passable(x, y+skip, z+skip)
	faceYpZn := diagonalAdmissible2D(policy, axisYp, axisZn) && s.passable(x, y+skip, z-skip)
	if faceYnZn {
		buf = addPos(buf, x, y-skip, z-skip)
	}
	if faceYnZp {
		buf = addPos(buf, x, y-skip, z+skip)
	}
	if faceYpZp {
		buf = addPos(buf, x, y+skip, z+skip)
	}
	if faceYpZn {
		buf = addPos(buf, x, y+skip, z-skip)
	}

	// Volume diagonals: the projection set is the three face-diagonals and
	// the three axis neighbours it subsumes (spec.md §4.5).
	type corner struct {
		sx, sy, sz     int32
		axX, axY, axZ  bool
		faXY, faXZ, faYZ bool
	}
	corners := [8]corner{
		{-skip, -skip, -skip, axisXn, axisYn, axisZn, faceXnYn, faceXnZn, faceYnZn},
		{-skip, -skip, skip, axisXn, axisYn, axisZp, faceXnYn, faceXnZp, faceYnZp},
		{-skip, skip, -skip, axisXn, axisYp, axisZn, faceXnYp, faceXnZn, faceYpZn},
		{-skip, skip, skip, axisXn, axisYp, axisZp, faceXnYp, faceXnZp, faceYpZp},
		{skip, -skip, -skip, axisXp, axisYn, axisZn, faceXpYn, faceXpZn, faceYnZn},
		{skip, -skip, skip, axisXp, axisYn, axisZp, faceXpYn, faceXpZp, faceYnZp},
		{skip, skip, -skip, axisXp, axisYp, axisZn, faceXpYp, faceXpZn, faceYpZn},
		{skip, skip, skip, axisXp, axisYp, axisZp, faceXpYp, faceXpZp, faceYpZp},
	}
	for _, c := range corners {
		if diagonalAdmissible3D(policy, c.axX, c.axY, c.axZ, c.faXY, c.faXZ, c.faYZ) &&
			s.passable(x+c.sx, y+c.sy, z+c.sz) {
			buf = addPos(buf, x+c.sx, y+c.sy, z+c.sz)
		}
	}

	return buf
}

// --- parented regime (spec.md §4.5 "Parented regime") -----------------

func (s *Searcher) findNeighboursParented(buf []Position, x, y, z, dx, dy, dz int32) []Position {
	policy := s.policy
	grid := s.passable

	switch axisCount(dx, dy, dz) {
	case 3:
		if policy == Never {
			return buf
		}
		// 1D natural continuations.
		buf = s.addIfPassable(buf, x+dx, y, z)
		buf = s.addIfPassable(buf, x, y+dy, z)
		buf = s.addIfPassable(buf, x, y, z+dz)

		// 2D natural continuations + forced (Oxy, Oxz, Oyz).
		buf = s.addIfPassable(buf, x+dx, y+dy, z)
		if diag2Admissible(policy, grid, x, y, z, dx, dy, 0) {
			if grid(x-dx, y+dy, z) && !grid(x-dx, y, z) && !grid(x-dx, y, z-dz) {
				buf = addPos(buf, x-dx, y+dy, z)
			}
			if grid(x+dx, y-dy, z) && !grid(x, y-dy, z) && !grid(x, y-dy, z-dz) {
				buf = addPos(buf, x+dx, y-dy, z)
			}
		}

		buf = s.addIfPassable(buf, x+dx, y, z+dz)
		if diag2Admissible(policy, grid, x, y, z, dx, 0, dz) {
			if grid(x-dx, y, z+dz) && !grid(x-dx, y, z) && !grid(x-dx, y-dy, z) {
				buf = addPos(buf, x-dx, y, z+dz)
			}
			if grid(x+dx, y, z-dz) && !grid(x, y, z-dz) && !grid(x, y-dy, z-dz) {
				buf = addPos(buf, x+dx, y, z-dz)
			}
		}

		buf = s.addIfPassable(buf, x, y+dy, z+dz)
		if diag2Admissible(policy, grid, x, y, z, 0, dy, dz) {
			if grid(x, y-dy, z+dz) && !grid(x, y-dy, z) && !grid(x-dx, y-dy, z) {
				buf = addPos(buf, x, y-dy, z+dz)
			}
			if grid(x, y+dy, z-dz) && !grid(x, y, z-dz) && !grid(x-dx, y, z-dz) {
				buf = addPos(buf, x, y+dy, z-dz)
			}
		}

		// 3D natural continuation + forced.
		if diag3Admissible(policy, grid, x, y, z, dx, dy, dz) {
			buf = s.addIfPassable(buf, x+dx, y+dy, z+dz)
			if grid(x+dx, y+dy, z-dz) && !grid(x, y, z-dz) {
				buf = addPos(buf, x+dx, y+dy, z-dz)
			}
			if grid(x+dx, y-dy, z+dz) && !grid(x, y-dy, z) {
				buf = addPos(buf, x+dx, y-dy, z+dz)
			}
			if grid(x-dx, y+dy, z+dz) && !grid(x-dx, y, z) {
				buf = addPos(buf, x-dx, y+dy, z+dz)
			}
			if grid(x+dx, y-dy, z-dz) && !grid(x, y-dy, z-dz) && !grid(x, y-dy, z) && !grid(x, y, z-dz) {
				buf = addPos(buf, x+dx, y-dy, z-dz)
			}
			if grid(x-dx, y+dy, z-dz) && !grid(x-dx, y, z-dz) && !grid(x-dx, y, z) && !grid(x, y, z-dz) {
				buf = addPos(buf, x-dx, y+dy, z-dz)
			}
			if grid(x-dx, y-dy, z+dz) && !grid(x-dx, y-dy, z) && !grid(x-dx, y, z) && !grid(x, y-dy, z) {
				buf = addPos(buf, x-dx, y-dy, z+dz)
			}
		}

	case 2:
		if policy == Never {
			return buf
		}
		switch {
		case dx != 0 && dy != 0:
			buf = s.add2DFace(buf, x, y, z, dx, dy, 0)
		case dx != 0 && dz != 0:
			buf = s.add2DFace(buf, x, y, z, dx, 0, dz)
		default:
			buf = s.add2DFace(buf, x, y, z, 0, dy, dz)
		}

	default: // axis move
		switch {
		case dx != 0:
			buf = s.add1DAxis(buf, x, y, z, dx, 0, 0)
		case dy != 0:
			buf = s.add1DAxis(buf, x, y, z, 0, dy, 0)
		default:
			buf = s.add1DAxis(buf, x, y, z, 0, 0, dz)
		}
	}

	return buf
}

// diag2Admissible checks the flanking axis pair for a 2-D diagonal move
// under the configured policy; for Always it's unconditional, matching the
// original's unconditional forced-neighbour tests.
func diag2Admissible(policy DiagonalPolicy, grid func(x, y, z int32) bool, x, y, z, dx, dy, dz int32) bool {
	if policy == Always {
		return true
	}
	var f1, f2 bool
	if dx == 0 {
		f1 = grid(x, y+dy, z)
		f2 = grid(x, y, z+dz)
	} else {
		f1 = grid(x+dx, y, z)
		f2 = grid(x, y+dy, z+dz)
	}
	return diagonalAdmissible2D(policy, f1, f2)
}

func diag3Admissible(policy DiagonalPolicy, grid func(x, y, z int32) bool, x, y, z, dx, dy, dz int32) bool {
	if policy == Always {
		return true
	}
	axisX := grid(x+dx, y, z)
	axisY := grid(x, y+dy, z)
	axisZ := grid(x, y, z+dz)
	faceXY := grid(x+dx, y+dy, z)
	faceXZ := grid(x+dx, y, z+dz)
	faceYZ := grid(x, y+dy, z+dz)
	return diagonalAdmissible3D(policy, axisX, axisY, axisZ, faceXY, faceXZ, faceYZ)
}

// add2DFace handles an arriving 2-D face-diagonal move (exactly one of
// dx,dy,dz is zero), generalizing jumpXY/jumpXZ/jumpYZ's parented
// FindNeighbours branch over whichever two axes are moving.
func (s *Searcher) add2DFace(buf []Position, x, y, z, dx, dy, dz int32) []Position {
	grid := s.passable
	skip := s.skip
	policy := s.policy

	// Identify the two moving axes and the one orthogonal (out-of-plane)
	// axis, matching the XY/XZ/YZ cases by permutation.
	switch {
	case dz == 0: // Oxy
		buf = s.addIfPassable(buf, x+dx, y, z)
		buf = s.addIfPassable(buf, x, y+dy, z)
		if diag2Admissible(policy, grid, x, y, z, dx, dy, 0) {
			buf = s.addIfPassable(buf, x+dx, y+dy, z)
			if grid(x-dx, y+dy, z) && !grid(x-dx, y, z) {
				buf = addPos(buf, x-dx, y+dy, z)
			}
			if grid(x+dx, y-dy, z) && !grid(x, y-dy, z) {
				buf = addPos(buf, x+dx, y-dy, z)
			}
		}
		for _, tdz := range [2]int32{-skip, skip} {
			if grid(x, y, z+tdz) {
				continue
			}
			buf = s.addIfPassable(buf, x, y+dy, z+tdz)
			buf = s.addIfPassable(buf, x+dx, y, z+tdz)
			buf = s.addIfPassable(buf, x+dx, y+dy, z+tdz)
			if grid(x-dx, y+dy, z+tdz) && !grid(x-dx, y, z+tdz) && !grid(x-dx, y, z) {
				buf = addPos(buf, x-dx, y+dy, z+tdz)
			}
			if grid(x+dx, y-dy, z+tdz) && !grid(x, y-dy, z+tdz) && !grid(x, y-dy, z) {
				buf = addPos(buf, x+dx, y-dy, z+tdz)
			}
		}
	case dy == 0: // Oxz
		buf = s.addIfPassable(buf, x+dx, y, z)
		buf = s.addIfPassable(buf, x, y, z+dz)
		if diag2Admissible(policy, grid, x, y, z, dx, 0, dz) {
			buf = s.addIfPassable(buf, x+dx, y, z+dz)
			if grid(x-dx, y, z+dz) && !grid(x-dx, y, z) {
				buf = addPos(buf, x-dx, y, z+dz)
			}
			if grid(x+dx, y, z-dz) && !grid(x, y, z-dz) {
				buf = addPos(buf, x+dx, y, z-dz)
			}
		}
		for _, tdy := range [2]int32{-skip, skip} {
			if grid(x, y+tdy, z) {
				continue
			}
			buf = s.addIfPassable(buf, x+dx, y+tdy, z)
			buf = s.addIfPassable(buf, x, y+tdy, z+dz)
			buf = s.addIfPassable(buf, x+dx, y+tdy, z+dz)
			if grid(x-dx, y+tdy, z+dz) && !grid(x-dx, y+tdy, z) && !grid(x-dx, y, z) {
				buf = addPos(buf, x-dx, y+tdy, z+dz)
			}
			if grid(x+dx, y+tdy, z-dz) && !grid(x, y+tdy, z-dz) && !grid(x, y, z-dz) {
				buf = addPos(buf, x+dx, y+tdy, z-dz)
			}
		}
	default: // Oyz
		buf = s.addIfPassable(buf, x, y+dy, z)
		buf = s.addIfPassable(buf, x, y, z+dz)
		if diag2Admissible(policy, grid, x, y, z, 0, dy, dz) {
			buf = s.addIfPassable(buf, x, y+dy, z+dz)
			if grid(x, y-dy, z+dz) && !grid(x, y-dy, z) {
				buf = addPos(buf, x, y-dy, z+dz)
			}
			if grid(x, y+dy, z-dz) && !grid(x, y, z-dz) {
				buf = addPos(buf, x, y+dy, z-dz)
			}
		}
		for _, tdx := range [2]int32{-skip, skip} {
			if grid(x+tdx, y, z) {
				continue
			}
			buf = s.addIfPassable(buf, x+tdx, y+dy, z)
			buf = s.addIfPassable(buf, x+tdx, y, z+dz)
			buf = s.addIfPassable(buf, x+tdx, y+dy, z+dz)
			if grid(x+tdx, y-dy, z+dz) && !grid(x+tdx, y-dy, z) && !grid(x, y-dy, z) {
				buf = addPos(buf, x+tdx, y-dy, z+dz)
			}
			if grid(x+tdx, y+dy, z-dz) && !grid(x+tdx, y, z-dz) && !grid(x, y, z-dz) {
				buf = addPos(buf, x+tdx, y+dy, z-dz)
			}
		}
	}
	return buf
}

// add1DAxis handles an arriving axis move (exactly one of dx,dy,dz is
// non-zero), generalizing the dx/dy/dz-only branches of the original's
// parented FindNeighbours.
func (s *Searcher) add1DAxis(buf []Position, x, y, z, dx, dy, dz int32) []Position {
	grid := s.passable
	skip := s.skip

	buf = s.addIfPassable(buf, x+dx, y+dy, z+dz)

	// The two axes orthogonal to the direction of travel.
	var o1dx, o1dy, o1dz int32 // first orthogonal axis unit
	var o2dx, o2dy, o2dz int32 // second orthogonal axis unit
	switch {
	case dx != 0:
		o1dx, o1dy, o1dz = 0, skip, 0
		o2dx, o2dy, o2dz = 0, 0, skip
	case dy != 0:
		o1dx, o1dy, o1dz = skip, 0, 0
		o2dx, o2dy, o2dz = 0, 0, skip
	default:
		o1dx, o1dy, o1dz = skip, 0, 0
		o2dx, o2dy, o2dz = 0, skip, 0
	}

	for _, s1 := range [2]int32{1, -1} {
		t1x, t1y, t1z := s1*o1dx, s1*o1dy, s1*o1dz
		cx, cy, cz := x+dx+t1x, y+dy+t1y, z+dz+t1z
		bx, by, bz := x+t1x, y+t1y, z+t1z
		if grid(cx, cy, cz) && !grid(bx, by, bz) {
			buf = addPos(buf, cx, cy, cz)
		}
	}

	for _, tO := range [2]int32{1, -1} {
		ox, oy, oz := tO*o2dx, tO*o2dy, tO*o2dz
		if grid(x+ox, y+oy, z+oz) {
			continue
		}
		buf = s.addIfPassable(buf, x+dx+ox, y+dy+oy, z+dz+oz)
		for _, s1 := range [2]int32{1, -1} {
			t1x, t1y, t1z := s1*o1dx, s1*o1dy, s1*o1dz
			cx, cy, cz := x+dx+t1x+ox, y+dy+t1y+oy, z+dz+t1z+oz
			bx, by, bz := x+t1x+ox, y+t1y+oy, z+t1z+oz
			if grid(cx, cy, cz) && !grid(bx, by, bz) {
				buf = addPos(buf, cx, cy, cz)
			}
		}
	}

	return buf
}
