package jps3d

// jump dispatches on the direction cand-src to one of the seven jump
// routines, mirroring original_source/Searcher.h::Jump. The original
// computes dy as Cur.x - Src.y (a bug); spec.md §9 requires the fix,
// applied below.
func (s *Searcher) jump(cand, src Position) Position {
	if !s.grid.Passable(cand.X, cand.Y, cand.Z) {
		return InvalidPosition
	}
	if cand == s.finishPos {
		return cand
	}

	dx := cand.X - src.X
	dy := cand.Y - src.Y
	dz := cand.Z - src.Z

	switch axisCount(dx, dy, dz) {
	case 3:
		return s.jumpXYZ(cand, dx, dy, dz)
	case 2:
		switch {
		case dx != 0 && dy != 0:
			return s.jumpXY(cand, dx, dy)
		case dx != 0 && dz != 0:
			return s.jumpXZ(cand, dx, dz)
		default:
			return s.jumpYZ(cand, dy, dz)
		}
	case 1:
		switch {
		case dx != 0:
			return s.jumpX(cand, dx)
		case dy != 0:
			return s.jumpY(cand, dy)
		default:
			return s.jumpZ(cand, dz)
		}
	default:
		return InvalidPosition
	}
}

// diag3StepOK gates a volume-diagonal advance by the configured
// DiagonalPolicy, per spec.md §9's resolved open question: the original
// only implements this gate in the pruner, leaving the jumper's
// AtLeastOnePassable/AllPassable/Never branches empty. This repo gates both.
func (s *Searcher) diag3StepOK(x, y, z, dx, dy, dz int32) bool {
	if s.policy == Always {
		return true
	}
	g := s.grid.Passable
	return diagonalAdmissible3D(s.policy,
		g(x+dx, y, z), g(x, y+dy, z), g(x, y, z+dz),
		g(x+dx, y+dy, z), g(x+dx, y, z+dz), g(x, y+dy, z+dz))
}

func (s *Searcher) diag2StepOK(x, y, z, dx, dy int32) bool {
	if s.policy == Always {
		return true
	}
	g := s.grid.Passable
	return diagonalAdmissible2D(s.policy, g(x+dx, y, z), g(x, y+dy, z))
}

// jumpXYZ implements the 3-D jump routine (Searcher::jumpXYZ).
func (s *Searcher) jumpXYZ(p Position, dx, dy, dz int32) Position {
	if s.policy == Never {
		return InvalidPosition
	}
	grid := s.grid.Passable

	for {
		if p == s.finishPos {
			return p
		}
		x, y, z := p.X, p.Y, p.Z
		if !s.diag3StepOK(x, y, z, dx, dy, dz) {
			return InvalidPosition
		}

		if grid(x-dx, y+dy, z+dz) && !grid(x-dx, y, z) ||
			grid(x+dx, y-dy, z+dz) && !grid(x, y-dy, z) ||
			grid(x+dx, y+dy, z-dz) && !grid(x, y, z-dz) ||
			grid(x-dx, y-dy, z+dz) && !grid(x-dx, y-dy, z) && !grid(x-dx, y, z) && !grid(x, y-dy, z) ||
			grid(x-dx, y+dy, z-dz) && !grid(x-dx, y, z-dz) && !grid(x-dx, y, z) && !grid(x, y, z-dz) ||
			grid(x+dx, y-dy, z-dz) && !grid(x, y-dy, z-dz) && !grid(x, y-dy, z) && !grid(x, y, z-dz) {
			return p
		}

		if grid(x-dx, y+dy, z) && !grid(x-dx, y, z) && !grid(x-dx, y, z-dz) ||
			grid(x-dx, y, z+dz) && !grid(x-dx, y, z) && !grid(x-dx, y-dy, z) ||
			grid(x+dx, y-dy, z) && !grid(x, y-dy, z) && !grid(x, y-dy, z-dz) ||
			grid(x, y-dy, z+dz) && !grid(x, y-dy, z) && !grid(x-dx, y-dy, z) ||
			grid(x+dx, y, z-dz) && !grid(x, y, z-dz) && !grid(x, y-dy, z-dz) ||
			grid(x, y+dy, z-dz) && !grid(x, y, z-dz) && !grid(x-dx, y, z-dz) {
			return p
		}

		if grid(x+dx, y, z) && s.jumpX(Position{X: x + dx, Y: y, Z: z}, dx).IsValid() {
			return p
		}
		if grid(x, y+dy, z) && s.jumpY(Position{X: x, Y: y + dy, Z: z}, dy).IsValid() {
			return p
		}
		if grid(x, y, z+dz) && s.jumpZ(Position{X: x, Y: y, Z: z + dz}, dz).IsValid() {
			return p
		}
		if grid(x+dx, y+dy, z) && s.jumpXY(Position{X: x + dx, Y: y + dy, Z: z}, dx, dy).IsValid() {
			return p
		}
		if grid(x+dx, y, z+dz) && s.jumpXZ(Position{X: x + dx, Y: y, Z: z + dz}, dx, dz).IsValid() {
			return p
		}
		if grid(x, y+dy, z+dz) && s.jumpYZ(Position{X: x, Y: y + dy, Z: z + dz}, dy, dz).IsValid() {
			return p
		}

		if grid(x+dx, y+dy, z+dz) {
			p = Position{X: x + dx, Y: y + dy, Z: z + dz}
		} else {
			return InvalidPosition
		}
	}
}

// jump2DFace implements jumpXY/jumpXZ/jumpYZ, generalized over which two
// axes move (axis selects the convention: 0 => X,Y move and Z is fixed,
// 1 => X,Z move and Y is fixed, 2 => Y,Z move and X is fixed). This
// collapses the three near-identical C++ routines into one, per spec.md
// §9's suggestion to factor duplicated jump code over a direction type.
func (s *Searcher) jump2DFace(p Position, da, db int32, axis int) Position {
	if s.policy == Never {
		return InvalidPosition
	}
	skip := s.skip
	g := func(a, b, c int32) bool {
		x, y, z := posByAxisPair(a, b, c, axis)
		return s.grid.Passable(x, y, z)
	}

	for {
		if p == s.finishPos {
			return p
		}
		a, b, c := splitByAxisPair(p, axis)

		if s.policy != Always && !diagonalAdmissible2D(s.policy, g(a+da, b, c), g(a, b+db, c)) {
			return InvalidPosition
		}

		if g(a-da, b+db, c) && !g(a-da, b, c) ||
			g(a+da, b-db, c) && !g(a, b-db, c) {
			return p
		}

		forced := false
		for _, tdc := range [2]int32{-skip, skip} {
			if !g(a, b, c+tdc) {
				if g(a+da, b, c+tdc) ||
					g(a, b+db, c+tdc) ||
					g(a+da, b+db, c+tdc) ||
					g(a+da, b-db, c+tdc) && !g(a, b-db, c+tdc) && !g(a, b-db, c) ||
					g(a-da, b+db, c+tdc) && !g(a-da, b, c+tdc) && !g(a-da, b, c) {
					forced = true
					break
				}
			}
		}
		if forced {
			return p
		}

		if g(a+da, b, c) {
			jx, jy, jz := posByAxisPair(a+da, b, c, axis)
			if s.jumpByAxisLetter(Position{X: jx, Y: jy, Z: jz}, da, axisPairLetterA(axis)).IsValid() {
				return p
			}
		}
		if g(a, b+db, c) {
			jx, jy, jz := posByAxisPair(a, b+db, c, axis)
			if s.jumpByAxisLetter(Position{X: jx, Y: jy, Z: jz}, db, axisPairLetterB(axis)).IsValid() {
				return p
			}
		}

		if g(a+da, b+db, c) {
			nx, ny, nz := posByAxisPair(a+da, b+db, c, axis)
			p = Position{X: nx, Y: ny, Z: nz}
		} else {
			return InvalidPosition
		}
	}
}

// splitByAxisPair/posByAxisPair implement the axis convention used by
// jump2DFace: axis 0 => (a,b,c)=(X,Y,Z), axis 1 => (a,b,c)=(X,Z,Y),
// axis 2 => (a,b,c)=(Y,Z,X).
func splitByAxisPair(p Position, axis int) (a, b, c int32) {
	switch axis {
	case 0:
		return p.X, p.Y, p.Z
	case 1:
		return p.X, p.Z, p.Y
	default:
		return p.Y, p.Z, p.X
	}
}

func posByAxisPair(a, b, c int32, axis int) (x, y, z int32) {
	switch axis {
	case 0:
		return a, b, c
	case 1:
		return a, c, b
	default:
		return c, a, b
	}
}

func axisPairLetterA(axis int) byte {
	if axis == 2 {
		return 'y'
	}
	return 'x'
}

func axisPairLetterB(axis int) byte {
	if axis == 0 {
		return 'y'
	}
	return 'z'
}

// jumpByAxisLetter dispatches to the correct 1-D jump routine, used by
// jump2DFace's recursion into 1-D sub-directions.
func (s *Searcher) jumpByAxisLetter(p Position, d int32, letter byte) Position {
	switch letter {
	case 'x':
		return s.jumpX(p, d)
	case 'y':
		return s.jumpY(p, d)
	default:
		return s.jumpZ(p, d)
	}
}

func (s *Searcher) jumpXY(p Position, dx, dy int32) Position { return s.jump2DFace(p, dx, dy, 0) }
func (s *Searcher) jumpXZ(p Position, dx, dz int32) Position { return s.jump2DFace(p, dx, dz, 1) }
func (s *Searcher) jumpYZ(p Position, dy, dz int32) Position { return s.jump2DFace(p, dy, dz, 2) }

// jump1DAxis implements jumpX/jumpY/jumpZ, generalized over which axis
// moves (axis 0 => X moves, 1 => Y moves, 2 => Z moves), collapsing the
// three original routines into one per spec.md §9.
func (s *Searcher) jump1DAxis(p Position, d int32, axis int) Position {
	skip := s.skip
	g := func(m, u, v int32) bool {
		x, y, z := posByMovingAxis(m, u, v, axis)
		return s.grid.Passable(x, y, z)
	}
	adm2 := func(f1, f2 bool) bool {
		return s.policy == Always || diagonalAdmissible2D(s.policy, f1, f2)
	}
	adm3 := func(axM, axU, axV, faceMU, faceMV, faceUV bool) bool {
		return s.policy == Always || diagonalAdmissible3D(s.policy, axM, axU, axV, faceMU, faceMV, faceUV)
	}

	for {
		if p == s.finishPos {
			return p
		}
		m, u, v := splitByMovingAxis(p, axis)
		mm := m + d

		axM := g(mm, u, v)
		axUp, axUn := g(m, u+skip, v), g(m, u-skip, v)
		axVp, axVn := g(m, u, v+skip), g(m, u, v-skip)

		forced := adm2(axM, axUp) && g(mm, u+skip, v) && !axUp ||
			adm2(axM, axUn) && g(mm, u-skip, v) && !axUn ||
			adm2(axM, axVp) && g(mm, u, v+skip) && !axVp ||
			adm2(axM, axVn) && g(mm, u, v-skip) && !axVn ||
			adm3(axM, axUp, axVp, g(mm, u+skip, v), g(mm, u, v+skip), g(m, u+skip, v+skip)) &&
				g(mm, u+skip, v+skip) && !g(m, u+skip, v+skip) && !axUp && !axVp ||
			adm3(axM, axUn, axVp, g(mm, u-skip, v), g(mm, u, v+skip), g(m, u-skip, v+skip)) &&
				g(mm, u-skip, v+skip) && !g(m, u-skip, v+skip) && !axUn && !axVp ||
			adm3(axM, axUp, axVn, g(mm, u+skip, v), g(mm, u, v-skip), g(m, u+skip, v-skip)) &&
				g(mm, u+skip, v-skip) && !g(m, u+skip, v-skip) && !axUp && !axVn ||
			adm3(axM, axUn, axVn, g(mm, u-skip, v), g(mm, u, v-skip), g(m, u-skip, v-skip)) &&
				g(mm, u-skip, v-skip) && !g(m, u-skip, v-skip) && !axUn && !axVn

		if forced {
			return p
		}

		if axM {
			nx, ny, nz := posByMovingAxis(mm, u, v, axis)
			p = Position{X: nx, Y: ny, Z: nz}
		} else {
			return InvalidPosition
		}
	}
}

// splitByMovingAxis/posByMovingAxis implement the convention used by
// jump1DAxis: axis 0 => (m,u,v)=(X,Y,Z), axis 1 => (m,u,v)=(Y,X,Z),
// axis 2 => (m,u,v)=(Z,X,Y).
func splitByMovingAxis(p Position, axis int) (m, u, v int32) {
	switch axis {
	case 0:
		return p.X, p.Y, p.Z
	case 1:
		return p.Y, p.X, p.Z
	default:
		return p.Z, p.X, p.Y
	}
}

func posByMovingAxis(m, u, v int32, axis int) (x, y, z int32) {
	switch axis {
	case 0:
		return m, u, v
	case 1:
		return u, m, v
	default:
		return u, v, m
	}
}

func (s *Searcher) jumpX(p Position, dx int32) Position { return s.jump1DAxis(p, dx, 0) }
func (s *Searcher) jumpY(p Position, dy int32) Position { return s.jump1DAxis(p, dy, 1) }
func (s *Searcher) jumpZ(p Position, dz int32) Position { return s.jump1DAxis(p, dz, 2) }
