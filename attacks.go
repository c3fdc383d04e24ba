package bitgrid

// lineKind identifies which board line an offset travels along.
type lineKind uint8

const (
	lineNone lineKind = iota
	lineRow
	lineCol
	lineDiagInc
	lineDiagDec
)

// classifyOffset returns the line an offset moves along and the signed
// step it makes in that line's lane. Lane positions follow storage order,
// which for every line but the decreasing diagonal is increasing x (rows,
// increasing diagonals) or y (columns). The decreasing diagonal runs with
// y in row-major storage and with x in column-major storage.
func classifyOffset(s Shape, o Offset) (lineKind, int) {
	switch {
	case o.DX == 0 && o.DY == 0:
		return lineNone, 0
	case o.DY == 0:
		return lineRow, o.DX
	case o.DX == 0:
		return lineCol, o.DY
	case o.DX == o.DY:
		return lineDiagInc, o.DX
	case o.DX == -o.DY:
		if s.ColumnMajor {
			return lineDiagDec, o.DX
		}
		return lineDiagDec, o.DY
	default:
		return lineNone, 0
	}
}

// lanePosition returns where (x,y) sits inside the lane of the given line.
func lanePosition(s Shape, kind lineKind, x, y int) int {
	switch kind {
	case lineRow:
		return x
	case lineCol:
		return y
	case lineDiagInc:
		return min(x, y)
	case lineDiagDec:
		c := x + y
		if s.ColumnMajor {
			return x - max(0, c-(int(s.Height)-1))
		}
		return y - max(0, c-(int(s.Width)-1))
	default:
		return -1
	}
}

// lineMask returns the cells of the line of the given kind through (x,y).
func lineMask[G Board[G]](proto G, kind lineKind, x, y uint8) G {
	switch kind {
	case lineRow:
		return proto.RowMask(y)
	case lineCol:
		return proto.ColMask(x)
	case lineDiagInc:
		return diagMask(proto, int(x), int(y), 1)
	default:
		return diagMask(proto, int(x), int(y), -1)
	}
}

// diagMask steps from (x,y) in both directions along (1,dy) and returns
// every visited cell, (x,y) included.
func diagMask[G Board[G]](proto G, x, y, dy int) G {
	s := proto.Shape()
	m := proto.EmptyLike()
	m.Set(s.Index(uint8(x), uint8(y)))
	for _, dir := range [2]int{1, -1} {
		for nx, ny := x+dir, y+dir*dy; s.InBounds(nx, ny); nx, ny = nx+dir, ny+dir*dy {
			m.Set(s.Index(uint8(nx), uint8(ny)))
		}
	}
	return m
}

// stepRay marks cells from sq along o until the board edge or the first
// occupied cell, which is included.
func stepRay[G Board[G]](out, occupied G, sq int, o Offset) {
	s := out.Shape()
	x, y := s.Coords(sq)
	for nx, ny := int(x)+o.DX, int(y)+o.DY; s.InBounds(nx, ny); nx, ny = nx+o.DX, ny+o.DY {
		i := s.Index(uint8(nx), uint8(ny))
		out.Set(i)
		if occupied.Get(i) {
			return
		}
	}
}

// SlidingAttacks returns the cells reachable from sq by repeating each
// offset until the edge of the board. An occupied cell stops the ray and is
// itself included. The origin is never part of the result.
func SlidingAttacks[G Board[G]](occupied G, sq int, offsets []Offset) G {
	out := occupied.EmptyLike()
	for _, o := range offsets {
		if o.DX == 0 && o.DY == 0 {
			continue
		}
		stepRay(out, occupied, sq, o)
	}
	return out
}

// SlidingAttacksLanes computes the same set as SlidingAttacks. Offsets along
// a row, column or diagonal are walked on the extracted lane of that line
// and deposited back in one step; other offsets fall back to coordinate
// stepping.
func SlidingAttacksLanes[G Board[G]](occupied G, sq int, offsets []Offset) G {
	s := occupied.Shape()
	x, y := s.Coords(sq)
	out := occupied.EmptyLike()
	for _, o := range offsets {
		kind, step := classifyOffset(s, o)
		if kind == lineNone {
			if o.DX != 0 || o.DY != 0 {
				stepRay(out, occupied, sq, o)
			}
			continue
		}
		mask := lineMask(occupied, kind, x, y)
		out.OrWith(mask.PdepLane(walkLane(occupied.PextLane(mask), mask.Count(),
			lanePosition(s, kind, int(x), int(y)), step)))
	}
	return out
}

// walkLane returns a lane with the positions reached from pos by step,
// stopping after the first position set in occ.
func walkLane(occ []uint64, n, pos, step int) []uint64 {
	lane := make([]uint64, len(occ))
	for p := pos + step; p >= 0 && p < n; p += step {
		lane[p>>6] |= 1 << uint(p&63)
		if occ[p>>6]>>uint(p&63)&1 == 1 {
			break
		}
	}
	return lane
}

// JumpAttacks returns the destinations of each single offset from sq that
// land on the board.
func JumpAttacks[G Board[G]](proto G, sq int, offsets []Offset) G {
	s := proto.Shape()
	x, y := s.Coords(sq)
	out := proto.EmptyLike()
	for _, o := range offsets {
		if nx, ny := int(x)+o.DX, int(y)+o.DY; s.InBounds(nx, ny) {
			out.Set(s.Index(uint8(nx), uint8(ny)))
		}
	}
	return out
}

// SlidingAttackTable returns the empty-board sliding attacks for every
// square, indexed by linear square index.
func SlidingAttackTable[G Board[G]](proto G, offsets []Offset) []G {
	empty := proto.EmptyLike()
	table := make([]G, proto.Shape().Squares())
	for sq := range table {
		table[sq] = SlidingAttacks(empty, sq, offsets)
	}
	return table
}

// SlidingAttackTableLanes builds the same table as SlidingAttackTable with
// the lane-based walker.
func SlidingAttackTableLanes[G Board[G]](proto G, offsets []Offset) []G {
	empty := proto.EmptyLike()
	table := make([]G, proto.Shape().Squares())
	for sq := range table {
		table[sq] = SlidingAttacksLanes(empty, sq, offsets)
	}
	return table
}

// JumpAttackTable returns the jump destinations for every square.
func JumpAttackTable[G Board[G]](proto G, offsets []Offset) []G {
	table := make([]G, proto.Shape().Squares())
	for sq := range table {
		table[sq] = JumpAttacks(proto, sq, offsets)
	}
	return table
}
