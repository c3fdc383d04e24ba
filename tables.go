package bitgrid

// Tables holds the masks and per-square lookup tables derived from a grid
// shape. It is built eagerly by NewTables and never modified afterwards, so
// it is safe for concurrent use. Grids returned by its accessors are shared:
// clone them before mutating.
type Tables[G Board[G]] struct {
	shape Shape

	empty   G
	full    G
	rows    []G
	cols    []G
	borders G
	noWrap  [8]G

	rays      [8][]G
	diagInc   []G
	diagDec   []G
	ortho     []G
	diagonal  []G
	neighbors []G

	center    G
	even      G
	odd       G
	corners   G
	northHalf G
	southHalf G
	westHalf  G
	eastHalf  G
}

// NewTables builds every table for the shape of proto. The contents of
// proto are ignored.
func NewTables[G Board[G]](proto G) *Tables[G] {
	s := proto.Shape()
	n := s.Squares()
	t := &Tables[G]{
		shape:   s,
		empty:   proto.EmptyLike(),
		full:    proto.FullLike(),
		rows:    make([]G, s.Height),
		cols:    make([]G, s.Width),
		borders: proto.Borders(),
	}

	for y := range t.rows {
		t.rows[y] = proto.RowMask(uint8(y))
	}
	for x := range t.cols {
		t.cols[x] = proto.ColMask(uint8(x))
	}

	north, south := t.rows[s.Height-1], t.rows[0]
	west, east := t.cols[0], t.cols[s.Width-1]
	edge := [8]G{
		North:     north,
		NorthEast: north.Or(east),
		East:      east,
		SouthEast: south.Or(east),
		South:     south,
		SouthWest: south.Or(west),
		West:      west,
		NorthWest: north.Or(west),
	}
	for d, e := range edge {
		t.noWrap[d] = t.full.AndNot(e)
	}

	for _, d := range Directions {
		step := []Offset{d.Offset()}
		t.rays[d] = SlidingAttackTable(proto, step)
	}

	t.diagInc = make([]G, n)
	t.diagDec = make([]G, n)
	for sq := range n {
		x, y := s.Coords(sq)
		t.diagInc[sq] = diagMask(proto, int(x), int(y), 1)
		t.diagDec[sq] = diagMask(proto, int(x), int(y), -1)
	}

	t.ortho = JumpAttackTable(proto, RookOffsets)
	t.diagonal = JumpAttackTable(proto, BishopOffsets)
	t.neighbors = make([]G, n)
	for sq := range n {
		t.neighbors[sq] = t.ortho[sq].Or(t.diagonal[sq])
	}

	t.buildRegions(proto)
	return t
}

// buildRegions fills the parity, center, corner and half-board masks. For
// an odd dimension the middle line belongs to neither half.
func (t *Tables[G]) buildRegions(proto G) {
	s := t.shape
	w, h := int(s.Width), int(s.Height)
	cx0, cx1 := (w-1)/2, w/2
	cy0, cy1 := (h-1)/2, h/2

	t.center = proto.EmptyLike()
	t.even = proto.EmptyLike()
	t.odd = proto.EmptyLike()
	t.corners = proto.EmptyLike()
	t.northHalf = proto.EmptyLike()
	t.southHalf = proto.EmptyLike()
	t.westHalf = proto.EmptyLike()
	t.eastHalf = proto.EmptyLike()

	for y := range h {
		for x := range w {
			i := s.Index(uint8(x), uint8(y))
			if (x == cx0 || x == cx1) && (y == cy0 || y == cy1) {
				t.center.Set(i)
			}
			if (x+y)%2 == 0 {
				t.even.Set(i)
			} else {
				t.odd.Set(i)
			}
			if (x == 0 || x == w-1) && (y == 0 || y == h-1) {
				t.corners.Set(i)
			}
			switch {
			case y < h/2:
				t.southHalf.Set(i)
			case y >= h/2+h%2:
				t.northHalf.Set(i)
			}
			switch {
			case x < w/2:
				t.westHalf.Set(i)
			case x >= w/2+w%2:
				t.eastHalf.Set(i)
			}
		}
	}
}

// Shape returns the shape the tables were built for.
func (t *Tables[G]) Shape() Shape { return t.shape }

func (t *Tables[G]) Empty() G       { return t.empty }
func (t *Tables[G]) Full() G        { return t.full }
func (t *Tables[G]) Row(y uint8) G  { return t.rows[y] }
func (t *Tables[G]) Col(x uint8) G  { return t.cols[x] }
func (t *Tables[G]) Borders() G     { return t.borders }
func (t *Tables[G]) NorthBorder() G { return t.rows[t.shape.Height-1] }
func (t *Tables[G]) SouthBorder() G { return t.rows[0] }
func (t *Tables[G]) WestBorder() G  { return t.cols[0] }
func (t *Tables[G]) EastBorder() G  { return t.cols[t.shape.Width-1] }

// NoWrap returns the mask applied before shifting one step toward d: every
// cell except the edge the step would cross.
func (t *Tables[G]) NoWrap(d Direction) G { return t.noWrap[d&7] }

// Ray returns the cells strictly beyond sq toward d, out to the edge.
func (t *Tables[G]) Ray(d Direction, sq int) G { return t.rays[d&7][sq] }

// DiagInc returns the cells sharing x-y with sq, sq included.
func (t *Tables[G]) DiagInc(sq int) G { return t.diagInc[sq] }

// DiagDec returns the cells sharing x+y with sq, sq included.
func (t *Tables[G]) DiagDec(sq int) G { return t.diagDec[sq] }

func (t *Tables[G]) NeighborsOrtho(sq int) G { return t.ortho[sq] }
func (t *Tables[G]) NeighborsDiag(sq int) G  { return t.diagonal[sq] }
func (t *Tables[G]) Neighbors(sq int) G      { return t.neighbors[sq] }

// Center returns the one, two or four middle cells depending on the parity
// of each dimension.
func (t *Tables[G]) Center() G    { return t.center }
func (t *Tables[G]) Even() G      { return t.even }
func (t *Tables[G]) Odd() G       { return t.odd }
func (t *Tables[G]) Corners() G   { return t.corners }
func (t *Tables[G]) NorthHalf() G { return t.northHalf }
func (t *Tables[G]) SouthHalf() G { return t.southHalf }
func (t *Tables[G]) WestHalf() G  { return t.westHalf }
func (t *Tables[G]) EastHalf() G  { return t.eastHalf }

// RayBetween returns the cells strictly between from and to when they share
// a row, column or diagonal, and the empty grid otherwise.
func (t *Tables[G]) RayBetween(from, to int) G {
	fx, fy := t.shape.Coords(from)
	tx, ty := t.shape.Coords(to)
	dx, dy := int(tx)-int(fx), int(ty)-int(fy)
	if (dx == 0 && dy == 0) || (dx != 0 && dy != 0 && abs(dx) != abs(dy)) {
		return t.empty.Clone()
	}
	d := directionOf(sign(dx), sign(dy))
	return t.rays[d][from].And(t.rays[d.Opposite()][to])
}

// Shift moves every cell one step toward d. Cells that would leave the
// board are dropped instead of wrapping into the next row or column.
func (t *Tables[G]) Shift(g G, d Direction) G {
	out := g.And(t.noWrap[d&7])
	o := d.Offset()
	if delta := t.shape.OffsetIndex(o.DX, o.DY); delta > 0 {
		out.ShlAssign(delta)
	} else {
		out.ShrAssign(-delta)
	}
	return out
}

func (t *Tables[G]) ShiftN(g G) G  { return t.Shift(g, North) }
func (t *Tables[G]) ShiftS(g G) G  { return t.Shift(g, South) }
func (t *Tables[G]) ShiftE(g G) G  { return t.Shift(g, East) }
func (t *Tables[G]) ShiftW(g G) G  { return t.Shift(g, West) }
func (t *Tables[G]) ShiftNE(g G) G { return t.Shift(g, NorthEast) }
func (t *Tables[G]) ShiftNW(g G) G { return t.Shift(g, NorthWest) }
func (t *Tables[G]) ShiftSE(g G) G { return t.Shift(g, SouthEast) }
func (t *Tables[G]) ShiftSW(g G) G { return t.Shift(g, SouthWest) }

// HasAlignment reports whether g holds n consecutive set cells along a row,
// a column or either diagonal.
func (t *Tables[G]) HasAlignment(g G, n int) bool {
	if n <= 0 {
		return true
	}
	for _, d := range [4]Direction{East, North, NorthEast, SouthEast} {
		run := g.Clone()
		for k := 1; k < n && run.Any(); k++ {
			run = t.Shift(run, d)
			run.AndWith(g)
		}
		if run.Any() {
			return true
		}
	}
	return false
}

// ExtractDiagInc packs the increasing diagonal through sq into a lane,
// lowest storage index first.
func (t *Tables[G]) ExtractDiagInc(g G, sq int) []uint64 { return g.PextLane(t.diagInc[sq]) }

// ExtractDiagDec packs the decreasing diagonal through sq into a lane.
func (t *Tables[G]) ExtractDiagDec(g G, sq int) []uint64 { return g.PextLane(t.diagDec[sq]) }

// InsertDiagInc overwrites the increasing diagonal through sq with lane.
func (t *Tables[G]) InsertDiagInc(g G, sq int, lane []uint64) {
	insertLane(g, t.diagInc[sq], lane)
}

// InsertDiagDec overwrites the decreasing diagonal through sq with lane.
func (t *Tables[G]) InsertDiagDec(g G, sq int, lane []uint64) {
	insertLane(g, t.diagDec[sq], lane)
}

func insertLane[G Board[G]](g, mask G, lane []uint64) {
	g.AndNotWith(mask)
	g.OrWith(mask.PdepLane(lane))
}

func directionOf(dx, dy int) Direction {
	for _, d := range Directions {
		if o := d.Offset(); o.DX == dx && o.DY == dy {
			return d
		}
	}
	return North
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
