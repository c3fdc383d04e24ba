package bitgrid

import "github.com/hupe1980/bitgrid/internal/bitops"

// ShiftBy translates every cell of g by (dx,dy). Cells that leave the board
// are dropped. Each row (row-major) or column (column-major) is extracted
// as a lane, shifted along its own axis and deposited into its destination
// line, so no cell can wrap into a neighboring line.
func ShiftBy[G Board[G]](g G, dx, dy int) G {
	if dx == 0 && dy == 0 {
		return g.Clone()
	}
	s := g.Shape()
	out := g.EmptyLike()

	// along is the offset inside a lane, across the offset between lanes.
	lanes, length := int(s.Height), int(s.Width)
	along, across := dx, dy
	line := func(k int) G { return g.RowMask(uint8(k)) }
	if s.ColumnMajor {
		lanes, length = int(s.Width), int(s.Height)
		along, across = dy, dx
		line = func(k int) G { return g.ColMask(uint8(k)) }
	}
	if abs(along) >= length || abs(across) >= lanes {
		return out
	}

	keep := make([]uint64, wordsFor(length))
	bitops.FillLow(keep, length)

	for k := max(0, -across); k < min(lanes, lanes-across); k++ {
		lane := g.PextLane(line(k))
		if along > 0 {
			bitops.ShlWords(lane, along)
		} else {
			bitops.ShrWords(lane, -along)
		}
		bitops.AndWords(lane, keep)
		out.OrWith(line(k + across).PdepLane(lane))
	}
	return out
}

// ShiftScanline is the cell-by-cell reference for ShiftBy.
func ShiftScanline[G Board[G]](g G, dx, dy int) G {
	s := g.Shape()
	out := g.EmptyLike()
	for i := range s.Squares() {
		if !g.Get(i) {
			continue
		}
		x, y := s.Coords(i)
		if nx, ny := int(x)+dx, int(y)+dy; s.InBounds(nx, ny) {
			out.Set(s.Index(uint8(nx), uint8(ny)))
		}
	}
	return out
}
