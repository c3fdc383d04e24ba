package bitgrid

import "iter"

// Shape-derived masks are built with the shift engine rather than by
// setting cells one at a time, so every backend exercises the same
// shift/subtract path.

// lowRun returns a grid with the low n storage bits set: (1<<n)-1.
func lowRun[G Board[G]](g G, n int) G {
	m := g.EmptyLike()
	m.Set(0)
	m.ShlAssign(n)
	m.SubAssign(1)
	return m
}

// stride returns a grid with count bits set, step apart, starting at 0.
func stride[G Board[G]](g G, count, step int) G {
	m := g.EmptyLike()
	for k := range count {
		m.Set(k * step)
	}
	return m
}

func rowMask[G Board[G]](g G, y uint8) G {
	s := g.Shape()
	var m G
	if s.ColumnMajor {
		m = stride(g, int(s.Width), int(s.Height))
		m.ShlAssign(int(y))
	} else {
		m = lowRun(g, int(s.Width))
		m.ShlAssign(int(y) * int(s.Width))
	}
	return m
}

func colMask[G Board[G]](g G, x uint8) G {
	s := g.Shape()
	var m G
	if s.ColumnMajor {
		m = lowRun(g, int(s.Height))
		m.ShlAssign(int(x) * int(s.Height))
	} else {
		m = stride(g, int(s.Height), int(s.Width))
		m.ShlAssign(int(x))
	}
	return m
}

func fullMask[G Board[G]](g G) G {
	return lowRun(g, g.Shape().Squares())
}

func bordersMask[G Board[G]](g G) G {
	s := g.Shape()
	m := colMask(g, 0)
	m.OrWith(colMask(g, s.Width-1))
	m.OrWith(rowMask(g, 0))
	m.OrWith(rowMask(g, s.Height-1))
	return m
}

// Subsets yields every subset of mask in increasing storage order, the
// empty set first. Depositing a counter into the mask walks the same
// sequence as the carry-rippler (sub - mask) & mask, without needing
// grid-by-grid subtraction. The consumer owns each yielded grid.
func Subsets[G Board[G]](mask G) iter.Seq[G] {
	return func(yield func(G) bool) {
		n := mask.Count()
		lane := []uint64{0}
		for {
			if !yield(mask.PdepLane(lane)) {
				return
			}
			lane[0]++
			if lane[0] == 0 || (n < 64 && lane[0] >= 1<<uint(n)) {
				return
			}
		}
	}
}
