package bitgrid

import "iter"

// Drain yields the set cell indices of g in ascending order by popping the
// lowest set bit until g is empty. The sequence is one-shot: it consumes g,
// and stopping early leaves the remaining cells in place.
func Drain[G Board[G]](g G) iter.Seq[int] {
	return func(yield func(int) bool) {
		for g.Any() {
			if !yield(g.PopLSB()) {
				return
			}
		}
	}
}

// Cells yields the set cell indices of g without modifying it.
func Cells[G Board[G]](g G) iter.Seq[int] {
	return Drain(g.Clone())
}

// Indices collects the set cell indices of g in ascending order.
func Indices[G Board[G]](g G) []int {
	out := make([]int, 0, g.Count())
	for i := range Cells(g) {
		out = append(out, i)
	}
	return out
}
