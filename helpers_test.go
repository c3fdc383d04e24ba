package bitgrid

import (
	"math/rand"
	"testing"
)

// testShapes covers every storage class, both layouts and the degenerate
// one-wide boards.
var testShapes = []Shape{
	{Width: 1, Height: 1},
	{Width: 3, Height: 2},
	{Width: 4, Height: 4, ColumnMajor: true},
	{Width: 5, Height: 6},
	{Width: 8, Height: 8},
	{Width: 8, Height: 8, ColumnMajor: true},
	{Width: 7, Height: 9, ColumnMajor: true},
	{Width: 64, Height: 1},
	{Width: 1, Height: 64, ColumnMajor: true},
	{Width: 13, Height: 5},
	{Width: 8, Height: 16, ColumnMajor: true},
	{Width: 11, Height: 11},
	{Width: 128, Height: 1},
	{Width: 19, Height: 19},
	{Width: 19, Height: 19, ColumnMajor: true},
	{Width: 70, Height: 3, ColumnMajor: true},
}

// forEachBackend runs the matching check for every backend able to hold s.
func forEachBackend(t *testing.T, s Shape,
	word func(*testing.T, *Word),
	dw func(*testing.T, *DoubleWord),
	arr func(*testing.T, *WordArray),
) {
	t.Helper()
	t.Run(s.String(), func(t *testing.T) {
		if s.Squares() <= 64 {
			t.Run("word", func(t *testing.T) { word(t, EmptyWord(s.Width, s.Height, s.ColumnMajor)) })
		}
		if s.Squares() <= 128 {
			t.Run("doubleword", func(t *testing.T) { dw(t, EmptyDoubleWord(s.Width, s.Height, s.ColumnMajor)) })
		}
		t.Run("wordarray", func(t *testing.T) { arr(t, EmptyWordArray(s.Width, s.Height, s.ColumnMajor)) })
	})
}

// forAllShapes runs forEachBackend over testShapes.
func forAllShapes(t *testing.T,
	word func(*testing.T, *Word),
	dw func(*testing.T, *DoubleWord),
	arr func(*testing.T, *WordArray),
) {
	t.Helper()
	for _, s := range testShapes {
		forEachBackend(t, s, word, dw, arr)
	}
}

// randomGrid returns a grid shaped like proto with each cell set with
// probability p. Padding stays clear.
func randomGrid[G Board[G]](rng *rand.Rand, proto G, p float64) G {
	g := proto.EmptyLike()
	for i := range proto.Shape().Squares() {
		if rng.Float64() < p {
			g.Set(i)
		}
	}
	return g
}

// unionAll ORs the given grids into a fresh grid shaped like proto.
func unionAll[G Board[G]](proto G, grids ...G) G {
	out := proto.EmptyLike()
	for _, g := range grids {
		out.OrWith(g)
	}
	return out
}
