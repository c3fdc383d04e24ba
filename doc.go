// Package bitgrid provides bit-per-cell grids for board games and other
// 2D grid algorithms, up to 255x255 cells.
//
// # Backends
//
// Three storage backends share one contract (Board and Grid):
//
//	Word        up to 64 cells, one uint64 truncated to 8/16/32/64 bits
//	DoubleWord  up to 128 cells, a uint128.Uint128
//	WordArray   any size, ceil(w*h/64) uint64 words
//
// Pick the backend once with KindFor and use the concrete type afterwards;
// generic helpers are instantiated per backend, so there is no interface
// dispatch in the hot paths.
//
// # Quick Start
//
//	g := bitgrid.EmptyWord(8, 8, false)
//	g.SetXY(3, 3)
//	t := bitgrid.NewTables(g)
//	rook := bitgrid.SlidingAttacks(g.EmptyLike(), 27, bitgrid.RookOffsets)
//	fmt.Println(rook.Equal(t.Ray(bitgrid.North, 27).Or(t.Ray(bitgrid.South, 27)).
//	    Or(t.Ray(bitgrid.East, 27)).Or(t.Ray(bitgrid.West, 27)))) // true
//
// # Layout
//
// The origin (0,0) is the bottom-left cell; x grows east, y grows north.
// Row-major grids store cell (x,y) at bit y*w+x, column-major grids at
// x*h+y. Rows, columns and diagonals are read and written as packed lanes
// through PEXT/PDEP, which makes row and column code independent of the
// layout.
//
// # Extract and deposit
//
// PEXT/PDEP use the BMI2 instructions on x86-64 when the CPU has them and a
// portable loop elsewhere (see internal/bitops). Both produce identical
// bits. Set BITGRID_BITOPS=generic or build with -tags noasm to force the
// portable path.
//
// # Tables
//
// NewTables computes row/column masks, borders, no-wrap masks, the eight
// ray tables, diagonals and neighborhoods for a shape. NewBlockerTable adds
// blocker-aware sliding attacks indexed by PEXT of the occupancy. Both are
// immutable and safe for concurrent reads; TableCache memoizes them per
// shape.
package bitgrid
