package bitgrid

import (
	"math/bits"

	"github.com/hupe1980/bitgrid/internal/bitops"
)

// Word is a grid of at most 64 cells held in a single machine word.
//
// Storage is truncated to the smallest of 8, 16, 32 or 64 bits that holds
// the shape, so Flipped and shifts behave like the native integer of that
// width.
type Word struct {
	shape Shape
	keep  uint64
	bits  uint64
}

var _ Grid[*Word, uint64] = (*Word)(nil)

// NewWord returns a w x h grid holding bits. It panics with
// *ErrCapacityExceeded if w*h > 64.
func NewWord(w, h uint8, columnMajor bool, bits uint64) *Word {
	s := NewShape(w, h, columnMajor)
	mustFit(s, KindWord)
	g := &Word{shape: s, keep: classMask(wordClassBits(s.Squares()))}
	g.bits = bits & g.keep
	return g
}

// EmptyWord returns an empty w x h grid.
func EmptyWord(w, h uint8, columnMajor bool) *Word {
	return NewWord(w, h, columnMajor, 0)
}

// FullWord returns a w x h grid with every cell set.
func FullWord(w, h uint8, columnMajor bool) *Word {
	return EmptyWord(w, h, columnMajor).FullLike()
}

func classMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<uint(n) - 1
}

func (g *Word) with(bits uint64) *Word {
	return &Word{shape: g.shape, keep: g.keep, bits: bits & g.keep}
}

func (g *Word) Shape() Shape       { return g.shape }
func (g *Word) StorageBits() int   { return bits.OnesCount64(g.keep) }
func (g *Word) Storage() uint64    { return g.bits }
func (g *Word) IsEmpty() bool      { return g.bits == 0 }
func (g *Word) Any() bool          { return g.bits != 0 }
func (g *Word) Count() int         { return bits.OnesCount64(g.bits) }
func (g *Word) String() string     { return Render(g) }
func (g *Word) GoString() string   { return RenderDebug(g, "bitgrid.Word") }
func (g *Word) Get(i int) bool     { return g.bits>>uint(i)&1 == 1 }
func (g *Word) Set(i int)          { g.bits |= 1 << uint(i) & g.keep }
func (g *Word) Reset(i int)        { g.bits &^= 1 << uint(i) }
func (g *Word) Toggle(i int)       { g.bits ^= 1 << uint(i) & g.keep }
func (g *Word) Clone() *Word       { c := *g; return &c }
func (g *Word) EmptyLike() *Word   { return g.with(0) }
func (g *Word) FullLike() *Word    { return fullMask(g) }
func (g *Word) Flipped() *Word     { return g.with(^g.bits) }
func (g *Word) Invert()            { g.bits = ^g.bits & g.keep }
func (g *Word) Borders() *Word     { return bordersMask(g) }
func (g *Word) WestBorder() *Word  { return colMask(g, 0) }
func (g *Word) EastBorder() *Word  { return colMask(g, g.shape.Width-1) }
func (g *Word) SouthBorder() *Word { return rowMask(g, 0) }
func (g *Word) NorthBorder() *Word { return rowMask(g, g.shape.Height-1) }

// Intersects reports whether g and other share a set cell.
func (g *Word) Intersects(other *Word) bool { return g.bits&other.bits != 0 }

// Equal reports whether g and other have the same shape and bits.
func (g *Word) Equal(other *Word) bool {
	return g.shape == other.shape && g.bits == other.bits
}

func (g *Word) SetValue(i int, v bool) {
	if v {
		g.Set(i)
	} else {
		g.Reset(i)
	}
}

func (g *Word) GetXY(x, y uint8) bool         { return g.Get(g.shape.Index(x, y)) }
func (g *Word) SetXY(x, y uint8)              { g.Set(g.shape.Index(x, y)) }
func (g *Word) ResetXY(x, y uint8)            { g.Reset(g.shape.Index(x, y)) }
func (g *Word) SetValueXY(x, y uint8, v bool) { g.SetValue(g.shape.Index(x, y), v) }

func (g *Word) RowMask(y uint8) *Word { return rowMask(g, y) }
func (g *Word) ColMask(x uint8) *Word { return colMask(g, x) }

func (g *Word) And(other *Word) *Word    { return g.with(g.bits & other.bits) }
func (g *Word) Or(other *Word) *Word     { return g.with(g.bits | other.bits) }
func (g *Word) Xor(other *Word) *Word    { return g.with(g.bits ^ other.bits) }
func (g *Word) AndNot(other *Word) *Word { return g.with(g.bits &^ other.bits) }
func (g *Word) AndWith(other *Word)      { g.bits &= other.bits }
func (g *Word) OrWith(other *Word)       { g.bits |= other.bits }
func (g *Word) XorWith(other *Word)      { g.bits ^= other.bits }
func (g *Word) AndNotWith(other *Word)   { g.bits &^= other.bits }

// Shl shifts toward higher indices. Bits leaving the storage width are lost.
func (g *Word) Shl(n int) *Word { c := g.Clone(); c.ShlAssign(n); return c }

// Shr shifts toward lower indices.
func (g *Word) Shr(n int) *Word { c := g.Clone(); c.ShrAssign(n); return c }

func (g *Word) ShlAssign(n int) {
	if n >= 64 {
		g.bits = 0
		return
	}
	g.bits = g.bits << uint(n) & g.keep
}

func (g *Word) ShrAssign(n int) {
	if n >= 64 {
		g.bits = 0
		return
	}
	g.bits >>= uint(n)
}

// SubAssign subtracts v, wrapping within the storage width.
func (g *Word) SubAssign(v uint64) { g.bits = (g.bits - v) & g.keep }

// LSB returns the index of the lowest set cell, or NoSquare.
func (g *Word) LSB() int {
	if g.bits == 0 {
		return NoSquare
	}
	return bits.TrailingZeros64(g.bits)
}

// PopLSB clears the lowest set cell and returns its index, or NoSquare.
func (g *Word) PopLSB() int {
	if g.bits == 0 {
		return NoSquare
	}
	idx, rest := bitops.PopLSB64(g.bits)
	g.bits = rest
	return idx
}

func (g *Word) Pext(mask *Word) uint64 { return bitops.Pext64(g.bits, mask.bits) }

func (g *Word) Pdep(compressed uint64) *Word {
	return g.with(bitops.Pdep64(compressed, g.bits))
}

func (g *Word) PextLane(mask *Word) []uint64 { return []uint64{g.Pext(mask)} }

func (g *Word) PdepLane(lane []uint64) *Word {
	if len(lane) == 0 {
		return g.EmptyLike()
	}
	return g.Pdep(lane[0])
}

func (g *Word) ExtractRow(y uint8) uint64 { return g.Pext(g.RowMask(y)) }
func (g *Word) ExtractCol(x uint8) uint64 { return g.Pext(g.ColMask(x)) }

// InsertRow overwrites row y with the low Width bits of v.
func (g *Word) InsertRow(y uint8, v uint64) { g.insert(g.RowMask(y), v) }

// InsertCol overwrites column x with the low Height bits of v.
func (g *Word) InsertCol(x uint8, v uint64) { g.insert(g.ColMask(x), v) }

func (g *Word) insert(m *Word, v uint64) {
	g.bits = g.bits&^m.bits | bitops.Pdep64(v, m.bits)
}
