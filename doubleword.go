package bitgrid

import (
	"math/bits"

	"github.com/hupe1980/bitgrid/internal/bitops"
	"lukechampine.com/uint128"
)

// DoubleWord is a grid of at most 128 cells held in a 128-bit value.
type DoubleWord struct {
	shape Shape
	bits  uint128.Uint128
}

var _ Grid[*DoubleWord, uint128.Uint128] = (*DoubleWord)(nil)

// NewDoubleWord returns a w x h grid holding bits. It panics with
// *ErrCapacityExceeded if w*h > 128.
func NewDoubleWord(w, h uint8, columnMajor bool, bits uint128.Uint128) *DoubleWord {
	s := NewShape(w, h, columnMajor)
	mustFit(s, KindDoubleWord)
	return &DoubleWord{shape: s, bits: bits}
}

// EmptyDoubleWord returns an empty w x h grid.
func EmptyDoubleWord(w, h uint8, columnMajor bool) *DoubleWord {
	return NewDoubleWord(w, h, columnMajor, uint128.Zero)
}

// FullDoubleWord returns a w x h grid with every cell set.
func FullDoubleWord(w, h uint8, columnMajor bool) *DoubleWord {
	return EmptyDoubleWord(w, h, columnMajor).FullLike()
}

func (g *DoubleWord) with(v uint128.Uint128) *DoubleWord {
	return &DoubleWord{shape: g.shape, bits: v}
}

func (g *DoubleWord) Shape() Shape             { return g.shape }
func (g *DoubleWord) StorageBits() int         { return 128 }
func (g *DoubleWord) Storage() uint128.Uint128 { return g.bits }
func (g *DoubleWord) IsEmpty() bool            { return g.bits.IsZero() }
func (g *DoubleWord) Any() bool                { return !g.bits.IsZero() }
func (g *DoubleWord) Count() int               { return g.bits.OnesCount() }
func (g *DoubleWord) String() string           { return Render(g) }
func (g *DoubleWord) GoString() string         { return RenderDebug(g, "bitgrid.DoubleWord") }
func (g *DoubleWord) Clone() *DoubleWord       { c := *g; return &c }
func (g *DoubleWord) EmptyLike() *DoubleWord   { return g.with(uint128.Zero) }
func (g *DoubleWord) FullLike() *DoubleWord    { return fullMask(g) }
func (g *DoubleWord) Borders() *DoubleWord     { return bordersMask(g) }
func (g *DoubleWord) WestBorder() *DoubleWord  { return colMask(g, 0) }
func (g *DoubleWord) EastBorder() *DoubleWord  { return colMask(g, g.shape.Width-1) }
func (g *DoubleWord) SouthBorder() *DoubleWord { return rowMask(g, 0) }
func (g *DoubleWord) NorthBorder() *DoubleWord { return rowMask(g, g.shape.Height-1) }

func (g *DoubleWord) Intersects(other *DoubleWord) bool {
	return !g.bits.And(other.bits).IsZero()
}

func (g *DoubleWord) Equal(other *DoubleWord) bool {
	return g.shape == other.shape && g.bits.Equals(other.bits)
}

// bit128 returns the single-bit value at i, or zero when i is outside storage.
func bit128(i int) uint128.Uint128 {
	switch {
	case i < 0 || i >= 128:
		return uint128.Zero
	case i < 64:
		return uint128.New(1<<uint(i), 0)
	default:
		return uint128.New(0, 1<<uint(i-64))
	}
}

func (g *DoubleWord) Get(i int) bool { return !g.bits.And(bit128(i)).IsZero() }
func (g *DoubleWord) Set(i int)      { g.bits = g.bits.Or(bit128(i)) }
func (g *DoubleWord) Reset(i int)    { g.bits = g.bits.And(not128(bit128(i))) }
func (g *DoubleWord) Toggle(i int)   { g.bits = g.bits.Xor(bit128(i)) }

func (g *DoubleWord) SetValue(i int, v bool) {
	if v {
		g.Set(i)
	} else {
		g.Reset(i)
	}
}

func (g *DoubleWord) GetXY(x, y uint8) bool         { return g.Get(g.shape.Index(x, y)) }
func (g *DoubleWord) SetXY(x, y uint8)              { g.Set(g.shape.Index(x, y)) }
func (g *DoubleWord) ResetXY(x, y uint8)            { g.Reset(g.shape.Index(x, y)) }
func (g *DoubleWord) SetValueXY(x, y uint8, v bool) { g.SetValue(g.shape.Index(x, y), v) }

func (g *DoubleWord) RowMask(y uint8) *DoubleWord { return rowMask(g, y) }
func (g *DoubleWord) ColMask(x uint8) *DoubleWord { return colMask(g, x) }

func not128(v uint128.Uint128) uint128.Uint128 { return uint128.New(^v.Lo, ^v.Hi) }

func (g *DoubleWord) Flipped() *DoubleWord { return g.with(not128(g.bits)) }
func (g *DoubleWord) Invert()              { g.bits = not128(g.bits) }

func (g *DoubleWord) And(other *DoubleWord) *DoubleWord { return g.with(g.bits.And(other.bits)) }
func (g *DoubleWord) Or(other *DoubleWord) *DoubleWord  { return g.with(g.bits.Or(other.bits)) }
func (g *DoubleWord) Xor(other *DoubleWord) *DoubleWord { return g.with(g.bits.Xor(other.bits)) }
func (g *DoubleWord) AndNot(other *DoubleWord) *DoubleWord {
	return g.with(g.bits.And(not128(other.bits)))
}
func (g *DoubleWord) AndWith(other *DoubleWord)    { g.bits = g.bits.And(other.bits) }
func (g *DoubleWord) OrWith(other *DoubleWord)     { g.bits = g.bits.Or(other.bits) }
func (g *DoubleWord) XorWith(other *DoubleWord)    { g.bits = g.bits.Xor(other.bits) }
func (g *DoubleWord) AndNotWith(other *DoubleWord) { g.bits = g.bits.And(not128(other.bits)) }

func (g *DoubleWord) Shl(n int) *DoubleWord { c := g.Clone(); c.ShlAssign(n); return c }
func (g *DoubleWord) Shr(n int) *DoubleWord { c := g.Clone(); c.ShrAssign(n); return c }

func (g *DoubleWord) ShlAssign(n int) {
	if n >= 128 {
		g.bits = uint128.Zero
		return
	}
	g.bits = g.bits.Lsh(uint(n))
}

func (g *DoubleWord) ShrAssign(n int) {
	if n >= 128 {
		g.bits = uint128.Zero
		return
	}
	g.bits = g.bits.Rsh(uint(n))
}

// SubAssign subtracts v modulo 2^128.
func (g *DoubleWord) SubAssign(v uint64) { g.bits = g.bits.SubWrap64(v) }

func (g *DoubleWord) LSB() int {
	if g.bits.IsZero() {
		return NoSquare
	}
	return g.bits.TrailingZeros()
}

func (g *DoubleWord) PopLSB() int {
	switch {
	case g.bits.Lo != 0:
		idx, rest := bitops.PopLSB64(g.bits.Lo)
		g.bits.Lo = rest
		return idx
	case g.bits.Hi != 0:
		idx, rest := bitops.PopLSB64(g.bits.Hi)
		g.bits.Hi = rest
		return 64 + idx
	default:
		return NoSquare
	}
}

func (g *DoubleWord) Pext(mask *DoubleWord) uint128.Uint128 {
	lo, hi := bitops.Pext128(g.bits.Lo, g.bits.Hi, mask.bits.Lo, mask.bits.Hi)
	return uint128.New(lo, hi)
}

func (g *DoubleWord) Pdep(compressed uint128.Uint128) *DoubleWord {
	lo, hi := bitops.Pdep128(compressed.Lo, compressed.Hi, g.bits.Lo, g.bits.Hi)
	return g.with(uint128.New(lo, hi))
}

func (g *DoubleWord) PextLane(mask *DoubleWord) []uint64 {
	v := g.Pext(mask)
	if bits.OnesCount64(mask.bits.Lo)+bits.OnesCount64(mask.bits.Hi) > 64 {
		return []uint64{v.Lo, v.Hi}
	}
	return []uint64{v.Lo}
}

func (g *DoubleWord) PdepLane(lane []uint64) *DoubleWord {
	var v uint128.Uint128
	if len(lane) > 0 {
		v.Lo = lane[0]
	}
	if len(lane) > 1 {
		v.Hi = lane[1]
	}
	return g.Pdep(v)
}

func (g *DoubleWord) ExtractRow(y uint8) uint128.Uint128 { return g.Pext(g.RowMask(y)) }
func (g *DoubleWord) ExtractCol(x uint8) uint128.Uint128 { return g.Pext(g.ColMask(x)) }

func (g *DoubleWord) InsertRow(y uint8, v uint128.Uint128) { g.insert(g.RowMask(y), v) }
func (g *DoubleWord) InsertCol(x uint8, v uint128.Uint128) { g.insert(g.ColMask(x), v) }

func (g *DoubleWord) insert(m *DoubleWord, v uint128.Uint128) {
	g.AndNotWith(m)
	g.OrWith(m.Pdep(v))
}
