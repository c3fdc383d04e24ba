package bitgrid

import (
	"slices"

	"github.com/hupe1980/bitgrid/internal/bitops"
)

// WordArray is a grid of any size held in ceil(w*h/64) words.
//
// Padding bits above w*h are only set if the caller sets them directly or
// through Flipped; masks never touch them.
type WordArray struct {
	shape Shape
	words []uint64
}

var _ Grid[*WordArray, []uint64] = (*WordArray)(nil)

// NewWordArray returns a w x h grid. words is copied into the storage; it
// may be shorter than the storage, missing words are zero.
func NewWordArray(w, h uint8, columnMajor bool, words []uint64) *WordArray {
	s := NewShape(w, h, columnMajor)
	mustFit(s, KindWordArray)
	g := &WordArray{shape: s, words: make([]uint64, wordsFor(s.Squares()))}
	copy(g.words, words)
	return g
}

// EmptyWordArray returns an empty w x h grid.
func EmptyWordArray(w, h uint8, columnMajor bool) *WordArray {
	return NewWordArray(w, h, columnMajor, nil)
}

// FullWordArray returns a w x h grid with every cell set.
func FullWordArray(w, h uint8, columnMajor bool) *WordArray {
	return EmptyWordArray(w, h, columnMajor).FullLike()
}

func (g *WordArray) blank() *WordArray {
	return &WordArray{shape: g.shape, words: make([]uint64, len(g.words))}
}

func (g *WordArray) Shape() Shape       { return g.shape }
func (g *WordArray) StorageBits() int   { return len(g.words) * 64 }
func (g *WordArray) Storage() []uint64  { return g.words }
func (g *WordArray) IsEmpty() bool      { return !bitops.AnyWords(g.words) }
func (g *WordArray) Any() bool          { return bitops.AnyWords(g.words) }
func (g *WordArray) Count() int         { return bitops.PopcountWords(g.words) }
func (g *WordArray) String() string     { return Render(g) }
func (g *WordArray) GoString() string   { return RenderDebug(g, "bitgrid.WordArray") }

func (g *WordArray) EmptyLike() *WordArray { return g.blank() }
func (g *WordArray) FullLike() *WordArray  { return fullMask(g) }
func (g *WordArray) Borders() *WordArray   { return bordersMask(g) }

func (g *WordArray) WestBorder() *WordArray  { return colMask(g, 0) }
func (g *WordArray) EastBorder() *WordArray  { return colMask(g, g.shape.Width-1) }
func (g *WordArray) SouthBorder() *WordArray { return rowMask(g, 0) }
func (g *WordArray) NorthBorder() *WordArray { return rowMask(g, g.shape.Height-1) }

func (g *WordArray) Clone() *WordArray {
	return &WordArray{shape: g.shape, words: slices.Clone(g.words)}
}

// Intersects reports whether any word pair shares a set bit.
func (g *WordArray) Intersects(other *WordArray) bool {
	return bitops.IntersectsWords(g.words, other.words)
}

func (g *WordArray) Equal(other *WordArray) bool {
	return g.shape == other.shape && slices.Equal(g.words, other.words)
}

func (g *WordArray) Get(i int) bool {
	if i>>6 >= len(g.words) {
		return false
	}
	return g.words[i>>6]>>uint(i&63)&1 == 1
}

func (g *WordArray) Set(i int)    { g.words[i>>6] |= 1 << uint(i&63) }
func (g *WordArray) Reset(i int)  { g.words[i>>6] &^= 1 << uint(i&63) }
func (g *WordArray) Toggle(i int) { g.words[i>>6] ^= 1 << uint(i&63) }

func (g *WordArray) SetValue(i int, v bool) {
	if v {
		g.Set(i)
	} else {
		g.Reset(i)
	}
}

func (g *WordArray) GetXY(x, y uint8) bool         { return g.Get(g.shape.Index(x, y)) }
func (g *WordArray) SetXY(x, y uint8)              { g.Set(g.shape.Index(x, y)) }
func (g *WordArray) ResetXY(x, y uint8)            { g.Reset(g.shape.Index(x, y)) }
func (g *WordArray) SetValueXY(x, y uint8, v bool) { g.SetValue(g.shape.Index(x, y), v) }

func (g *WordArray) RowMask(y uint8) *WordArray { return rowMask(g, y) }
func (g *WordArray) ColMask(x uint8) *WordArray { return colMask(g, x) }

// Flipped complements every word, padding included.
func (g *WordArray) Flipped() *WordArray { c := g.Clone(); c.Invert(); return c }
func (g *WordArray) Invert()             { bitops.NotWords(g.words) }

func (g *WordArray) And(other *WordArray) *WordArray {
	c := g.Clone()
	c.AndWith(other)
	return c
}

func (g *WordArray) Or(other *WordArray) *WordArray {
	c := g.Clone()
	c.OrWith(other)
	return c
}

func (g *WordArray) Xor(other *WordArray) *WordArray {
	c := g.Clone()
	c.XorWith(other)
	return c
}

func (g *WordArray) AndNot(other *WordArray) *WordArray {
	c := g.Clone()
	c.AndNotWith(other)
	return c
}

func (g *WordArray) AndWith(other *WordArray)    { bitops.AndWords(g.words, other.words) }
func (g *WordArray) OrWith(other *WordArray)     { bitops.OrWords(g.words, other.words) }
func (g *WordArray) XorWith(other *WordArray)    { bitops.XorWords(g.words, other.words) }
func (g *WordArray) AndNotWith(other *WordArray) { bitops.AndNotWords(g.words, other.words) }

func (g *WordArray) Shl(n int) *WordArray { c := g.Clone(); c.ShlAssign(n); return c }
func (g *WordArray) Shr(n int) *WordArray { c := g.Clone(); c.ShrAssign(n); return c }

// ShlAssign shifts toward higher indices, carrying across word boundaries.
func (g *WordArray) ShlAssign(n int) { bitops.ShlWords(g.words, n) }

// ShrAssign shifts toward lower indices, carrying across word boundaries.
func (g *WordArray) ShrAssign(n int) { bitops.ShrWords(g.words, n) }

// SubAssign subtracts v with a ripple borrow, wrapping modulo the storage.
func (g *WordArray) SubAssign(v uint64) { bitops.SubWords(g.words, v) }

// LSB scans words from the lowest and returns the first set index, or
// NoSquare.
func (g *WordArray) LSB() int {
	idx := bitops.NextSet(g.words, 0)
	if idx < 0 {
		return NoSquare
	}
	return idx
}

func (g *WordArray) PopLSB() int {
	idx := bitops.PopLSBWords(g.words)
	if idx < 0 {
		return NoSquare
	}
	return idx
}

// Pext packs the bits under mask into a value with the same word count as
// the storage.
func (g *WordArray) Pext(mask *WordArray) []uint64 {
	out := make([]uint64, len(g.words))
	bitops.PextWords(out, g.words, mask.words)
	return out
}

// Pdep scatters compressed into the receiver's set bits.
func (g *WordArray) Pdep(compressed []uint64) *WordArray {
	out := g.blank()
	bitops.PdepWords(out.words, compressed, g.words)
	return out
}

func (g *WordArray) PextLane(mask *WordArray) []uint64 {
	out := make([]uint64, wordsFor(mask.Count()))
	bitops.PextWords(out, g.words, mask.words)
	return out
}

func (g *WordArray) PdepLane(lane []uint64) *WordArray { return g.Pdep(lane) }

func (g *WordArray) ExtractRow(y uint8) []uint64 { return g.Pext(g.RowMask(y)) }
func (g *WordArray) ExtractCol(x uint8) []uint64 { return g.Pext(g.ColMask(x)) }

func (g *WordArray) InsertRow(y uint8, v []uint64) { g.insert(g.RowMask(y), v) }
func (g *WordArray) InsertCol(x uint8, v []uint64) { g.insert(g.ColMask(x), v) }

func (g *WordArray) insert(m *WordArray, v []uint64) {
	g.AndNotWith(m)
	g.OrWith(m.Pdep(v))
}
