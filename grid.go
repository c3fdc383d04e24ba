package bitgrid

import "fmt"

// Board is the storage-independent grid contract shared by every backend.
// G is the concrete backend pointer type, so operations take and return the
// same type without interface boxing.
//
// Index and coordinate arguments are not bounds checked. Use
// Shape().InBounds or Shape().IndexInBounds when the input is untrusted.
type Board[G any] interface {
	fmt.Stringer

	Shape() Shape
	// StorageBits is the number of addressable storage bits, padding included.
	StorageBits() int

	IsEmpty() bool
	Any() bool
	Count() int
	Intersects(other G) bool
	Equal(other G) bool

	Get(i int) bool
	Set(i int)
	Reset(i int)
	SetValue(i int, v bool)
	Toggle(i int)
	GetXY(x, y uint8) bool
	SetXY(x, y uint8)
	ResetXY(x, y uint8)
	SetValueXY(x, y uint8, v bool)

	Clone() G
	EmptyLike() G
	FullLike() G
	RowMask(y uint8) G
	ColMask(x uint8) G
	WestBorder() G
	EastBorder() G
	SouthBorder() G
	NorthBorder() G
	Borders() G

	// Flipped returns the complement of every storage bit, padding included.
	Flipped() G
	Invert()
	And(other G) G
	Or(other G) G
	Xor(other G) G
	AndNot(other G) G
	AndWith(other G)
	OrWith(other G)
	XorWith(other G)
	AndNotWith(other G)

	Shl(n int) G
	Shr(n int) G
	ShlAssign(n int)
	ShrAssign(n int)
	SubAssign(v uint64)

	LSB() int
	PopLSB() int

	// PextLane extracts the cells under mask into a packed lane of
	// ceil(mask.Count()/64) words (at least one).
	PextLane(mask G) []uint64
	// PdepLane scatters a packed lane into the receiver's set bits.
	PdepLane(lane []uint64) G
}

// Grid extends Board with the operations whose values are in the backend's
// native storage type S (uint64, uint128.Uint128 or []uint64).
type Grid[G any, S any] interface {
	Board[G]

	Storage() S
	// Pext extracts the receiver's bits under mask into a compact value.
	Pext(mask G) S
	// Pdep deposits compressed into the receiver's set bits; the receiver
	// acts as the mask.
	Pdep(compressed S) G

	ExtractRow(y uint8) S
	ExtractCol(x uint8) S
	InsertRow(y uint8, bits S)
	InsertCol(x uint8, bits S)
}
