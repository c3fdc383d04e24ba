package bitgrid

import (
	"fmt"
	"strconv"
)

// MaxDimension is the largest supported width or height.
const MaxDimension = 255

// NoSquare is returned by LSB and PopLSB on an empty grid.
const NoSquare = -1

// Shape is the geometry of a grid: its size and the order in which cells
// are laid out in storage. The origin (0,0) is the bottom-left cell, x grows
// east and y grows north.
type Shape struct {
	Width       uint8
	Height      uint8
	ColumnMajor bool
}

// NewShape returns the shape for a w x h grid.
func NewShape(w, h uint8, columnMajor bool) Shape {
	return Shape{Width: w, Height: h, ColumnMajor: columnMajor}
}

// IndexFromCoords maps (x,y) to a linear bit index. No bounds check is
// performed; the result is meaningless unless x < w and y < h.
func IndexFromCoords(w, h uint8, columnMajor bool, x, y uint8) int {
	if columnMajor {
		return int(x)*int(h) + int(y)
	}
	return int(y)*int(w) + int(x)
}

// CoordsFromIndex is the inverse of IndexFromCoords.
func CoordsFromIndex(w, h uint8, columnMajor bool, i int) (x, y uint8) {
	if columnMajor {
		return uint8(i / int(h)), uint8(i % int(h))
	}
	return uint8(i % int(w)), uint8(i / int(w))
}

// IsInBounds reports whether (x,y) lies on a w x h grid. Coordinates are
// signed so that stepping off the board can be tested directly.
func IsInBounds(w, h uint8, x, y int) bool {
	return x >= 0 && y >= 0 && x < int(w) && y < int(h)
}

// IsIndexInBounds reports whether i addresses a cell of a w x h grid.
func IsIndexInBounds(w, h uint8, i int) bool {
	return i >= 0 && i < int(w)*int(h)
}

// Squares returns the number of cells.
func (s Shape) Squares() int { return int(s.Width) * int(s.Height) }

// Index maps (x,y) to a linear bit index.
func (s Shape) Index(x, y uint8) int {
	return IndexFromCoords(s.Width, s.Height, s.ColumnMajor, x, y)
}

// Coords maps a linear bit index to (x,y).
func (s Shape) Coords(i int) (x, y uint8) {
	return CoordsFromIndex(s.Width, s.Height, s.ColumnMajor, i)
}

// InBounds reports whether (x,y) lies on the grid.
func (s Shape) InBounds(x, y int) bool {
	return IsInBounds(s.Width, s.Height, x, y)
}

// IndexInBounds reports whether i addresses a cell of the grid.
func (s Shape) IndexInBounds(i int) bool {
	return IsIndexInBounds(s.Width, s.Height, i)
}

// HOffset is the index distance between horizontally adjacent cells.
func (s Shape) HOffset() int {
	if s.ColumnMajor {
		return int(s.Height)
	}
	return 1
}

// VOffset is the index distance between vertically adjacent cells.
func (s Shape) VOffset() int {
	if s.ColumnMajor {
		return 1
	}
	return int(s.Width)
}

// OffsetIndex converts a (dx,dy) step into a linear index delta.
func (s Shape) OffsetIndex(dx, dy int) int {
	return dx*s.HOffset() + dy*s.VOffset()
}

// Validate reports an error for a shape with a zero dimension.
func (s Shape) Validate() error {
	if s.Width == 0 || s.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidShape, s.Width, s.Height)
	}
	return nil
}

// Kind returns the smallest backend that can hold the shape.
func (s Shape) Kind() Kind { return KindFor(s) }

// StorageBits returns the storage width the chosen backend uses.
func (s Shape) StorageBits() int { return StorageBitsFor(s) }

// String renders the shape as "WxH" with a "/col" suffix for column-major.
func (s Shape) String() string {
	out := strconv.Itoa(int(s.Width)) + "x" + strconv.Itoa(int(s.Height))
	if s.ColumnMajor {
		out += "/col"
	}
	return out
}

// Kind identifies a storage backend.
type Kind uint8

const (
	// KindWord stores up to 64 cells in one machine word.
	KindWord Kind = iota
	// KindDoubleWord stores up to 128 cells in a 128-bit value.
	KindDoubleWord
	// KindWordArray stores any number of cells in a slice of words.
	KindWordArray
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindDoubleWord:
		return "doubleword"
	case KindWordArray:
		return "wordarray"
	default:
		return "unknown"
	}
}

// Capacity returns the maximum number of cells the backend can hold for
// the given shape. The word array grows with the shape.
func (k Kind) Capacity(s Shape) int {
	switch k {
	case KindWord:
		return 64
	case KindDoubleWord:
		return 128
	default:
		return wordsFor(s.Squares()) * 64
	}
}

// KindFor picks the smallest backend for s.
func KindFor(s Shape) Kind {
	switch n := s.Squares(); {
	case n <= 64:
		return KindWord
	case n <= 128:
		return KindDoubleWord
	default:
		return KindWordArray
	}
}

// StorageBitsFor returns the storage width for s: 8, 16, 32, 64, 128 or a
// multiple of 64 for word arrays.
func StorageBitsFor(s Shape) int {
	n := s.Squares()
	switch KindFor(s) {
	case KindWord:
		return wordClassBits(n)
	case KindDoubleWord:
		return 128
	default:
		return wordsFor(n) * 64
	}
}

// CheckCapacity reports whether a grid of shape s fits backend k.
func CheckCapacity(s Shape, k Kind) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if c := k.Capacity(s); s.Squares() > c {
		return &ErrCapacityExceeded{Shape: s, Kind: k, Capacity: c}
	}
	return nil
}

func mustFit(s Shape, k Kind) {
	if err := CheckCapacity(s, k); err != nil {
		panic(err)
	}
}

func wordsFor(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + 63) / 64
}

// wordClassBits returns the smallest of 8/16/32/64 that holds n bits.
func wordClassBits(n int) int {
	switch {
	case n <= 8:
		return 8
	case n <= 16:
		return 16
	case n <= 32:
		return 32
	default:
		return 64
	}
}
