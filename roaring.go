package bitgrid

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ToRoaring copies the set cells of g (padding excluded) into a new roaring
// bitmap keyed by linear cell index.
func ToRoaring[G Board[G]](g G) *roaring.Bitmap {
	rb := roaring.New()
	n := g.Shape().Squares()
	for i := range Cells(g) {
		if i >= n {
			break
		}
		rb.Add(uint32(i))
	}
	return rb
}

// FromRoaring returns a grid shaped like proto with the cells listed in rb
// set. Indices outside the board are ignored.
func FromRoaring[G Board[G]](proto G, rb *roaring.Bitmap) G {
	out := proto.EmptyLike()
	n := uint32(proto.Shape().Squares())
	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		if i >= n {
			break
		}
		out.Set(int(i))
	}
	return out
}
