package bitgrid

// MaxBlockerBits bounds the relevant-cell count of a blocker table square.
// A square with k relevant cells needs 2^k entries.
const MaxBlockerBits = 20

// BlockerTable gives blocker-aware sliding attacks by lookup. For each
// square it keeps the relevant mask (the cells whose occupancy can change
// the attack set) and one attack set per subset of that mask, indexed by
// PEXT(occupied, mask).
//
// A BlockerTable is immutable once built and safe for concurrent reads.
type BlockerTable[G Board[G]] struct {
	offsets []Offset
	masks   []G
	attacks [][]G
}

// NewBlockerTable builds the table for the given sliding offsets on the
// shape of proto. It returns *ErrBlockerMaskTooWide (unwrapping to
// ErrTableTooLarge) if any square has more than MaxBlockerBits relevant
// cells.
func NewBlockerTable[G Board[G]](proto G, offsets []Offset) (*BlockerTable[G], error) {
	n := proto.Shape().Squares()
	t := &BlockerTable[G]{
		offsets: append([]Offset(nil), offsets...),
		masks:   make([]G, n),
		attacks: make([][]G, n),
	}

	for sq := range n {
		mask := RelevantMask(proto, sq, offsets)
		bits := mask.Count()
		if bits > MaxBlockerBits {
			return nil, &ErrBlockerMaskTooWide{Square: sq, Bits: bits, Max: MaxBlockerBits}
		}

		entries := make([]G, 1<<uint(bits))
		idx := 0
		for occ := range Subsets(mask) {
			// Subsets walks the mask in PDEP order, so the k-th subset
			// extracts to k.
			entries[idx] = SlidingAttacks(occ, sq, offsets)
			idx++
		}
		t.masks[sq] = mask
		t.attacks[sq] = entries
	}
	return t, nil
}

// RelevantMask returns the cells along each offset ray from sq, without
// the last cell of each ray: occupancy of the edge cell never changes which
// cells the ray reaches.
func RelevantMask[G Board[G]](proto G, sq int, offsets []Offset) G {
	s := proto.Shape()
	x, y := s.Coords(sq)
	mask := proto.EmptyLike()
	for _, o := range offsets {
		if o.DX == 0 && o.DY == 0 {
			continue
		}
		last := -1
		for nx, ny := int(x)+o.DX, int(y)+o.DY; s.InBounds(nx, ny); nx, ny = nx+o.DX, ny+o.DY {
			if last >= 0 {
				mask.Set(last)
			}
			last = s.Index(uint8(nx), uint8(ny))
		}
	}
	return mask
}

// Offsets returns the offsets the table was built for.
func (t *BlockerTable[G]) Offsets() []Offset { return t.offsets }

// Mask returns the relevant mask of sq.
func (t *BlockerTable[G]) Mask(sq int) G { return t.masks[sq] }

// Index returns the table slot for occupied at sq.
func (t *BlockerTable[G]) Index(sq int, occupied G) int {
	return int(occupied.PextLane(t.masks[sq])[0])
}

// Attacks returns the sliding attacks from sq given the occupied cells.
// The result is shared and must not be modified.
func (t *BlockerTable[G]) Attacks(sq int, occupied G) G {
	return t.attacks[sq][t.Index(sq, occupied)]
}

// Entries returns the number of stored attack sets.
func (t *BlockerTable[G]) Entries() int {
	total := 0
	for _, a := range t.attacks {
		total += len(a)
	}
	return total
}
