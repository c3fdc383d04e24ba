package bitops

import "math/bits"

// ==============================================================================
// Word-slice algebra
// ==============================================================================
//
// These operate on []uint64 bit arrays of equal length. They back the
// WordArray grid and the lane buffers used for row/column extraction.

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= ^src[i]
		dst[i+1] &= ^src[i+1]
		dst[i+2] &= ^src[i+2]
		dst[i+3] &= ^src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= ^src[i]
	}
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

// NotWords complements every word in place.
func NotWords(dst []uint64) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}

// AnyWords reports whether any bit is set.
func AnyWords(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return true
		}
	}
	return false
}

// IntersectsWords reports whether a and b share a set bit.
func IntersectsWords(a, b []uint64) bool {
	for i := range a {
		if a[i]&b[i] != 0 {
			return true
		}
	}
	return false
}

// NextSet returns the index of the first set bit at or after from, or -1.
func NextSet(words []uint64, from int) int {
	if from < 0 {
		from = 0
	}
	w := from >> 6
	if w >= len(words) {
		return -1
	}
	cur := words[w] >> uint(from&63)
	if cur != 0 {
		return from + bits.TrailingZeros64(cur)
	}
	for w++; w < len(words); w++ {
		if words[w] != 0 {
			return w<<6 + bits.TrailingZeros64(words[w])
		}
	}
	return -1
}

// PopLSBWords clears the lowest set bit and returns its index, or -1 if
// no bit is set. Words before the first nonzero one are skipped.
func PopLSBWords(words []uint64) int {
	for i, w := range words {
		if w != 0 {
			idx, rest := kernelPopLSB64(w)
			words[i] = rest
			return i<<6 + idx
		}
	}
	return -1
}

// FillLow sets the low n bits of dst and clears the rest.
func FillLow(dst []uint64, n int) {
	for i := range dst {
		switch {
		case n >= 64:
			dst[i] = ^uint64(0)
			n -= 64
		case n > 0:
			dst[i] = 1<<uint(n) - 1
			n = 0
		default:
			dst[i] = 0
		}
	}
}

// ==============================================================================
// Shift engine
// ==============================================================================

// ShlWords shifts the bit array toward higher indices by n, in place.
// Bits shifted past the last word are dropped; vacated bits are zero.
func ShlWords(words []uint64, n int) {
	if n <= 0 {
		return
	}
	ws, bs := n>>6, uint(n&63)
	if ws >= len(words) {
		clear(words)
		return
	}
	if ws > 0 {
		// Descending so no source word is overwritten before it is read.
		for i := len(words) - 1; i >= ws; i-- {
			words[i] = words[i-ws]
		}
		clear(words[:ws])
	}
	if bs > 0 {
		for i := len(words) - 1; i > ws; i-- {
			words[i] = words[i]<<bs | words[i-1]>>(64-bs)
		}
		words[ws] <<= bs
	}
}

// ShrWords shifts the bit array toward lower indices by n, in place.
func ShrWords(words []uint64, n int) {
	if n <= 0 {
		return
	}
	ws, bs := n>>6, uint(n&63)
	if ws >= len(words) {
		clear(words)
		return
	}
	last := len(words) - 1 - ws
	if ws > 0 {
		// Ascending for the same reason ShlWords descends.
		for i := 0; i <= last; i++ {
			words[i] = words[i+ws]
		}
		clear(words[last+1:])
	}
	if bs > 0 {
		for i := 0; i < last; i++ {
			words[i] = words[i]>>bs | words[i+1]<<(64-bs)
		}
		words[last] >>= bs
	}
}

// SubWords subtracts v from the little-endian multi-word integer in place,
// rippling the borrow upward. It reports whether the result wrapped.
func SubWords(words []uint64, v uint64) bool {
	borrow := v
	for i := range words {
		if borrow == 0 {
			return false
		}
		var b uint64
		words[i], b = bits.Sub64(words[i], borrow, 0)
		borrow = b
	}
	return borrow != 0
}
