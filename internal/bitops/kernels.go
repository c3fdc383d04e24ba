package bitops

import "math/bits"

// Kernel function pointers for the extract/deposit and scan primitives.
// Generic implementations are the default; platform-specific init()
// functions override them when the CPU supports it.
var (
	kernelPext64    = pext64Generic
	kernelPdep64    = pdep64Generic
	kernelPopLSB64  = popLSB64Generic
	kernelPext128   = pext128Generic
	kernelPdep128   = pdep128Generic
	kernelPextWords = pextWordsGeneric
	kernelPdepWords = pdepWordsGeneric
)

// Pext64 gathers the bits of x selected by mask into the low bits of the
// result. Bit k of the result is the bit of x under the k-th set bit of mask.
func Pext64(x, mask uint64) uint64 {
	return kernelPext64(x, mask)
}

// Pdep64 scatters the low bits of x into the positions of the set bits of
// mask, lowest first. All other result bits are zero.
func Pdep64(x, mask uint64) uint64 {
	return kernelPdep64(x, mask)
}

// PopLSB64 returns the index of the lowest set bit of x together with x
// with that bit cleared. For x == 0 it returns (64, 0).
func PopLSB64(x uint64) (int, uint64) {
	return kernelPopLSB64(x)
}

// Pext128 is Pext64 over a 128-bit value split into lo/hi words.
func Pext128(lo, hi, mlo, mhi uint64) (uint64, uint64) {
	return kernelPext128(lo, hi, mlo, mhi)
}

// Pdep128 is Pdep64 over a 128-bit value split into lo/hi words.
func Pdep128(lo, hi, mlo, mhi uint64) (uint64, uint64) {
	return kernelPdep128(lo, hi, mlo, mhi)
}

// PextWords extracts the bits of src selected by mask into dst, scanning
// words in storage order and packing the result into 64-bit chunks.
// dst is cleared first; it needs room for Popcount(mask) bits, extra bits
// are dropped.
func PextWords(dst, src, mask []uint64) {
	clear(dst)
	kernelPextWords(dst, src, mask)
}

// PdepWords deposits the packed bits of src into the set bit positions of
// mask, writing dst (len(dst) must equal len(mask)). Missing source bits
// read as zero.
func PdepWords(dst, src, mask []uint64) {
	clear(dst)
	kernelPdepWords(dst, src, mask)
}

// ==============================================================================
// Generic implementations
// ==============================================================================

func pext64Generic(x, mask uint64) uint64 {
	var out uint64
	k := uint(0)
	for mask != 0 {
		b := bits.TrailingZeros64(mask)
		out |= (x >> uint(b) & 1) << k
		k++
		mask &= mask - 1
	}
	return out
}

func pdep64Generic(x, mask uint64) uint64 {
	var out uint64
	k := uint(0)
	for mask != 0 {
		b := bits.TrailingZeros64(mask)
		out |= (x >> k & 1) << uint(b)
		k++
		mask &= mask - 1
	}
	return out
}

func popLSB64Generic(x uint64) (int, uint64) {
	return bits.TrailingZeros64(x), x & (x - 1)
}

// pext128Generic walks the mask bits of both words as one 128-bit sequence.
func pext128Generic(lo, hi, mlo, mhi uint64) (uint64, uint64) {
	var out [2]uint64
	k := 0
	for m := mlo; m != 0; m &= m - 1 {
		b := bits.TrailingZeros64(m)
		out[k>>6] |= (lo >> uint(b) & 1) << uint(k&63)
		k++
	}
	for m := mhi; m != 0; m &= m - 1 {
		b := bits.TrailingZeros64(m)
		out[k>>6] |= (hi >> uint(b) & 1) << uint(k&63)
		k++
	}
	return out[0], out[1]
}

func pdep128Generic(lo, hi, mlo, mhi uint64) (uint64, uint64) {
	src := [2]uint64{lo, hi}
	var rlo, rhi uint64
	k := 0
	for m := mlo; m != 0; m &= m - 1 {
		b := bits.TrailingZeros64(m)
		rlo |= (src[k>>6] >> uint(k&63) & 1) << uint(b)
		k++
	}
	for m := mhi; m != 0; m &= m - 1 {
		b := bits.TrailingZeros64(m)
		rhi |= (src[k>>6] >> uint(k&63) & 1) << uint(b)
		k++
	}
	return rlo, rhi
}

func pextWordsGeneric(dst, src, mask []uint64) {
	k := 0
	for i, m := range mask {
		for ; m != 0; m &= m - 1 {
			if k>>6 >= len(dst) {
				return
			}
			b := bits.TrailingZeros64(m)
			dst[k>>6] |= (src[i] >> uint(b) & 1) << uint(k&63)
			k++
		}
	}
}

func pdepWordsGeneric(dst, src, mask []uint64) {
	k := 0
	for i, m := range mask {
		for ; m != 0; m &= m - 1 {
			if k>>6 >= len(src) {
				return
			}
			b := bits.TrailingZeros64(m)
			dst[i] |= (src[k>>6] >> uint(k&63) & 1) << uint(b)
			k++
		}
	}
}

// ==============================================================================
// Word-at-a-time compositions
// ==============================================================================
//
// These build the wide extract/deposit out of a 64-bit kernel. The amd64
// init plugs in PEXTQ/PDEPQ; tests plug in the generic kernels so the
// splitting logic is covered on every platform.

// pext128With splits at popcount(mlo): the high word's extracted bits land
// directly above the low word's.
func pext128With(pext func(x, m uint64) uint64, lo, hi, mlo, mhi uint64) (uint64, uint64) {
	rl := pext(lo, mlo)
	rh := pext(hi, mhi)
	n := uint(bits.OnesCount64(mlo))
	if n == 64 {
		return rl, rh
	}
	return rl | rh<<n, rh >> (64 - n)
}

// pdep128With feeds the high mask word with the source shifted right by
// popcount(mlo), the exact inverse of pext128With.
func pdep128With(pdep func(x, m uint64) uint64, lo, hi, mlo, mhi uint64) (uint64, uint64) {
	n := uint(bits.OnesCount64(mlo))
	var shi uint64
	switch {
	case n == 0:
		shi = lo
	case n == 64:
		shi = hi
	default:
		shi = lo>>n | hi<<(64-n)
	}
	return pdep(lo, mlo), pdep(shi, mhi)
}

func pextWordsWith(pext func(x, m uint64) uint64, dst, src, mask []uint64) {
	k := 0
	for i, m := range mask {
		if m == 0 {
			continue
		}
		n := bits.OnesCount64(m)
		appendBits(dst, k, pext(src[i], m), n)
		k += n
	}
}

func pdepWordsWith(pdep func(x, m uint64) uint64, dst, src, mask []uint64) {
	k := 0
	for i, m := range mask {
		if m == 0 {
			continue
		}
		n := bits.OnesCount64(m)
		dst[i] = pdep(takeBits(src, k, n), m)
		k += n
	}
}

// appendBits ORs the low n bits of v into dst starting at bit offset k.
func appendBits(dst []uint64, k int, v uint64, n int) {
	w, off := k>>6, uint(k&63)
	if w >= len(dst) {
		return
	}
	dst[w] |= v << off
	if int(off)+n > 64 && w+1 < len(dst) {
		dst[w+1] |= v >> (64 - off)
	}
}

// takeBits reads n bits of src starting at bit offset k. Bits past the end
// of src read as zero.
func takeBits(src []uint64, k, n int) uint64 {
	w, off := k>>6, uint(k&63)
	if w >= len(src) {
		return 0
	}
	v := src[w] >> off
	if off != 0 && int(off)+n > 64 && w+1 < len(src) {
		v |= src[w+1] << (64 - off)
	}
	if n < 64 {
		v &= 1<<uint(n) - 1
	}
	return v
}
