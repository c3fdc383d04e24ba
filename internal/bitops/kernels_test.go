package bitops

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPext64(t *testing.T) {
	tests := []struct {
		name string
		x    uint64
		mask uint64
		want uint64
	}{
		{name: "Empty mask", x: ^uint64(0), mask: 0, want: 0},
		{name: "Full mask", x: 0xDEADBEEF, mask: ^uint64(0), want: 0xDEADBEEF},
		{name: "Low nibble", x: 0xAB, mask: 0x0F, want: 0x0B},
		{name: "High nibble", x: 0xAB, mask: 0xF0, want: 0x0A},
		{name: "Sparse", x: 0b1010_0101, mask: 0b1000_0001, want: 0b11},
		{name: "Column of 8x8", x: 0x0100000000000001, mask: 0x0101010101010101, want: 0x81},
		{name: "Top bit", x: 1 << 63, mask: 1<<63 | 1, want: 0b10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pext64(tt.x, tt.mask))
			assert.Equal(t, tt.want, pext64Generic(tt.x, tt.mask))
		})
	}
}

func TestPdep64(t *testing.T) {
	tests := []struct {
		name string
		x    uint64
		mask uint64
		want uint64
	}{
		{name: "Empty mask", x: ^uint64(0), mask: 0, want: 0},
		{name: "Full mask", x: 0xDEADBEEF, mask: ^uint64(0), want: 0xDEADBEEF},
		{name: "High nibble", x: 0x0A, mask: 0xF0, want: 0xA0},
		{name: "Column of 8x8", x: 0x81, mask: 0x0101010101010101, want: 0x0100000000000001},
		{name: "Ignores excess source bits", x: 0xFF, mask: 0b101, want: 0b101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pdep64(tt.x, tt.mask))
			assert.Equal(t, tt.want, pdep64Generic(tt.x, tt.mask))
		})
	}
}

func TestPopLSB64(t *testing.T) {
	idx, rest := PopLSB64(0b1011000)
	assert.Equal(t, 3, idx)
	assert.Equal(t, uint64(0b1010000), rest)

	idx, rest = PopLSB64(1 << 63)
	assert.Equal(t, 63, idx)
	assert.Zero(t, rest)

	idx, rest = PopLSB64(0)
	assert.Equal(t, 64, idx)
	assert.Zero(t, rest)
}

// randomMask draws masks with varied densities so that sparse, dense and
// empty words all show up.
func randomMask(rng *rand.Rand) uint64 {
	switch rng.Intn(5) {
	case 0:
		return 0
	case 1:
		return ^uint64(0)
	case 2:
		return rng.Uint64() & rng.Uint64() & rng.Uint64()
	case 3:
		return rng.Uint64() | rng.Uint64()
	default:
		return rng.Uint64()
	}
}

func TestKernelEquivalence64(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, width := range []int{8, 16, 32, 64} {
		keep := ^uint64(0)
		if width < 64 {
			keep = 1<<uint(width) - 1
		}
		for range 2000 {
			x := rng.Uint64() & keep
			m := randomMask(rng) & keep

			require.Equal(t, pext64Generic(x, m), Pext64(x, m), "pext width=%d x=%#x m=%#x", width, x, m)
			require.Equal(t, pdep64Generic(x, m), Pdep64(x, m), "pdep width=%d x=%#x m=%#x", width, x, m)

			gi, gr := popLSB64Generic(x)
			hi, hr := PopLSB64(x)
			require.Equal(t, gi, hi)
			require.Equal(t, gr, hr)
		}
	}
}

func TestKernelEquivalence128(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 5000 {
		lo, hi := rng.Uint64(), rng.Uint64()
		mlo, mhi := randomMask(rng), randomMask(rng)

		wl, wh := pext128Generic(lo, hi, mlo, mhi)
		gl, gh := Pext128(lo, hi, mlo, mhi)
		require.Equal(t, [2]uint64{wl, wh}, [2]uint64{gl, gh})
		sl, sh := pext128With(pext64Generic, lo, hi, mlo, mhi)
		require.Equal(t, [2]uint64{wl, wh}, [2]uint64{sl, sh})

		wl, wh = pdep128Generic(lo, hi, mlo, mhi)
		gl, gh = Pdep128(lo, hi, mlo, mhi)
		require.Equal(t, [2]uint64{wl, wh}, [2]uint64{gl, gh})
		sl, sh = pdep128With(pdep64Generic, lo, hi, mlo, mhi)
		require.Equal(t, [2]uint64{wl, wh}, [2]uint64{sl, sh})
	}
}

func TestPext128SplitsAtLowPopcount(t *testing.T) {
	// Three mask bits in the low word, so the high word's bit lands at 3.
	lo, hi := pext128Generic(0b101, 1, 0b111, 1)
	assert.Equal(t, uint64(0b1101), lo)
	assert.Zero(t, hi)

	// A full low mask pushes the high word's bits into the second result word.
	lo, hi = Pext128(^uint64(0), 0b10, ^uint64(0), 0b11)
	assert.Equal(t, ^uint64(0), lo)
	assert.Equal(t, uint64(0b10), hi)
}

func TestRoundTrip128(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for range 2000 {
		lo, hi := rng.Uint64(), rng.Uint64()
		mlo, mhi := randomMask(rng), randomMask(rng)

		cl, ch := Pext128(lo, hi, mlo, mhi)
		rl, rh := Pdep128(cl, ch, mlo, mhi)
		require.Equal(t, lo&mlo, rl)
		require.Equal(t, hi&mhi, rh)
	}
}

func TestKernelEquivalenceWords(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))

	for _, n := range []int{1, 2, 3, 6, 17} {
		for range 300 {
			src := make([]uint64, n)
			mask := make([]uint64, n)
			for i := range src {
				src[i] = rng.Uint64()
				mask[i] = randomMask(rng)
			}

			want := make([]uint64, n)
			pextWordsGeneric(want, src, mask)

			got := make([]uint64, n)
			PextWords(got, src, mask)
			require.Equal(t, want, got)

			split := make([]uint64, n)
			pextWordsWith(pext64Generic, split, src, mask)
			require.Equal(t, want, split)

			wantDep := make([]uint64, n)
			pdepWordsGeneric(wantDep, src, mask)

			gotDep := make([]uint64, n)
			PdepWords(gotDep, src, mask)
			require.Equal(t, wantDep, gotDep)

			splitDep := make([]uint64, n)
			pdepWordsWith(pdep64Generic, splitDep, src, mask)
			require.Equal(t, wantDep, splitDep)

			// Round trip through the mask.
			back := make([]uint64, n)
			PdepWords(back, got, mask)
			for i := range back {
				require.Equal(t, src[i]&mask[i], back[i])
			}
		}
	}
}

func TestPextWordsShortDestination(t *testing.T) {
	src := []uint64{^uint64(0), ^uint64(0)}
	mask := []uint64{^uint64(0), 0xF}

	dst := make([]uint64, 1)
	PextWords(dst, src, mask)
	assert.Equal(t, ^uint64(0), dst[0])

	wide := make([]uint64, 2)
	PextWords(wide, src, mask)
	assert.Equal(t, []uint64{^uint64(0), 0xF}, wide)
}

func TestPdepWordsShortSource(t *testing.T) {
	mask := []uint64{^uint64(0), ^uint64(0)}
	dst := make([]uint64, 2)
	PdepWords(dst, []uint64{0xAA}, mask)
	assert.Equal(t, []uint64{0xAA, 0}, dst)
}

func TestTakeAppendBits(t *testing.T) {
	buf := make([]uint64, 2)
	appendBits(buf, 60, 0xFF, 8)
	assert.Equal(t, uint64(0xF)<<60, buf[0])
	assert.Equal(t, uint64(0xF), buf[1])
	assert.Equal(t, uint64(0xFF), takeBits(buf, 60, 8))
	assert.Equal(t, uint64(0x3), takeBits(buf, 66, 8))
	assert.Zero(t, takeBits(buf, 128, 8))
}

func TestParseISA(t *testing.T) {
	isa, ok := ParseISA(" BMI2 ")
	require.True(t, ok)
	assert.Equal(t, BMI2, isa)
	assert.Equal(t, "bmi2", isa.String())

	isa, ok = ParseISA("avx512")
	assert.False(t, ok)
	assert.Equal(t, Generic, isa)
}

func TestActiveISAAvailable(t *testing.T) {
	assert.True(t, isISAAvailable(ActiveISA()))
	if ActiveISA() == BMI2 {
		assert.True(t, HasBMI2())
	}
}

func BenchmarkPext64(b *testing.B) {
	x, m := uint64(0x123456789ABCDEF0), uint64(0x0101010101010101)
	var sink uint64
	for b.Loop() {
		sink += Pext64(x, m)
	}
	_ = bits.OnesCount64(sink)
}
