package bitops

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toBig(words []uint64) *big.Int {
	v := new(big.Int)
	for i := len(words) - 1; i >= 0; i-- {
		v.Lsh(v, 64)
		v.Or(v, new(big.Int).SetUint64(words[i]))
	}
	return v
}

func fromBig(v *big.Int, n int) []uint64 {
	out := make([]uint64, n)
	mask := new(big.Int).SetUint64(^uint64(0))
	tmp := new(big.Int).Set(v)
	for i := range out {
		out[i] = new(big.Int).And(tmp, mask).Uint64()
		tmp.Rsh(tmp, 64)
	}
	return out
}

func TestShiftWordsMatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{1, 2, 3, 6} {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(64*n))
		for _, shift := range []int{0, 1, 7, 63, 64, 65, 100, 127, 128, 200, 64 * n, 64*n + 3} {
			words := make([]uint64, n)
			for i := range words {
				words[i] = rng.Uint64()
			}

			want := new(big.Int).Lsh(toBig(words), uint(shift))
			want.Mod(want, limit)
			left := append([]uint64(nil), words...)
			ShlWords(left, shift)
			require.Equal(t, fromBig(want, n), left, "shl n=%d shift=%d", n, shift)

			want = new(big.Int).Rsh(toBig(words), uint(shift))
			right := append([]uint64(nil), words...)
			ShrWords(right, shift)
			require.Equal(t, fromBig(want, n), right, "shr n=%d shift=%d", n, shift)
		}
	}
}

func TestShiftWordsClearsWhenShiftExceedsLength(t *testing.T) {
	words := []uint64{^uint64(0), ^uint64(0)}
	ShlWords(words, 128)
	assert.Equal(t, []uint64{0, 0}, words)

	words = []uint64{^uint64(0), ^uint64(0)}
	ShrWords(words, 500)
	assert.Equal(t, []uint64{0, 0}, words)
}

func TestSubWords(t *testing.T) {
	tests := []struct {
		name    string
		words   []uint64
		v       uint64
		want    []uint64
		wrapped bool
	}{
		{name: "No borrow", words: []uint64{10, 1}, v: 3, want: []uint64{7, 1}},
		{name: "Ripple", words: []uint64{0, 0, 1}, v: 1, want: []uint64{^uint64(0), ^uint64(0), 0}},
		{name: "Wrap", words: []uint64{0, 0}, v: 1, want: []uint64{^uint64(0), ^uint64(0)}, wrapped: true},
		{name: "Zero", words: []uint64{5}, v: 0, want: []uint64{5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := SubWords(tt.words, tt.v)
			assert.Equal(t, tt.want, tt.words)
			assert.Equal(t, tt.wrapped, wrapped)
		})
	}
}

func TestShiftThenSubtractBuildsLowMask(t *testing.T) {
	// (1 << 70) - 1 across two words.
	words := []uint64{1, 0}
	ShlWords(words, 70)
	SubWords(words, 1)
	assert.Equal(t, []uint64{^uint64(0), 0x3F}, words)
}

func TestWordAlgebra(t *testing.T) {
	dst := []uint64{0xFF00, 0xF0F0, 0x1, 0x2, 0x4}
	src := []uint64{0x0FF0, 0x00FF, 0x1, 0x0, 0x4}

	and := append([]uint64(nil), dst...)
	AndWords(and, src)
	assert.Equal(t, []uint64{0x0F00, 0x00F0, 0x1, 0x0, 0x4}, and)

	or := append([]uint64(nil), dst...)
	OrWords(or, src)
	assert.Equal(t, []uint64{0xFFF0, 0xF0FF, 0x1, 0x2, 0x4}, or)

	xor := append([]uint64(nil), dst...)
	XorWords(xor, src)
	assert.Equal(t, []uint64{0xF0F0, 0xF00F, 0x0, 0x2, 0x0}, xor)

	andNot := append([]uint64(nil), dst...)
	AndNotWords(andNot, src)
	assert.Equal(t, []uint64{0xF000, 0xF000, 0x0, 0x2, 0x0}, andNot)

	assert.Equal(t, 8+8+1+1+1, PopcountWords(dst))
	assert.True(t, IntersectsWords(dst, src))
	assert.False(t, IntersectsWords([]uint64{1, 0}, []uint64{2, 0}))
}

func TestNextSetAndPopLSBWords(t *testing.T) {
	words := []uint64{0, 1 << 5, 0, 1}

	assert.Equal(t, 69, NextSet(words, 0))
	assert.Equal(t, 69, NextSet(words, 69))
	assert.Equal(t, 192, NextSet(words, 70))
	assert.Equal(t, -1, NextSet(words, 193))

	assert.Equal(t, 69, PopLSBWords(words))
	assert.Equal(t, 192, PopLSBWords(words))
	assert.Equal(t, -1, PopLSBWords(words))
	assert.False(t, AnyWords(words))
}

func TestFillLow(t *testing.T) {
	words := make([]uint64, 3)
	FillLow(words, 70)
	assert.Equal(t, []uint64{^uint64(0), 0x3F, 0}, words)

	FillLow(words, 0)
	assert.Equal(t, []uint64{0, 0, 0}, words)
}
