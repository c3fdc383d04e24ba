package bitgrid

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	g := EmptyWord(3, 2, false)
	g.SetXY(0, 0)
	g.SetXY(2, 1)

	want := "" +
		" 1 | ..#\n" +
		" 0 | #..\n" +
		"     012\n"
	assert.Equal(t, want, Render(g))
	assert.Equal(t, want, g.String())
}

func TestRenderIndependentOfLayout(t *testing.T) {
	rm := EmptyDoubleWord(9, 7, false)
	cm := EmptyDoubleWord(9, 7, true)
	for _, c := range [][2]uint8{{0, 6}, {8, 0}, {4, 3}} {
		rm.SetXY(c[0], c[1])
		cm.SetXY(c[0], c[1])
	}
	assert.Equal(t, Render(rm), Render(cm))
}

func TestRenderTwoAxisLines(t *testing.T) {
	g := EmptyWord(12, 1, false)
	g.SetXY(11, 0)

	want := "" +
		" 0 | ...........#\n" +
		"     012345678911\n" +
		"               01\n"
	assert.Equal(t, want, Render(g))
}

func TestRenderClipsLargeGrids(t *testing.T) {
	g := EmptyWordArray(80, 75, false)
	g.SetXY(79, 74)
	g.SetXY(69, 69)

	out := Render(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	// Header, 70 rows and two axis lines.
	require.Len(t, lines, 73)
	assert.Equal(t, "     ...", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "69 | "))
	assert.True(t, strings.HasSuffix(lines[1], "#..."))
	assert.Equal(t, 5+70+3, len(lines[1]))
	assert.True(t, strings.HasSuffix(lines[72], "..."))
	assert.NotContains(t, out, "79")
}

func TestRenderDebug(t *testing.T) {
	g := EmptyWord(3, 2, false)
	g.SetXY(0, 0)
	g.SetXY(2, 1)
	assert.Equal(t, "bitgrid.Word(0b100_001)", RenderDebug(g, "bitgrid.Word"))
	assert.Equal(t, "bitgrid.Word(0b100_001)", fmt.Sprintf("%#v", g))

	// Flipped also flips the two padding bits of the 8-bit storage class.
	assert.Equal(t, "bitgrid.Word(0b(11)111_111)", fmt.Sprintf("%#v", EmptyWord(3, 2, false).Flipped()))

	cm := EmptyWord(3, 2, true)
	cm.Set(0)
	assert.Equal(t, "bitgrid.Word(0b00_00_01)", fmt.Sprintf("%#v", cm))
}

func TestRenderDebugPadding(t *testing.T) {
	g := NewWordArray(2, 2, false, []uint64{1<<5 | 1})
	assert.True(t, strings.HasPrefix(RenderDebug(g, "g"), "g(0b("))
	assert.True(t, strings.HasSuffix(RenderDebug(g, "g"), "0010)00_01)"))

	g.Invert()
	clean := g.And(g.FullLike())
	assert.Equal(t, "g(0b11_10)", RenderDebug(clean, "g"))
}
