package bitgrid

import (
	"strconv"
	"strings"
)

// maxRenderDim clips Render output on each axis.
const maxRenderDim = 70

// Render draws g with the north row first: one line per row labelled with
// its y coordinate, '#' for a set cell and '.' for a clear one, followed by
// the x coordinates (tens digit on the first line for x >= 10, units digit
// on the second). Grids larger than 70 cells on an axis are clipped and
// marked with "...".
func Render[G Board[G]](g G) string {
	s := g.Shape()
	w := min(int(s.Width), maxRenderDim)
	h := min(int(s.Height), maxRenderDim)
	clipW := int(s.Width) > maxRenderDim
	labelW := max(len(strconv.Itoa(h-1)), 2)

	var b strings.Builder
	if int(s.Height) > maxRenderDim {
		b.WriteString(strings.Repeat(" ", labelW))
		b.WriteString("   ...\n")
	}

	for y := h - 1; y >= 0; y-- {
		label := strconv.Itoa(y)
		b.WriteString(strings.Repeat(" ", labelW-len(label)))
		b.WriteString(label)
		b.WriteString(" | ")
		for x := range w {
			if g.GetXY(uint8(x), uint8(y)) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if clipW {
			b.WriteString("...")
		}
		b.WriteByte('\n')
	}

	prefix := strings.Repeat(" ", labelW+3)
	b.WriteString(prefix)
	for x := range w {
		if x >= 10 {
			b.WriteByte(byte('0' + (x/10)%10))
		} else {
			b.WriteByte(byte('0' + x))
		}
	}
	if clipW {
		b.WriteString("...")
	}
	b.WriteByte('\n')

	if s.Width >= 10 {
		b.WriteString(prefix)
		for x := range w {
			if x < 10 {
				b.WriteByte(' ')
			} else {
				b.WriteByte(byte('0' + x%10))
			}
		}
		if clipW {
			b.WriteString("...")
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderDebug formats g as name(0b...). The valid cells are written most
// significant first, grouped by row (row-major) or column (column-major)
// and separated by '_'. Padding bits above w*h are prepended in
// parentheses, but only when one of them is set.
func RenderDebug[G Board[G]](g G, name string) string {
	s := g.Shape()
	total := s.Squares()
	storage := g.StorageBits()

	var b strings.Builder
	b.WriteString(name)
	b.WriteString("(0b")

	padded := false
	for i := total; i < storage; i++ {
		if g.Get(i) {
			padded = true
			break
		}
	}
	if padded {
		b.WriteByte('(')
		for i := storage - 1; i >= total; i-- {
			writeBit(&b, g.Get(i))
		}
		b.WriteByte(')')
	}

	group := int(s.Width)
	if s.ColumnMajor {
		group = int(s.Height)
	}
	for k, i := 0, total-1; i >= 0; k, i = k+1, i-1 {
		if k > 0 && k%group == 0 {
			b.WriteByte('_')
		}
		writeBit(&b, g.Get(i))
	}

	b.WriteByte(')')
	return b.String()
}

func writeBit(b *strings.Builder, set bool) {
	if set {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
}
