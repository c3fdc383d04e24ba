package main

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/hupe1980/bitgrid"
)

var goIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Generator renders one fixed-shape Go file.
type Generator struct {
	Shape   bitgrid.Shape
	Kind    bitgrid.Kind
	Package string
	Output  string
	Tables  []string
	Slide   []Attack
	Jump    []Attack
	Logger  *bitgrid.Logger
	Args    []string
}

// Attack names a per-square attack table and its offsets.
type Attack struct {
	Name    string
	Offsets []bitgrid.Offset
}

// Generate renders the file and writes it to g.Output.
func (g *Generator) Generate() error {
	src, err := g.Render(context.Background())
	if err != nil {
		return err
	}
	return os.WriteFile(g.Output, src, 0600)
}

// Render returns the gofmt'ed source of the generated file.
func (g *Generator) Render(ctx context.Context) ([]byte, error) {
	if !goIdentRe.MatchString(g.Package) {
		return nil, fmt.Errorf("invalid package name %q", g.Package)
	}
	if err := bitgrid.CheckCapacity(g.Shape, g.Kind); err != nil {
		return nil, err
	}
	if g.Logger == nil {
		g.Logger = bitgrid.NoopLogger()
	}

	s := g.Shape
	switch g.Kind {
	case bitgrid.KindWord:
		return render(ctx, g, bitgrid.EmptyWord(s.Width, s.Height, s.ColumnMajor),
			func(w *bitgrid.Word) []uint64 { return []uint64{w.Storage()} })
	case bitgrid.KindDoubleWord:
		return render(ctx, g, bitgrid.EmptyDoubleWord(s.Width, s.Height, s.ColumnMajor),
			func(w *bitgrid.DoubleWord) []uint64 { v := w.Storage(); return []uint64{v.Lo, v.Hi} })
	default:
		return render(ctx, g, bitgrid.EmptyWordArray(s.Width, s.Height, s.ColumnMajor),
			func(w *bitgrid.WordArray) []uint64 { return w.Storage() })
	}
}

// emitter writes declarations for one backend.
type emitter[G bitgrid.Board[G]] struct {
	buf     bytes.Buffer
	words   func(G) []uint64
	storage string
	scalar  bool
}

func (e *emitter[G]) printf(layout string, args ...any) {
	fmt.Fprintf(&e.buf, layout, args...)
}

// elem renders g as an element of a composite literal.
func (e *emitter[G]) elem(g G) string {
	w := e.words(g)
	if e.scalar {
		return fmt.Sprintf("%#x", w[0])
	}
	parts := make([]string, len(w))
	for i, v := range w {
		parts[i] = fmt.Sprintf("%#x", v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// value renders g as a standalone expression.
func (e *emitter[G]) value(g G) string {
	if e.scalar {
		return e.elem(g)
	}
	return e.storage + e.elem(g)
}

func (e *emitter[G]) masks(doc string, names []string, grids []G) {
	keyword := "var"
	if e.scalar {
		keyword = "const"
	}
	e.printf("// %s\n%s (\n", doc, keyword)
	for i, name := range names {
		if e.scalar {
			e.printf("%s %s = %s\n", name, e.storage, e.value(grids[i]))
		} else {
			e.printf("%s = %s\n", name, e.value(grids[i]))
		}
	}
	e.printf(")\n\n")
}

func (e *emitter[G]) table(doc, name, size string, grids []G) {
	e.printf("// %s\nvar %s = [%s]%s{\n", doc, name, size, e.storage)
	for _, g := range grids {
		e.printf("%s,\n", e.elem(g))
	}
	e.printf("}\n\n")
}

func (e *emitter[G]) perDirection(doc, name string, grids [8][]G) {
	e.printf("// %s\nvar %s = [8][Squares]%s{\n", doc, name, e.storage)
	for _, d := range bitgrid.Directions {
		e.printf("%d: { // %s\n", d, d)
		for _, g := range grids[d] {
			e.printf("%s,\n", e.elem(g))
		}
		e.printf("},\n")
	}
	e.printf("}\n\n")
}

func render[G bitgrid.Board[G]](ctx context.Context, g *Generator, proto G, words func(G) []uint64) ([]byte, error) {
	s := g.Shape
	n := s.Squares()
	logger := g.Logger.WithShape(s).WithKind(g.Kind)

	start := time.Now()
	tables := bitgrid.NewTables(proto)
	logger.LogTableBuild(ctx, s, g.Kind, time.Since(start), nil)

	e := &emitter[G]{words: words}
	var gridType, ctor, newParam, newBody string
	imports := []string{`"github.com/hupe1980/bitgrid"`}
	switch g.Kind {
	case bitgrid.KindWord:
		e.storage, e.scalar = "uint64", true
		gridType, ctor = "*bitgrid.Word", "Word"
		newParam, newBody = "bits uint64", "bitgrid.NewWord(Width, Height, ColumnMajor, bits)"
	case bitgrid.KindDoubleWord:
		e.storage = "[2]uint64"
		gridType, ctor = "*bitgrid.DoubleWord", "DoubleWord"
		newParam = "bits [2]uint64"
		newBody = "bitgrid.NewDoubleWord(Width, Height, ColumnMajor, uint128.New(bits[0], bits[1]))"
		imports = append(imports, `"lukechampine.com/uint128"`)
	default:
		e.storage = fmt.Sprintf("[%d]uint64", len(words(proto)))
		gridType, ctor = "*bitgrid.WordArray", "WordArray"
		newParam, newBody = "words "+e.storage, "bitgrid.NewWordArray(Width, Height, ColumnMajor, words[:])"
	}

	e.printf("// Code generated by %s; DO NOT EDIT.\n\n", strings.Join(append([]string{"gridgen"}, g.Args...), " "))
	e.printf("package %s\n\n", g.Package)
	e.printf("import (\n%s\n)\n\n", strings.Join(imports, "\n"))

	e.printf("const (\nWidth = %d\nHeight = %d\nSquares = %d\nColumnMajor = %t\n)\n\n",
		s.Width, s.Height, n, s.ColumnMajor)
	e.printf("// Shape is the board shape.\nvar Shape = bitgrid.NewShape(Width, Height, ColumnMajor)\n\n")
	e.printf("// Storage is the raw storage of one board.\ntype Storage = %s\n\n", e.storage)
	e.printf("// New returns a board holding the given storage.\nfunc New(%s) %s { return %s }\n\n", newParam, gridType, newBody)
	e.printf("// Empty returns an empty board.\nfunc Empty() %s { return bitgrid.Empty%s(Width, Height, ColumnMajor) }\n\n", gridType, ctor)
	e.printf("// Full returns a board with every cell set.\nfunc Full() %s { return bitgrid.Full%s(Width, Height, ColumnMajor) }\n\n", gridType, ctor)

	e.masks("Region masks.", []string{
		"FullMask", "BordersMask", "NorthBorder", "SouthBorder", "WestBorder", "EastBorder",
		"CenterMask", "CornersMask", "EvenMask", "OddMask",
		"NorthHalf", "SouthHalf", "WestHalf", "EastHalf",
	}, []G{
		tables.Full(), tables.Borders(), tables.NorthBorder(), tables.SouthBorder(), tables.WestBorder(), tables.EastBorder(),
		tables.Center(), tables.Corners(), tables.Even(), tables.Odd(),
		tables.NorthHalf(), tables.SouthHalf(), tables.WestHalf(), tables.EastHalf(),
	})

	rows := make([]G, s.Height)
	for y := range rows {
		rows[y] = tables.Row(uint8(y))
	}
	cols := make([]G, s.Width)
	for x := range cols {
		cols[x] = tables.Col(uint8(x))
	}
	e.table("Rows holds the mask of each row, south first.", "Rows", "Height", rows)
	e.table("Cols holds the mask of each column, west first.", "Cols", "Width", cols)

	e.printf("// NoWrap holds, per direction, the cells that stay on the board after a one-step shift.\nvar NoWrap = [8]%s{\n", e.storage)
	for _, d := range bitgrid.Directions {
		e.printf("%d: %s, // %s\n", d, e.elem(tables.NoWrap(d)), d)
	}
	e.printf("}\n\n")

	perSquare := func(fn func(int) G) []G {
		out := make([]G, n)
		for sq := range out {
			out[sq] = fn(sq)
		}
		return out
	}

	for _, name := range g.Tables {
		switch name {
		case "rays":
			var rays [8][]G
			for _, d := range bitgrid.Directions {
				rays[d] = perSquare(func(sq int) G { return tables.Ray(d, sq) })
			}
			e.perDirection("Rays holds the empty-board ray from each square, indexed by bitgrid.Direction.", "Rays", rays)
		case "diag":
			e.table("DiagInc holds the increasing diagonal through each square.", "DiagInc", "Squares", perSquare(tables.DiagInc))
			e.table("DiagDec holds the decreasing diagonal through each square.", "DiagDec", "Squares", perSquare(tables.DiagDec))
		case "neighbors":
			e.table("Neighbors holds the eight surrounding cells of each square.", "Neighbors", "Squares", perSquare(tables.Neighbors))
			e.table("NeighborsOrtho holds the orthogonal neighbors of each square.", "NeighborsOrtho", "Squares", perSquare(tables.NeighborsOrtho))
			e.table("NeighborsDiag holds the diagonal neighbors of each square.", "NeighborsDiag", "Squares", perSquare(tables.NeighborsDiag))
		default:
			return nil, fmt.Errorf("unknown table %q", name)
		}
		logger.Debug("emitted table", "table", name)
	}

	for _, a := range g.Slide {
		e.table(fmt.Sprintf("%sAttacks holds the empty-board sliding attacks along %v.", a.Name, a.Offsets),
			a.Name+"Attacks", "Squares", bitgrid.SlidingAttackTableLanes(proto, a.Offsets))
	}
	for _, a := range g.Jump {
		e.table(fmt.Sprintf("%sAttacks holds the jump destinations for %v.", a.Name, a.Offsets),
			a.Name+"Attacks", "Squares", bitgrid.JumpAttackTable(proto, a.Offsets))
	}

	src, err := format.Source(e.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
