package main

import (
	"context"
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/hupe1980/bitgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// declared returns the top-level value, type and function names of src.
func declared(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			names[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				}
			}
		}
	}
	return names
}

func TestRenderWord(t *testing.T) {
	gen := &Generator{
		Shape:   bitgrid.NewShape(3, 2, false),
		Kind:    bitgrid.KindWord,
		Package: "tiny",
		Tables:  []string{"rays", "diag", "neighbors"},
		Slide:   []Attack{{Name: "Rook", Offsets: bitgrid.RookOffsets}},
		Jump:    []Attack{{Name: "Knight", Offsets: bitgrid.KnightOffsets}},
	}
	src, err := gen.Render(context.Background())
	require.NoError(t, err)

	out := string(src)
	assert.Regexp(t, `(?m)^// Code generated by gridgen; DO NOT EDIT\.$`, out)
	assert.Contains(t, out, "package tiny")
	assert.Regexp(t, `FullMask\s+uint64 = 0x3f`, out)
	assert.Regexp(t, `BordersMask\s+uint64 = 0x3f`, out)
	assert.Regexp(t, `WestBorder\s+uint64 = 0x9\b`, out)
	assert.Regexp(t, `NorthBorder\s+uint64 = 0x38`, out)
	assert.NotContains(t, out, "uint128")

	names := declared(t, src)
	for _, name := range []string{
		"Width", "Height", "Squares", "ColumnMajor", "Shape", "Storage", "New", "Empty", "Full",
		"Rows", "Cols", "NoWrap", "Rays", "DiagInc", "DiagDec", "Neighbors", "NeighborsOrtho",
		"NeighborsDiag", "RookAttacks", "KnightAttacks",
	} {
		assert.True(t, names[name], name)
	}
}

func TestRenderDoubleWordImportsUint128(t *testing.T) {
	gen := &Generator{
		Shape:   bitgrid.NewShape(11, 11, true),
		Kind:    bitgrid.KindDoubleWord,
		Package: "go11",
	}
	src, err := gen.Render(context.Background())
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, `"lukechampine.com/uint128"`)
	assert.Contains(t, out, "type Storage = [2]uint64")
	assert.Regexp(t, `FullMask\s+= \[2\]uint64\{0xffffffffffffffff, 0x1ffffffffffffff\}`, out)
	assert.False(t, declared(t, src)["Rays"])
}

func TestRenderWordArrayRows(t *testing.T) {
	gen := &Generator{
		Shape:   bitgrid.NewShape(19, 19, false),
		Kind:    bitgrid.KindWordArray,
		Package: "go19",
		Tables:  []string{"diag"},
	}
	src, err := gen.Render(context.Background())
	require.NoError(t, err)

	out := string(src)
	assert.Contains(t, out, "type Storage = [6]uint64")
	assert.Contains(t, out, "var Rows = [Height][6]uint64{")
	// Row 0 is the low 19 bits of the first word.
	assert.Regexp(t, regexp.MustCompile(`\{0x7ffff, 0x0, 0x0, 0x0, 0x0, 0x0\},`), out)
}

func TestRenderErrors(t *testing.T) {
	_, err := (&Generator{Shape: bitgrid.NewShape(19, 19, false), Kind: bitgrid.KindWord, Package: "p"}).Render(context.Background())
	var capErr *bitgrid.ErrCapacityExceeded
	assert.True(t, errors.As(err, &capErr))

	_, err = (&Generator{Shape: bitgrid.NewShape(3, 3, false), Kind: bitgrid.KindWord, Package: "bad-name"}).Render(context.Background())
	assert.Error(t, err)

	_, err = (&Generator{Shape: bitgrid.NewShape(3, 3, false), Kind: bitgrid.KindWord, Package: "p", Tables: []string{"bogus"}}).Render(context.Background())
	assert.ErrorContains(t, err, "bogus")
}

func TestGenerateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board_gen.go")
	gen := &Generator{
		Shape:   bitgrid.NewShape(8, 8, false),
		Kind:    bitgrid.KindWord,
		Package: "board",
		Output:  path,
		Tables:  []string{"rays"},
		Logger:  bitgrid.NoopLogger(),
		Args:    []string{"-width", "8", "-height", "8"},
	}
	require.NoError(t, gen.Generate())

	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Code generated by gridgen -width 8 -height 8; DO NOT EDIT.")
	assert.Regexp(t, `BordersMask\s+uint64 = 0xff818181818181ff`, string(src))
}

func TestParseKind(t *testing.T) {
	k, err := parseKind("auto", bitgrid.NewShape(11, 11, false))
	require.NoError(t, err)
	assert.Equal(t, bitgrid.KindDoubleWord, k)

	k, err = parseKind("WordArray", bitgrid.NewShape(4, 4, false))
	require.NoError(t, err)
	assert.Equal(t, bitgrid.KindWordArray, k)

	_, err = parseKind("word", bitgrid.NewShape(9, 9, false))
	assert.Error(t, err)
	_, err = parseKind("nibble", bitgrid.NewShape(2, 2, false))
	assert.Error(t, err)
}

func TestParseAttacks(t *testing.T) {
	attacks, err := parseAttacks([]string{"Rook=rook", "Camel=3,1;1,3"})
	require.NoError(t, err)
	require.Len(t, attacks, 2)
	assert.Equal(t, bitgrid.RookOffsets, attacks[0].Offsets)
	assert.Equal(t, []bitgrid.Offset{{DX: 3, DY: 1}, {DX: 1, DY: 3}}, attacks[1].Offsets)

	_, err = parseAttacks([]string{"no-equals"})
	assert.Error(t, err)
	_, err = parseAttacks([]string{"Bad=0,0"})
	assert.ErrorIs(t, err, bitgrid.ErrInvalidOffset)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"rays", "diag"}, splitList(" rays, ,diag "))
	assert.Nil(t, splitList(""))
}
