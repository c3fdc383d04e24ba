// Package main generates a fixed-shape Go file on top of the bitgrid
// runtime: shape constants, constructors and precomputed mask and attack
// tables stored as raw storage literals.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/bitgrid"
)

var (
	verbose   = flag.Bool("v", false, "verbose output")
	width     = flag.Uint("width", 8, "board width (1-255)")
	height    = flag.Uint("height", 8, "board height (1-255)")
	colMajor  = flag.Bool("col-major", false, "store cells column by column")
	kindName  = flag.String("type", "auto", "storage backend (auto, word, doubleword, wordarray)")
	pkg       = flag.String("pkg", "board", "package name of the generated file")
	output    = flag.String("o", "", "output file (default: <pkg>_gen.go)")
	tableList = flag.String("tables", "rays,diag,neighbors", "comma separated tables to emit (rays, diag, neighbors)")
	slides    multiFlag
	jumps     multiFlag
)

func init() {
	flag.Var(&slides, "slide", "sliding attack table as Name=offsets (repeatable), e.g. Rook=rook")
	flag.Var(&jumps, "jump", "jump attack table as Name=offsets (repeatable), e.g. Knight=2,1;1,2")
}

func main() {
	flag.Parse()

	if *width == 0 || *width > bitgrid.MaxDimension || *height == 0 || *height > bitgrid.MaxDimension {
		fmt.Fprintf(os.Stderr, "width and height must be between 1 and %d\n", bitgrid.MaxDimension)
		os.Exit(1)
	}
	shape := bitgrid.NewShape(uint8(*width), uint8(*height), *colMajor)

	kind, err := parseKind(*kindName, shape)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}

	gen := &Generator{
		Shape:   shape,
		Kind:    kind,
		Package: *pkg,
		Output:  *output,
		Tables:  splitList(*tableList),
		Logger:  bitgrid.NewTextLogger(level),
		Args:    os.Args[1:],
	}
	if gen.Output == "" {
		gen.Output = gen.Package + "_gen.go"
	}
	if gen.Slide, err = parseAttacks(slides); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if gen.Jump, err = parseAttacks(jumps); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := gen.Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated %s (%s, %s)\n", gen.Output, shape, kind)
}

type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(value string) error {
	*m = append(*m, value)
	return nil
}

// parseKind maps a -type value to a backend and checks that the shape fits.
func parseKind(name string, s bitgrid.Shape) (bitgrid.Kind, error) {
	var k bitgrid.Kind
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		k = bitgrid.KindFor(s)
	case "word":
		k = bitgrid.KindWord
	case "doubleword":
		k = bitgrid.KindDoubleWord
	case "wordarray":
		k = bitgrid.KindWordArray
	default:
		return 0, fmt.Errorf("unknown storage type %q", name)
	}
	if err := bitgrid.CheckCapacity(s, k); err != nil {
		return 0, err
	}
	return k, nil
}

// parseAttacks parses Name=offsets pairs.
func parseAttacks(specs []string) ([]Attack, error) {
	out := make([]Attack, 0, len(specs))
	for _, spec := range specs {
		name, list, ok := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		if !ok || !goIdentRe.MatchString(name) {
			return nil, fmt.Errorf("attack table %q: want Name=offsets", spec)
		}
		offsets, err := bitgrid.ParseOffsets(list)
		if err != nil {
			return nil, fmt.Errorf("attack table %s: %w", name, err)
		}
		out = append(out, Attack{Name: name, Offsets: offsets})
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
