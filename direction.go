package bitgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Direction is one of the eight compass directions.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists all compass directions clockwise from North.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var directionOffsets = [8]Offset{{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1}}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "Direction(" + strconv.Itoa(int(d)) + ")"
}

// Offset returns the unit step of the direction.
func (d Direction) Offset() Offset { return directionOffsets[d&7] }

// Opposite returns the direction rotated by 180 degrees.
func (d Direction) Opposite() Direction { return (d + 4) & 7 }

// Offset is a (dx,dy) step on the grid.
type Offset struct {
	DX, DY int
}

func (o Offset) String() string { return fmt.Sprintf("%d,%d", o.DX, o.DY) }

// Common movement offsets.
var (
	RookOffsets   = []Offset{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	BishopOffsets = []Offset{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	QueenOffsets  = append(append([]Offset(nil), RookOffsets...), BishopOffsets...)
	KingOffsets   = QueenOffsets
	KnightOffsets = []Offset{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
)

var namedOffsets = map[string][]Offset{
	"rook":   RookOffsets,
	"bishop": BishopOffsets,
	"queen":  QueenOffsets,
	"king":   KingOffsets,
	"knight": KnightOffsets,
}

// ParseOffsets parses a list of offsets such as "1,0;0,1;-1,0". A preset
// name (rook, bishop, queen, king, knight) may stand in for the list.
func ParseOffsets(s string) ([]Offset, error) {
	s = strings.TrimSpace(s)
	if preset, ok := namedOffsets[strings.ToLower(s)]; ok {
		return append([]Offset(nil), preset...), nil
	}
	if s == "" {
		return nil, &ErrOffsetSyntax{Input: s, cause: fmt.Errorf("%w: empty list", ErrInvalidOffset)}
	}

	var out []Offset
	for _, part := range strings.Split(s, ";") {
		xs, ys, ok := strings.Cut(strings.TrimSpace(part), ",")
		if !ok {
			return nil, &ErrOffsetSyntax{Input: s, cause: fmt.Errorf("%w: missing comma in %q", ErrInvalidOffset, part)}
		}
		dx, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, &ErrOffsetSyntax{Input: s, cause: fmt.Errorf("%w: %w", ErrInvalidOffset, err)}
		}
		dy, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, &ErrOffsetSyntax{Input: s, cause: fmt.Errorf("%w: %w", ErrInvalidOffset, err)}
		}
		if dx == 0 && dy == 0 {
			return nil, &ErrOffsetSyntax{Input: s, cause: fmt.Errorf("%w: zero step", ErrInvalidOffset)}
		}
		out = append(out, Offset{DX: dx, DY: dy})
	}
	return out, nil
}
