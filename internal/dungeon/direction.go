package dungeon

import (
	"fmt"
	"strings"
)

// Direction represents a tile edge on the grid.
// Top points to row+1, Right points to col+1.
type Direction int

const (
	Top Direction = iota
	Right
	Bottom
	Left
)

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case Top:
		return Bottom
	case Right:
		return Left
	case Bottom:
		return Top
	case Left:
		return Right
	default:
		return d
	}
}

// Rotate returns the direction rotated 90 degrees clockwise:
// Top -> Right -> Bottom -> Left -> Top.
func (d Direction) Rotate() Direction {
	switch d {
	case Top:
		return Right
	case Right:
		return Bottom
	case Bottom:
		return Left
	case Left:
		return Top
	default:
		return d
	}
}

// Offset returns the row and column delta of the neighbouring cell in this direction.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Top:
		return 1, 0
	case Bottom:
		return -1, 0
	case Right:
		return 0, 1
	case Left:
		return 0, -1
	}
	return 0, 0
}

// AllDirections returns all four directions in rotation order
func AllDirections() []Direction {
	return []Direction{Top, Right, Bottom, Left}
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "bottom", "bot":
		return Bottom, nil
	case "left":
		return Left, nil
	}
	return Top, fmt.Errorf("%w: unknown direction %q", ErrInvalidTemplate, s)
}

// DirectionSet is a bitmask of directions.
type DirectionSet uint8

// NewDirectionSet builds a set from the given directions.
func NewDirectionSet(dirs ...Direction) DirectionSet {
	var s DirectionSet
	for _, d := range dirs {
		s = s.With(d)
	}
	return s
}

// With returns the set with d added.
func (s DirectionSet) With(d Direction) DirectionSet {
	return s | 1<<uint(d)
}

// Has reports whether d is in the set.
func (s DirectionSet) Has(d Direction) bool {
	return s&(1<<uint(d)) != 0
}

// Len returns the number of directions in the set.
func (s DirectionSet) Len() int {
	n := 0
	for _, d := range AllDirections() {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// String lists the directions in rotation order, e.g. "top+left".
func (s DirectionSet) String() string {
	var parts []string
	for _, d := range AllDirections() {
		if s.Has(d) {
			parts = append(parts, d.String())
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
