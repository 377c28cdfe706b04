package dungeon

import (
	"errors"
	"testing"
)

func TestDirectionString(t *testing.T) {
	tests := []struct {
		d    Direction
		want string
	}{
		{Top, "top"},
		{Right, "right"},
		{Bottom, "bottom"},
		{Left, "left"},
		{Direction(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.d.String(); got != tc.want {
			t.Errorf("Direction(%d).String() = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	tests := []struct {
		d    Direction
		want Direction
	}{
		{Top, Bottom},
		{Bottom, Top},
		{Left, Right},
		{Right, Left},
	}

	for _, tc := range tests {
		if got := tc.d.Opposite(); got != tc.want {
			t.Errorf("%s.Opposite() = %s, want %s", tc.d, got, tc.want)
		}
		if got := tc.d.Opposite().Opposite(); got != tc.d {
			t.Errorf("%s.Opposite().Opposite() = %s", tc.d, got)
		}
	}
}

func TestDirectionRotate(t *testing.T) {
	tests := []struct {
		d    Direction
		want Direction
	}{
		{Top, Right},
		{Right, Bottom},
		{Bottom, Left},
		{Left, Top},
	}

	for _, tc := range tests {
		if got := tc.d.Rotate(); got != tc.want {
			t.Errorf("%s.Rotate() = %s, want %s", tc.d, got, tc.want)
		}
		if got := tc.d.Rotate().Rotate().Rotate().Rotate(); got != tc.d {
			t.Errorf("%s rotated four times = %s", tc.d, got)
		}
	}
}

func TestDirectionOffset(t *testing.T) {
	for _, d := range AllDirections() {
		dr, dc := d.Offset()
		or, oc := d.Opposite().Offset()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%s offset (%d,%d) does not cancel its opposite (%d,%d)", d, dr, dc, or, oc)
		}
	}

	if dr, dc := Top.Offset(); dr != 1 || dc != 0 {
		t.Errorf("Top.Offset() = (%d,%d), want (1,0)", dr, dc)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		input string
		want  Direction
	}{
		{"top", Top},
		{"Bottom", Bottom},
		{"bot", Bottom},
		{" left ", Left},
		{"RIGHT", Right},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.input)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDirection(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}

	if _, err := ParseDirection("north"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("ParseDirection(north) error = %v, want ErrInvalidTemplate", err)
	}
}

func TestDirectionSet(t *testing.T) {
	s := NewDirectionSet(Top, Left)

	if !s.Has(Top) || !s.Has(Left) {
		t.Errorf("set %s missing members", s)
	}
	if s.Has(Right) || s.Has(Bottom) {
		t.Errorf("set %s has extra members", s)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.String(); got != "top+left" {
		t.Errorf("String() = %q, want %q", got, "top+left")
	}
	if got := DirectionSet(0).String(); got != "none" {
		t.Errorf("empty set String() = %q, want %q", got, "none")
	}
}
