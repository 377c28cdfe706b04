package dungeon

import (
	"fmt"
	"strings"
)

// Template is an immutable tile shape: a name and an ordered set of connector directions.
type Template struct {
	name       string
	connectors []Direction
}

// NewTemplate creates a template with connectors in the given order.
func NewTemplate(name string, dirs ...Direction) Template {
	connectors := make([]Direction, len(dirs))
	copy(connectors, dirs)
	return Template{name: name, connectors: connectors}
}

// Name returns the template's name
func (t Template) Name() string {
	return t.name
}

// Connectors returns a copy of the connector directions in template order
func (t Template) Connectors() []Direction {
	out := make([]Direction, len(t.connectors))
	copy(out, t.connectors)
	return out
}

// ConnectorCount returns the number of connectors
func (t Template) ConnectorCount() int {
	return len(t.connectors)
}

// IsTerminal is true for single-connector shapes (start, end, dead end).
func (t Template) IsTerminal() bool {
	return len(t.connectors) == 1
}

// IsPassThrough is true for shapes with two or more connectors.
func (t Template) IsPassThrough() bool {
	return len(t.connectors) >= 2
}

// Has returns true if the template has a connector facing dir
func (t Template) Has(dir Direction) bool {
	for _, d := range t.connectors {
		if d == dir {
			return true
		}
	}
	return false
}

// Set returns the template's connectors as a DirectionSet
func (t Template) Set() DirectionSet {
	return NewDirectionSet(t.connectors...)
}

// HasAdjacentConnections is true when a vertical connector sits next to a
// horizontal one, i.e. the shape is not a straight line.
func (t Template) HasAdjacentConnections() bool {
	s := t.Set()
	vertical := s.Has(Top) || s.Has(Bottom)
	horizontal := s.Has(Left) || s.Has(Right)
	return vertical && horizontal
}

// Rotate returns a new template with every connector rotated 90 degrees.
func (t Template) Rotate(nameSuffix string) Template {
	connectors := make([]Direction, len(t.connectors))
	for i, d := range t.connectors {
		connectors[i] = d.Rotate()
	}
	return Template{name: t.name + nameSuffix, connectors: connectors}
}

// rotated applies Rotate turns times and names the result base name + suffix.
func (t Template) rotated(turns int, suffix string) Template {
	out := t
	for i := 0; i < turns; i++ {
		out = out.Rotate("")
	}
	out.name = t.name + suffix
	return out
}

// Validate checks the template has 1-4 connectors with no repeated direction.
func (t Template) Validate() error {
	if len(t.connectors) == 0 || len(t.connectors) > 4 {
		return fmt.Errorf("%w: %q has %d connectors", ErrInvalidTemplate, t.name, len(t.connectors))
	}
	var seen DirectionSet
	for _, d := range t.connectors {
		if d < Top || d > Left {
			return fmt.Errorf("%w: %q has unknown direction %d", ErrInvalidTemplate, t.name, int(d))
		}
		if seen.Has(d) {
			return fmt.Errorf("%w: %q repeats direction %s", ErrInvalidTemplate, t.name, d)
		}
		seen = seen.With(d)
	}
	return nil
}

// String returns e.g. "l_bend[top,right]"
func (t Template) String() string {
	names := make([]string, len(t.connectors))
	for i, d := range t.connectors {
		names[i] = d.String()
	}
	return t.name + "[" + strings.Join(names, ",") + "]"
}
