package dungeon

import (
	"fmt"
	"math/rand"
)

// Catalog is the expanded working tile set: every base template followed
// immediately by its rotational variants.
type Catalog struct {
	templates []Template
}

// BuildCatalog expands the base templates into all rotations they need.
//
//   - 4 connectors: no variants.
//   - 2 opposite connectors (straight): one 90 degree variant.
//   - anything else: 90, 180 and 270 degree variants.
func BuildCatalog(base []Template) (*Catalog, error) {
	if len(base) == 0 {
		return nil, fmt.Errorf("%w: empty base tile set", ErrInvalidConfig)
	}

	c := &Catalog{}
	for _, t := range base {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		c.templates = append(c.templates, t)
		if t.ConnectorCount() >= 4 {
			continue
		}

		c.templates = append(c.templates, t.rotated(1, "_r90"))
		if t.ConnectorCount() == 2 && !t.HasAdjacentConnections() {
			continue
		}
		c.templates = append(c.templates, t.rotated(2, "_r180"), t.rotated(3, "_r270"))
	}

	return c, nil
}

// Templates returns the catalog in build order
func (c *Catalog) Templates() []Template {
	out := make([]Template, len(c.templates))
	copy(out, c.templates)
	return out
}

// Len returns the number of templates
func (c *Catalog) Len() int {
	return len(c.templates)
}

// workingSet is the catalog copy a run shuffles before every match attempt.
type workingSet []Template

func (w workingSet) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(w), func(i, j int) {
		w[i], w[j] = w[j], w[i]
	})
}
