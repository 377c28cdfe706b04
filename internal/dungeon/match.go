package dungeon

// constraints describes what a target cell's surroundings demand of a template.
type constraints struct {
	// needed: the neighbour is occupied and has a connector facing this cell.
	needed DirectionSet
	// blocked: off-grid, or the neighbour is occupied without a facing connector.
	blocked DirectionSet
}

// cellConstraints derives needed and blocked edges for a cell from its neighbours.
func cellConstraints(grid *Grid, tiles *tileStore, cell *Cell) constraints {
	var c constraints
	for _, dir := range AllDirections() {
		neighbor := grid.Neighbor(cell, dir)
		if neighbor == nil {
			c.blocked = c.blocked.With(dir)
			continue
		}
		if !neighbor.IsOccupied() {
			continue
		}
		nt := tiles.get(neighbor.Tile())
		if nt != nil && nt.OppositeConnector(dir) != nil {
			c.needed = c.needed.With(dir)
		} else {
			c.blocked = c.blocked.With(dir)
		}
	}
	return c
}

// matchGrowth returns the first pass-through template that has a connector on
// every needed edge and none on a blocked edge. Other edges are unconstrained.
func matchGrowth(templates []Template, c constraints) (Template, bool) {
	for _, t := range templates {
		if !t.IsPassThrough() {
			continue
		}
		set := t.Set()
		if set&c.needed != c.needed {
			continue
		}
		if set&c.blocked != 0 {
			continue
		}
		return t, true
	}
	return Template{}, false
}

// matchFiller returns the first pass-through template whose connectors are
// exactly the needed set. A single needed edge is a dead end, not a gap, and
// never matches.
func matchFiller(templates []Template, needed DirectionSet) (Template, bool) {
	if needed.Len() == 1 {
		return Template{}, false
	}
	for _, t := range templates {
		if !t.IsPassThrough() {
			continue
		}
		if t.Set() == needed {
			return t, true
		}
	}
	return Template{}, false
}

// matchStart returns the first single-connector template.
func matchStart(templates []Template) (Template, bool) {
	for _, t := range templates {
		if t.IsTerminal() {
			return t, true
		}
	}
	return Template{}, false
}

// matchTerminal returns the first single-connector template facing dir.
// Used for both dead ends and the end tile.
func matchTerminal(templates []Template, dir Direction) (Template, bool) {
	for _, t := range templates {
		if t.IsTerminal() && t.Has(dir) {
			return t, true
		}
	}
	return Template{}, false
}
