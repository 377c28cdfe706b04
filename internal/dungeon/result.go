package dungeon

import (
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Stats counts what each phase placed
type Stats struct {
	Grown    int // Connection tiles placed by growth
	Filled   int // Fillers placed by gap closure
	DeadEnds int // Caps placed by dead end capping
	Skipped  int // Frontier entries that found no tile
}

// Result is the output of a generation run. It is not modified after Generate returns.
type Result struct {
	RunID   uuid.UUID
	Seed    int64 // Seed actually used; feed back into Config.Seed to replay
	Grid    *Grid
	Catalog *Catalog

	Tiles []*PlacedTile // Creation order; Tiles[i].ID == i
	Start *PlacedTile   // nil if no single-connector template exists
	End   *PlacedTile   // nil if end placement was disabled or failed

	Unresolved  []ConnectorRef // Connectors still free when the run finished
	Diagnostics []error        // Recoverable failures, in the order they happened
	Stats       Stats
}

// Tile returns the tile with the given ID, or nil
func (r *Result) Tile(id TileID) *PlacedTile {
	if id < 0 || int(id) >= len(r.Tiles) {
		return nil
	}
	return r.Tiles[id]
}

// Connector resolves a connector handle, or returns nil
func (r *Result) Connector(ref ConnectorRef) *Connector {
	t := r.Tile(ref.Tile)
	if t == nil || ref.Index < 0 || ref.Index >= len(t.connectors) {
		return nil
	}
	return t.connectors[ref.Index]
}

// TileAt returns the tile occupying (row, col), or nil if the cell is empty or off-grid.
func (r *Result) TileAt(row, col int) *PlacedTile {
	if !r.Grid.InBounds(row, col) {
		return nil
	}
	return r.Tile(r.Grid.Cell(row, col).Tile())
}

// TilesByRole returns the tiles placed with the given role, in creation order
func (r *Result) TilesByRole(role Role) []*PlacedTile {
	var out []*PlacedTile
	for _, t := range r.Tiles {
		if t.Role == role {
			out = append(out, t)
		}
	}
	return out
}

// Reachable counts the tiles reachable from the start tile over connected pairs.
func (r *Result) Reachable() int {
	if r.Start == nil {
		return 0
	}

	visited := mapset.New[TileID]()
	queue := []TileID{r.Start.ID}
	visited.Put(r.Start.ID)

	for len(queue) > 0 {
		current := r.Tile(queue[0])
		queue = queue[1:]

		for _, c := range current.Connectors() {
			partner, ok := c.Partner()
			if !ok || visited.Has(partner.Tile) {
				continue
			}
			visited.Put(partner.Tile)
			queue = append(queue, partner.Tile)
		}
	}

	return visited.Size()
}

// IsConnected is true when every placed tile is reachable from the start tile
func (r *Result) IsConnected() bool {
	return r.Reachable() == len(r.Tiles)
}
