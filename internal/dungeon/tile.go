package dungeon

// TileID indexes a placed tile in creation order.
type TileID int

// NoTile marks an empty cell or a tile without a parent.
const NoTile TileID = -1

// Role describes why a tile was placed.
type Role int

const (
	RoleStart      Role = iota // Seed tile, distance 0
	RoleConnection             // Grown from the frontier
	RoleFiller                 // Closes two or more open connectors on one cell
	RoleDeadEnd                // Caps a single open connector
	RoleEnd                    // The farthest cap
)

// String returns the string representation of a Role
func (r Role) String() string {
	switch r {
	case RoleStart:
		return "start"
	case RoleConnection:
		return "connection"
	case RoleFiller:
		return "filler"
	case RoleDeadEnd:
		return "dead_end"
	case RoleEnd:
		return "end"
	default:
		return "unknown"
	}
}

// growsFrontier reports whether tiles of this role expose their free connectors.
// Fillers, dead ends and end tiles are terminal patches.
func (r Role) growsFrontier() bool {
	return r == RoleStart || r == RoleConnection
}

// PlacedTile is a template instance bound to one grid cell.
type PlacedTile struct {
	ID                TileID
	Template          Template
	Role              Role
	Parent            TileID
	DistanceFromStart int

	cell       Coord
	connectors []*Connector
}

// newPlacedTile stamps a template. The tile is not bound to the grid yet.
func newPlacedTile(id TileID, tmpl Template, role Role, cell Coord, parent *PlacedTile) *PlacedTile {
	t := &PlacedTile{
		ID:       id,
		Template: tmpl,
		Role:     role,
		Parent:   NoTile,
		cell:     cell,
	}
	t.setDistanceFromStart(parent)

	dirs := tmpl.Connectors()
	t.connectors = make([]*Connector, len(dirs))
	for i, d := range dirs {
		t.connectors[i] = &Connector{
			Direction: d,
			ref:       ConnectorRef{Tile: id, Index: i},
		}
	}
	return t
}

func (t *PlacedTile) setDistanceFromStart(parent *PlacedTile) {
	if parent == nil {
		t.DistanceFromStart = 0
		t.Parent = NoTile
		return
	}
	t.DistanceFromStart = parent.DistanceFromStart + 1
	t.Parent = parent.ID
}

// Cell returns the coordinate of the cell this tile is bound to
func (t *PlacedTile) Cell() Coord {
	return t.cell
}

// Connectors returns the tile's connectors in template order. The slice must not be modified.
func (t *PlacedTile) Connectors() []*Connector {
	return t.connectors
}

// Connector returns the connector facing dir, or nil.
func (t *PlacedTile) Connector(dir Direction) *Connector {
	for _, c := range t.connectors {
		if c.Direction == dir {
			return c
		}
	}
	return nil
}

// OppositeConnector returns the connector that can pair with a connector facing dir.
func (t *PlacedTile) OppositeConnector(dir Direction) *Connector {
	return t.Connector(dir.Opposite())
}

// FreeConnectors returns the connectors that are still free.
func (t *PlacedTile) FreeConnectors() []*Connector {
	var free []*Connector
	for _, c := range t.connectors {
		if c.IsFree() {
			free = append(free, c)
		}
	}
	return free
}

// tileStore owns all placed tiles of a run. Cells and connectors refer to them by ID.
type tileStore struct {
	tiles []*PlacedTile
}

func (s *tileStore) nextID() TileID {
	return TileID(len(s.tiles))
}

func (s *tileStore) add(t *PlacedTile) {
	s.tiles = append(s.tiles, t)
}

func (s *tileStore) get(id TileID) *PlacedTile {
	if id < 0 || int(id) >= len(s.tiles) {
		return nil
	}
	return s.tiles[id]
}

func (s *tileStore) connector(ref ConnectorRef) *Connector {
	t := s.get(ref.Tile)
	if t == nil || ref.Index < 0 || ref.Index >= len(t.connectors) {
		return nil
	}
	return t.connectors[ref.Index]
}

func (s *tileStore) len() int {
	return len(s.tiles)
}
