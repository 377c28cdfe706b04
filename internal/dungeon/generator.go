package dungeon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/zencodergames/dungeongen/internal/logger"
)

// MinTileBudget is the smallest tile budget a run accepts.
const MinTileBudget = 3

// Config contains parameters for a generation run
type Config struct {
	GridRows   int
	GridCols   int
	CellSize   float64
	Origin     Vec3
	StartRow   int
	StartCol   int
	TileBudget int        // Growth stops once this many tiles exist
	BaseTiles  []Template // Designer tile set, expanded into rotations per run

	EnableGrowth         bool
	EnableGapClosure     bool
	EnableEndPlacement   bool
	EnableDeadEndCapping bool

	Seed int64 // 0 picks a time-based seed; the seed used is reported in the Result
}

// DefaultConfig returns a 10x10 grid seeded at its centre with every phase enabled
func DefaultConfig(seed int64) *Config {
	return &Config{
		GridRows:             10,
		GridCols:             10,
		CellSize:             1,
		StartRow:             5,
		StartCol:             5,
		TileBudget:           20,
		BaseTiles:            DefaultTileSet(),
		EnableGrowth:         true,
		EnableGapClosure:     true,
		EnableEndPlacement:   true,
		EnableDeadEndCapping: true,
		Seed:                 seed,
	}
}

// DefaultTileSet returns a base tile set covering every connector count
func DefaultTileSet() []Template {
	return []Template{
		NewTemplate("corridor_end", Top),
		NewTemplate("l_bend", Top, Right),
		NewTemplate("straight", Top, Bottom),
		NewTemplate("t_junction", Top, Right, Left),
		NewTemplate("cross", Top, Right, Bottom, Left),
	}
}

// Validate rejects malformed configuration before any generation state exists.
func (c *Config) Validate() error {
	if c.GridRows <= 0 || c.GridCols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalidConfig, c.GridRows, c.GridCols)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size must be positive, got %v", ErrInvalidConfig, c.CellSize)
	}
	if c.TileBudget < MinTileBudget {
		return fmt.Errorf("%w: tile budget must be at least %d, got %d", ErrInvalidConfig, MinTileBudget, c.TileBudget)
	}
	if c.StartRow < 0 || c.StartRow >= c.GridRows || c.StartCol < 0 || c.StartCol >= c.GridCols {
		return fmt.Errorf("%w: start (%d,%d) outside %dx%d grid", ErrInvalidConfig, c.StartRow, c.StartCol, c.GridRows, c.GridCols)
	}
	if len(c.BaseTiles) == 0 {
		return fmt.Errorf("%w: empty base tile set", ErrInvalidConfig)
	}
	for _, t := range c.BaseTiles {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Placer positions the visual representation of a placed tile.
type Placer interface {
	Place(tile *PlacedTile, position Vec3)
}

// PlacerFunc adapts a function to the Placer interface
type PlacerFunc func(tile *PlacedTile, position Vec3)

// Place calls f(tile, position)
func (f PlacerFunc) Place(tile *PlacedTile, position Vec3) {
	f(tile, position)
}

type nopPlacer struct{}

func (nopPlacer) Place(*PlacedTile, Vec3) {}

// Generator runs the seed, growth, gap closure, end placement and dead end
// capping phases over a fresh grid on every call to Generate.
type Generator struct {
	config *Config
	placer Placer
}

// NewGenerator creates a new dungeon generator
func NewGenerator(config *Config) *Generator {
	return &Generator{
		config: config,
		placer: nopPlacer{},
	}
}

// SetPlacer sets the callback invoked for every placed tile. nil disables it.
func (g *Generator) SetPlacer(p Placer) {
	if p == nil {
		p = nopPlacer{}
	}
	g.placer = p
}

// Generate is shorthand for NewGenerator(config).Generate().
func Generate(config *Config) (*Result, error) {
	return NewGenerator(config).Generate()
}

// Generate builds a dungeon. Only invalid configuration is returned as an
// error; placement failures are logged and collected in Result.Diagnostics.
func (g *Generator) Generate() (*Result, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}

	catalog, err := BuildCatalog(g.config.BaseTiles)
	if err != nil {
		return nil, err
	}

	seed := g.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := newRun(g.config, catalog, seed, g.placer)
	logger.Info("Dungeon generation started",
		"run", r.id,
		"seed", seed,
		"rows", g.config.GridRows,
		"cols", g.config.GridCols,
		"budget", g.config.TileBudget,
		"catalog", catalog.Len())

	r.placeStart()
	if g.config.EnableGrowth {
		r.grow()
	}
	if g.config.EnableGapClosure {
		r.closeGaps()
	}
	if g.config.EnableEndPlacement {
		r.placeEnd()
	}
	if g.config.EnableDeadEndCapping {
		r.capDeadEnds()
	}

	result := r.result()
	logger.Info("Dungeon generation finished",
		"run", r.id,
		"tiles", len(result.Tiles),
		"unresolved", len(result.Unresolved),
		"diagnostics", len(result.Diagnostics))

	return result, nil
}

// run holds the working set of one generation. It is discarded afterwards.
type run struct {
	id      uuid.UUID
	cfg     *Config
	seed    int64
	rng     *rand.Rand
	placer  Placer
	catalog *Catalog
	working workingSet

	grid     *Grid
	tiles    tileStore
	frontier frontier

	start, end  *PlacedTile
	stats       Stats
	diagnostics []error
}

func newRun(cfg *Config, catalog *Catalog, seed int64, placer Placer) *run {
	return &run{
		id:      uuid.New(),
		cfg:     cfg,
		seed:    seed,
		rng:     rand.New(rand.NewSource(seed)),
		placer:  placer,
		catalog: catalog,
		working: workingSet(catalog.Templates()),
		grid:    NewGrid(cfg.Origin, cfg.GridRows, cfg.GridCols, cfg.CellSize),
	}
}

// placeStart seeds the start tile at the configured cell.
func (r *run) placeStart() {
	cell := r.grid.Cell(r.cfg.StartRow, r.cfg.StartCol)
	if _, err := r.createTile(cell, RoleStart, nil); err != nil {
		r.report("start", err, nil)
	}
}

// grow pops frontier entries and places pass-through tiles until the
// budget is reached or the frontier is empty.
func (r *run) grow() {
	for r.tiles.len() < r.cfg.TileBudget {
		conn, ok := r.nextFree()
		if !ok {
			break
		}
		if r.place(conn, RoleConnection) {
			r.stats.Grown++
		}
	}
	r.refreshFrontier()
	r.phaseDone("growth")
}

// closeGaps places fillers on cells where two or more connectors meet.
// Fillers never add to the frontier.
func (r *run) closeGaps() {
	for {
		conn, ok := r.nextFree()
		if !ok {
			break
		}
		if r.place(conn, RoleFiller) {
			r.stats.Filled++
		}
	}
	r.refreshFrontier()
	r.phaseDone("gap_closure")
}

// placeEnd caps the connector farthest from the start tile with the end tile.
func (r *run) placeEnd() {
	if r.start != nil {
		origin := r.grid.Cell(r.start.cell.Row, r.start.cell.Col).Position
		r.frontier.sortByDistance(func(ref ConnectorRef) float64 {
			owner := r.tiles.get(ref.Tile)
			return planarDistance(r.grid.Cell(owner.cell.Row, owner.cell.Col).Position, origin)
		})
	}

	conn, ok := r.nextFree()
	if !ok {
		r.report("end_placement", fmt.Errorf("%w for end tile", ErrNoFreeConnector), nil)
		return
	}
	r.place(conn, RoleEnd)
	r.refreshFrontier()
	r.phaseDone("end_placement")
}

// capDeadEnds closes every remaining connector with a single-connector tile.
func (r *run) capDeadEnds() {
	for {
		conn, ok := r.nextFree()
		if !ok {
			break
		}
		if r.place(conn, RoleDeadEnd) {
			r.stats.DeadEnds++
		}
	}
	r.refreshFrontier()

	if n := r.frontier.len(); n > 0 {
		r.report("dead_end_capping", fmt.Errorf("%w: unable to fill %d connectors", ErrUnresolvedConnectors, n), nil)
	}
	r.phaseDone("dead_end_capping")
}

// nextFree pops frontier entries until it finds one that is still free.
func (r *run) nextFree() (*Connector, bool) {
	for {
		ref, ok := r.frontier.pop()
		if !ok {
			return nil, false
		}
		if conn := r.tiles.connector(ref); conn != nil && conn.IsFree() {
			return conn, true
		}
	}
}

// place puts a tile of the given role in the cell conn points into.
func (r *run) place(conn *Connector, role Role) bool {
	target := r.targetCell(conn)
	if target == nil {
		conn.invalidate()
		return false
	}
	if _, err := r.createTile(target, role, conn); err != nil {
		r.stats.Skipped++
		r.report(role.String(), err, conn)
		return false
	}
	return true
}

// createTile picks a template for cell, instantiates it, wires it to the parent
// connector, binds it into the grid and updates the frontier.
func (r *run) createTile(cell *Cell, role Role, parent *Connector) (*PlacedTile, error) {
	r.working.shuffle(r.rng)

	if cell.IsOccupied() {
		return nil, fmt.Errorf("%w: %s", ErrCellOccupied, cell.Coord())
	}

	tmpl, err := r.selectTemplate(cell, role, parent)
	if err != nil {
		return nil, err
	}

	var parentTile *PlacedTile
	if parent != nil {
		parentTile = r.tiles.get(parent.Owner())
	}
	tile := newPlacedTile(r.tiles.nextID(), tmpl, role, cell.Coord(), parentTile)

	if parent != nil {
		child := tile.OppositeConnector(parent.Direction)
		if child == nil || !connect(child, parent) {
			return nil, fmt.Errorf("%w: %s cannot pair with %s connector", ErrNoMatch, tmpl, parent.Direction)
		}
	}

	r.bind(tile, cell)
	r.placer.Place(tile, cell.Position)

	if role.growsFrontier() {
		refs := refsOf(tile.FreeConnectors())
		shuffleRefs(r.rng, refs)
		r.frontier.push(refs...)
	}
	r.revalidateFrontier()

	switch role {
	case RoleStart:
		r.start = tile
	case RoleEnd:
		r.end = tile
	}
	return tile, nil
}

func (r *run) selectTemplate(cell *Cell, role Role, parent *Connector) (Template, error) {
	switch role {
	case RoleStart:
		if t, ok := matchStart(r.working); ok {
			return t, nil
		}
		return Template{}, ErrNoStartTile

	case RoleConnection:
		c := cellConstraints(r.grid, &r.tiles, cell)
		if t, ok := matchGrowth(r.working, c); ok {
			return t, nil
		}
		return Template{}, fmt.Errorf("%w: no connection tile for %s (needed %s, blocked %s)", ErrNoMatch, cell.Coord(), c.needed, c.blocked)

	case RoleFiller:
		c := cellConstraints(r.grid, &r.tiles, cell)
		if t, ok := matchFiller(r.working, c.needed); ok {
			return t, nil
		}
		return Template{}, fmt.Errorf("%w: no filler tile for %s (needed %s)", ErrNoMatch, cell.Coord(), c.needed)

	case RoleDeadEnd:
		if t, ok := matchTerminal(r.working, parent.Direction.Opposite()); ok {
			return t, nil
		}
		return Template{}, fmt.Errorf("%w: no dead end facing %s for %s", ErrNoMatch, parent.Direction.Opposite(), cell.Coord())

	case RoleEnd:
		if t, ok := matchTerminal(r.working, parent.Direction.Opposite()); ok {
			return t, nil
		}
		return Template{}, fmt.Errorf("%w: none facing %s for %s", ErrNoEndTile, parent.Direction.Opposite(), cell.Coord())
	}
	return Template{}, fmt.Errorf("%w: unknown role %s", ErrNoMatch, role)
}

// bind occupies the cell and reconciles the tile's edges with its neighbours:
// off-grid connectors are invalidated, facing connector pairs are connected,
// and any connector left facing a wall is invalidated on either side.
func (r *run) bind(tile *PlacedTile, cell *Cell) {
	r.grid.occupy(cell, tile.ID)
	r.tiles.add(tile)

	for _, dir := range AllDirections() {
		own := tile.Connector(dir)
		neighbor := r.grid.Neighbor(cell, dir)
		if neighbor == nil {
			if own != nil {
				own.invalidate()
			}
			continue
		}
		if !neighbor.IsOccupied() {
			continue
		}

		facing := r.tiles.get(neighbor.Tile()).OppositeConnector(dir)
		switch {
		case own != nil && facing != nil:
			if !connect(own, facing) && own.IsFree() {
				own.invalidate()
			}
		case own != nil:
			own.invalidate()
		case facing != nil:
			facing.invalidate()
		}
	}
}

// revalidateFrontier re-derives every entry against the grid and keeps only
// those still free.
func (r *run) revalidateFrontier() {
	r.frontier.filter(func(ref ConnectorRef) bool {
		conn := r.tiles.connector(ref)
		if conn == nil {
			return false
		}
		r.resolve(conn)
		return conn.IsFree()
	})
}

// resolve connects a free connector to an occupied neighbour with a facing
// connector, or invalidates it if it points off-grid or at a wall.
func (r *run) resolve(conn *Connector) {
	if !conn.IsFree() {
		return
	}
	target := r.targetCell(conn)
	if target == nil {
		conn.invalidate()
		return
	}
	if !target.IsOccupied() {
		return
	}
	facing := r.tiles.get(target.Tile()).OppositeConnector(conn.Direction)
	if facing == nil || !connect(conn, facing) {
		conn.invalidate()
	}
}

// targetCell returns the cell a connector points into, or nil if off-grid.
func (r *run) targetCell(conn *Connector) *Cell {
	owner := r.tiles.get(conn.Owner())
	from := r.grid.Cell(owner.cell.Row, owner.cell.Col)
	return r.grid.Neighbor(from, conn.Direction)
}

// refreshFrontier rebuilds the frontier from every tile's free connectors,
// in tile creation order with each tile's connectors shuffled.
func (r *run) refreshFrontier() {
	var refs []ConnectorRef
	for _, t := range r.tiles.tiles {
		free := refsOf(t.FreeConnectors())
		shuffleRefs(r.rng, free)
		refs = append(refs, free...)
	}
	r.frontier.reset(refs)
}

func (r *run) report(phase string, err error, conn *Connector) {
	r.diagnostics = append(r.diagnostics, err)

	args := []any{"run", r.id, "phase", phase, "error", err}
	if conn != nil {
		owner := r.tiles.get(conn.Owner())
		args = append(args, "row", owner.cell.Row, "col", owner.cell.Col, "direction", conn.Direction.String())
	}
	logger.Debug("Placement skipped", args...)
}

func (r *run) phaseDone(phase string) {
	logger.Debug("Generation phase complete",
		"run", r.id,
		"phase", phase,
		"tiles", r.tiles.len(),
		"frontier", r.frontier.len())
}

func (r *run) result() *Result {
	var unresolved []ConnectorRef
	for _, t := range r.tiles.tiles {
		unresolved = append(unresolved, refsOf(t.FreeConnectors())...)
	}
	if len(unresolved) > 0 && r.cfg.EnableDeadEndCapping {
		logger.Warning("Dungeon has unresolved connectors", "run", r.id, "count", len(unresolved))
	}

	return &Result{
		RunID:       r.id,
		Seed:        r.seed,
		Grid:        r.grid,
		Catalog:     r.catalog,
		Tiles:       r.tiles.tiles,
		Start:       r.start,
		End:         r.end,
		Unresolved:  unresolved,
		Diagnostics: r.diagnostics,
		Stats:       r.stats,
	}
}

func refsOf(conns []*Connector) []ConnectorRef {
	refs := make([]ConnectorRef, len(conns))
	for i, c := range conns {
		refs[i] = c.Ref()
	}
	return refs
}
