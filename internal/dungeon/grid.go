package dungeon

import "fmt"

// Vec3 is a world-space position. The grid lies on the X/Z plane.
type Vec3 struct {
	X, Y, Z float64
}

// Coord identifies a cell by row and column.
type Coord struct {
	Row, Col int
}

// String returns "(row,col)"
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Cell is a single grid slot. It holds at most one placed tile.
type Cell struct {
	Row, Col int
	Size     float64
	Position Vec3

	tile TileID
}

// Coord returns the cell's coordinate
func (c *Cell) Coord() Coord {
	return Coord{Row: c.Row, Col: c.Col}
}

// IsOccupied returns true if a tile is bound to this cell
func (c *Cell) IsOccupied() bool {
	return c.tile != NoTile
}

// Tile returns the ID of the occupying tile, or NoTile.
func (c *Cell) Tile() TileID {
	return c.tile
}

// Grid is a fixed-size rows x cols array of cells.
type Grid struct {
	rows, cols int
	cellSize   float64
	origin     Vec3
	cells      [][]*Cell
}

// NewGrid creates a fully populated, unoccupied grid.
// Cell (r, c) sits at origin + (c*size, 0, r*size).
func NewGrid(origin Vec3, rows, cols int, cellSize float64) *Grid {
	g := &Grid{
		rows:     rows,
		cols:     cols,
		cellSize: cellSize,
		origin:   origin,
	}

	g.cells = make([][]*Cell, rows)
	for r := 0; r < rows; r++ {
		g.cells[r] = make([]*Cell, cols)
		for c := 0; c < cols; c++ {
			g.cells[r][c] = &Cell{
				Row:  r,
				Col:  c,
				Size: cellSize,
				Position: Vec3{
					X: origin.X + float64(c)*cellSize,
					Y: origin.Y,
					Z: origin.Z + float64(r)*cellSize,
				},
				tile: NoTile,
			}
		}
	}

	return g
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// CellSize returns the edge length of a cell
func (g *Grid) CellSize() float64 { return g.cellSize }

// Origin returns the world position of cell (0,0)
func (g *Grid) Origin() Vec3 { return g.origin }

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Cell returns the cell at (row, col). Callers must bounds-check first;
// an out-of-range request is a programming error and panics.
func (g *Grid) Cell(row, col int) *Cell {
	if !g.InBounds(row, col) {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d grid", ErrIndexOutOfRange, row, col, g.rows, g.cols))
	}
	return g.cells[row][col]
}

// Neighbor returns the adjacent cell in the given direction, or nil if it is off-grid.
func (g *Grid) Neighbor(c *Cell, dir Direction) *Cell {
	dr, dc := dir.Offset()
	r, col := c.Row+dr, c.Col+dc
	if !g.InBounds(r, col) {
		return nil
	}
	return g.cells[r][col]
}

// OccupiedCount returns the number of cells holding a tile
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell.IsOccupied() {
				count++
			}
		}
	}
	return count
}

// occupy binds a tile to a cell. A cell is never cleared during a run.
func (g *Grid) occupy(c *Cell, id TileID) {
	c.tile = id
}
