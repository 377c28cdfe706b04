package main

import (
	"fmt"
	"strings"

	"github.com/zencodergames/dungeongen/internal/dungeon"
)

// renderMap draws the dungeon with the highest row first, since Top faces row+1.
// Each cell is 5 chars wide and 3 chars tall:
//
//	  |     (top connection)
//	-[S]-   (left-tile-right)
//	  |     (bottom connection)
func renderMap(output *strings.Builder, res *dungeon.Result) {
	if len(res.Tiles) == 0 {
		output.WriteString("  (No tiles to display)\n")
		return
	}

	grid := res.Grid
	for row := grid.Rows() - 1; row >= 0; row-- {
		// Top row
		for col := 0; col < grid.Cols(); col++ {
			tile := res.TileAt(row, col)
			output.WriteString(vertical(tile, dungeon.Top))
		}
		output.WriteString("\n")

		// Middle row
		for col := 0; col < grid.Cols(); col++ {
			tile := res.TileAt(row, col)
			if tile == nil {
				output.WriteString("  .  ")
				continue
			}
			output.WriteString(horizontal(tile, dungeon.Left, "-"))
			output.WriteString("[" + tileSymbol(tile) + "]")
			output.WriteString(horizontal(tile, dungeon.Right, "-"))
		}
		output.WriteString("\n")

		// Bottom row
		for col := 0; col < grid.Cols(); col++ {
			tile := res.TileAt(row, col)
			output.WriteString(vertical(tile, dungeon.Bottom))
		}
		output.WriteString("\n")
	}
}

func vertical(tile *dungeon.PlacedTile, dir dungeon.Direction) string {
	if tile == nil {
		return "     "
	}
	return "  " + horizontal(tile, dir, "|") + "  "
}

// horizontal returns the passage glyph for dir: the glyph when connected,
// "?" when still open, blank otherwise.
func horizontal(tile *dungeon.PlacedTile, dir dungeon.Direction, glyph string) string {
	c := tile.Connector(dir)
	switch {
	case c == nil:
		return " "
	case c.IsConnected():
		return glyph
	case c.IsFree():
		return "?"
	default:
		return " "
	}
}

func tileSymbol(tile *dungeon.PlacedTile) string {
	switch tile.Role {
	case dungeon.RoleStart:
		return "S"
	case dungeon.RoleEnd:
		return "E"
	case dungeon.RoleDeadEnd:
		return "x"
	case dungeon.RoleFiller:
		return "+"
	default:
		return "#"
	}
}

func renderDetails(output *strings.Builder, res *dungeon.Result) {
	output.WriteString("\nTile Details:\n")
	for _, tile := range res.Tiles {
		details := fmt.Sprintf("  [%s] %-16s %-10s %s dist=%d",
			tileSymbol(tile), truncate(tile.Template.Name(), 16), tile.Role, tile.Cell(), tile.DistanceFromStart)
		if tile.Parent != dungeon.NoTile {
			details += fmt.Sprintf(" parent=%d", tile.Parent)
		}
		output.WriteString(details + "\n")
	}

	if len(res.Unresolved) > 0 {
		output.WriteString("\nWARNING: Unresolved connectors:\n")
		for _, ref := range res.Unresolved {
			c := res.Connector(ref)
			output.WriteString(fmt.Sprintf("  - %s facing %s\n", ref, c.Direction))
		}
	}
}

func getLegend() string {
	return `Legend:
  [S] Start        [E] End
  [#] Connection   [+] Filler
  [x] Dead end
  - |  Connected passage
   ?   Open connector
`
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
