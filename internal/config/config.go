package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/zencodergames/dungeongen/internal/dungeon"
	"gopkg.in/yaml.v3"
)

// GenerationConfig holds the settings for one dungeon generation run.
type GenerationConfig struct {
	Grid       GridConfig   `yaml:"grid"`
	Start      StartConfig  `yaml:"start"`
	TileBudget int          `yaml:"tile_budget"`
	Seed       int64        `yaml:"seed"`
	Phases     PhasesConfig `yaml:"phases"`
	Tiles      []TileConfig `yaml:"tiles"`
}

// GridConfig describes the cell grid.
type GridConfig struct {
	Rows     int          `yaml:"rows"`
	Cols     int          `yaml:"cols"`
	CellSize float64      `yaml:"cell_size"`
	Origin   OriginConfig `yaml:"origin"`
}

// OriginConfig is the world position of cell (0,0).
type OriginConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// StartConfig is the cell the start tile is placed on.
type StartConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// PhasesConfig toggles the optional generation phases.
type PhasesConfig struct {
	// Growth places connection tiles until the tile budget is reached.
	Growth bool `yaml:"growth"`

	// GapClosure fills cells where two or more open connectors meet.
	GapClosure bool `yaml:"gap_closure"`

	// EndPlacement caps the connector farthest from the start with the end tile.
	EndPlacement bool `yaml:"end_placement"`

	// DeadEndCapping closes every remaining connector.
	DeadEndCapping bool `yaml:"dead_end_capping"`
}

// TileConfig is a base tile template: a name and its connector directions
// (top, bottom, left, right).
type TileConfig struct {
	Name       string   `yaml:"name"`
	Connectors []string `yaml:"connectors"`
}

// DefaultConfig returns a 10x10 grid with a centre start, budget 20, every
// phase enabled and the default tile set.
func DefaultConfig() *GenerationConfig {
	return &GenerationConfig{
		Grid: GridConfig{
			Rows:     10,
			Cols:     10,
			CellSize: 1,
		},
		Start:      StartConfig{Row: 5, Col: 5},
		TileBudget: 20,
		Seed:       0, // Random per run
		Phases: PhasesConfig{
			Growth:         true,
			GapClosure:     true,
			EndPlacement:   true,
			DeadEndCapping: true,
		},
		Tiles: []TileConfig{
			{Name: "corridor_end", Connectors: []string{"top"}},
			{Name: "l_bend", Connectors: []string{"top", "right"}},
			{Name: "straight", Connectors: []string{"top", "bottom"}},
			{Name: "t_junction", Connectors: []string{"top", "right", "left"}},
			{Name: "cross", Connectors: []string{"top", "right", "bottom", "left"}},
		},
	}
}

// LoadConfig loads generation configuration from a YAML file and applies
// environment overrides. A missing file yields the defaults.
func LoadConfig(path string) (*GenerationConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return config, fmt.Errorf("failed to read generation config: %w", err)
		}
	} else {
		// A tile list in the file replaces the defaults rather than merging with them
		fileConfig := *config
		fileConfig.Tiles = nil
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse generation config: %w", err)
		}
		if len(fileConfig.Tiles) == 0 {
			fileConfig.Tiles = config.Tiles
		}
		config = &fileConfig
	}

	if err := config.applyEnv(); err != nil {
		return config, err
	}
	return config, nil
}

// applyEnv applies DUNGEON_SEED and DUNGEON_TILE_BUDGET overrides.
func (c *GenerationConfig) applyEnv() error {
	if seed := os.Getenv("DUNGEON_SEED"); seed != "" {
		v, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid DUNGEON_SEED %q: %w", seed, err)
		}
		c.Seed = v
	}

	if budget := os.Getenv("DUNGEON_TILE_BUDGET"); budget != "" {
		v, err := strconv.Atoi(budget)
		if err != nil {
			return fmt.Errorf("invalid DUNGEON_TILE_BUDGET %q: %w", budget, err)
		}
		c.TileBudget = v
	}
	return nil
}

// Templates converts the configured tiles into dungeon templates.
func (c *GenerationConfig) Templates() ([]dungeon.Template, error) {
	templates := make([]dungeon.Template, 0, len(c.Tiles))
	for i, tc := range c.Tiles {
		name := tc.Name
		if name == "" {
			name = fmt.Sprintf("tile_%d", i)
		}

		dirs := make([]dungeon.Direction, 0, len(tc.Connectors))
		for _, s := range tc.Connectors {
			d, err := dungeon.ParseDirection(s)
			if err != nil {
				return nil, fmt.Errorf("tile %q: %w", name, err)
			}
			dirs = append(dirs, d)
		}

		t := dungeon.NewTemplate(name, dirs...)
		if err := t.Validate(); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// DungeonConfig converts to the generator's configuration and validates it.
func (c *GenerationConfig) DungeonConfig() (*dungeon.Config, error) {
	templates, err := c.Templates()
	if err != nil {
		return nil, err
	}

	dc := &dungeon.Config{
		GridRows: c.Grid.Rows,
		GridCols: c.Grid.Cols,
		CellSize: c.Grid.CellSize,
		Origin: dungeon.Vec3{
			X: c.Grid.Origin.X,
			Y: c.Grid.Origin.Y,
			Z: c.Grid.Origin.Z,
		},
		StartRow:             c.Start.Row,
		StartCol:             c.Start.Col,
		TileBudget:           c.TileBudget,
		BaseTiles:            templates,
		EnableGrowth:         c.Phases.Growth,
		EnableGapClosure:     c.Phases.GapClosure,
		EnableEndPlacement:   c.Phases.EndPlacement,
		EnableDeadEndCapping: c.Phases.DeadEndCapping,
		Seed:                 c.Seed,
	}

	if err := dc.Validate(); err != nil {
		return nil, err
	}
	return dc, nil
}
