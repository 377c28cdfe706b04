package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/zencodergames/dungeongen/internal/config"
	"github.com/zencodergames/dungeongen/internal/dungeon"
	"github.com/zencodergames/dungeongen/internal/logger"
)

func main() {
	configFile := flag.String("config", "data/dungeon.yaml", "Path to generation config YAML file")
	loggingConfig := flag.String("logging", "data/logging.yaml", "Path to logging config YAML file")
	seed := flag.Int64("seed", 0, "Generation seed (overrides config; default: config or random)")
	showMap := flag.Bool("map", true, "Print an ASCII map of the dungeon")
	showLegend := flag.Bool("legend", true, "Show legend")
	outputFile := flag.String("output", "", "Output file (empty for stdout)")
	flag.Parse()

	// Initialize logger first (before any logging)
	logConfig, err := logger.LoadConfig(*loggingConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading logging config: %v\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	genConfig, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Error("Failed to load generation config", "path", *configFile, "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		genConfig.Seed = *seed
	}

	dungeonConfig, err := genConfig.DungeonConfig()
	if err != nil {
		logger.Error("Invalid generation config", "path", *configFile, "error", err)
		os.Exit(1)
	}

	res, err := dungeon.Generate(dungeonConfig)
	if err != nil {
		logger.Error("Dungeon generation failed", "error", err)
		os.Exit(1)
	}

	for _, d := range res.Diagnostics {
		logger.Warning("Generation diagnostic", "run", res.RunID, "error", d)
	}
	logger.Info("Dungeon summary",
		"run", res.RunID,
		"seed", res.Seed,
		"tiles", len(res.Tiles),
		"grown", res.Stats.Grown,
		"filled", res.Stats.Filled,
		"dead_ends", res.Stats.DeadEnds,
		"skipped", res.Stats.Skipped,
		"reachable", res.Reachable(),
		"connected", res.IsConnected())

	if !*showMap {
		return
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("Dungeon Map (Seed: %d, Tiles: %d, Grid: %dx%d)\n",
		res.Seed, len(res.Tiles), res.Grid.Rows(), res.Grid.Cols()))
	output.WriteString(strings.Repeat("=", 60) + "\n\n")

	renderMap(&output, res)
	renderDetails(&output, res)

	if *showLegend {
		output.WriteString("\n" + getLegend())
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output.String()), 0644); err != nil {
			logger.Error("Failed to write map", "path", *outputFile, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Map written to %s\n", *outputFile)
	} else {
		fmt.Print(output.String())
	}
}
