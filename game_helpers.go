package main

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/catalog"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/rules"
	"github.com/sheikhrachel/torus-gol/snapshot"
	"github.com/sheikhrachel/torus-gol/utils"
)

// game bundles the board with everything the front end drives it with
type game struct {
	config   utils.Config
	variant  rules.Variant
	grid     *model.Grid
	sim      *model.Simulator
	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats

	// consecutive frames reported stagnant
	stagnantCount int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, variant rules.Variant) (*game, error) {
	var pool *model.BufferPool
	if config.UseBufferPool {
		pool = model.NewBufferPool()
	}

	g := &game{
		config:   config,
		variant:  variant,
		grid:     model.NewGrid(config.Dimension),
		sim:      model.NewSimulator(pool),
		history:  model.NewHistory(model.DefaultHistorySize),
		renderer: model.NewTerminalRenderer(),
		stats:    utils.NewStats(),
	}

	if err := g.seed(); err != nil {
		return nil, err
	}
	return g, nil
}

// seed fills the board from a saved game, a preset, or the RNG; otherwise it stays empty
func (g *game) seed() error {
	switch {
	case g.config.LoadPath != "":
		if err := snapshot.Load(g.grid, snapshot.File(g.config.LoadPath)); err != nil {
			return errors.Wrapf(err, "[seed] load game %s", g.config.LoadPath)
		}
		utils.Logger().Info("game loaded", "path", g.config.LoadPath)
	case g.config.Pattern != "":
		if err := catalog.Load(g.grid, g.config.Pattern); err != nil {
			return errors.Wrap(err, "[seed] load pattern")
		}
	case g.config.Random:
		g.grid.Randomize(model.NewRand(g.config.Seed))
		utils.Logger().Info("board randomized", "seed", g.config.Seed)
	}
	return nil
}

// advance runs n generations without rendering
func (g *game) advance(n int) {
	for range n {
		g.sim.Step(g.grid, g.variant)
	}
}

// finish saves the board if requested and reports the run
func (g *game) finish() int {
	utils.Logger().Info("run finished",
		"generations", g.sim.Generation(),
		"living", g.grid.CountLivingCells(),
		"runtime", g.stats.Runtime().Round(time.Millisecond),
		"avg_population", g.stats.AveragePopulation,
		"peak_population", g.stats.PeakPopulation,
	)

	if g.config.SavePath == "" {
		return 0
	}
	if err := snapshot.Save(g.grid, snapshot.File(g.config.SavePath)); err != nil {
		utils.Logger().Error("save failed", "path", g.config.SavePath, "error", err)
		return 1
	}
	utils.Logger().Info("game saved", "path", g.config.SavePath)
	return 0
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Rules: %s | Grid: %dx%d torus | Initial living cells: %d\n",
		g.variant, g.grid.Dimension(), g.grid.Dimension(), g.grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates stats and history and returns status information
func updateGameState(g *game, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()
	dim := g.grid.Dimension()

	g.stats.Update(g.sim.Generation(), livingCells, dim*dim, time.Since(lastFrameTime))

	// compare against earlier frames before recording this one
	isStagnant := g.history.IsStagnant(g.grid)
	g.history.UpdateHistory(g.grid)
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, g.stats.Density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, livingCells int, density float64, status string) {
	fmt.Printf("Gen: %d | Rules: %s | Living: %d | Density: %.1f%% | Status: %s\n",
		g.sim.Generation(), g.variant, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation, g.stats.Runtime().Seconds())
	fmt.Println()
}

// checkStopConditions determines if the game should stop playing
func checkStopConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
		return true, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations)
	}
	return false, ""
}

// listPatterns prints the built-in catalog grouped by category
func listPatterns(w io.Writer) {
	for _, c := range catalog.Categories() {
		fmt.Fprintf(w, "%s:\n", c)
		for _, e := range catalog.ByCategory(c) {
			fmt.Fprintf(w, "  %s\n", e.Name)
		}
	}
}
