package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/conway-grid/model"
	"github.com/sheikhrachel/conway-grid/utils"
)

// game bundles the state the main loop needs between generations
type game struct {
	config  utils.Config
	grid    *model.Grid
	pool    *model.ChangePool
	sink    model.Sink
	stats   *utils.Stats
	history utils.History

	status io.Writer
	input  *bufio.Reader
}

// initializeGame sets up the initial game state. Grids are written to out
// and status lines to status.
func initializeGame(config utils.Config, in io.Reader, out, status io.Writer) (*game, error) {
	grid, err := loadOrSeedGrid(config)
	if err != nil {
		return nil, err
	}

	var pool *model.ChangePool
	if config.UseMemoryPool {
		pool = model.NewChangePool()
	}

	var sink model.Sink
	switch config.Sink {
	case utils.SinkTerminal:
		sink = &model.TerminalRenderer{W: out}
	case utils.SinkPlain:
		sink = &model.TextSink{W: out}
	}

	return &game{
		config: config,
		grid:   grid,
		pool:   pool,
		sink:   sink,
		stats:  utils.NewStats(),
		status: status,
		input:  bufio.NewReader(in),
	}, nil
}

// loadOrSeedGrid reads the configured input file, or seeds a fresh grid
// with patterns and random life when no file is given
func loadOrSeedGrid(config utils.Config) (*model.Grid, error) {
	if config.InputPath != "" {
		grid, err := model.LoadFile(config.InputPath)
		if err != nil {
			return nil, errors.Wrap(err, "[loadOrSeedGrid] failed to load initial grid")
		}
		return grid, nil
	}

	grid, err := model.NewBlankGrid(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[loadOrSeedGrid] failed to create grid")
	}
	grid.SeedPatterns(config)
	return grid, nil
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.status, "Features: Memory Pool: %v, Parallel: %v, Sink: %s\n",
		g.config.UseMemoryPool, g.config.UseParallel, g.config.Sink)
	fmt.Fprintf(g.status, "Grid: %dx%d | Initial living cells: %d\n",
		g.grid.GetWidth(), g.grid.GetHeight(), g.grid.CountLivingCells())
}

// updateGameState updates the game state and returns status information
func (g *game) updateGameState(generation int, lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.grid.CountLivingCells()
	density := float64(livingCells) / float64(g.grid.GetWidth()*g.grid.GetHeight()) * 100

	g.stats.Update(generation, livingCells, time.Since(lastFrameTime))

	// Compare before recording, otherwise every generation matches itself.
	hash := g.grid.Hash()
	isStagnant := g.history.IsStagnant(hash)
	g.history.Record(hash)

	status := "Active"
	if isStagnant {
		status = "Stagnant"
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(generation, livingCells int, density float64, status string) {
	fmt.Fprintf(g.status, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		generation, livingCells, density, status)
	fmt.Fprintf(g.status, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak Pop: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation, g.stats.Runtime().Seconds())
}

// waitForStep blocks until a line arrives on the input. It returns false
// once the input is exhausted.
func (g *game) waitForStep() bool {
	fmt.Fprint(g.status, "Press Enter for the next generation")
	_, err := g.input.ReadString('\n')
	fmt.Fprintln(g.status)
	return err == nil
}

// run presents generations until a stop condition is reached and returns
// the number of completed steps
func (g *game) run(ctx context.Context) (int, error) {
	var (
		generation    = 0
		stagnantCount = 0
		lastFrameTime = time.Now()
	)

	for {
		if ctx.Err() != nil {
			return generation, nil
		}

		frameStart := time.Now()
		if err := g.sink.Present(g.grid, generation); err != nil {
			return generation, errors.Wrap(err, "[run] failed to present grid")
		}

		livingCells, density, status, isStagnant := g.updateGameState(generation, lastFrameTime)
		lastFrameTime = frameStart
		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}
		g.displayGameStatus(generation, livingCells, density, status)

		if g.config.MaxGenerations > 0 && generation >= g.config.MaxGenerations {
			fmt.Fprintf(g.status, "🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
			return generation, nil
		}
		if g.config.StopWhenStagnant && stagnantCount >= g.config.StagnationThreshold {
			fmt.Fprintf(g.status, "Stopping: stagnant for %d generations\n", stagnantCount)
			return generation, nil
		}

		if g.config.Interactive && !g.waitForStep() {
			return generation, nil
		}

		if err := g.grid.Advance(g.config, g.pool); err != nil {
			return generation, errors.Wrapf(err, "[run] failed to advance generation %d", generation)
		}
		generation++

		if g.config.Interactive || g.config.FrameRate <= 0 {
			continue
		}
		select {
		case <-ctx.Done():
			return generation, nil
		case <-time.After(g.config.FrameRate):
		}
	}
}
