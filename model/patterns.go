package model

import (
	"math/rand/v2"

	"github.com/sheikhrachel/conway-grid/utils"
)

// AddGlider places a glider whose bounding box starts at (row, col)
func (g *Grid) AddGlider(row, col int) {
	pattern := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}
	g.stamp(row, col, pattern)
}

// AddBlinker places a horizontal period-2 blinker starting at (row, col)
func (g *Grid) AddBlinker(row, col int) {
	g.stamp(row, col, [][]Cell{{Alive, Alive, Alive}})
}

// AddBlock places a 2x2 still life starting at (row, col)
func (g *Grid) AddBlock(row, col int) {
	g.stamp(row, col, [][]Cell{
		{Alive, Alive},
		{Alive, Alive},
	})
}

func (g *Grid) stamp(row, col int, pattern [][]Cell) {
	for dr, line := range pattern {
		for dc, cell := range line {
			g.Set(row+dr, col+dc, cell)
		}
	}
}

// Randomize brings cells to life with the given probability. Existing live
// cells are kept. The same seed always produces the same board.
func (g *Grid) Randomize(density float64, seed int64) {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for row := range g.height {
		for col := range g.width {
			if rng.Float64() < density {
				g.cells[row][col] = Alive
			}
		}
	}
}

// SeedPatterns clears the grid and adds a mix of gliders, oscillators and
// still lifes on top of random life
func (g *Grid) SeedPatterns(config utils.Config) {
	g.Clear()

	if g.width >= 10 && g.height >= 10 {
		g.AddGlider(5, 5)
		if g.width >= 20 && g.height >= 15 {
			g.AddGlider(5, g.width-8)
		}

		g.AddBlinker(g.height/4, g.width/4)
		if g.width >= 30 {
			g.AddBlinker(3*g.height/4, 3*g.width/4)
		}
		g.AddBlock(g.height-4, 2)
	}

	g.Randomize(config.RandomDensity, config.Seed)
}
